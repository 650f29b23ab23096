package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jobsarthi/notification-parser/constants"
	"github.com/jobsarthi/notification-parser/internal/jobextract"
	"github.com/jobsarthi/notification-parser/internal/llm"
)

// recordingSink captures every audit write.
type recordingSink struct {
	mu   sync.Mutex
	outs []Outcome
	err  error
}

func (s *recordingSink) Record(_ context.Context, out Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outs = append(s.outs, out)
	return s.err
}

func (s *recordingSink) recorded() []Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outs
}

func fastConfig() Config {
	return Config{
		BackoffBase:    time.Millisecond,
		RequestTimeout: time.Second,
	}
}

// longText is comfortably above the minimum-length gate and chunks cleanly.
func longText() string {
	return strings.TrimSpace(strings.Repeat("Applications are invited for the post of Junior Clerk in the Department of Posts. ", 10))
}

func runController(t *testing.T, client llm.CompletionClient, cfg Config, sink AuditSink, text string) Outcome {
	t.Helper()
	c := NewController(client, cfg, sink, testLogger())
	return c.Run(context.Background(), Input{RawText: text, JobID: "job-1", SourceID: "src-1", Category: "central"})
}

func TestRunSuccessSingleChunk(t *testing.T) {
	client := &stubClient{fn: func(int, llm.CompletionRequest) (llm.CompletionResponse, error) {
		return okResponse(resultJSON(t, func(r *jobextract.Result) {
			r.Vacancies.Total = intp(120)
		}), 300), nil
	}}
	sink := &recordingSink{}
	out := runController(t, client, fastConfig(), sink, longText())

	if out.Status != constants.RunStatusSuccess {
		t.Fatalf("status = %s, want SUCCESS (%s)", out.Status, out.Run.ErrorMessage)
	}
	if client.callCount() != 1 {
		t.Errorf("completion calls = %d, want 1", client.callCount())
	}
	if out.Run.Attempts != 1 || out.Run.Chunks != 1 {
		t.Errorf("attempts/chunks = %d/%d, want 1/1", out.Run.Attempts, out.Run.Chunks)
	}
	if out.Run.TokensUsed != 300 {
		t.Errorf("tokens = %d, want 300", out.Run.TokensUsed)
	}
	if out.Run.NeedsReview {
		t.Error("record with title, department and deadline should not need review")
	}
	if !strings.Contains(out.Run.Summary, "Junior Clerk") || !strings.Contains(out.Run.Summary, "120") {
		t.Errorf("summary = %q", out.Run.Summary)
	}
	if got := sink.recorded(); len(got) != 1 || got[0].Status != constants.RunStatusSuccess {
		t.Errorf("sink should receive exactly one SUCCESS outcome, got %+v", got)
	}
}

func TestRunTwoChunksMerged(t *testing.T) {
	// Budget of 100 tokens is 400 chars, so the text splits into several
	// overlapping chunks.
	cfg := fastConfig()
	cfg.MaxTokensPerChunk = 100
	cfg.OverlapChars = 40

	client := &stubClient{fn: func(call int, _ llm.CompletionRequest) (llm.CompletionResponse, error) {
		switch call {
		case 1:
			return okResponse(resultJSON(t, func(r *jobextract.Result) {
				r.Vacancies.Total = intp(500)
				r.Vacancies.General = intp(500)
				r.SelectionProcess = []jobextract.SelectionStage{{Stage: 2, Name: "Mains"}}
				r.AIInsights.DifficultyScore = intp(6)
			}), 100), nil
		default:
			return okResponse(resultJSON(t, func(r *jobextract.Result) {
				r.JobInfo.Title = nil
				r.Vacancies.Total = intp(7951)
				r.Vacancies.General = intp(3500)
				r.SelectionProcess = []jobextract.SelectionStage{
					{Stage: 1, Name: "Prelims"},
					{Stage: 2, Name: "mains"},
				}
				r.AIInsights.DifficultyScore = intp(8)
			}), 100), nil
		}
	}}
	sink := &recordingSink{}
	out := runController(t, client, cfg, sink, longText())

	if out.Status != constants.RunStatusSuccess {
		t.Fatalf("status = %s, want SUCCESS (%s)", out.Status, out.Run.ErrorMessage)
	}
	if out.Run.Chunks < 2 {
		t.Fatalf("chunks = %d, want at least 2", out.Run.Chunks)
	}
	if client.callCount() != out.Run.Chunks {
		t.Errorf("completion calls = %d, want %d", client.callCount(), out.Run.Chunks)
	}
	if out.Run.TokensUsed != 100*out.Run.Chunks {
		t.Errorf("tokens = %d, want %d", out.Run.TokensUsed, 100*out.Run.Chunks)
	}

	r := out.Result
	if *r.JobInfo.Title != "Junior Clerk" {
		t.Errorf("title = %q, first non-null must win", *r.JobInfo.Title)
	}
	if *r.Vacancies.Total != 7951 || *r.Vacancies.General != 3500 {
		t.Errorf("vacancies = %+v, highest total must win wholesale", r.Vacancies)
	}
	if len(r.SelectionProcess) != 2 {
		t.Fatalf("selectionProcess = %+v, want 2 deduplicated stages", r.SelectionProcess)
	}
	if r.SelectionProcess[0].Name != "Prelims" || r.SelectionProcess[1].Name != "Mains" {
		t.Errorf("selectionProcess = %+v, want Prelims then Mains by stage", r.SelectionProcess)
	}
	// 6 from the first chunk, 8 from the rest: the mean rounds to 7 for two
	// chunks and to 7 for three (22/3).
	if r.AIInsights.DifficultyScore == nil || *r.AIInsights.DifficultyScore != 7 {
		t.Errorf("difficultyScore = %v, want averaged 7", r.AIInsights.DifficultyScore)
	}
}

func TestRunFailsOnShortInput(t *testing.T) {
	client := &stubClient{fn: func(int, llm.CompletionRequest) (llm.CompletionResponse, error) {
		t.Fatal("completion service must not be called for short input")
		return llm.CompletionResponse{}, nil
	}}
	sink := &recordingSink{}
	out := runController(t, client, fastConfig(), sink, "too short to parse")

	if out.Status != constants.RunStatusFailed {
		t.Fatalf("status = %s, want FAILED", out.Status)
	}
	if out.Run.ErrorKind != string(KindInputTooShort) {
		t.Errorf("error kind = %q, want input_too_short", out.Run.ErrorKind)
	}
	if out.Result != nil {
		t.Error("failed run must carry no result")
	}
	if len(sink.recorded()) != 1 {
		t.Errorf("audit writes = %d, want 1", len(sink.recorded()))
	}
}

func TestRunRetriesTransientThenSucceeds(t *testing.T) {
	client := &stubClient{fn: func(call int, _ llm.CompletionRequest) (llm.CompletionResponse, error) {
		if call == 1 {
			return llm.CompletionResponse{}, errors.New("503 upstream unavailable")
		}
		return okResponse(resultJSON(t, nil), 200), nil
	}}
	sink := &recordingSink{}
	out := runController(t, client, fastConfig(), sink, longText())

	if out.Status != constants.RunStatusSuccess {
		t.Fatalf("status = %s, want SUCCESS after retry (%s)", out.Status, out.Run.ErrorMessage)
	}
	if out.Run.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", out.Run.Attempts)
	}
	if client.callCount() != 2 {
		t.Errorf("completion calls = %d, want 2", client.callCount())
	}
}

func TestRunFailsWhenTransientErrorsExhaustRetries(t *testing.T) {
	client := &stubClient{fn: func(int, llm.CompletionRequest) (llm.CompletionResponse, error) {
		return llm.CompletionResponse{}, errors.New("timeout")
	}}
	sink := &recordingSink{}
	out := runController(t, client, fastConfig(), sink, longText())

	if out.Status != constants.RunStatusFailed {
		t.Fatalf("status = %s, want FAILED", out.Status)
	}
	if out.Run.ErrorKind != string(KindTransient) {
		t.Errorf("error kind = %q, want transient", out.Run.ErrorKind)
	}
	if client.callCount() != 2 {
		t.Errorf("completion calls = %d, want MaxRetryAttempts (2)", client.callCount())
	}
	if len(sink.recorded()) != 1 {
		t.Errorf("audit writes = %d, want 1", len(sink.recorded()))
	}
}

func TestRunFailedKeepsTokenAccounting(t *testing.T) {
	// Truncated responses consume tokens on both attempts; the audit row
	// must still report them on FAILED.
	client := &stubClient{fn: func(int, llm.CompletionRequest) (llm.CompletionResponse, error) {
		return llm.CompletionResponse{Content: `{"jobInfo"`, TokensUsed: 300, FinishReason: "length"}, nil
	}}
	sink := &recordingSink{}
	out := runController(t, client, fastConfig(), sink, longText())

	if out.Status != constants.RunStatusFailed {
		t.Fatalf("status = %s, want FAILED", out.Status)
	}
	if out.Run.ErrorKind != string(KindMalformed) {
		t.Errorf("error kind = %q, want malformed", out.Run.ErrorKind)
	}
	if out.Run.TokensUsed != 600 {
		t.Errorf("tokens = %d, want 600 across both failed attempts", out.Run.TokensUsed)
	}
	if got := sink.recorded(); len(got) != 1 || got[0].Run.TokensUsed != 600 {
		t.Errorf("audit row must carry the token count, got %+v", got)
	}
}

func TestRunDegradesToManualReviewOnPersistentViolations(t *testing.T) {
	client := &stubClient{fn: func(int, llm.CompletionRequest) (llm.CompletionResponse, error) {
		return okResponse(resultJSON(t, func(r *jobextract.Result) {
			r.AgeCriteria.MinimumAge = intp(40)
			r.AgeCriteria.MaximumAge = intp(20)
		}), 150), nil
	}}
	sink := &recordingSink{}
	out := runController(t, client, fastConfig(), sink, longText())

	if out.Status != constants.RunStatusManualReview {
		t.Fatalf("status = %s, want MANUAL_REVIEW", out.Status)
	}
	if out.Run.Attempts != 2 || client.callCount() != 2 {
		t.Errorf("attempts/calls = %d/%d, want 2/2", out.Run.Attempts, client.callCount())
	}
	if out.Result == nil {
		t.Fatal("manual review must carry the best-effort result")
	}
	if len(out.ValidationErrors) == 0 || !strings.Contains(out.ValidationErrors[0], "ageCriteria.maximumAge") {
		t.Errorf("validation errors = %v", out.ValidationErrors)
	}
	if out.Run.ErrorKind != string(KindBusinessRule) {
		t.Errorf("error kind = %q, want business_rule_violation", out.Run.ErrorKind)
	}
	if !out.Run.NeedsReview {
		t.Error("manual review outcome must flag needs_review")
	}
}

func TestRunMultiPostBreakdown(t *testing.T) {
	client := &stubClient{fn: func(call int, _ llm.CompletionRequest) (llm.CompletionResponse, error) {
		if call == 1 {
			return okResponse(resultJSON(t, func(r *jobextract.Result) {
				r.MultipleJobs = true
			}), 300), nil
		}
		return okResponse(`{"posts":[
			{"postName":"Junior Clerk","vacancies":40,"eligibility":"12th pass","payLevel":"Level 2","ageLimit":"18-27"},
			{"postName":"Stenographer","vacancies":12,"eligibility":null,"payLevel":null,"ageLimit":null}
		]}`, 120), nil
	}}
	sink := &recordingSink{}
	out := runController(t, client, fastConfig(), sink, longText())

	if out.Status != constants.RunStatusSuccess {
		t.Fatalf("status = %s, want SUCCESS (%s)", out.Status, out.Run.ErrorMessage)
	}
	if len(out.Posts) != 2 {
		t.Fatalf("posts = %+v, want 2", out.Posts)
	}
	if out.Posts[0].PostName != "Junior Clerk" || *out.Posts[0].Vacancies != 40 {
		t.Errorf("first post = %+v", out.Posts[0])
	}
	if out.Posts[1].Eligibility != nil {
		t.Errorf("null eligibility must decode to nil, got %v", *out.Posts[1].Eligibility)
	}
	if out.Run.TokensUsed != 420 {
		t.Errorf("tokens = %d, want extraction + split = 420", out.Run.TokensUsed)
	}
}

func TestRunSplitFailureIsNonFatal(t *testing.T) {
	client := &stubClient{fn: func(call int, _ llm.CompletionRequest) (llm.CompletionResponse, error) {
		if call == 1 {
			return okResponse(resultJSON(t, func(r *jobextract.Result) {
				r.MultipleJobs = true
			}), 300), nil
		}
		return llm.CompletionResponse{}, errors.New("connection reset")
	}}
	sink := &recordingSink{}
	out := runController(t, client, fastConfig(), sink, longText())

	if out.Status != constants.RunStatusSuccess {
		t.Fatalf("status = %s, split failure must not fail the run", out.Status)
	}
	if out.Posts != nil {
		t.Errorf("posts = %+v, want none after split failure", out.Posts)
	}
	if out.Result == nil || !out.Result.MultipleJobs {
		t.Error("parent result must still be stored")
	}
}

func TestRunMarksCorrigendum(t *testing.T) {
	text := "CORRIGENDUM to Advertisement No. 04/2025. " + longText()
	client := &stubClient{fn: func(int, llm.CompletionRequest) (llm.CompletionResponse, error) {
		return okResponse(resultJSON(t, nil), 100), nil
	}}
	out := runController(t, client, fastConfig(), &recordingSink{}, text)

	if out.Status != constants.RunStatusSuccess {
		t.Fatalf("status = %s, corrigendum must not change the outcome", out.Status)
	}
	if !out.Run.IsCorrigendum {
		t.Error("run record should flag the corrigendum")
	}
}

func TestRunSinkFailureDoesNotChangeOutcome(t *testing.T) {
	client := &stubClient{fn: func(int, llm.CompletionRequest) (llm.CompletionResponse, error) {
		return okResponse(resultJSON(t, nil), 100), nil
	}}
	sink := &recordingSink{err: errors.New("database unavailable")}
	out := runController(t, client, fastConfig(), sink, longText())

	if out.Status != constants.RunStatusSuccess {
		t.Errorf("status = %s, a sink failure must not change the outcome", out.Status)
	}
}

func TestRunParallelChunksKeepDocumentOrder(t *testing.T) {
	cfg := fastConfig()
	cfg.MaxTokensPerChunk = 100
	cfg.OverlapChars = 40
	cfg.ChunkConcurrency = 3

	client := &stubClient{fn: func(call int, req llm.CompletionRequest) (llm.CompletionResponse, error) {
		// Title only in part 1; later chunks carry nothing identifying.
		if strings.Contains(req.Prompt, "part 1 of") {
			return okResponse(resultJSON(t, nil), 100), nil
		}
		return okResponse(resultJSON(t, func(r *jobextract.Result) {
			r.JobInfo.Title = strp("WRONG LATER TITLE")
		}), 100), nil
	}}
	out := runController(t, client, cfg, &recordingSink{}, longText())

	if out.Status != constants.RunStatusSuccess {
		t.Fatalf("status = %s, want SUCCESS (%s)", out.Status, out.Run.ErrorMessage)
	}
	if out.Run.Chunks < 2 {
		t.Fatalf("chunks = %d, want at least 2", out.Run.Chunks)
	}
	if *out.Result.JobInfo.Title != "Junior Clerk" {
		t.Errorf("title = %q; chunk 0 must stay first in merge order under fan-out", *out.Result.JobInfo.Title)
	}
}
