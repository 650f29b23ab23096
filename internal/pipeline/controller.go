package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jobsarthi/notification-parser/constants"
	"github.com/jobsarthi/notification-parser/internal/jobextract"
	"github.com/jobsarthi/notification-parser/internal/llm"
	"github.com/jobsarthi/notification-parser/internal/textprep"
)

// Config holds thresholds and behavior knobs for a parsing run.
type Config struct {
	MaxRetryAttempts  int           // extraction attempts per run (default 2)
	MaxTokensPerChunk int           // input token budget per chunk (default 8000)
	MaxOutputTokens   int           // completion output cap (default 4096)
	OverlapChars      int           // chunk overlap (default 500)
	Model             string        // recorded on the run for audit
	Temperature       float32       // completion temperature (default 0.1)
	ChunkConcurrency  int           // bounded chunk fan-out (default 1, sequential)
	RequestTimeout    time.Duration // per completion call (default 60s)
	MinTextLength     int           // below this the run fails without a model call (default 100)
	BackoffBase       time.Duration // attempt n waits n*BackoffBase (default 1s)
}

func (c Config) withDefaults() Config {
	if c.MaxRetryAttempts <= 0 {
		c.MaxRetryAttempts = 2
	}
	if c.MaxTokensPerChunk <= 0 {
		c.MaxTokensPerChunk = 8000
	}
	if c.MaxOutputTokens <= 0 {
		c.MaxOutputTokens = 4096
	}
	if c.OverlapChars <= 0 {
		c.OverlapChars = 500
	}
	if c.Temperature <= 0 {
		c.Temperature = 0.1
	}
	if c.ChunkConcurrency <= 0 {
		c.ChunkConcurrency = 1
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 60 * time.Second
	}
	if c.MinTextLength <= 0 {
		c.MinTextLength = 100
	}
	if c.BackoffBase <= 0 {
		c.BackoffBase = time.Second
	}
	return c
}

// Input is one notification to parse, with context from the ingestion side.
type Input struct {
	RawText  string
	JobID    string
	SourceID string
	Category string
}

// RunRecord is the audit row written once per run regardless of outcome.
type RunRecord struct {
	RunID            string
	JobID            string
	SourceID         string
	Category         string
	Status           constants.RunStatus
	ErrorKind        string
	ErrorMessage     string
	ValidationErrors []string
	DurationMs       int64
	TokensUsed       int
	Attempts         int
	Chunks           int
	IsCorrigendum    bool
	NeedsReview      bool
	Model            string
	Summary          string
}

// Outcome is the terminal result of a run. Result is validated on SUCCESS,
// best-effort (invalid) on MANUAL_REVIEW for human correction, nil on
// FAILED.
type Outcome struct {
	Status           constants.RunStatus
	Result           *jobextract.Result
	Posts            []jobextract.PostRecord
	ValidationErrors []string
	Run              RunRecord
}

// AuditSink receives the terminal outcome of every run. Persistence lives
// behind this; a nil sink is allowed for callers that only want the value.
type AuditSink interface {
	Record(ctx context.Context, out Outcome) error
}

// state of the run machine. Transitions are driven solely by the previous
// state, the last error, and the attempt counter, so the control flow is
// testable without touching I/O.
type state int

const (
	stateCleaning state = iota
	stateChunking
	stateExtracting
	stateMerging
	stateValidating
	stateSplittingPosts
	stateDone
)

// Controller owns the retry/fallback state machine over the pipeline
// stages. One Controller serves many concurrent runs; it holds no per-run
// state.
type Controller struct {
	cfg      Config
	stage    *ExtractStage
	splitter *Splitter
	sink     AuditSink
	log      *slog.Logger
}

func NewController(client llm.CompletionClient, cfg Config, sink AuditSink, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()
	return &Controller{
		cfg:      cfg,
		stage:    NewExtractStage(client, cfg, logger),
		splitter: NewSplitter(client, cfg, logger),
		sink:     sink,
		log:      logger,
	}
}

// Run executes the full state machine for one notification:
//
//	Cleaning -> Chunking -> Extracting(attempt) -> Merging -> Validating
//	  -> (SplittingPosts) -> SUCCESS | MANUAL_REVIEW | FAILED
//
// Extraction aborts wholesale on any chunk error; failed attempts are never
// partially merged. Validation failures re-extract from scratch. After
// MaxRetryAttempts the run degrades to MANUAL_REVIEW carrying the invalid
// result, never silently dropping the notification.
func (c *Controller) Run(ctx context.Context, in Input) Outcome {
	runID := uuid.New().String()
	start := time.Now()
	log := c.log.With("run_id", runID, "job_id", in.JobID, "source_id", in.SourceID)

	var (
		cleaned    string
		chunks     []string
		results    []*jobextract.Result
		merged     *jobextract.Result
		posts      []jobextract.PostRecord
		violations []string
		lastErr    error
		tokens     int
		attempt    = 1
		corr       bool
	)

	rec := RunRecord{
		RunID:    runID,
		JobID:    in.JobID,
		SourceID: in.SourceID,
		Category: in.Category,
		Model:    c.cfg.Model,
	}

	st := stateCleaning
	var out Outcome
	for st != stateDone {
		switch st {
		case stateCleaning:
			cleaned = textprep.Normalize(in.RawText)
			if len(cleaned) < c.cfg.MinTextLength {
				lastErr = &ParseError{Kind: KindInputTooShort,
					Message: fmt.Sprintf("normalized text is %d chars, need %d", len(cleaned), c.cfg.MinTextLength)}
				out = c.fail(ctx, &rec, start, lastErr, 0, log)
				st = stateDone
				continue
			}
			corr = textprep.IsCorrigendum(cleaned)
			rec.IsCorrigendum = corr
			st = stateChunking

		case stateChunking:
			chunks = textprep.Chunk(cleaned, c.cfg.MaxTokensPerChunk, c.cfg.OverlapChars)
			rec.Chunks = len(chunks)
			log.Info("parse.run.chunked", "chunks", len(chunks), "text_len", len(cleaned))
			st = stateExtracting

		case stateExtracting:
			rec.Attempts = attempt
			var used int
			results, used, lastErr = c.extractAll(ctx, chunks)
			tokens += used
			if lastErr == nil {
				st = stateMerging
				continue
			}
			kind := KindOf(lastErr)
			log.Warn("parse.run.attempt_failed", "attempt", attempt, "kind", string(kind), "error", lastErr)
			if kind == KindInputTooShort || kind == KindCancelled || attempt >= c.cfg.MaxRetryAttempts {
				out = c.fail(ctx, &rec, start, lastErr, tokens, log)
				st = stateDone
				continue
			}
			if err := c.backoff(ctx, attempt); err != nil {
				out = c.fail(ctx, &rec, start, &ParseError{Kind: KindCancelled, Message: "cancelled during backoff", Cause: err}, tokens, log)
				st = stateDone
				continue
			}
			attempt++

		case stateMerging:
			merged = jobextract.Merge(results)
			st = stateValidating

		case stateValidating:
			violations = jobextract.Validate(merged)
			if len(violations) == 0 {
				st = stateSplittingPosts
				continue
			}
			log.Warn("parse.run.validation_failed", "attempt", attempt, "violations", len(violations))
			if attempt >= c.cfg.MaxRetryAttempts {
				out = c.manualReview(ctx, &rec, start, merged, violations, tokens, log)
				st = stateDone
				continue
			}
			// The model output itself is defective; re-extract from
			// scratch rather than re-validating the same result.
			attempt++
			st = stateExtracting

		case stateSplittingPosts:
			if merged.MultipleJobs {
				var used int
				var err error
				posts, used, err = c.splitter.Split(ctx, cleaned)
				tokens += used
				if err != nil {
					// Best effort: the parent job is still stored.
					log.Warn("parse.run.split_failed", "error", err)
					posts = nil
				}
			}
			out = c.success(ctx, &rec, start, merged, posts, tokens, log)
			st = stateDone
		}
	}
	return out
}

func (c *Controller) success(ctx context.Context, rec *RunRecord, start time.Time, merged *jobextract.Result, posts []jobextract.PostRecord, tokens int, log *slog.Logger) Outcome {
	rec.Status = constants.RunStatusSuccess
	rec.TokensUsed = tokens
	rec.DurationMs = time.Since(start).Milliseconds()
	rec.NeedsReview = needsReview(merged)
	rec.Summary = summarize(merged)

	out := Outcome{Status: rec.Status, Result: merged, Posts: posts, Run: *rec}
	c.record(ctx, out, log)
	log.Info("parse.run.success",
		"tokens_used", tokens,
		"attempts", rec.Attempts,
		"posts", len(posts),
		"needs_review", rec.NeedsReview,
		"duration_ms", rec.DurationMs,
	)
	return out
}

func (c *Controller) manualReview(ctx context.Context, rec *RunRecord, start time.Time, merged *jobextract.Result, violations []string, tokens int, log *slog.Logger) Outcome {
	rec.Status = constants.RunStatusManualReview
	rec.ErrorKind = string(KindBusinessRule)
	rec.ErrorMessage = fmt.Sprintf("%d validation errors after %d attempts", len(violations), rec.Attempts)
	rec.ValidationErrors = violations
	rec.TokensUsed = tokens
	rec.DurationMs = time.Since(start).Milliseconds()
	rec.NeedsReview = true
	rec.Summary = summarize(merged)

	out := Outcome{Status: rec.Status, Result: merged, ValidationErrors: violations, Run: *rec}
	c.record(ctx, out, log)
	log.Warn("parse.run.manual_review",
		"violations", len(violations),
		"attempts", rec.Attempts,
		"tokens_used", tokens,
		"duration_ms", rec.DurationMs,
	)
	return out
}

func (c *Controller) fail(ctx context.Context, rec *RunRecord, start time.Time, cause error, tokens int, log *slog.Logger) Outcome {
	rec.Status = constants.RunStatusFailed
	rec.ErrorKind = string(KindOf(cause))
	rec.ErrorMessage = cause.Error()
	rec.TokensUsed = tokens
	rec.DurationMs = time.Since(start).Milliseconds()
	rec.NeedsReview = true

	out := Outcome{Status: rec.Status, Run: *rec}
	c.record(ctx, out, log)
	log.Error("parse.run.failed",
		"kind", rec.ErrorKind,
		"error", cause,
		"attempts", rec.Attempts,
		"tokens_used", tokens,
		"duration_ms", rec.DurationMs,
	)
	return out
}

// record writes the audit row. Unconditional: every terminal transition
// produces exactly one record, and a sink failure never changes the
// outcome.
func (c *Controller) record(ctx context.Context, out Outcome, log *slog.Logger) {
	if c.sink == nil {
		return
	}
	if err := c.sink.Record(ctx, out); err != nil {
		log.Error("parse.run.audit_write_failed", "error", err)
	}
}

func (c *Controller) backoff(ctx context.Context, attempt int) error {
	t := time.NewTimer(c.cfg.BackoffBase * time.Duration(attempt))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// needsReview flags stored jobs whose essentials are missing: the record is
// valid, but the mobile side should not present it as confirmed.
func needsReview(r *jobextract.Result) bool {
	return r.JobInfo.Title == nil ||
		r.JobInfo.Department == nil ||
		r.ImportantDates.ApplicationEnd == nil
}

func summarize(r *jobextract.Result) string {
	if r == nil {
		return ""
	}
	title := "(untitled)"
	if r.JobInfo.Title != nil {
		title = *r.JobInfo.Title
	}
	if r.Vacancies.Total != nil {
		return fmt.Sprintf("%s (%d vacancies)", title, *r.Vacancies.Total)
	}
	return title
}
