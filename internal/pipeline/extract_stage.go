package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jobsarthi/notification-parser/internal/jobextract"
	"github.com/jobsarthi/notification-parser/internal/llm"
)

// ExtractStage turns one chunk of normalized text into a candidate result.
// It owns prompt construction, the completion call, and syntactic decoding;
// semantic validation of the candidate belongs to jobextract.Validate.
type ExtractStage struct {
	client llm.CompletionClient
	cfg    Config
	log    *slog.Logger
}

func NewExtractStage(client llm.CompletionClient, cfg Config, logger *slog.Logger) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{client: client, cfg: cfg, log: logger}
}

// Extract runs one chunk through the completion service. The returned error
// is always a *ParseError: transport/timeout failures are transient,
// truncated or undecodable output is malformed. Token usage is reported
// even on failure so the run's accounting stays honest.
func (s *ExtractStage) Extract(ctx context.Context, chunk string, chunkIndex, totalChunks int) (*jobextract.Result, int, error) {
	rid := uuid.New().String()
	start := time.Now()

	s.log.Info("parse.extract.start",
		"req_id", rid,
		"chunk_index", chunkIndex,
		"total_chunks", totalChunks,
		"chunk_len", len(chunk),
	)

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	resp, err := s.client.Complete(ctx, llm.CompletionRequest{
		System:          extractionSystem,
		Prompt:          buildExtractionPrompt(chunk, chunkIndex, totalChunks),
		MaxOutputTokens: s.cfg.MaxOutputTokens,
		Temperature:     s.cfg.Temperature,
	})
	if err != nil {
		s.log.Error("parse.extract.completion_error",
			"req_id", rid, "chunk_index", chunkIndex, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, 0, transientErr("completion call failed", err)
	}
	if resp.FinishReason == "length" {
		s.log.Error("parse.extract.truncated",
			"req_id", rid, "chunk_index", chunkIndex,
			"tokens_used", resp.TokensUsed,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, resp.TokensUsed, malformedErr("response truncated at token cap", nil)
	}

	content := []byte(llm.StripCodeFences(resp.Content))

	// Strict structural gate: the schema rejects unknown keys at every
	// level, so hallucinated or prompt-injected fields die here.
	if err := llm.ValidateJSONAgainstSchema(jobextract.JSONSchema(), content); err != nil {
		s.log.Error("parse.extract.schema_invalid",
			"req_id", rid, "chunk_index", chunkIndex, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, resp.TokensUsed, malformedErr("output does not match extraction schema", err)
	}

	var out jobextract.Result
	if err := json.Unmarshal(content, &out); err != nil {
		s.log.Error("parse.extract.unmarshal_failed",
			"req_id", rid, "chunk_index", chunkIndex, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, resp.TokensUsed, malformedErr("decode extraction result", err)
	}

	s.log.Info("parse.extract.ok",
		"req_id", rid,
		"chunk_index", chunkIndex,
		"tokens_used", resp.TokensUsed,
		"multiple_jobs", out.MultipleJobs,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &out, resp.TokensUsed, nil
}
