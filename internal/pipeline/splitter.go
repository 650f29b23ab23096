package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jobsarthi/notification-parser/internal/jobextract"
	"github.com/jobsarthi/notification-parser/internal/llm"
	"github.com/jobsarthi/notification-parser/internal/textprep"
)

// splitPrefixChars bounds the text sent to the multi-post pass. Post tables
// sit near the top of a notification; sending the whole document again
// would double the run's token bill for no gain.
const splitPrefixChars = 12000

// Splitter issues the secondary extraction pass that enumerates individual
// posts of a multi-post notification.
type Splitter struct {
	client llm.CompletionClient
	cfg    Config
	log    *slog.Logger
}

func NewSplitter(client llm.CompletionClient, cfg Config, logger *slog.Logger) *Splitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Splitter{client: client, cfg: cfg, log: logger}
}

// Split asks for the per-post breakdown of normalizedText. Failure is
// non-fatal for the parent run: callers log the error and store the job
// without a breakdown. Token usage is returned even on failure.
func (s *Splitter) Split(ctx context.Context, normalizedText string) ([]jobextract.PostRecord, int, error) {
	rid := uuid.New().String()
	start := time.Now()

	text := textprep.Truncate(normalizedText, splitPrefixChars)

	s.log.Info("parse.split.start", "req_id", rid, "text_len", len(text))

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	resp, err := s.client.Complete(ctx, llm.CompletionRequest{
		System:          splitSystem,
		Prompt:          buildSplitPrompt(text),
		MaxOutputTokens: s.cfg.MaxOutputTokens,
		Temperature:     s.cfg.Temperature,
	})
	if err != nil {
		s.log.Warn("parse.split.completion_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, 0, transientErr("split completion call failed", err)
	}

	content := []byte(llm.StripCodeFences(resp.Content))
	if err := llm.ValidateJSONAgainstSchema(jobextract.PostsJSONSchema(), content); err != nil {
		s.log.Warn("parse.split.schema_invalid",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, resp.TokensUsed, malformedErr("split output does not match schema", err)
	}

	var out struct {
		Posts []jobextract.PostRecord `json:"posts"`
	}
	if err := json.Unmarshal(content, &out); err != nil {
		s.log.Warn("parse.split.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, resp.TokensUsed, malformedErr("decode split result", err)
	}

	s.log.Info("parse.split.ok",
		"req_id", rid,
		"posts", len(out.Posts),
		"tokens_used", resp.TokensUsed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out.Posts, resp.TokensUsed, nil
}
