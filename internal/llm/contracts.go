// Package llm defines the contract the parsing pipeline expects from a
// text-completion service, plus helpers for keeping model output inside a
// strict JSON-Schema.
package llm

import "context"

// CompletionRequest is one call to the completion service.
type CompletionRequest struct {
	System          string
	Prompt          string
	MaxOutputTokens int
	Temperature     float32
}

// CompletionResponse is the service's answer. FinishReason "length" means
// the output was truncated at the token cap and must not be trusted.
type CompletionResponse struct {
	Content      string
	TokensUsed   int
	FinishReason string // "stop" | "length"
}

// CompletionClient is the interface the pipeline depends on. Transport and
// non-2xx failures are returned as errors; callers classify them.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
}
