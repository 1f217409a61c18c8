// Package llm defines the contract between pipeline stages and the model provider.
package llm

import "context"

// Stage names tag gateway errors and metrics labels.
const (
	StageSummarize = "summarize"
	StageIdeas     = "project-ideas"
	StageGenerate  = "generate-website"
	StageEdit      = "edit-website"
)

// CompletionRequest describes one blocking round trip to the model provider.
//
// Input, when non-empty, is appended to Prompt after being truncated to
// InputLimit runes. Content beyond the limit is never sent to the model.
// InputLimit <= 0 disables truncation.
type CompletionRequest struct {
	Stage       string
	Prompt      string
	Input       string
	InputLimit  int
	MaxTokens   int
	Temperature float32
	JSONObject  bool
}

// Gateway is the sole component permitted to call the external model
// provider. A failed call is terminal for the enclosing stage; the gateway
// applies no retry.
type Gateway interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
