// internal/llm/provider.go
package llm

import "context"

// Provider is the chat-completion collaborator: ordered messages in,
// generated text out. Implementations fail transiently; callers decide
// how to recover.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	Name() string
}
