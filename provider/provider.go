package provider

import "context"

// Provider is a generative chat-completion backend. Implementations must
// treat non-success HTTP, timeouts and empty content as errors, never as a
// successful empty answer.
type Provider interface {
	Completion(ctx context.Context, system, user string) (string, error)
}
