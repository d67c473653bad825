package domain

import "context"

// Identity is the verified profile returned by an external identity provider.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// IdentityProvider exchanges an opaque provider token for a verified identity.
// A token the provider rejects yields ErrUnauthorized.
type IdentityProvider interface {
	Exchange(ctx context.Context, token string) (*Identity, error)
}

// QuestionGenerator produces practice question text from a prompt using a
// generative model.
type QuestionGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
