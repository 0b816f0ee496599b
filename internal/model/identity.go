package model

import "context"

// IdentityProvider is the external service that owns password verification
// and issues opaque bearer tokens. It is never reimplemented locally; tokens
// are passed through verbatim.
type IdentityProvider interface {
	// SignUp creates a new identity and returns its stable external id.
	SignUp(ctx context.Context, email, password string) (externalID string, err error)
	// SignIn authenticates credentials and returns the external id together
	// with an opaque access token.
	SignIn(ctx context.Context, email, password string) (externalID string, accessToken string, err error)
	// Verify resolves a bearer token to the external id it was issued for.
	Verify(ctx context.Context, accessToken string) (externalID string, err error)
}
