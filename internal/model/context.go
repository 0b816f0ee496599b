package model

import "context"

// Principal is the resolved caller of an authenticated request.
type Principal struct {
	User    User
	Session Session
}

// ContextManager attaches the resolved principal to a request context and
// reads it back in downstream handlers.
type ContextManager interface {
	SetPrincipal(ctx context.Context, principal Principal) context.Context
	GetPrincipal(ctx context.Context) (Principal, bool)
}
