package ports

import "context"

// IdentityProvider resolves a session token issued by the auth system to
// the id of the authenticated user.
type IdentityProvider interface {
	UserID(ctx context.Context, token string) (uint64, error)
}
