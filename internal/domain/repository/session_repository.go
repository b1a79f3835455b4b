package repository

import (
	"context"
)

// SessionRepository is a single token slot in client-persistent storage.
// Last write wins if multiple logins occur. Token presence is the sole
// authentication signal; nothing inspects expiry or signature.
type SessionRepository interface {
	Set(ctx context.Context, access, refresh string) error
	// Token returns the raw access token, or "" when no session exists.
	Token(ctx context.Context) (string, error)
	IsAuthenticated(ctx context.Context) bool
	Clear(ctx context.Context) error
}
