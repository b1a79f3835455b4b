package repository

import (
	"context"

	"gmumarket/internal/domain/entity"
)

// RegisterPayload creates a new account. Registration is distinct from
// login and returns no tokens.
type RegisterPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// ProfileUpdate is a partial update of the caller's own profile. Nil
// fields are left untouched server-side.
type ProfileUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Location *string `json:"location,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

type UserRepository interface {
	Register(ctx context.Context, payload RegisterPayload) (*entity.User, error)
	// Login exchanges credentials for a token pair and persists it in the
	// session store as a side effect.
	Login(ctx context.Context, username, password string) (*entity.TokenPair, error)
	// Logout clears the persisted tokens. It is local-only and always
	// succeeds without contacting the server.
	Logout(ctx context.Context) error
	GetProfile(ctx context.Context) (*entity.User, error)
	UpdateProfile(ctx context.Context, patch ProfileUpdate) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
