package repository

import (
	"context"
	"net/http"

	"gmumarket/internal/domain/entity"
	"gmumarket/internal/domain/repository"
	"gmumarket/internal/infrastructure/rest"
)

type restUserRepository struct {
	client   *rest.Client
	sessions repository.SessionRepository
}

func NewRESTUserRepository(client *rest.Client, sessions repository.SessionRepository) repository.UserRepository {
	return &restUserRepository{
		client:   client,
		sessions: sessions,
	}
}

func (r *restUserRepository) Register(ctx context.Context, payload repository.RegisterPayload) (*entity.User, error) {
	var user entity.User
	if err := r.client.Do(ctx, http.MethodPost, "/users/register/", payload, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *restUserRepository) Login(ctx context.Context, username, password string) (*entity.TokenPair, error) {
	var pair entity.TokenPair
	if err := r.client.Do(ctx, http.MethodPost, "/token/", loginPayload{Username: username, Password: password}, &pair); err != nil {
		return nil, err
	}

	if err := r.sessions.Set(ctx, pair.Access, pair.Refresh); err != nil {
		return nil, err
	}

	return &pair, nil
}

// Logout only clears the persisted tokens. There is no server-side
// session to invalidate.
func (r *restUserRepository) Logout(ctx context.Context) error {
	return r.sessions.Clear(ctx)
}

func (r *restUserRepository) GetProfile(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := r.client.Do(ctx, http.MethodGet, "/users/profile/", nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *restUserRepository) UpdateProfile(ctx context.Context, patch repository.ProfileUpdate) (*entity.User, error) {
	var user entity.User
	if err := r.client.Do(ctx, http.MethodPatch, "/users/profile/", patch, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *restUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := r.client.Do(ctx, http.MethodGet, "/users/"+id+"/", nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
