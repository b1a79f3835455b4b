package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"gmumarket/internal/domain/entity"
	"gmumarket/internal/domain/repository"
	"gmumarket/pkg/errors"
)

type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	validate    *validator.Validate
}

func NewAuthUseCase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		validate:    validator.New(),
	}
}

type RegisterInput struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	FullName string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, errors.BadRequest("invalid registration data", err)
	}

	return uc.userRepo.Register(ctx, repository.RegisterPayload{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		FullName: input.FullName,
	})
}

func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*entity.TokenPair, error) {
	if username == "" || password == "" {
		return nil, errors.BadRequest("username and password are required", nil)
	}

	return uc.userRepo.Login(ctx, username, password)
}

func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.userRepo.Logout(ctx)
}

func (uc *AuthUseCase) IsAuthenticated(ctx context.Context) bool {
	return uc.sessionRepo.IsAuthenticated(ctx)
}

func (uc *AuthUseCase) Profile(ctx context.Context) (*entity.User, error) {
	return uc.userRepo.GetProfile(ctx)
}

func (uc *AuthUseCase) UpdateProfile(ctx context.Context, patch repository.ProfileUpdate) (*entity.User, error) {
	return uc.userRepo.UpdateProfile(ctx, patch)
}

func (uc *AuthUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}
