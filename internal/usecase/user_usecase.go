package usecase

import (
	"context"

	"github.com/google/uuid"

	"bookshelf/internal/domain/entity"
)

// UserUsecase handles registration and account lookup.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}

// RegisterInput defines the data required for a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}
