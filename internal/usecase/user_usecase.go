package usecase

import (
	"context"

	"deliwer/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterUserInput carries a hero signup.
type RegisterUserInput struct {
	Username string
	Email    string
	Country  string
	City     string
	HeroType string
}

// UserUsecase defines the interface for climate hero accounts
type UserUsecase interface {
	// Register creates a hero with level 1 and no points
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// GetUser retrieves a hero by id
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// SetPoints overwrites the hero points
	SetPoints(ctx context.Context, userID uuid.UUID, points int) (*entity.User, error)

	// SetLevel overwrites the hero level
	SetLevel(ctx context.Context, userID uuid.UUID, level int) (*entity.User, error)

	// AddAchievement appends an achievement unless the hero already has it
	AddAchievement(ctx context.Context, userID uuid.UUID, achievement string) (*entity.User, error)
}
