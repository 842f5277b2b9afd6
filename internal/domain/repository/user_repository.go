// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"deliwer/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the username or email is taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines hero persistence. Users are never deleted.
type UserRepository interface {
	// Create persists a new user; email and username must be unique.
	Create(ctx context.Context, user *entity.User) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail matches the lower-cased email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// SetPoints overwrites hero points.
	SetPoints(ctx context.Context, id uuid.UUID, points int) (*entity.User, error)

	// AddPoints adds delta to hero points in one statement.
	AddPoints(ctx context.Context, id uuid.UUID, delta int) (*entity.User, error)

	SetLevel(ctx context.Context, id uuid.UUID, level int) (*entity.User, error)

	// AddAchievement appends to the ordered achievement list.
	AddAchievement(ctx context.Context, id uuid.UUID, achievement string) (*entity.User, error)

	// Count returns the number of users, optionally limited to a country.
	Count(ctx context.Context, country string) (int64, error)

	// CountCountries returns the number of distinct non-empty user countries.
	CountCountries(ctx context.Context) (int64, error)

	// AverageStreak averages climate contribution streaks; 0 without users.
	AverageStreak(ctx context.Context) (float64, error)
}
