package repository

import (
	"context"

	"deliwer/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrAffiliateNotFound is returned when an affiliate is not found.
	ErrAffiliateNotFound = errors.New("affiliate not found")
	// ErrDuplicateAffiliate is returned when the email is already registered.
	ErrDuplicateAffiliate = errors.New("affiliate already exists")
)

// AffiliateRepository defines partner persistence.
type AffiliateRepository interface {
	// Create inserts the affiliate unless the email is taken. The check and
	// the insert are a single atomic step.
	Create(ctx context.Context, affiliate *entity.Affiliate) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Affiliate, error)

	FindByEmail(ctx context.Context, email string) (*entity.Affiliate, error)

	// FindAll returns affiliates oldest first, optionally filtered by country.
	FindAll(ctx context.Context, country string) ([]*entity.Affiliate, error)

	UpdateNFTRewards(ctx context.Context, id uuid.UUID, rewards entity.NFTRewards) (*entity.Affiliate, error)
}
