package memory

import (
	"context"
	"strings"

	"deliwer/internal/domain/entity"
	"deliwer/internal/domain/repository"

	"github.com/google/uuid"
)

type affiliateRepository struct {
	store *Store
}

// NewAffiliateRepository creates an affiliate repository over store.
func NewAffiliateRepository(store *Store) repository.AffiliateRepository {
	return &affiliateRepository{store: store}
}

// Create checks and inserts under one write lock.
func (r *affiliateRepository) Create(_ context.Context, affiliate *entity.Affiliate) error {
	return r.store.write(func(t *tables) error {
		for _, a := range t.affiliates {
			if strings.EqualFold(a.value.Email, affiliate.Email) {
				return repository.ErrDuplicateAffiliate
			}
		}

		ensureID(&affiliate.ID)
		if affiliate.CreatedAt.IsZero() {
			affiliate.CreatedAt = now()
		}
		t.affiliates[affiliate.ID] = row[*entity.Affiliate]{seq: t.nextSeq(), value: copyPtr(affiliate)}

		return nil
	})
}

func (r *affiliateRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Affiliate, error) {
	var found *entity.Affiliate
	err := r.store.read(func(t *tables) error {
		a, ok := t.affiliates[id]
		if !ok {
			return repository.ErrAffiliateNotFound
		}
		found = copyPtr(a.value)

		return nil
	})

	return found, err
}

func (r *affiliateRepository) FindByEmail(_ context.Context, email string) (*entity.Affiliate, error) {
	var found *entity.Affiliate
	err := r.store.read(func(t *tables) error {
		for _, a := range t.affiliates {
			if strings.EqualFold(a.value.Email, email) {
				found = copyPtr(a.value)

				return nil
			}
		}

		return repository.ErrAffiliateNotFound
	})

	return found, err
}

func (r *affiliateRepository) FindAll(_ context.Context, country string) ([]*entity.Affiliate, error) {
	var affiliates []*entity.Affiliate
	err := r.store.read(func(t *tables) error {
		affiliates = make([]*entity.Affiliate, 0, len(t.affiliates))
		for _, a := range t.affiliates.sorted() {
			if country != "" && !strings.EqualFold(a.value.Country, country) {
				continue
			}
			affiliates = append(affiliates, copyPtr(a.value))
		}

		return nil
	})

	return affiliates, err
}

func (r *affiliateRepository) UpdateNFTRewards(_ context.Context, id uuid.UUID, rewards entity.NFTRewards) (*entity.Affiliate, error) {
	var updated *entity.Affiliate
	err := r.store.write(func(t *tables) error {
		a, ok := t.affiliates[id]
		if !ok {
			return repository.ErrAffiliateNotFound
		}
		a.value.NFTRewards = rewards
		updated = copyPtr(a.value)

		return nil
	})

	return updated, err
}
