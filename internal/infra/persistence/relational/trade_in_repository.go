package relational

import (
	"context"
	"time"

	"deliwer/internal/domain/entity"
	domainerrors "deliwer/internal/domain/errors"
	"deliwer/internal/domain/repository"
	"deliwer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type tradeInRepository struct {
	db *gorm.DB
}

// NewTradeInRepository is the constructor for tradeInRepository.
func NewTradeInRepository(db *gorm.DB) repository.TradeInRepository {
	return &tradeInRepository{db: db}
}

func (repo *tradeInRepository) Create(ctx context.Context, tradeIn *entity.TradeIn) error {
	if tradeIn.ID == uuid.Nil {
		tradeIn.ID = newID()
	}
	tradeInM := fromTradeInDomain(tradeIn)

	if err := repo.db.WithContext(ctx).Create(tradeInM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrConflict, "failed to create trade-in")
	}

	tradeIn.CreatedAt = tradeInM.CreatedAt
	tradeIn.UpdatedAt = tradeInM.UpdatedAt

	return nil
}

func (repo *tradeInRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TradeIn, error) {
	var tradeInM model.TradeInModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&tradeInM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTradeInNotFound
		}

		return nil, errors.Wrap(err, "failed to find trade-in by ID")
	}

	return toTradeInDomain(&tradeInM), nil
}

// UpdateStatus is a compare-and-set on the status column.
func (repo *tradeInRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.TradeInStatus) (*entity.TradeIn, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.TradeInModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update trade-in status")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindByID(ctx, id); err != nil {
			return nil, err
		}

		return nil, repository.ErrTradeInStatusChanged
	}

	return repo.FindByID(ctx, id)
}

func toTradeInDomain(data *model.TradeInModel) *entity.TradeIn {
	return &entity.TradeIn{
		ID:              data.ID,
		UserID:          data.UserID,
		DeviceModel:     data.DeviceModel,
		DeviceCondition: data.DeviceCondition,
		CampaignType:    data.CampaignType,
		TradeValue:      data.TradeValue,
		ImpactPoints:    data.ImpactPoints,
		Status:          entity.TradeInStatus(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromTradeInDomain(data *entity.TradeIn) *model.TradeInModel {
	return &model.TradeInModel{
		ID:              data.ID,
		UserID:          data.UserID,
		DeviceModel:     data.DeviceModel,
		DeviceCondition: data.DeviceCondition,
		CampaignType:    data.CampaignType,
		TradeValue:      data.TradeValue,
		ImpactPoints:    data.ImpactPoints,
		Status:          string(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
