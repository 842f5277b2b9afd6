package relational

import (
	"context"

	"deliwer/internal/domain/entity"
	domainerrors "deliwer/internal/domain/errors"
	"deliwer/internal/domain/repository"
	"deliwer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.AquacafeOrder) error {
	if order.ID == uuid.Nil {
		order.ID = newID()
	}
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrConflict, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AquacafeOrder, error) {
	var orderM model.AquacafeOrderModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.AquacafeOrder, error) {
	var orderModels []*model.AquacafeOrderModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.AquacafeOrder, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

func toOrderDomain(data *model.AquacafeOrderModel) *entity.AquacafeOrder {
	return &entity.AquacafeOrder{
		ID:              data.ID,
		UserID:          data.UserID,
		CustomerName:    data.CustomerName,
		CustomerPhone:   data.CustomerPhone,
		CustomerAddress: data.CustomerAddress,
		TradeInID:       data.TradeInID,
		OrderTotal:      data.OrderTotal,
		Status:          data.Status,
		InstantRewards: entity.InstantRewards{
			Points:  data.RewardPoints,
			Badges:  nonNil(data.RewardBadges),
			Bonuses: nonNil(data.RewardBonuses),
		},
		CreatedAt: data.CreatedAt,
	}
}

func fromOrderDomain(data *entity.AquacafeOrder) *model.AquacafeOrderModel {
	return &model.AquacafeOrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		CustomerName:    data.CustomerName,
		CustomerPhone:   data.CustomerPhone,
		CustomerAddress: data.CustomerAddress,
		TradeInID:       data.TradeInID,
		OrderTotal:      data.OrderTotal,
		Status:          data.Status,
		RewardPoints:    data.InstantRewards.Points,
		RewardBadges:    datatypes.NewJSONSlice(nonNil(data.InstantRewards.Badges)),
		RewardBonuses:   datatypes.NewJSONSlice(nonNil(data.InstantRewards.Bonuses)),
		CreatedAt:       data.CreatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
