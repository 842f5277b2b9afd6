package relational

import (
	"context"
	"database/sql"
	"strings"

	"deliwer/internal/domain/entity"
	"deliwer/internal/domain/repository"
	"deliwer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = newID()
	}
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return translateWriteError(err, repository.ErrDuplicateUser, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// updateColumn applies a single column change and reads the row back.
func (repo *userRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) (*entity.User, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		UpdateColumn(column, value)
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "failed to update user %s", column)
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return repo.FindByID(ctx, id)
}

func (repo *userRepository) SetPoints(ctx context.Context, id uuid.UUID, points int) (*entity.User, error) {
	return repo.updateColumn(ctx, id, "hero_points", points)
}

func (repo *userRepository) AddPoints(ctx context.Context, id uuid.UUID, delta int) (*entity.User, error) {
	return repo.updateColumn(ctx, id, "hero_points", gorm.Expr("hero_points + ?", delta))
}

func (repo *userRepository) SetLevel(ctx context.Context, id uuid.UUID, level int) (*entity.User, error) {
	return repo.updateColumn(ctx, id, "hero_level", level)
}

// AddAchievement reads and rewrites the JSON list inside a transaction.
func (repo *userRepository) AddAchievement(ctx context.Context, id uuid.UUID, achievement string) (*entity.User, error) {
	var updated *entity.User
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userM model.UserModel
		if err := tx.Where("id = ?", id).First(&userM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load user achievements")
		}

		userM.Achievements = append(userM.Achievements, achievement)
		if err := tx.Model(&userM).UpdateColumn("achievements", userM.Achievements).Error; err != nil {
			return errors.Wrap(err, "failed to append achievement")
		}
		updated = toUserDomain(&userM)

		return nil
	})

	return updated, err
}

func (repo *userRepository) Count(ctx context.Context, country string) (int64, error) {
	var n int64
	query := repo.db.WithContext(ctx).Model(&model.UserModel{})
	if country != "" {
		query = query.Where("LOWER(country) = LOWER(?)", country)
	}
	if err := query.Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return n, nil
}

func (repo *userRepository) CountCountries(ctx context.Context) (int64, error) {
	var n int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("COUNT(DISTINCT LOWER(country))").
		Where("country <> ''").
		Row().
		Scan(&n); err != nil {
		return 0, errors.Wrap(err, "failed to count user countries")
	}

	return n, nil
}

func (repo *userRepository) AverageStreak(ctx context.Context) (float64, error) {
	var avg sql.NullFloat64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("AVG(climate_streak)").
		Row().
		Scan(&avg); err != nil {
		return 0, errors.Wrap(err, "failed to average streaks")
	}

	return avg.Float64, nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	achievements := []string(data.Achievements)
	if achievements == nil {
		achievements = []string{}
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		Country:      data.Country,
		City:         data.City,
		HeroLevel:    data.HeroLevel,
		HeroPoints:   data.HeroPoints,
		HeroType:     data.HeroType,
		Achievements: achievements,
		ClimateContribution: entity.ClimateContribution{
			CarbonSaved:      data.ClimateContribution.CarbonSaved,
			PlasticPrevented: data.ClimateContribution.PlasticPrevented,
			LunchCredits:     data.ClimateContribution.LunchCredits,
			Streak:           data.ClimateContribution.Streak,
		},
		CreatedAt: data.CreatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	achievements := data.Achievements
	if achievements == nil {
		achievements = []string{}
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        strings.ToLower(data.Email),
		Country:      data.Country,
		City:         data.City,
		HeroLevel:    data.HeroLevel,
		HeroPoints:   data.HeroPoints,
		HeroType:     data.HeroType,
		Achievements: datatypes.NewJSONSlice(achievements),
		ClimateContribution: model.ClimateContributionColumns{
			CarbonSaved:      data.ClimateContribution.CarbonSaved,
			PlasticPrevented: data.ClimateContribution.PlasticPrevented,
			LunchCredits:     data.ClimateContribution.LunchCredits,
			Streak:           data.ClimateContribution.Streak,
		},
		CreatedAt: data.CreatedAt,
	}
}

func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}
