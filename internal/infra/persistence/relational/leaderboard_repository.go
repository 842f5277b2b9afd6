package relational

import (
	"context"
	"time"

	"deliwer/internal/domain/constants"
	"deliwer/internal/domain/entity"
	"deliwer/internal/domain/repository"
	"deliwer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const leaderboardTable = "leaderboard_entries"

type leaderboardRepository struct {
	db *gorm.DB
}

// NewLeaderboardRepository is the constructor for leaderboardRepository.
func NewLeaderboardRepository(db *gorm.DB) repository.LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

// ensureEntry inserts a default row unless the user already has one.
func ensureEntry(tx *gorm.DB, userID uuid.UUID, familyName string) error {
	ts := time.Now().UTC()
	entryM := &model.LeaderboardEntryModel{
		ID:         newID(),
		UserID:     userID,
		FamilyName: familyName,
		Level:      constants.DefaultHeroLevel,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}

	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(entryM).Error; err != nil {
		return errors.Wrap(err, "failed to ensure leaderboard entry")
	}

	return nil
}

func (repo *leaderboardRepository) Upsert(ctx context.Context, userID uuid.UUID, patch entity.LeaderboardPatch) (*entity.LeaderboardEntry, error) {
	var entry *entity.LeaderboardEntry
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureEntry(tx, userID, ""); err != nil {
			return err
		}

		updates := patchColumns(patch)
		updates["updated_at"] = time.Now().UTC()
		if err := tx.Model(&model.LeaderboardEntryModel{}).
			Where("user_id = ?", userID).
			Updates(updates).Error; err != nil {
			return errors.Wrap(err, "failed to update leaderboard entry")
		}

		found, err := findEntry(tx, userID)
		entry = found

		return err
	})

	return entry, err
}

func (repo *leaderboardRepository) Increment(ctx context.Context, userID uuid.UUID, delta entity.LeaderboardDelta) (*entity.LeaderboardEntry, error) {
	var entry *entity.LeaderboardEntry
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureEntry(tx, userID, delta.FamilyName); err != nil {
			return err
		}

		if err := tx.Model(&model.LeaderboardEntryModel{}).
			Where("user_id = ?", userID).
			Updates(map[string]any{
				"points":            gorm.Expr("points + ?", delta.Points),
				"bottles_prevented": gorm.Expr("bottles_prevented + ?", delta.BottlesPrevented),
				"co2_saved":         gorm.Expr("co2_saved + ?", delta.CO2Saved),
				"referrals":         gorm.Expr("referrals + ?", delta.Referrals),
				"updated_at":        time.Now().UTC(),
			}).Error; err != nil {
			return errors.Wrap(err, "failed to increment leaderboard entry")
		}

		found, err := findEntry(tx, userID)
		entry = found

		return err
	})

	return entry, err
}

func (repo *leaderboardRepository) List(ctx context.Context, limit int, country string) ([]*entity.LeaderboardEntry, error) {
	var entryModels []*model.LeaderboardEntryModel
	query := scoped(repo.db.WithContext(ctx).Model(&model.LeaderboardEntryModel{}), country).
		Order(leaderboardTable + ".points DESC").
		Order(leaderboardTable + ".created_at ASC").
		Order(leaderboardTable + ".id ASC").
		Limit(limit)

	if err := query.Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list leaderboard")
	}

	entries := make([]*entity.LeaderboardEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toLeaderboardDomain(entryM))
	}

	return entries, nil
}

func (repo *leaderboardRepository) Totals(ctx context.Context, country string) (entity.LeaderboardTotals, error) {
	var totals entity.LeaderboardTotals
	err := scoped(repo.db.WithContext(ctx).Model(&model.LeaderboardEntryModel{}), country).
		Select("COALESCE(SUM(" + leaderboardTable + ".bottles_prevented), 0), " +
			"COALESCE(SUM(" + leaderboardTable + ".co2_saved), 0)").
		Row().
		Scan(&totals.Bottles, &totals.CO2)
	if err != nil {
		return entity.LeaderboardTotals{}, errors.Wrap(err, "failed to sum leaderboard")
	}

	return totals, nil
}

// scoped joins users when a country filter is present.
func scoped(query *gorm.DB, country string) *gorm.DB {
	if country == "" {
		return query
	}

	return query.
		Joins("JOIN users ON users.id = " + leaderboardTable + ".user_id").
		Where("LOWER(users.country) = LOWER(?)", country)
}

func findEntry(tx *gorm.DB, userID uuid.UUID) (*entity.LeaderboardEntry, error) {
	var entryM model.LeaderboardEntryModel
	if err := tx.Where("user_id = ?", userID).First(&entryM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load leaderboard entry")
	}

	return toLeaderboardDomain(&entryM), nil
}

func patchColumns(patch entity.LeaderboardPatch) map[string]any {
	updates := make(map[string]any)
	if patch.FamilyName != nil {
		updates["family_name"] = *patch.FamilyName
	}
	if patch.Points != nil {
		updates["points"] = *patch.Points
	}
	if patch.Level != nil {
		updates["level"] = *patch.Level
	}
	if patch.Referrals != nil {
		updates["referrals"] = *patch.Referrals
	}
	if patch.BottlesPrevented != nil {
		updates["bottles_prevented"] = *patch.BottlesPrevented
	}
	if patch.CO2Saved != nil {
		updates["co2_saved"] = *patch.CO2Saved
	}

	return updates
}

func toLeaderboardDomain(data *model.LeaderboardEntryModel) *entity.LeaderboardEntry {
	return &entity.LeaderboardEntry{
		ID:               data.ID,
		UserID:           data.UserID,
		FamilyName:       data.FamilyName,
		Points:           data.Points,
		Level:            data.Level,
		Referrals:        data.Referrals,
		BottlesPrevented: data.BottlesPrevented,
		CO2Saved:         data.CO2Saved,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
