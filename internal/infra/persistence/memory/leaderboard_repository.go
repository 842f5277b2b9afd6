package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"deliwer/internal/domain/constants"
	"deliwer/internal/domain/entity"
	"deliwer/internal/domain/repository"

	"github.com/google/uuid"
)

type leaderboardRepository struct {
	store *Store
}

// NewLeaderboardRepository creates a leaderboard repository over store.
func NewLeaderboardRepository(store *Store) repository.LeaderboardRepository {
	return &leaderboardRepository{store: store}
}

// entryFor returns the user's entry, inserting a default one when missing.
func entryFor(t *tables, userID uuid.UUID) *entity.LeaderboardEntry {
	for _, e := range t.leaderboard {
		if e.value.UserID == userID {
			return e.value
		}
	}

	ts := now()
	entry := &entity.LeaderboardEntry{
		ID:        newID(),
		UserID:    userID,
		Level:     constants.DefaultHeroLevel,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	t.leaderboard[entry.ID] = row[*entity.LeaderboardEntry]{seq: t.nextSeq(), value: entry}

	return entry
}

func (r *leaderboardRepository) Upsert(_ context.Context, userID uuid.UUID, patch entity.LeaderboardPatch) (*entity.LeaderboardEntry, error) {
	var result *entity.LeaderboardEntry
	err := r.store.write(func(t *tables) error {
		entry := entryFor(t, userID)
		patch.Apply(entry)
		entry.UpdatedAt = now()
		result = copyPtr(entry)

		return nil
	})

	return result, err
}

func (r *leaderboardRepository) Increment(_ context.Context, userID uuid.UUID, delta entity.LeaderboardDelta) (*entity.LeaderboardEntry, error) {
	var result *entity.LeaderboardEntry
	err := r.store.write(func(t *tables) error {
		created := !hasEntry(t, userID)
		entry := entryFor(t, userID)
		if created {
			entry.FamilyName = delta.FamilyName
		}
		entry.Points += delta.Points
		entry.BottlesPrevented += delta.BottlesPrevented
		entry.CO2Saved += delta.CO2Saved
		entry.Referrals += delta.Referrals
		entry.UpdatedAt = now()
		result = copyPtr(entry)

		return nil
	})

	return result, err
}

func hasEntry(t *tables, userID uuid.UUID) bool {
	for _, e := range t.leaderboard {
		if e.value.UserID == userID {
			return true
		}
	}

	return false
}

func (r *leaderboardRepository) List(_ context.Context, limit int, country string) ([]*entity.LeaderboardEntry, error) {
	var entries []*entity.LeaderboardEntry
	err := r.store.read(func(t *tables) error {
		rows := inScope(t, country)
		slices.SortStableFunc(rows, func(a, b row[*entity.LeaderboardEntry]) int {
			return cmp.Compare(b.value.Points, a.value.Points)
		})
		if limit >= 0 && len(rows) > limit {
			rows = rows[:limit]
		}

		entries = make([]*entity.LeaderboardEntry, 0, len(rows))
		for _, e := range rows {
			entries = append(entries, copyPtr(e.value))
		}

		return nil
	})

	return entries, err
}

func (r *leaderboardRepository) Totals(_ context.Context, country string) (entity.LeaderboardTotals, error) {
	var totals entity.LeaderboardTotals
	err := r.store.read(func(t *tables) error {
		for _, e := range inScope(t, country) {
			totals.Bottles += int64(e.value.BottlesPrevented)
			totals.CO2 += int64(e.value.CO2Saved)
		}

		return nil
	})

	return totals, err
}

// inScope returns entries in insertion order, filtered by their user's country.
func inScope(t *tables, country string) []row[*entity.LeaderboardEntry] {
	rows := t.leaderboard.sorted()
	if country == "" {
		return rows
	}

	return slices.DeleteFunc(rows, func(e row[*entity.LeaderboardEntry]) bool {
		u, ok := t.users[e.value.UserID]

		return !ok || !strings.EqualFold(u.value.Country, country)
	})
}
