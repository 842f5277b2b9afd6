package entity

import (
	"time"

	"github.com/google/uuid"
)

// LeaderboardEntry is a family's standing. One entry per user.
type LeaderboardEntry struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	FamilyName       string    `json:"familyName"`
	Points           int       `json:"points"`
	Level            int       `json:"level"`
	Referrals        int       `json:"referrals"`
	BottlesPrevented int       `json:"bottlesPrevented"`
	CO2Saved         int       `json:"co2Saved"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// LeaderboardPatch carries the fields an upsert overwrites. Nil fields are
// left untouched on existing entries and defaulted on new ones.
type LeaderboardPatch struct {
	FamilyName       *string `json:"familyName,omitempty"`
	Points           *int    `json:"points,omitempty"`
	Level            *int    `json:"level,omitempty"`
	Referrals        *int    `json:"referrals,omitempty"`
	BottlesPrevented *int    `json:"bottlesPrevented,omitempty"`
	CO2Saved         *int    `json:"co2Saved,omitempty"`
}

// Apply merges the patch into e.
func (p LeaderboardPatch) Apply(e *LeaderboardEntry) {
	if p.FamilyName != nil {
		e.FamilyName = *p.FamilyName
	}
	if p.Points != nil {
		e.Points = *p.Points
	}
	if p.Level != nil {
		e.Level = *p.Level
	}
	if p.Referrals != nil {
		e.Referrals = *p.Referrals
	}
	if p.BottlesPrevented != nil {
		e.BottlesPrevented = *p.BottlesPrevented
	}
	if p.CO2Saved != nil {
		e.CO2Saved = *p.CO2Saved
	}
}

// LeaderboardDelta is added to an entry, creating it when missing.
type LeaderboardDelta struct {
	FamilyName       string // used only when the entry is created
	Points           int
	BottlesPrevented int
	CO2Saved         int
	Referrals        int
}

// LeaderboardTotals aggregates all entries in scope.
type LeaderboardTotals struct {
	Bottles int64
	CO2     int64
}
