package model

import (
	"time"

	"github.com/google/uuid"
)

// LeaderboardEntryModel mirrors the 'leaderboard_entries' table.
type LeaderboardEntryModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	FamilyName       string    `gorm:"type:varchar(255);not null;default:''"`
	Points           int       `gorm:"not null;default:0;index"`
	Level            int       `gorm:"not null;default:1"`
	Referrals        int       `gorm:"not null;default:0"`
	BottlesPrevented int       `gorm:"not null;default:0"`
	CO2Saved         int       `gorm:"column:co2_saved;not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (LeaderboardEntryModel) TableName() string {
	return "leaderboard_entries"
}
