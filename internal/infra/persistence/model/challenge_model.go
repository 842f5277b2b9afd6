package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CommunityChallengeModel mirrors the 'community_challenges' table. A
// partial unique index keeps one active challenge per region.
type CommunityChallengeModel struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Title         string                      `gorm:"type:varchar(255);not null"`
	Description   string                      `gorm:"type:text;not null;default:''"`
	TargetAmount  int                         `gorm:"not null"`
	CurrentAmount int                         `gorm:"not null;default:0"`
	EndDate       time.Time                   `gorm:"not null"`
	Region        string                      `gorm:"type:varchar(100);not null;default:''"`
	RewardPoints  int                         `gorm:"not null;default:0"`
	RewardBadges  datatypes.JSONSlice[string] `gorm:"not null"`
	IsActive      bool                        `gorm:"not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommunityChallengeModel) TableName() string {
	return "community_challenges"
}
