// Package model holds the GORM table mappings shared by the relational
// repositories and the gorm gen tool.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ClimateContributionColumns is embedded into users with a climate_ prefix.
type ClimateContributionColumns struct {
	CarbonSaved      int `gorm:"not null;default:0"`
	PlasticPrevented int `gorm:"not null;default:0"`
	LunchCredits     int `gorm:"not null;default:0"`
	Streak           int `gorm:"not null;default:0"`
}

// UserModel mirrors the 'users' table. IDs are generated by the application
// so the schema works on PostgreSQL and SQLite alike.
type UserModel struct {
	ID                  uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Username            string                      `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email               string                      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Country             string                      `gorm:"type:varchar(100);index;not null;default:''"`
	City                string                      `gorm:"type:varchar(100);not null;default:''"`
	HeroLevel           int                         `gorm:"not null;default:1"`
	HeroPoints          int                         `gorm:"not null;default:0"`
	HeroType            string                      `gorm:"type:varchar(100);not null;default:''"`
	Achievements        datatypes.JSONSlice[string] `gorm:"not null"`
	ClimateContribution ClimateContributionColumns  `gorm:"embedded;embeddedPrefix:climate_"`
	CreatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
