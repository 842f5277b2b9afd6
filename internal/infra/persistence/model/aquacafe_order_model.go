package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AquacafeOrderModel mirrors the 'aquacafe_orders' table.
type AquacafeOrderModel struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	UserID          *uuid.UUID                  `gorm:"type:uuid;index"`
	CustomerName    string                      `gorm:"type:varchar(255);not null"`
	CustomerPhone   string                      `gorm:"type:varchar(50);not null"`
	CustomerAddress string                      `gorm:"type:text;not null"`
	TradeInID       *uuid.UUID                  `gorm:"type:uuid;index"`
	OrderTotal      float64                     `gorm:"not null"`
	Status          string                      `gorm:"type:varchar(20);not null;default:'pending'"`
	RewardPoints    int                         `gorm:"not null"`
	RewardBadges    datatypes.JSONSlice[string] `gorm:"not null"`
	RewardBonuses   datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt       time.Time                   `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AquacafeOrderModel) TableName() string {
	return "aquacafe_orders"
}
