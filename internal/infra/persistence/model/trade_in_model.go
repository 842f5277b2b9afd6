package model

import (
	"time"

	"github.com/google/uuid"
)

// TradeInModel mirrors the 'trade_ins' table.
type TradeInModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID          *uuid.UUID `gorm:"type:uuid;index"`
	DeviceModel     string     `gorm:"type:varchar(100);not null"`
	DeviceCondition string     `gorm:"type:varchar(50);not null"`
	CampaignType    string     `gorm:"type:varchar(50);not null;default:'regular'"`
	TradeValue      int        `gorm:"not null"`
	ImpactPoints    int        `gorm:"not null"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (TradeInModel) TableName() string {
	return "trade_ins"
}
