package entity

import (
	"time"

	"github.com/google/uuid"
)

// TradeInStatus is the lifecycle state of a trade-in.
type TradeInStatus string

const (
	TradeInStatusPending   TradeInStatus = "pending"
	TradeInStatusConfirmed TradeInStatus = "confirmed"
	TradeInStatusCompleted TradeInStatus = "completed"
)

// IsValid checks if the status is known.
func (s TradeInStatus) IsValid() bool {
	switch s {
	case TradeInStatusPending, TradeInStatusConfirmed, TradeInStatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether next is the single step after s.
// Transitions only move forward one step; completed is terminal.
func (s TradeInStatus) CanTransitionTo(next TradeInStatus) bool {
	switch s {
	case TradeInStatusPending:
		return next == TradeInStatusConfirmed
	case TradeInStatusConfirmed:
		return next == TradeInStatusCompleted
	default:
		return false
	}
}

// Campaign types understood by the valuation engine.
const (
	CampaignRegular            = "regular"
	CampaignIPhone17Launch     = "iphone17_launch"
	CampaignFirstHundredHeroes = "first_hundred_heroes"
)

// TradeIn records a device traded in for AquaCafe credit.
type TradeIn struct {
	ID              uuid.UUID     `json:"id"`
	UserID          *uuid.UUID    `json:"userId,omitempty"`
	DeviceModel     string        `json:"deviceModel"`
	DeviceCondition string        `json:"deviceCondition"`
	CampaignType    string        `json:"campaignType"`
	TradeValue      int           `json:"tradeValue"`   // AED
	ImpactPoints    int           `json:"impactPoints"` // hero points credited to the user
	Status          TradeInStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}
