package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// OrderStatusPending is the only status an order is created with.
const OrderStatusPending = "pending"

// InstantRewards are granted the moment an order is placed.
type InstantRewards struct {
	Points  int      `json:"points"`
	Badges  []string `json:"badges"`
	Bonuses []string `json:"bonuses"`
}

// AquacafeOrder is an order for the AquaCafe filtration bundle.
type AquacafeOrder struct {
	ID              uuid.UUID      `json:"id"`
	UserID          *uuid.UUID     `json:"userId,omitempty"`
	CustomerName    string         `json:"customerName"`
	CustomerPhone   string         `json:"customerPhone"`
	CustomerAddress string         `json:"customerAddress"`
	TradeInID       *uuid.UUID     `json:"tradeInId,omitempty"`
	OrderTotal      float64        `json:"orderTotal"` // AED
	Status          string         `json:"status"`
	InstantRewards  InstantRewards `json:"instantRewards"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// Clone returns a copy that shares no slices with o.
func (o *AquacafeOrder) Clone() *AquacafeOrder {
	if o == nil {
		return nil
	}
	c := *o
	c.InstantRewards.Badges = slices.Clone(o.InstantRewards.Badges)
	c.InstantRewards.Bonuses = slices.Clone(o.InstantRewards.Bonuses)

	return &c
}
