package service

import (
	"context"
	"time"
)

// Impact event types.
const (
	EventOrderPlaced        = "order_placed"
	EventChallengeMilestone = "challenge_milestone"
)

// ImpactEvent is published after a committed write that changes campaign
// impact and is consumed by the impact worker.
type ImpactEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	EventID        string    `json:"event_id"`
	Type           string    `json:"type"`
	OrderID        string    `json:"order_id,omitempty"`
	ChallengeID    string    `json:"challenge_id,omitempty"`
	ChallengeTitle string    `json:"challenge_title,omitempty"`
	Region         string    `json:"region,omitempty"`
	CurrentAmount  int       `json:"current_amount,omitempty"`
	TargetAmount   int       `json:"target_amount,omitempty"`
	Milestone      int       `json:"milestone,omitempty"` // percent reached
	BottlesAdded   int       `json:"bottles_added,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishImpactEvent publishes an impact event for async processing
	PublishImpactEvent(ctx context.Context, event *ImpactEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
