package service

import (
	"context"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendTopicNotification broadcasts to every device subscribed to topic
	// and returns the provider message id.
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) (string, error)
}
