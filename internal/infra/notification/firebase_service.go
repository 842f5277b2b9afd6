package notification

import (
	"context"

	"deliwer/config"
	"deliwer/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// topicSender is the part of *messaging.Client the service needs.
type topicSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client topicSender
}

// NewFirebaseService creates the FCM client. Without a credentials path the
// application default credentials are used.
func NewFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	var (
		fbConfig *firebase.Config
		opts     []option.ClientOption
	)
	if cfg.Firebase != nil {
		if cfg.Firebase.ProjectID != "" {
			fbConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
		}
		if cfg.Firebase.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
		}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendTopicNotification broadcasts one message to every device on topic.
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) (string, error) {
	if topic == "" {
		return "", errors.New("notification topic is required")
	}

	messageID, err := s.client.Send(ctx, &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	return messageID, nil
}
