package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"deliwer/config"
	"deliwer/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.ImpactEvent{
		RequestID:    "req-1",
		EventID:      "evt-1",
		Type:         service.EventOrderPlaced,
		OrderID:      "order-1",
		BottlesAdded: 2400,
		OccurredAt:   time.Now().UTC(),
	}
	require.NoError(t, publisher.PublishImpactEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, service.EventOrderPlaced, received.Message.Attributes["event_type"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.ImpactEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "order-1", decoded.OrderID)
	assert.Equal(t, 2400, decoded.BottlesAdded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishImpactEvent(context.Background(), &service.ImpactEvent{EventID: "evt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestNoopPublisher(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	assert.NoError(t, publisher.PublishImpactEvent(context.Background(), &service.ImpactEvent{EventID: "x"}))
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "unconfigured uses noop", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}
