// Package handler contains the impact worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"deliwer/config"
	deliverycontext "deliwer/internal/delivery/context"
	"deliwer/internal/domain/constants"
	"deliwer/internal/domain/service"
	"deliwer/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const defaultTopic = "deliwer-community"

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying impact events
type PushHandler struct {
	verifyPushAuth  bool
	validateToken   tokenValidator
	topic           string
	logger          *slog.Logger
	notificationSvc service.NotificationService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; local and develop setups do not
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	topic := defaultTopic
	if params.Config.Notification != nil && params.Config.Notification.Topic != "" {
		topic = params.Config.Notification.Topic
	}

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		validateToken:   idtoken.Validate,
		topic:           topic,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages. Malformed and
// unsupported messages are acknowledged so Pub/Sub does not redeliver them.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.ImpactEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse impact event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx := c.Request().Context()
	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, h.extractRequestID(ctx, &pushMsg, &event), h.logger)

	reqLogger.Info("[Worker] Processing impact event",
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process impact event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 asks Pub/Sub to redeliver; anything else is acknowledged
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the
// context set by the request ID middleware.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.ImpactEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return deliverycontext.NewRequestID()
}

func (h *PushHandler) processEvent(ctx context.Context, event *service.ImpactEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	switch event.Type {
	case service.EventChallengeMilestone:
		return h.notifyMilestone(ctx, event)
	case service.EventOrderPlaced:
		logger.Info("[Worker] AquaCafe order recorded",
			slog.String("order_id", event.OrderID),
			slog.Int("bottles_added", event.BottlesAdded),
			slog.String("challenge_id", event.ChallengeID),
		)

		return nil
	default:
		logger.Warn("[Worker] Ignoring unknown impact event", slog.String("type", event.Type))

		return nil
	}
}

// notifyMilestone broadcasts a challenge milestone to the community topic
func (h *PushHandler) notifyMilestone(ctx context.Context, event *service.ImpactEvent) error {
	if event.ChallengeID == "" || event.Milestone <= 0 {
		return errors.Errorf("milestone event %s is missing challenge data", event.EventID)
	}

	title, body, data := milestoneContent(event)

	messageID, err := h.notificationSvc.SendTopicNotification(ctx, h.topic, title, body, data)
	if err != nil {
		return newRetryableError(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Milestone notification sent",
		slog.String("challenge_id", event.ChallengeID),
		slog.Int("milestone", event.Milestone),
		slog.String("message_id", messageID),
	)

	return nil
}

func milestoneContent(event *service.ImpactEvent) (title, body string, data map[string]string) {
	name := event.ChallengeTitle
	if name == "" {
		name = "The community challenge"
	}

	if event.Milestone >= 100 {
		title = "Challenge complete!"
		body = fmt.Sprintf("%s reached its goal of %d bottles. Thank you, climate heroes!", name, event.TargetAmount)
	} else {
		title = fmt.Sprintf("%d%% of the way there", event.Milestone)
		body = fmt.Sprintf("%s has prevented %d of %d plastic bottles.", name, event.CurrentAmount, event.TargetAmount)
	}

	data = map[string]string{
		"event_id":       event.EventID,
		"type":           event.Type,
		"challenge_id":   event.ChallengeID,
		"milestone":      strconv.Itoa(event.Milestone),
		"current_amount": strconv.Itoa(event.CurrentAmount),
		"target_amount":  strconv.Itoa(event.TargetAmount),
	}
	if event.Region != "" {
		data["region"] = event.Region
	}

	return title, body, data
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
