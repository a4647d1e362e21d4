package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/changefeed"

	"github.com/labstack/echo/v4"
)

// PushHandler receives change events delivered by a Pub/Sub push
// subscription and forwards them into the in-process feed.
type PushHandler struct {
	transport *changefeed.Transport
	logger    *slog.Logger
}

// NewPushHandler is the constructor for PushHandler, injected by Fx.
func NewPushHandler(transport *changefeed.Transport, logger *slog.Logger) *PushHandler {
	return &PushHandler{
		transport: transport,
		logger:    logger,
	}
}

// pushEnvelope is the wrapper Pub/Sub wraps around pushed messages.
type pushEnvelope struct {
	Message struct {
		Data       string            `json:"data"` // base64-encoded payload.
		MessageID  string            `json:"messageId"`
		Attributes map[string]string `json:"attributes"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Receive decodes one pushed message and hands the event to the feed. Any
// response below 300 acknowledges the message; malformed payloads are
// acknowledged too since redelivery cannot fix them.
func (h *PushHandler) Receive(c echo.Context) error {
	var envelope pushEnvelope
	if err := c.Bind(&envelope); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push envelope")
	}

	payload, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	if err != nil {
		h.logger.Warn("Discarding push message with undecodable data",
			slog.String("message_id", envelope.Message.MessageID),
		)

		return response.Success(c, http.StatusOK, nil, "Message discarded")
	}

	var event service.ChangeEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		h.logger.Warn("Discarding push message with malformed event",
			slog.String("message_id", envelope.Message.MessageID),
		)

		return response.Success(c, http.StatusOK, nil, "Message discarded")
	}

	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
	}

	if err := h.transport.PushSink.PublishChange(c.Request().Context(), &event); err != nil {
		// Signal Pub/Sub to redeliver.
		return response.Error(c, http.StatusServiceUnavailable, "FEED_UNAVAILABLE", "Event could not be queued", err.Error())
	}

	return response.Success(c, http.StatusOK, nil, "Event accepted")
}
