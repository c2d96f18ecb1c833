package webhook

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"

	"github.com/DIMO-Network/messenger-webview-api/internal/messenger"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const (
	modeSubscribe = "subscribe"

	// EventReceived is the acknowledgement body for an accepted batch.
	EventReceived = "EVENT_RECEIVED"
)

type Dispatcher interface {
	HandleMessage(ctx context.Context, psid string, msg *messenger.InboundMessage) error
	HandlePostback(ctx context.Context, psid string, postback *messenger.Postback) error
}

type SeenCache interface {
	FirstSeen(mid string) bool
}

// WebhookController handles the Messenger webhook handshake and event batches.
type WebhookController struct {
	verifyToken string
	dispatcher  Dispatcher
	seen        SeenCache
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(verifyToken string, dispatcher Dispatcher, seen SeenCache) *WebhookController {
	return &WebhookController{
		verifyToken: verifyToken,
		dispatcher:  dispatcher,
		seen:        seen,
	}
}

// VerifySubscription godoc
// @Summary      Verify the webhook subscription
// @Description  Echoes hub.challenge when hub.mode is "subscribe" and hub.verify_token matches the configured token.
// @Tags         Webhook
// @Produce      plain
// @Param        hub.mode          query  string  true  "Subscription mode"
// @Param        hub.verify_token  query  string  true  "Verify token"
// @Param        hub.challenge     query  string  false "Challenge to echo"
// @Success      200  {string}  string  "The challenge"
// @Failure      400  "Missing hub.mode or hub.verify_token"
// @Failure      403  "Verify token mismatch"
// @Router       /webhook [get]
func (w *WebhookController) VerifySubscription(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "" || token == "" {
		return richerrors.Error{
			ExternalMsg: "hub.mode and hub.verify_token are required",
			Code:        fiber.StatusBadRequest,
		}
	}

	if mode != modeSubscribe || subtle.ConstantTimeCompare([]byte(token), []byte(w.verifyToken)) != 1 {
		return c.SendStatus(fiber.StatusForbidden)
	}

	zerolog.Ctx(c.UserContext()).Info().Msg("WEBHOOK_VERIFIED")
	return c.Status(fiber.StatusOK).SendString(challenge)
}

// ReceiveEvents godoc
// @Summary      Receive webhook events
// @Description  Accepts a batch of page events and queues one reply per message or postback. Always acknowledges an accepted batch, whatever happens to the replies.
// @Tags         Webhook
// @Accept       json
// @Produce      plain
// @Param        request  body      messenger.WebhookRequest  true  "Webhook batch"
// @Success      200      {string}  string  "EVENT_RECEIVED"
// @Failure      400      "Malformed payload"
// @Failure      404      "Not a page subscription"
// @Router       /webhook [post]
func (w *WebhookController) ReceiveEvents(c *fiber.Ctx) error {
	var payload messenger.WebhookRequest
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	if payload.Object != messenger.ObjectPage {
		return c.SendStatus(fiber.StatusNotFound)
	}

	if err := validateBatch(&payload); err != nil {
		var malformed *MalformedPayloadError
		if errors.As(err, &malformed) {
			return richerrors.Error{
				ExternalMsg: malformed.Error(),
				Err:         err,
				Code:        fiber.StatusBadRequest,
			}
		}
		return err
	}

	ctx := c.UserContext()
	for _, entry := range payload.Entry {
		w.handleEvent(ctx, &entry.Messaging[0])
	}

	return c.Status(fiber.StatusOK).SendString(EventReceived)
}

// handleEvent routes one event to the dispatcher. Failures are only logged so the
// platform always gets its acknowledgement and does not redeliver the batch.
func (w *WebhookController) handleEvent(ctx context.Context, event *messenger.MessagingEvent) {
	logger := zerolog.Ctx(ctx).With().Str("psid", event.Sender.ID).Logger()
	psid := event.Sender.ID

	var err error
	switch {
	case event.Message != nil:
		if event.Message.IsEcho {
			return
		}
		if !w.seen.FirstSeen(event.Message.MID) {
			logger.Debug().Str("mid", event.Message.MID).Msg("Skipping redelivered message")
			return
		}
		err = w.dispatcher.HandleMessage(ctx, psid, event.Message)
	case event.Postback != nil:
		err = w.dispatcher.HandlePostback(ctx, psid, event.Postback)
	default:
		logger.Debug().Msg("Ignoring event without message or postback")
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("Failed to dispatch webhook event")
	}
}
