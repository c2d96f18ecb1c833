package dispatcher

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/DIMO-Network/messenger-webview-api/internal/messenger"
	"github.com/rs/zerolog"
)

// CommandStartConnect opens the room preferences webview.
const CommandStartConnect = "start connect"

// NotUnderstoodText is sent for messages without text and for unknown postbacks.
const NotUnderstoodText = "Sorry, I don't understand what you mean."

var reNonWord = regexp.MustCompile(`[^\w\s]`)

// Outbox queues a reply for asynchronous delivery.
type Outbox interface {
	Enqueue(ctx context.Context, recipientID string, msg messenger.Message) (string, error)
}

// Dispatcher maps inbound messages and postbacks to scripted replies.
type Dispatcher struct {
	outbox   Outbox
	commands map[string]func() messenger.Message
}

// NewDispatcher creates a Dispatcher whose webview button points at serverURL.
func NewDispatcher(outbox Outbox, serverURL string) *Dispatcher {
	return &Dispatcher{
		outbox: outbox,
		commands: map[string]func() messenger.Message{
			CommandStartConnect: func() messenger.Message { return RoomPreferences(serverURL) },
		},
	}
}

// Normalize strips everything but word characters and whitespace, trims, and lowercases text.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(reNonWord.ReplaceAllString(text, "")))
}

// Respond returns the reply for an inbound message.
func (d *Dispatcher) Respond(msg *messenger.InboundMessage) messenger.Message {
	if msg == nil || msg.Text == "" {
		return messenger.TextMessage(NotUnderstoodText)
	}
	if build, ok := d.commands[Normalize(msg.Text)]; ok {
		return build()
	}
	return messenger.TextMessage(msg.Text)
}

// RespondPostback returns the reply for a postback. Payloads use the same command set as text.
func (d *Dispatcher) RespondPostback(postback *messenger.Postback) messenger.Message {
	if postback != nil {
		if build, ok := d.commands[Normalize(postback.Payload)]; ok {
			return build()
		}
	}
	return messenger.TextMessage(NotUnderstoodText)
}

// HandleMessage queues the reply to msg for psid.
func (d *Dispatcher) HandleMessage(ctx context.Context, psid string, msg *messenger.InboundMessage) error {
	return d.enqueue(ctx, psid, d.Respond(msg))
}

// HandlePostback queues the reply to postback for psid.
func (d *Dispatcher) HandlePostback(ctx context.Context, psid string, postback *messenger.Postback) error {
	return d.enqueue(ctx, psid, d.RespondPostback(postback))
}

func (d *Dispatcher) enqueue(ctx context.Context, psid string, reply messenger.Message) error {
	deliveryID, err := d.outbox.Enqueue(ctx, psid, reply)
	if err != nil {
		return fmt.Errorf("failed to queue reply: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("deliveryId", deliveryID).Str("psid", psid).Msg("Reply queued")
	return nil
}
