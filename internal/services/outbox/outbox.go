package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DIMO-Network/messenger-webview-api/internal/messenger"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Topic is the in-process topic outbound envelopes are published to.
const Topic = "messenger.outbound"

const (
	defaultWorkers = 8
	outputBuffer   = 256
)

// ErrMissingRecipient is returned by Enqueue when the recipient PSID is empty.
var ErrMissingRecipient = errors.New("recipient id is required")

// Sender delivers a single envelope to the Send API.
type Sender interface {
	SendMessage(ctx context.Context, req *messenger.SendRequest) error
}

// Observer receives the outcome of every delivery attempt.
type Observer interface {
	DeliverySucceeded(ctx context.Context, deliveryID string, req *messenger.SendRequest)
	DeliveryFailed(ctx context.Context, deliveryID string, req *messenger.SendRequest, err error)
}

// Outbox decouples replies from the request that triggered them. Enqueue never waits
// for the Send API; Run drains the queue and delivers each envelope at most once.
type Outbox struct {
	pubSub   *gochannel.GoChannel
	messages <-chan *message.Message
	sender   Sender
	observer Observer
	workers  int
}

// New creates an Outbox and subscribes its consumer so nothing published before Run is lost.
func New(sender Sender, observer Observer, workers int, logger zerolog.Logger) (*Outbox, error) {
	if workers < 1 {
		workers = defaultWorkers
	}
	pubSub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: outputBuffer,
	}, NewLoggerAdapter(logger))

	messages, err := pubSub.Subscribe(context.Background(), Topic)
	if err != nil {
		_ = pubSub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", Topic, err)
	}

	return &Outbox{
		pubSub:   pubSub,
		messages: messages,
		sender:   sender,
		observer: observer,
		workers:  workers,
	}, nil
}

// Enqueue schedules msg for delivery to recipientID and returns the delivery id.
func (o *Outbox) Enqueue(ctx context.Context, recipientID string, msg messenger.Message) (string, error) {
	if recipientID == "" {
		return "", ErrMissingRecipient
	}
	payload, err := json.Marshal(messenger.SendRequest{
		Recipient: messenger.Participant{ID: recipientID},
		Message:   msg,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal outbound message: %w", err)
	}

	deliveryID := uuid.NewString()
	if err := o.pubSub.Publish(Topic, message.NewMessage(deliveryID, payload)); err != nil {
		return "", fmt.Errorf("failed to publish outbound message: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("deliveryId", deliveryID).Str("recipientId", recipientID).Msg("Outbound message queued")
	return deliveryID, nil
}

// Run delivers queued messages until ctx is cancelled or the outbox is closed.
// In-flight sends are allowed to finish before Run returns.
func (o *Outbox) Run(ctx context.Context) error {
	var group errgroup.Group
	group.SetLimit(o.workers)
	defer group.Wait() //nolint:errcheck

	sendCtx := context.WithoutCancel(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-o.messages:
			if !ok {
				// channel is closed
				return nil
			}
			// the next message is only delivered after this one is acked
			msg.Ack()
			group.Go(func() error {
				o.deliver(sendCtx, msg)
				return nil
			})
		}
	}
}

// Close stops the Pub/Sub; Run returns once the subscription channel closes.
func (o *Outbox) Close() error {
	return o.pubSub.Close()
}

func (o *Outbox) deliver(ctx context.Context, msg *message.Message) {
	var req messenger.SendRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		o.observer.DeliveryFailed(ctx, msg.UUID, nil, fmt.Errorf("failed to decode outbound message: %w", err))
		return
	}
	if err := o.sender.SendMessage(ctx, &req); err != nil {
		o.observer.DeliveryFailed(ctx, msg.UUID, &req, err)
		return
	}
	o.observer.DeliverySucceeded(ctx, msg.UUID, &req)
}
