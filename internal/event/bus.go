package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/nandoripardo888/TO--DO/internal/model"
)

// TopicAssignmentStatusChanged carries AssignmentStatusChanged payloads.
const TopicAssignmentStatusChanged = "assignment.status_changed"

// AssignmentStatusChanged is emitted after an assignment status write. The
// payload identifies the change; subscribers re-derive state from the store
// instead of trusting these values to still be current.
type AssignmentStatusChanged struct {
	AssignmentID string       `json:"assignment_id"`
	MicrotaskID  string       `json:"microtask_id"`
	TaskID       string       `json:"task_id"`
	EventID      string       `json:"event_id"`
	Before       model.Status `json:"before"`
	After        model.Status `json:"after"`
}

// Bus is the in-process pub/sub channel between the command layer and the
// status propagation pipeline.
type Bus struct {
	pubSub *gochannel.GoChannel
	router *message.Router
	logger watermill.LoggerAdapter
}

// NewBus creates the bus and its message router.
func NewBus() (*Bus, error) {
	logger := watermill.NewStdLogger(false, false)

	pubSub := gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer: 64,
		},
		logger,
	)

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, fmt.Errorf("create event router: %w", err)
	}

	return &Bus{
		pubSub: pubSub,
		router: router,
		logger: logger,
	}, nil
}

// PublishAssignmentStatusChanged publishes a status change event.
func (b *Bus) PublishAssignmentStatusChanged(evt AssignmentStatusChanged) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return b.pubSub.Publish(TopicAssignmentStatusChanged, msg)
}

// SubscribeAssignmentStatusChanged registers a handler for status change
// events. The handler owns its errors; returning non-nil requeues the
// message, so subscribers that must not retry should swallow and return nil.
func (b *Bus) SubscribeAssignmentStatusChanged(name string, fn func(ctx context.Context, evt AssignmentStatusChanged) error) {
	b.router.AddNoPublisherHandler(
		name,
		TopicAssignmentStatusChanged,
		b.pubSub,
		func(msg *message.Message) error {
			var evt AssignmentStatusChanged
			if err := json.Unmarshal(msg.Payload, &evt); err != nil {
				b.logger.Error("malformed event payload", err, watermill.LogFields{"message_id": msg.UUID})
				return nil // drop, never requeue garbage
			}
			return fn(msg.Context(), evt)
		},
	)
}

// Run starts the router and blocks until the context is cancelled.
func (b *Bus) Run(ctx context.Context) error {
	return b.router.Run(ctx)
}

// Close shuts down the router and the underlying channel.
func (b *Bus) Close() error {
	return b.router.Close()
}
