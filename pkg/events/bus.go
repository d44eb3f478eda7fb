package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const topic = "session"

// metadata key carrying the event code on each message.
const metaEventType = "event_type"

// Bus is an in-process pub/sub channel for session events. A single client
// process has exactly one; subscribers receive every event published after
// they subscribed.
type Bus struct {
	pubSub *gochannel.GoChannel
}

func NewBus() *Bus {
	return &Bus{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{},
			watermill.NopLogger{},
		),
	}
}

// Publish sends an event to all current subscribers. Marshal failures are
// the only error path; delivery itself is in-memory and does not block.
func (b *Bus) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event.Payload())
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(metaEventType, event.EventType())
	msg.SetContext(ctx)

	return b.pubSub.Publish(topic, msg)
}

// Subscribe returns a channel of session event messages. The channel closes
// when ctx is cancelled or the bus shuts down.
func (b *Bus) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, topic)
}

// EventType reads the event code off a received message.
func EventType(msg *message.Message) string {
	return msg.Metadata.Get(metaEventType)
}

func (b *Bus) Close() error {
	return b.pubSub.Close()
}
