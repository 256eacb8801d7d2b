package event

import (
	"context"

	"github.com/viant/roomplan/service/messaging"
)

// Publisher pushes run events onto the configured queue.
type Publisher struct {
	queue messaging.Queue[Event]
}

// NewPublisher creates a publisher over the supplied queue.
func NewPublisher(queue messaging.Queue[Event]) *Publisher {
	return &Publisher{queue: queue}
}

// Publish enqueues the event.
func (p *Publisher) Publish(ctx context.Context, event *Event) error {
	return p.queue.Publish(ctx, event)
}

// Consume pops and acknowledges the next event; nil when none is available.
func (p *Publisher) Consume(ctx context.Context) (*Event, error) {
	msg, err := p.queue.Consume(ctx)
	if err != nil || msg == nil {
		return nil, err
	}
	if err = msg.Ack(); err != nil {
		return nil, err
	}
	return msg.T(), nil
}
