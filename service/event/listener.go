package event

import (
	"context"
	"log"
	"time"
)

// Listener drains a publisher's queue on a background goroutine and hands
// every event to the registered handler.
type Listener struct {
	publisher *Publisher
	handler   func(*Event)
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewListener creates a stopped listener; call Start to begin consuming.
func NewListener(publisher *Publisher, handler func(*Event)) *Listener {
	ctx, cancel := context.WithCancel(context.Background())
	return &Listener{
		publisher: publisher,
		handler:   handler,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Stop terminates the consume loop.
func (l *Listener) Stop() {
	l.cancel()
}

// Start launches the consume loop.
func (l *Listener) Start() {
	go func() {
		for {
			select {
			case <-l.ctx.Done():
				return
			default:
				event, err := l.publisher.Consume(l.ctx)
				if err != nil {
					if l.ctx.Err() != nil {
						return
					}
					log.Printf("error consuming event: %v", err)
					continue
				}
				if event == nil {
					// fs vendor returns nil on an empty queue
					select {
					case <-l.ctx.Done():
						return
					case <-time.After(10 * time.Millisecond):
					}
					continue
				}
				l.handler(event)
			}
		}
	}()
}
