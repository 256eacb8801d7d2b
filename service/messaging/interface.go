package messaging

import (
	"context"
	"errors"
)

// ErrQueueFull signals a publish against a queue with no buffer space left.
// Publishers that treat their queue as an observer drop the message instead
// of blocking on it.
var ErrQueueFull = errors.New("queue is full")

// Vendor names a queue implementation ("memory" or "fs").
type Vendor string

const (
	// VendorMemory is the in-process channel-backed queue.
	VendorMemory Vendor = "memory"

	// VendorFs is the afs-backed durable queue.
	VendorFs Vendor = "fs"
)

// Queue represents an abstract message queue for any payload type.
type Queue[T any] interface {
	// Publish adds a new message with payload to the queue.
	Publish(ctx context.Context, t *T) error

	// Consume retrieves a single message from the queue.
	Consume(ctx context.Context) (Message[T], error)
}

// Message represents a message retrieved from a queue.
type Message[T any] interface {
	// T returns the payload of this message.
	T() *T

	// Ack acknowledges successful processing of this message.
	Ack() error

	// Nack indicates failure in processing this message.
	Nack(err error) error
}
