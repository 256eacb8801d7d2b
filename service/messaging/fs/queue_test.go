package fs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
)

type payload struct {
	Name string
}

func TestQueue_PublishConsume(t *testing.T) {
	queue, err := NewQueue[payload](afs.New(), Config{BasePath: t.TempDir(), MaxRetries: 3})
	assert.NoError(t, err)
	ctx := context.Background()

	assert.NoError(t, queue.Publish(ctx, &payload{Name: "first"}))

	message, err := queue.Consume(ctx)
	assert.NoError(t, err)
	if !assert.NotNil(t, message) {
		return
	}
	assert.Equal(t, "first", message.T().Name)
	assert.NoError(t, message.Ack())

	// the queue is drained, nil signals empty rather than blocking
	message, err = queue.Consume(ctx)
	assert.NoError(t, err)
	assert.Nil(t, message)
}

func TestQueue_NackRedelivers(t *testing.T) {
	queue, err := NewQueue[payload](afs.New(), Config{BasePath: t.TempDir(), MaxRetries: 3})
	assert.NoError(t, err)
	ctx := context.Background()

	assert.NoError(t, queue.Publish(ctx, &payload{Name: "flaky"}))

	message, err := queue.Consume(ctx)
	assert.NoError(t, err)
	assert.NoError(t, message.Nack(errors.New("transient")))

	// failed messages are retried ahead of pending ones
	message, err = queue.Consume(ctx)
	assert.NoError(t, err)
	if !assert.NotNil(t, message) {
		return
	}
	assert.Equal(t, "flaky", message.T().Name)
	assert.NoError(t, message.Ack())
}

func TestNewQueue_RequiresBasePath(t *testing.T) {
	_, err := NewQueue[payload](afs.New(), Config{})
	assert.Error(t, err)
}
