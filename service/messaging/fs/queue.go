package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/roomplan/service/messaging"
)

// MessageState represents the state of a message in the filesystem queue
type MessageState string

const (
	// MessageStatePending indicates a message is waiting to be processed
	MessageStatePending MessageState = "pending"

	// MessageStateProcessing indicates a message is being processed
	MessageStateProcessing MessageState = "processing"

	// MessageStateCompleted indicates a message was successfully processed
	MessageStateCompleted MessageState = "completed"

	// MessageStateFailed indicates a message failed processing
	MessageStateFailed MessageState = "failed"
)

// Message implements messaging.Message for the filesystem queue. Messages
// are kept as JSON documents so a resolution event trail survives the
// process.
type Message[T any] struct {
	ID        string       `json:"id"`
	Data      T            `json:"data"`
	State     MessageState `json:"state"`
	Error     string       `json:"error,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	Retries   int          `json:"retries"`

	queue     *Queue[T]
	processed bool
	mu        sync.Mutex
}

// T returns the message payload
func (m *Message[T]) T() *T {
	return &m.Data
}

// Ack acknowledges that the message was processed successfully
func (m *Message[T]) Ack() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return fmt.Errorf("message already processed")
	}
	m.processed = true
	m.State = MessageStateCompleted
	m.UpdatedAt = time.Now()
	return m.queue.settle(context.Background(), m, m.queue.completedDir)
}

// Nack indicates that the message processing failed; the message lands in
// the failed directory until the retry limit, then in the DLQ.
func (m *Message[T]) Nack(err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return fmt.Errorf("message already processed")
	}
	m.processed = true
	m.State = MessageStateFailed
	if err != nil {
		m.Error = err.Error()
	}
	m.Retries++
	m.UpdatedAt = time.Now()
	destination := m.queue.failedDir
	if m.Retries > m.queue.config.MaxRetries {
		destination = m.queue.dlqDir
	}
	return m.queue.settle(context.Background(), m, destination)
}

// Config holds configuration for filesystem queue
type Config struct {
	BasePath   string
	MaxRetries int
}

// DefaultConfig returns a default queue configuration
func DefaultConfig() Config {
	return Config{
		BasePath:   "/tmp/roomplan/queue",
		MaxRetries: 3,
	}
}

// Queue implements a filesystem-based messaging.Queue on top of afs, so any
// afs-supported storage scheme can hold the event trail.
type Queue[T any] struct {
	fs            afs.Service
	config        Config
	pendingDir    string
	processingDir string
	completedDir  string
	failedDir     string
	dlqDir        string
	mu            sync.Mutex
}

// NewQueue creates a new filesystem-based queue
func NewQueue[T any](fs afs.Service, config Config) (*Queue[T], error) {
	if config.BasePath == "" {
		return nil, fmt.Errorf("base path cannot be empty")
	}
	q := &Queue[T]{
		fs:            fs,
		config:        config,
		pendingDir:    path.Join(config.BasePath, "pending"),
		processingDir: path.Join(config.BasePath, "processing"),
		completedDir:  path.Join(config.BasePath, "completed"),
		failedDir:     path.Join(config.BasePath, "failed"),
		dlqDir:        path.Join(config.BasePath, "dlq"),
	}
	ctx := context.Background()
	for _, dir := range []string{q.pendingDir, q.processingDir, q.completedDir, q.failedDir, q.dlqDir} {
		exists, _ := fs.Exists(ctx, dir)
		if !exists {
			if err := fs.Create(ctx, dir, file.DefaultDirOsMode, true); err != nil {
				return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}
	return q, nil
}

// Publish adds a new message to the queue
func (q *Queue[T]) Publish(ctx context.Context, t *T) error {
	message := &Message[T]{
		ID:        uuid.New().String(),
		Data:      *t,
		State:     MessageStatePending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		queue:     q,
	}
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return q.upload(ctx, path.Join(q.pendingDir, q.filename(message.ID)), data)
}

// Consume retrieves the oldest pending message, retrying failed messages
// first. Returns nil when the queue is empty.
func (q *Queue[T]) Consume(ctx context.Context) (messaging.Message[T], error) {
	if message, err := q.take(ctx, q.failedDir); err != nil || message != nil {
		return orNil(message), err
	}
	message, err := q.take(ctx, q.pendingDir)
	return orNil(message), err
}

// orNil keeps a nil *Message from becoming a non-nil messaging.Message.
func orNil[T any](m *Message[T]) messaging.Message[T] {
	if m == nil {
		return nil
	}
	return m
}

// take moves the oldest message from dir into processing and returns it.
func (q *Queue[T]) take(ctx context.Context, dir string) (*Message[T], error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	objects, err := q.fs.List(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	var candidate storage.Object
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), ".json") {
			continue
		}
		if candidate == nil || object.Name() < candidate.Name() {
			candidate = object
		}
	}
	if candidate == nil {
		return nil, nil
	}

	message, err := q.read(ctx, candidate.URL())
	if err != nil {
		_ = q.fs.Move(ctx, candidate.URL(), path.Join(q.dlqDir, "invalid-"+candidate.Name()))
		return nil, err
	}
	if message.Retries > q.config.MaxRetries {
		if err = q.fs.Move(ctx, candidate.URL(), path.Join(q.dlqDir, candidate.Name())); err != nil {
			return nil, fmt.Errorf("failed to move message to DLQ: %w", err)
		}
		return nil, nil
	}

	message.State = MessageStateProcessing
	message.UpdatedAt = time.Now()
	message.queue = q
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}
	if err = q.upload(ctx, path.Join(q.processingDir, candidate.Name()), data); err != nil {
		return nil, fmt.Errorf("failed to move message to processing: %w", err)
	}
	if err = q.fs.Delete(ctx, candidate.URL()); err != nil {
		return nil, fmt.Errorf("failed to delete message from %s: %w", dir, err)
	}
	return message, nil
}

// settle writes the message to its terminal directory and removes the
// processing copy.
func (q *Queue[T]) settle(ctx context.Context, m *Message[T], dir string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	filename := q.filename(m.ID)
	if err = q.upload(ctx, path.Join(dir, filename), data); err != nil {
		return fmt.Errorf("failed to write message to %s: %w", dir, err)
	}
	processingPath := path.Join(q.processingDir, filename)
	if exists, _ := q.fs.Exists(ctx, processingPath); exists {
		if err = q.fs.Delete(ctx, processingPath); err != nil {
			return fmt.Errorf("failed to delete processing copy: %w", err)
		}
	}
	return nil
}

func (q *Queue[T]) filename(id string) string {
	return id + ".json"
}

func (q *Queue[T]) upload(ctx context.Context, location string, data []byte) error {
	return q.fs.Upload(ctx, location, file.DefaultFileOsMode, bytes.NewBuffer(data))
}

func (q *Queue[T]) read(ctx context.Context, URL string) (*Message[T], error) {
	data, err := q.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read message %s: %w", URL, err)
	}
	var message Message[T]
	if err = json.Unmarshal(data, &message); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message %s: %w", URL, err)
	}
	return &message, nil
}

// ensure Queue implements messaging.Queue interface
var _ messaging.Queue[any] = (*Queue[any])(nil)
