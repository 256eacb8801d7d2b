package event

import (
	"time"

	"github.com/viant/roomplan/internal/clock"
	"github.com/viant/roomplan/model"
)

// Event kinds emitted over the course of a resolution run.
const (
	KindPicked    = "picked"
	KindCommitted = "committed"
	KindPruned    = "pruned"
	KindCompleted = "completed"
)

// Context identifies where in a run an event was emitted.
type Context struct {
	SessionID string `json:"sessionID"`
	Kind      string `json:"kind"`
	Iteration int    `json:"iteration"`
}

// Event is one discrete observation of the resolution loop: a reservation
// was picked, committed, or a prune pass removed pool entries. Remaining
// carries the capacity snapshot after the mutation the event reports.
type Event struct {
	Context     *Context             `json:"context"`
	CreatedAt   time.Time            `json:"createdAt"`
	Reservation *model.Reservation   `json:"reservation,omitempty"`
	Pruned      []*model.Reservation `json:"pruned,omitempty"`
	Remaining   map[string]int       `json:"remaining,omitempty"`
}

// NewEvent creates an event stamped with the current clock time.
func NewEvent(context *Context) *Event {
	return &Event{
		Context:   context,
		CreatedAt: clock.Now(),
	}
}
