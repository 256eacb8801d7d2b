package solve

import (
	"time"

	"github.com/viant/roomplan/internal/clock"
	"github.com/viant/roomplan/internal/idgen"
	"github.com/viant/roomplan/model"
	"github.com/viant/roomplan/runtime/availability"
)

// State represents the lifecycle of a resolution run.
type State string

const (
	// StateRunning indicates the pool still holds pending reservations.
	StateRunning State = "running"

	// StateDone indicates the pool has been drained.
	StateDone State = "done"
)

// Session captures one resolution run: the order reservations were granted,
// the set that was pruned, and the availability the run finished with. The
// granted sequence is append-only.
type Session struct {
	ID           string
	StartedAt    time.Time
	EndedAt      time.Time
	State        State
	Iterations   int
	Granted      []*model.Reservation
	Pruned       []*model.Reservation
	Availability *availability.Tracker
}

// NewSession starts a run in the Running state.
func NewSession(tracker *availability.Tracker) *Session {
	return &Session{
		ID:           idgen.New(),
		StartedAt:    clock.Now(),
		State:        StateRunning,
		Availability: tracker,
	}
}

// Grant appends a committed reservation to the granted sequence.
func (s *Session) Grant(reservation *model.Reservation) {
	s.Granted = append(s.Granted, reservation)
}

// Prune records reservations discarded by a prune pass.
func (s *Session) Prune(reservations ...*model.Reservation) {
	s.Pruned = append(s.Pruned, reservations...)
}

// Complete transitions the session to Done.
func (s *Session) Complete() {
	s.State = StateDone
	s.EndedAt = clock.Now()
}

// IsDone returns true once the pool has been drained.
func (s *Session) IsDone() bool {
	return s.State == StateDone
}
