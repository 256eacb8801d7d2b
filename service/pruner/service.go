package pruner

import (
	"time"

	"github.com/viant/roomplan/model"
	"github.com/viant/roomplan/runtime/availability"
)

// Service discards pending reservations that can no longer be satisfied: any
// reservation whose span touches a day with zero rooms remaining.
type Service struct{}

// New creates a pruning service.
func New() *Service {
	return &Service{}
}

// Prune evaluates the pool against the tracker as it stands now. The removal
// set is computed over a snapshot first and applied afterwards, so the scan
// never mutates the collection it iterates. Returns the removed
// reservations.
func (s *Service) Prune(pool *model.Pool, tracker *availability.Tracker) ([]*model.Reservation, error) {
	var unsatisfiable []*model.Reservation
	for _, reservation := range pool.Items() {
		blocked, err := s.touchesZero(reservation, tracker)
		if err != nil {
			return nil, err
		}
		if blocked {
			unsatisfiable = append(unsatisfiable, reservation)
		}
	}
	pool.Discard(unsatisfiable)
	return unsatisfiable, nil
}

func (s *Service) touchesZero(reservation *model.Reservation, tracker *availability.Tracker) (bool, error) {
	blocked := false
	var err error
	reservation.Span().Each(func(day time.Time) bool {
		var count int
		if count, err = tracker.Get(day); err != nil {
			return false
		}
		if count == 0 {
			blocked = true
			return false
		}
		return true
	})
	if err != nil {
		return false, err
	}
	return blocked, nil
}
