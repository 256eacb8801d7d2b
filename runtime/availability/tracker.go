package availability

import (
	"fmt"
	"time"

	"github.com/viant/roomplan/model"
	"github.com/viant/roomplan/model/calendar"
	"github.com/viant/roomplan/model/types"
)

// Tracker keeps the remaining room count for every day of the tracked
// domain. The domain is fixed at build time to [min start, max end) over the
// initial request set and never shrinks; every counter stays within
// [0, rooms]. The tracker is owned by a single resolution run and is not
// safe for concurrent use.
type Tracker struct {
	rooms     int
	domain    calendar.Range
	remaining map[time.Time]int
}

// New builds a tracker spanning the full initial request set, with every day
// initialized to rooms free.
func New(reservations []*model.Reservation, rooms int) (*Tracker, error) {
	if len(reservations) == 0 {
		return nil, types.ErrNoReservations
	}
	if rooms <= 0 {
		return nil, fmt.Errorf("room capacity must be positive, got %d", rooms)
	}
	minStart := reservations[0].Start
	maxEnd := reservations[0].End
	for _, reservation := range reservations[1:] {
		if reservation.Start.Before(minStart) {
			minStart = reservation.Start
		}
		if reservation.End.After(maxEnd) {
			maxEnd = reservation.End
		}
	}
	domain := calendar.Range{Start: minStart, End: maxEnd}
	remaining := make(map[time.Time]int, domain.Size())
	domain.Each(func(day time.Time) bool {
		remaining[day] = rooms
		return true
	})
	return &Tracker{rooms: rooms, domain: domain, remaining: remaining}, nil
}

// Rooms returns the per-day capacity the tracker was built with.
func (t *Tracker) Rooms() int {
	return t.rooms
}

// Domain returns the tracked day range.
func (t *Tracker) Domain() calendar.Range {
	return t.domain
}

// Get returns the remaining count for a tracked day. Days outside the built
// domain are a programming error, never an implicit zero.
func (t *Tracker) Get(day time.Time) (int, error) {
	day = calendar.DayOf(day)
	count, ok := t.remaining[day]
	if !ok {
		return 0, types.NewOutOfDomainError(day)
	}
	return count, nil
}

// Commit takes one room on every day the reservation spans. The commit is
// all or nothing: if any day would drop below zero the tracker is left
// untouched and a capacity-violation error is returned. That error can only
// arise when pruning was defective or bypassed and is fatal to the run.
func (t *Tracker) Commit(reservation *model.Reservation) error {
	span := reservation.Span()
	var err error
	span.Each(func(day time.Time) bool {
		count, ok := t.remaining[day]
		if !ok {
			err = types.NewOutOfDomainError(day)
			return false
		}
		if count == 0 {
			err = types.NewCapacityError(reservation.Name, day)
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	span.Each(func(day time.Time) bool {
		t.remaining[day]--
		return true
	})
	return nil
}

// Snapshot returns the remaining counts keyed by formatted day, for event
// payloads and assertions.
func (t *Tracker) Snapshot() map[string]int {
	snapshot := make(map[string]int, len(t.remaining))
	for day, count := range t.remaining {
		snapshot[calendar.FormatDay(day)] = count
	}
	return snapshot
}
