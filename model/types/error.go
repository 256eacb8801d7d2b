package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyPool signals a pick from an empty reservation pool. Picking from an
// empty pool is a programming error, not a runtime condition to recover from.
var ErrEmptyPool = errors.New("reservation pool is empty")

// ErrNoReservations signals an attempt to build availability from an empty
// request set.
var ErrNoReservations = errors.New("no reservations to build availability from")

// CapacityError reports a commit that would drive a day counter below zero.
// It indicates defective or bypassed pruning and must never be clamped.
type CapacityError struct {
	Name string
	Day  time.Time
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("reservation %q exceeds capacity at %v", e.Name, e.Day.Format("2006-01-02"))
}

// OutOfDomainError reports a query for a day outside the tracked domain.
type OutOfDomainError struct {
	Day time.Time
}

func (e *OutOfDomainError) Error() string {
	return fmt.Sprintf("day %v is outside the tracked domain", e.Day.Format("2006-01-02"))
}

func NewCapacityError(name string, day time.Time) error {
	return &CapacityError{Name: name, Day: day}
}

func NewOutOfDomainError(day time.Time) error {
	return &OutOfDomainError{Day: day}
}

func NewInvalidSpanError(name string, start, end time.Time) error {
	return fmt.Errorf("reservation %q end %v must be after start %v",
		name, end.Format("2006-01-02"), start.Format("2006-01-02"))
}
