package model

import (
	"fmt"
	"time"

	"github.com/viant/roomplan/internal/idgen"
	"github.com/viant/roomplan/model/calendar"
	"github.com/viant/roomplan/model/types"
)

// Reservation is an immutable request for rooms over a half-open day span:
// the start day is occupied, the end day is not. Names need not be unique;
// identity is the generated ID.
type Reservation struct {
	ID    string    `json:"id" yaml:"id"`
	Name  string    `json:"name" yaml:"name"`
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// NewReservation validates and builds a reservation; bounds are truncated to
// calendar days and End must fall strictly after Start.
func NewReservation(name string, start, end time.Time) (*Reservation, error) {
	start = calendar.DayOf(start)
	end = calendar.DayOf(end)
	if !end.After(start) {
		return nil, types.NewInvalidSpanError(name, start, end)
	}
	return &Reservation{
		ID:    idgen.New(),
		Name:  name,
		Start: start,
		End:   end,
	}, nil
}

// Span returns the days the reservation occupies.
func (r *Reservation) Span() calendar.Range {
	return calendar.Range{Start: r.Start, End: r.End}
}

// String renders the reservation the way the granted listing prints it.
func (r *Reservation) String() string {
	return fmt.Sprintf("%s (%s .. %s)", r.Name, calendar.FormatDay(r.Start), calendar.FormatDay(r.End))
}
