package resolver

import (
	"context"
	"fmt"
	"strconv"

	"github.com/viant/roomplan/model"
	"github.com/viant/roomplan/progress"
	"github.com/viant/roomplan/runtime/availability"
	"github.com/viant/roomplan/runtime/solve"
	"github.com/viant/roomplan/service/event"
	"github.com/viant/roomplan/service/pruner"
	"github.com/viant/roomplan/service/selector"
	"github.com/viant/roomplan/tracing"
)

// Service resolves a set of competing reservation requests against a fixed
// per-day room capacity. Each iteration removes one reservation from the
// pool at random, commits it against availability, then prunes every pending
// reservation whose span now touches a day with no rooms left. The run is
// single-threaded and owns the pool and tracker exclusively.
type Service struct {
	rooms    int
	selector *selector.Service
	pruner   *pruner.Service
	events   *event.Service
}

// New creates a resolver service.
func New(options ...Option) *Service {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if ret.rooms == 0 {
		ret.rooms = DefaultRooms
	}
	if ret.selector == nil {
		ret.selector = selector.New(nil)
	}
	if ret.pruner == nil {
		ret.pruner = pruner.New()
	}
	return ret
}

// DefaultRooms is the reference room capacity.
const DefaultRooms = 2

// Rooms returns the per-day capacity the service resolves against.
func (s *Service) Rooms() int {
	return s.rooms
}

// Resolve runs the full resolution loop over the supplied requests and
// returns the completed session. Every request ends in exactly one of the
// session's granted or pruned sets. A capacity-violation during commit is an
// internal-consistency failure and aborts the run.
func (s *Service) Resolve(ctx context.Context, reservations []*model.Reservation) (*solve.Session, error) {
	ctx, span := tracing.StartSpan(ctx, "resolver.resolve")
	session, err := s.resolve(ctx, reservations)
	tracing.EndSpan(span, err)
	return session, err
}

func (s *Service) resolve(ctx context.Context, reservations []*model.Reservation) (*solve.Session, error) {
	tracker, err := availability.New(reservations, s.rooms)
	if err != nil {
		return nil, err
	}
	pool := model.NewPool(reservations...)
	session := solve.NewSession(tracker)
	progress.UpdateCtx(ctx, progress.Delta{Total: pool.Size(), Pending: pool.Size()})

	for !pool.IsEmpty() {
		session.Iterations++
		if err = s.iterate(ctx, session, pool, tracker); err != nil {
			return nil, err
		}
	}
	session.Complete()
	s.publish(ctx, session, event.KindCompleted, func(e *event.Event) {
		e.Remaining = tracker.Snapshot()
	})
	return session, nil
}

// iterate executes one pick, commit, prune, grant transition.
func (s *Service) iterate(ctx context.Context, session *solve.Session, pool *model.Pool, tracker *availability.Tracker) (err error) {
	ctx, span := tracing.StartSpan(ctx, "resolver.iterate")
	span.WithAttributes(map[string]string{
		"session":   session.ID,
		"iteration": strconv.Itoa(session.Iterations),
	})
	defer func() { tracing.EndSpan(span, err) }()

	picked, err := s.selector.Pick(pool)
	if err != nil {
		return fmt.Errorf("failed to pick reservation: %w", err)
	}
	s.publish(ctx, session, event.KindPicked, func(e *event.Event) {
		e.Reservation = picked
	})

	if err = tracker.Commit(picked); err != nil {
		return err
	}
	s.publish(ctx, session, event.KindCommitted, func(e *event.Event) {
		e.Reservation = picked
		e.Remaining = tracker.Snapshot()
	})

	pruned, err := s.pruner.Prune(pool, tracker)
	if err != nil {
		return err
	}
	if len(pruned) > 0 {
		session.Prune(pruned...)
		s.publish(ctx, session, event.KindPruned, func(e *event.Event) {
			e.Pruned = pruned
		})
	}
	session.Grant(picked)
	progress.UpdateCtx(ctx, progress.Delta{
		Pending: -(1 + len(pruned)),
		Granted: 1,
		Pruned:  len(pruned),
	})
	return nil
}

func (s *Service) publish(ctx context.Context, session *solve.Session, kind string, customize func(*event.Event)) {
	if s.events == nil {
		return
	}
	anEvent := event.NewEvent(&event.Context{
		SessionID: session.ID,
		Kind:      kind,
		Iteration: session.Iterations,
	})
	if customize != nil {
		customize(anEvent)
	}
	// Observer failures never affect resolution semantics: a full or
	// failing queue loses the event, the run keeps going.
	_ = s.events.Publisher().Publish(ctx, anEvent)
}
