package resolver

import (
	"github.com/viant/roomplan/service/event"
	"github.com/viant/roomplan/service/pruner"
	"github.com/viant/roomplan/service/selector"
)

// Option customizes the resolver service.
type Option func(s *Service)

// WithRooms sets the per-day room capacity.
func WithRooms(rooms int) Option {
	return func(s *Service) { s.rooms = rooms }
}

// WithSelector sets the selection service.
func WithSelector(svc *selector.Service) Option {
	return func(s *Service) { s.selector = svc }
}

// WithPruner sets the pruning service.
func WithPruner(svc *pruner.Service) Option {
	return func(s *Service) { s.pruner = svc }
}

// WithEventService sets the run-event observer.
func WithEventService(svc *event.Service) Option {
	return func(s *Service) { s.events = svc }
}
