package roomplan

import (
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/roomplan/extension"
	"github.com/viant/roomplan/policy"
	"github.com/viant/roomplan/service/event"
	"github.com/viant/roomplan/service/exporter"
	"github.com/viant/roomplan/service/loader"
	"github.com/viant/roomplan/service/messaging"
	"github.com/viant/roomplan/service/messaging/memory"
	"github.com/viant/roomplan/service/meta"
	"github.com/viant/roomplan/service/pruner"
	"github.com/viant/roomplan/service/resolver"
	"github.com/viant/roomplan/service/selector"
	"github.com/viant/x"
)

// Service assembles the resolution engine: loader, resolver, exporter and
// the run-event observer, each injectable through options.
type Service struct {
	config         *Config
	runtime        *Runtime
	rooms          int
	source         selector.Source
	eventService   *event.Service
	metaService    *meta.Service
	metaBaseURL    string
	metaFsOptions  []storage.Option
	admission      *policy.Policy
	types          *extension.Types
	extensionTypes []*x.Type
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	if err := s.ensureBaseSetup(); err != nil {
		return err
	}
	s.types = extension.NewTypes()
	for _, t := range s.extensionTypes {
		s.types.Register(t)
	}
	s.runtime.loader = loader.New(
		loader.WithMetaService(s.metaService),
		loader.WithPolicy(s.admission))
	s.runtime.resolver = resolver.New(
		resolver.WithRooms(s.rooms),
		resolver.WithSelector(selector.New(s.source)),
		resolver.WithPruner(pruner.New()),
		resolver.WithEventService(s.eventService))
	s.runtime.exporter = exporter.New()
	s.runtime.events = s.eventService
	return nil
}

func (s *Service) ensureBaseSetup() error {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.rooms == 0 {
		s.rooms = s.config.Resolver.Rooms
	}
	if s.metaService == nil {
		s.metaService = meta.New(afs.New(), s.metaBaseURL, s.metaFsOptions...)
	}
	if s.eventService == nil {
		vendor := s.config.Events.Vendor
		if vendor == "" {
			vendor = messaging.VendorMemory
		}
		memConfig := memory.DefaultConfig()
		if s.config.Events.Buffer > 0 {
			memConfig.QueueBuffer = s.config.Events.Buffer
		}
		eventService, err := event.New(vendor, event.WithMemoryConfig(memConfig))
		if err != nil {
			return err
		}
		s.eventService = eventService
	}
	return nil
}

// Runtime returns the assembled runtime façade.
func (s *Service) Runtime() *Runtime {
	return s.runtime
}

// Config returns the effective configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Types returns the payload type registry.
func (s *Service) Types() *extension.Types {
	return s.types
}

// New creates a roomplan service. Construction fails when the configuration
// does not validate or the run-event queue cannot be built.
func New(options ...Option) (*Service, error) {
	ret := &Service{runtime: &Runtime{}}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	return ret, nil
}
