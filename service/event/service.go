package event

import (
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/roomplan/service/messaging"
	"github.com/viant/roomplan/service/messaging/fs"
	"github.com/viant/roomplan/service/messaging/memory"
)

// Service owns the run-event queue and its single publisher/listener pair.
// The memory vendor keeps events in process; the fs vendor persists them as
// an audit trail of the run.
type Service struct {
	publisher *Publisher
	listener  *Listener
	vendor    messaging.Vendor
	memConfig memory.Config
	fsConfig  fs.Config
}

// New creates an event service backed by the requested queue vendor.
func New(vendor messaging.Vendor, opts ...Option) (*Service, error) {
	ret := &Service{
		vendor:    vendor,
		memConfig: memory.DefaultConfig(),
		fsConfig:  fs.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	var queue messaging.Queue[Event]
	switch vendor {
	case messaging.VendorMemory:
		queue = memory.NewQueue[Event](ret.memConfig)
	case messaging.VendorFs:
		var err error
		if queue, err = fs.NewQueue[Event](afs.New(), ret.fsConfig); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported queue vendor: %s", vendor)
	}
	ret.publisher = NewPublisher(queue)
	return ret, nil
}

// Publisher returns the service publisher.
func (s *Service) Publisher() *Publisher {
	return s.publisher
}

// SetListener replaces the active listener with one delivering to handler.
func (s *Service) SetListener(handler func(*Event)) {
	if s.listener != nil {
		s.listener.Stop()
	}
	s.listener = NewListener(s.publisher, handler)
	s.listener.Start()
}

// Shutdown stops the active listener, if any.
func (s *Service) Shutdown() {
	if s.listener != nil {
		s.listener.Stop()
	}
}
