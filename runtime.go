package roomplan

import (
	"context"

	"github.com/viant/roomplan/model"
	"github.com/viant/roomplan/runtime/solve"
	"github.com/viant/roomplan/service/event"
	"github.com/viant/roomplan/service/exporter"
	"github.com/viant/roomplan/service/loader"
	"github.com/viant/roomplan/service/resolver"
)

// Runtime is the façade callers drive a resolution run through.
type Runtime struct {
	loader   *loader.Service
	resolver *resolver.Service
	exporter *exporter.Service
	events   *event.Service
}

// LoadRequests loads reservation requests from the supplied location.
func (r *Runtime) LoadRequests(ctx context.Context, location string) ([]*model.Reservation, error) {
	return r.loader.Load(ctx, location)
}

// Resolve runs the resolution loop over the supplied requests.
func (r *Runtime) Resolve(ctx context.Context, reservations []*model.Reservation) (*solve.Session, error) {
	return r.resolver.Resolve(ctx, reservations)
}

// ResolveLocation loads the requests at location and resolves them.
func (r *Runtime) ResolveLocation(ctx context.Context, location string) (*solve.Session, error) {
	reservations, err := r.loader.Load(ctx, location)
	if err != nil {
		return nil, err
	}
	return r.resolver.Resolve(ctx, reservations)
}

// Render produces the granted sequence in the requested format.
func (r *Runtime) Render(session *solve.Session, format exporter.Format) ([]byte, error) {
	return r.exporter.Render(session, format)
}

// Export renders the session and uploads the result to URL.
func (r *Runtime) Export(ctx context.Context, session *solve.Session, format exporter.Format, URL string) error {
	return r.exporter.Export(ctx, session, format, URL)
}

// Events returns the run-event service.
func (r *Runtime) Events() *event.Service {
	return r.events
}
