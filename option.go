package roomplan

import (
	"github.com/viant/afs/storage"
	"github.com/viant/roomplan/policy"
	"github.com/viant/roomplan/service/event"
	"github.com/viant/roomplan/service/meta"
	"github.com/viant/roomplan/service/selector"
	"github.com/viant/roomplan/tracing"
	"github.com/viant/x"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customizes the roomplan service.
type Option func(s *Service)

// WithConfig replaces the whole configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) { s.config = config }
}

// WithRooms sets the per-day room capacity.
func WithRooms(rooms int) Option {
	return func(s *Service) { s.rooms = rooms }
}

// WithSelectorSource sets the random-draw source; tests pass a scripted one.
func WithSelectorSource(source selector.Source) Option {
	return func(s *Service) { s.source = source }
}

// WithEventService sets the run-event service.
func WithEventService(service *event.Service) Option {
	return func(s *Service) { s.eventService = service }
}

// WithMetaService sets the document loading service.
func WithMetaService(service *meta.Service) Option {
	return func(s *Service) { s.metaService = service }
}

// WithMetaBaseURL sets the meta base URL.
func WithMetaBaseURL(url string) Option {
	return func(s *Service) { s.metaBaseURL = url }
}

// WithMetaFsOptions with meta file system options.
func WithMetaFsOptions(options ...storage.Option) Option {
	return func(s *Service) { s.metaFsOptions = options }
}

// WithAdmissionPolicy sets the request admission policy.
func WithAdmissionPolicy(p *policy.Policy) Option {
	return func(s *Service) { s.admission = p }
}

// WithExtensionTypes registers extra payload types.
func WithExtensionTypes(types ...*x.Type) Option {
	return func(s *Service) { s.extensionTypes = types }
}

// WithTracing configures OpenTelemetry tracing for the service. If
// outputFile is empty the stdout exporter is used. The first successful
// initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom
// SpanExporter (OTLP, Jaeger, Zipkin, …).
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
