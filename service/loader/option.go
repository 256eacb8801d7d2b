package loader

import (
	"github.com/viant/roomplan/policy"
	"github.com/viant/roomplan/service/meta"
)

// Option customizes the loader service.
type Option func(s *Service)

// WithMetaService sets the document loading service.
func WithMetaService(svc *meta.Service) Option {
	return func(s *Service) { s.meta = svc }
}

// WithPolicy sets the admission policy; it takes precedence over a policy
// carried in the context.
func WithPolicy(p *policy.Policy) Option {
	return func(s *Service) { s.admission = p }
}
