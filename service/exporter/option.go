package exporter

import "github.com/viant/afs"

// Option customizes the exporter service.
type Option func(s *Service)

// WithFs sets the afs service used for uploads.
func WithFs(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}
