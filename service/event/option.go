package event

import (
	"github.com/viant/roomplan/service/messaging/fs"
	"github.com/viant/roomplan/service/messaging/memory"
)

// Option customizes the event service.
type Option func(s *Service)

// WithMemoryConfig overrides the memory queue configuration.
func WithMemoryConfig(config memory.Config) Option {
	return func(s *Service) { s.memConfig = config }
}

// WithFsConfig overrides the filesystem queue configuration.
func WithFsConfig(config fs.Config) Option {
	return func(s *Service) { s.fsConfig = config }
}
