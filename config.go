package roomplan

import (
	"fmt"

	"github.com/viant/roomplan/service/messaging"
)

// Config is a serialisable representation of the engine configuration. It
// can be populated from JSON or YAML. The zero-value is useful – nested
// fields inherit their package defaults.

type Config struct {
	Resolver ResolverConfig `json:"resolver" yaml:"resolver"`
	Events   EventsConfig   `json:"events" yaml:"events"`
}

type ResolverConfig struct {
	// Rooms is the per-day capacity applied uniformly to every tracked day.
	Rooms int `json:"rooms" yaml:"rooms"`
}

type EventsConfig struct {
	Vendor messaging.Vendor `json:"vendor" yaml:"vendor"`
	Buffer int              `json:"buffer" yaml:"buffer"`
}

// DefaultConfig returns a Config populated with the reference configuration:
// two rooms, in-memory run events.
func DefaultConfig() *Config {
	return &Config{
		Resolver: ResolverConfig{Rooms: 2},
		Events:   EventsConfig{Vendor: messaging.VendorMemory, Buffer: 100},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Resolver.Rooms <= 0 {
		return fmt.Errorf("resolver.rooms must be > 0")
	}
	switch c.Events.Vendor {
	case "", messaging.VendorMemory, messaging.VendorFs:
	default:
		return fmt.Errorf("unsupported events.vendor: %s", c.Events.Vendor)
	}
	return nil
}
