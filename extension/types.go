package extension

import (
	"reflect"

	"github.com/viant/roomplan/model"
	"github.com/viant/roomplan/service/event"
	"github.com/viant/x"
)

// Types registers the payload types the engine exposes to embedding
// applications, so run events and reservations can be decoded generically.
type Types struct {
	x.Registry
}

// Register adds a data type to the registry.
func (t *Types) Register(dataType *x.Type) {
	t.Registry.Register(dataType)
}

// Lookup returns a registered data type or nil.
func (t *Types) Lookup(name string) *x.Type {
	return t.Registry.Lookup(name)
}

// NewTypes creates a registry pre-populated with the engine payload types.
func NewTypes(options ...x.RegistryOption) *Types {
	ret := &Types{
		Registry: *x.NewRegistry(options...),
	}
	ret.Register(x.NewType(reflect.TypeOf(model.Reservation{}), x.WithName("Reservation")))
	ret.Register(x.NewType(reflect.TypeOf(event.Event{}), x.WithName("Event")))
	return ret
}
