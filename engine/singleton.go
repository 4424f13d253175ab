package engine

import (
	"fmt"
	"reflect"
	"slices"
)

// Resources holds at most one value per type. It backs Singleton fields.
type Resources struct {
	entries map[reflect.Type]any
}

func NewResources() *Resources {
	return &Resources{entries: make(map[reflect.Type]any)}
}

// Provide registers value as the singleton of type T, replacing any previous one.
func Provide[T any](r *Resources, value *T) {
	r.entries[reflect.TypeFor[T]()] = value
}

// Types lists the registered singleton types by name, sorted.
func (r *Resources) Types() []string {
	names := make([]string, 0, len(r.entries))
	for typ := range r.entries {
		names = append(names, typ.String())
	}
	slices.Sort(names)
	return names
}

func lookup[T any](r *Resources) *T {
	if r == nil {
		return nil
	}
	v, ok := r.entries[reflect.TypeFor[T]()]
	if !ok {
		return nil
	}
	return v.(*T)
}

// Singleton gives a system access to a shared value that is not tied to any
// particular tick.
type Singleton[T any] struct {
	resources *Resources
	value     *T
}

// NewSingleton returns an accessor for T. When no value is registered yet the
// initializer, or the zero value, is registered first.
func NewSingleton[T any](r *Resources, initializer ...T) *Singleton[T] {
	if lookup[T](r) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		Provide(r, &value)
	}
	s := &Singleton[T]{}
	s.Init(r)
	return s
}

// Init binds the accessor to resources.
// This is called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(r *Resources) {
	s.resources = r
	s.value = lookup[T](r)
}

// Get returns the shared value, or nil when none has been provided.
func (s *Singleton[T]) Get() *T {
	if s.value == nil {
		s.value = lookup[T](s.resources)
	}
	return s.value
}

// MustGet is Get for systems that cannot run without the value.
func (s *Singleton[T]) MustGet() *T {
	v := s.Get()
	if v == nil {
		panic(fmt.Sprintf("singleton %s not provided", reflect.TypeFor[T]()))
	}
	return v
}

// Exists returns true if a value of type T has been provided.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}
