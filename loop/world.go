package loop

import (
	"reflect"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// iface mirrors the runtime layout of an interface value.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// typeKey identifies a type by the address of its runtime descriptor.
func typeKey(t reflect.Type) uint64 {
	return uint64(uintptr((*iface)(unsafe.Pointer(&t)).data))
}

// World holds the resources shared by systems: at most one value per type.
// Resources are stored by pointer, so a *T handed out stays valid for the
// lifetime of the World even when the value is replaced.
type World struct {
	resources *intmap.Map[uint64, any]
	types     []reflect.Type
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		resources: intmap.New[uint64, any](16),
	}
}

// AddResource stores value as the World's T and returns a pointer to it. If
// a T already exists it is overwritten in place.
func AddResource[T any](w *World, value T) *T {
	t := reflect.TypeFor[T]()
	key := typeKey(t)
	if existing, ok := w.resources.Get(key); ok {
		ptr := existing.(*T)
		*ptr = value
		return ptr
	}

	ptr := new(T)
	*ptr = value
	w.resources.Put(key, ptr)
	w.types = append(w.types, t)
	return ptr
}

// GetResource returns the World's T, or nil if none was added.
func GetResource[T any](w *World) *T {
	v, ok := w.resources.Get(typeKey(reflect.TypeFor[T]()))
	if !ok {
		return nil
	}
	return v.(*T)
}

// Len returns the number of resources.
func (w *World) Len() int {
	return w.resources.Len()
}

// TypeNames lists the resource types, sorted.
func (w *World) TypeNames() []string {
	names := make([]string, len(w.types))
	for i, t := range w.types {
		names[i] = t.String()
	}
	sort.Strings(names)
	return names
}

// binder is implemented by system fields the Scheduler wires to a World.
type binder interface {
	bind(w *World)
}

// Resource is a system field giving access to the World's T. The Scheduler
// binds it when the system is registered.
type Resource[T any] struct {
	world *World
	ptr   *T
}

func (r *Resource[T]) bind(w *World) {
	r.world = w
	r.ptr = nil
}

// Get returns the bound World's T, or nil if it has not been added yet.
func (r *Resource[T]) Get() *T {
	if r.ptr == nil && r.world != nil {
		r.ptr = GetResource[T](r.world)
	}
	return r.ptr
}
