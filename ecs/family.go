package ecs

import (
	"reflect"
	"sync"
)

// ComponentID is the small integer identifying a component type, stable
// for the lifetime of the process but not across processes.
type ComponentID uint32

// family assigns a process-wide, monotonically increasing ComponentID to
// each distinct component type on first touch, mirroring the "family"
// idiom of the original C++ (_examples/original_source/SparseSetECS/
// Family.h: a static counter shared by every template instantiation of
// Family::Type<T>()). Go has no per-type static storage without codegen,
// so the same effect is reached with a package-level map keyed by
// reflect.Type, guarded by a mutex; the counter, unlike the teacher's
// per-Registry ComponentRegistry, lives at package scope so that IDs are
// stable across every Registry in the process, per spec.
type family struct {
	mu     sync.Mutex
	nextID ComponentID
	ids    map[reflect.Type]ComponentID
}

var globalFamily = &family{ids: make(map[reflect.Type]ComponentID)}

// componentIDFor returns the process-wide ComponentID for T, assigning a
// fresh one on first use. Idempotent: repeated calls for the same T
// return the same ID.
func componentIDFor[T any]() ComponentID {
	var zero T
	t := reflect.TypeOf(zero)

	f := globalFamily
	f.mu.Lock()
	defer f.mu.Unlock()

	if id, ok := f.ids[t]; ok {
		return id
	}

	id := f.nextID
	f.nextID++
	f.ids[t] = id
	return id
}
