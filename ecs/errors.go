package ecs

import "github.com/cockroachdb/errors"

// Sentinel error kinds from the error handling design. Each is returned
// (never panicked) so that a failed call leaves prior state unchanged;
// callers compare with errors.Is. Wrapped with call-site context via
// errors.Wrapf before being returned from exported functions, following
// the pattern of _examples/other_examples/5355daac_timheuer-milvus__
// internal-datanode-compaction-clustering_compactor.go.go, the pack file
// that imports cockroachdb/errors for the same "typed sentinel + rich
// context" style.
var (
	// ErrExhausted is returned by Create when the entity index space is
	// full (MaxEntities issued and none recyclable).
	ErrExhausted = errors.New("ecs: entity index space exhausted")

	// ErrNotRegistered is returned when Replace or Remove target a pool
	// that has never been registered. Get and Has report an unregistered
	// pool as absent (nil/false) without an error; Add and Emplace
	// auto-register instead.
	ErrNotRegistered = errors.New("ecs: component type not registered")

	// ErrDuplicateComponent is reported by add/emplace when the entity
	// already carries the component.
	ErrDuplicateComponent = errors.New("ecs: component already present on entity")

	// ErrMissingComponent is reported by replace/remove when the entity
	// does not carry the component.
	ErrMissingComponent = errors.New("ecs: component not present on entity")

	// ErrGroupConflict is returned by group creation when a requested
	// owned pool is already owned by another group.
	ErrGroupConflict = errors.New("ecs: pool already owned by another group")

	// ErrInvalidGroupSpec is returned by group creation when the spec
	// names no component types at all. A spec with only partial components
	// is valid; an owned set overlapping another group's is reported as
	// ErrGroupConflict.
	ErrInvalidGroupSpec = errors.New("ecs: invalid group specification")

	// ErrStaleEntity is reported when an entity handle's version does not
	// match the slot currently occupying its index.
	ErrStaleEntity = errors.New("ecs: stale entity handle")
)

func errExhausted() error {
	return errors.Wrap(ErrExhausted, "create")
}

// wrapErr attaches call-site context to a sentinel error.
func wrapErr(sentinel error, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, format, args...)
}
