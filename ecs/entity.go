package ecs

import "fmt"

// Entity is a 32-bit handle naming a row across all component pools. The
// low IndexBits bits hold the index; the high VersionBits bits hold the
// version, bumped every time the index is recycled.
type Entity uint32

const (
	// IndexBits is the width of an entity's index field.
	IndexBits = 20
	// VersionBits is the width of an entity's version field.
	VersionBits = 12
	// IndexMask extracts the index field of an Entity.
	IndexMask = (1 << IndexBits) - 1
	// VersionMask extracts the version field of an Entity.
	VersionMask = (1 << VersionBits) - 1

	// NullIndex is the sentinel index stored in a pool's sparse side for
	// "no entity occupies this slot".
	NullIndex = IndexMask
	// DeadEntity is the sentinel Entity value meaning "no entity".
	DeadEntity Entity = 0xFFFFFFFF

	// MaxComponents bounds the number of distinct component types a
	// process may register; it is the width of a Signature.
	MaxComponents = 64
	// MaxEntities bounds the number of live indices a Registry can issue.
	MaxEntities = IndexMask
	// MaxVersion is the largest representable version; versions wrap past
	// this silently (collisions are accepted by design).
	MaxVersion = VersionMask
)

// newEntity packs an index and version into an Entity handle.
func newEntity(index, version uint32) Entity {
	return Entity((version&VersionMask)<<IndexBits | (index & IndexMask))
}

// Index returns the index field of e.
func (e Entity) Index() uint32 {
	return uint32(e) & IndexMask
}

// Version returns the version field of e.
func (e Entity) Version() uint32 {
	return (uint32(e) >> IndexBits) & VersionMask
}

// Valid reports whether e is not the DeadEntity sentinel.
func (e Entity) Valid() bool {
	return e != DeadEntity
}

func (e Entity) String() string {
	if !e.Valid() {
		return "Entity(dead)"
	}
	return fmt.Sprintf("Entity(%d#%d)", e.Index(), e.Version())
}

// entityLifecycle implements entity allocation and recycling through an
// implicit free-list threaded through the in-use array: in_use[index]
// holds e itself while e is live, and holds the next free handle (already
// carrying the bumped version) once e is freed.
type entityLifecycle struct {
	inUse     []Entity
	freeHead  Entity
	freeCount int
	nextFresh uint32
}

func newEntityLifecycle() *entityLifecycle {
	return &entityLifecycle{
		inUse:    make([]Entity, 0),
		freeHead: DeadEntity,
	}
}

// create allocates a new entity, popping the free-list head if one is
// available, else issuing the next never-used index.
func (el *entityLifecycle) create() (Entity, error) {
	if el.freeCount > 0 {
		head := el.freeHead
		idx := head.Index()
		next := el.inUse[idx]
		el.inUse[idx] = head
		el.freeHead = next
		el.freeCount--
		return head, nil
	}

	if el.nextFresh >= MaxEntities {
		return DeadEntity, errExhausted()
	}

	e := newEntity(el.nextFresh, 0)
	el.inUse = append(el.inUse, e)
	el.nextFresh++
	return e, nil
}

// free bumps the version of the slot at e's index and threads it onto the
// free-list, invalidating e and any handle sharing its stale version.
func (el *entityLifecycle) free(e Entity) {
	idx := e.Index()
	newVersion := (e.Version() + 1) & MaxVersion
	link := newEntity(idx, newVersion)

	el.inUse[idx] = el.freeHead
	el.freeHead = link
	el.freeCount++
}

// isCurrent reports whether e matches the version currently stored at its
// index, i.e. whether e is not a stale handle into a recycled slot.
func (el *entityLifecycle) isCurrent(e Entity) bool {
	idx := e.Index()
	if idx >= uint32(len(el.inUse)) {
		return false
	}
	return el.inUse[idx] == e
}

func (el *entityLifecycle) size() int {
	return len(el.inUse)
}
