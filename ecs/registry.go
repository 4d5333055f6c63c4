package ecs

import "go.uber.org/zap"

// Registry owns every component pool, the entity lifecycle, the signature
// table, and the groups built over it. It is the single entry point for
// entity and component operations; all mutation goes through the package's
// generic free functions rather than methods on Pool, since Go forbids a
// method from introducing a type parameter its receiver doesn't have.
//
// Grounded on _examples/lzuwei-pecs-go/ecs/world.go's World (EntityManager
// + ComponentRegistry + free-function API), generalized with the group
// bookkeeping from original_source/SparseSetECS/Registry.h.
type Registry struct {
	pools      [MaxComponents]iPool
	signatures *pagedArray[Signature]
	entities   *entityLifecycle
	groups     []*Group
	defaultCap int
	logger     *zap.Logger
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithLogger wires a structured logger into the Registry for
// auto-registration and capacity-growth diagnostics. Registries are silent
// (zap.NewNop) by default.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry constructs an empty Registry. defaultCapacity seeds the
// initial reservation any pool gets on first Register; zero or negative
// disables pre-reservation.
func NewRegistry(defaultCapacity int, opts ...Option) *Registry {
	r := &Registry{
		signatures: newPagedArray[Signature](0),
		entities:   newEntityLifecycle(),
		defaultCap: defaultCapacity,
		logger:     noopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ID returns the process-wide ComponentID for T, assigning one on first
// use across the whole program, not just this Registry.
func ID[T any]() ComponentID {
	return componentIDFor[T]()
}

// Register ensures T has a pool in r, creating one (reserved to r's
// default capacity) on first use. Idempotent.
func Register[T any](r *Registry) ComponentID {
	id := componentIDFor[T]()
	if r.pools[id] == nil {
		pool := NewPool[T]()
		pool.setLogger(r.logger)
		if r.defaultCap > 0 {
			pool.Reserve(r.defaultCap)
		}
		r.pools[id] = pool
		r.logger.Debug("ecs: registered component pool", zap.Uint32("component_id", uint32(id)))
	}
	return id
}

func getPool[T any](r *Registry) (*Pool[T], ComponentID, bool) {
	id := componentIDFor[T]()
	p := r.pools[id]
	if p == nil {
		return nil, id, false
	}
	pool, ok := p.(*Pool[T])
	return pool, id, ok
}

// Create allocates a fresh entity, recycling a freed index when one is
// available. Returns ErrExhausted if the index space is full.
func (r *Registry) Create() (Entity, error) {
	e, err := r.entities.create()
	if err != nil {
		return DeadEntity, err
	}
	r.signatures.Set(e.Index(), 0)
	return e, nil
}

// Free detaches every component from e and recycles its index, bumping its
// version so stale handles into the slot are rejected. Group eviction runs
// before each pool's Remove, matching the spec's ordering requirement.
func (r *Registry) Free(e Entity) error {
	if !r.entities.isCurrent(e) {
		return wrapErr(ErrStaleEntity, "free: %s", e)
	}

	cur := r.signatures.Get(e.Index())
	for id := ComponentID(0); id < MaxComponents; id++ {
		pool := r.pools[id]
		if pool == nil || !cur.Test(id) {
			continue
		}
		next := cur.Set(id, false)
		r.reconcileRemove(e, cur, next)
		pool.Remove(e)
		cur = next
	}

	r.signatures.Set(e.Index(), 0)
	r.entities.free(e)
	return nil
}

// IsAlive reports whether e is a current, non-stale handle.
func (r *Registry) IsAlive(e Entity) bool {
	return r.entities.isCurrent(e)
}

// Resize pre-reserves the entity lifecycle's bookkeeping for n entities.
// Purely a capacity hint; behavior is unaffected if omitted.
func (r *Registry) Resize(n int) {
	if n <= cap(r.entities.inUse) {
		return
	}
	grown := make([]Entity, len(r.entities.inUse), n)
	copy(grown, r.entities.inUse)
	r.entities.inUse = grown
}

// ResizePool pre-reserves T's pool for n components, registering the type
// if this is its first use.
func ResizePool[T any](r *Registry, n int) {
	Register[T](r)
	pool, _, _ := getPool[T](r)
	pool.Reserve(n)
}

// Add attaches value as entity e's T component. Auto-registers T if this
// is its first use in r. Returns ErrDuplicateComponent if e already has a
// T, ErrStaleEntity if e is not current.
func Add[T any](r *Registry, e Entity, value T) error {
	if !r.entities.isCurrent(e) {
		return wrapErr(ErrStaleEntity, "add: %s", e)
	}
	pool, id, _ := getOrRegister[T](r)
	if pool.Contains(e) {
		return wrapErr(ErrDuplicateComponent, "add: %s already has component %d", e, id)
	}

	old := r.signatures.Get(e.Index())
	next := old.Set(id, true)
	pool.Insert(e, value)
	r.signatures.Set(e.Index(), next)
	r.reconcileAdd(e, old, next)
	return nil
}

// Emplace constructs entity e's T component in place via init, called
// directly against the destination slot. Same preconditions as Add.
func Emplace[T any](r *Registry, e Entity, init func(*T)) error {
	if !r.entities.isCurrent(e) {
		return wrapErr(ErrStaleEntity, "emplace: %s", e)
	}
	pool, id, _ := getOrRegister[T](r)
	if pool.Contains(e) {
		return wrapErr(ErrDuplicateComponent, "emplace: %s already has component %d", e, id)
	}

	old := r.signatures.Get(e.Index())
	next := old.Set(id, true)
	pool.Emplace(e, init)
	r.signatures.Set(e.Index(), next)
	r.reconcileAdd(e, old, next)
	return nil
}

// Replace overwrites entity e's existing T component. Never auto-inserts:
// returns ErrMissingComponent if e has no T. Never changes e's signature,
// so it never reconciles groups.
func Replace[T any](r *Registry, e Entity, value T) error {
	if !r.entities.isCurrent(e) {
		return wrapErr(ErrStaleEntity, "replace: %s", e)
	}
	pool, id, ok := getPool[T](r)
	if !ok {
		return wrapErr(ErrNotRegistered, "replace: component %d", id)
	}
	if !pool.Replace(e, value) {
		return wrapErr(ErrMissingComponent, "replace: %s has no component %d", e, id)
	}
	return nil
}

// Remove drops entity e's T component. Returns ErrMissingComponent if e
// has no T.
func Remove[T any](r *Registry, e Entity) error {
	if !r.entities.isCurrent(e) {
		return wrapErr(ErrStaleEntity, "remove: %s", e)
	}
	pool, id, ok := getPool[T](r)
	if !ok {
		return wrapErr(ErrNotRegistered, "remove: component %d", id)
	}
	if !pool.Contains(e) {
		return wrapErr(ErrMissingComponent, "remove: %s has no component %d", e, id)
	}

	old := r.signatures.Get(e.Index())
	next := old.Set(id, false)
	r.reconcileRemove(e, old, next)
	pool.Remove(e)
	r.signatures.Set(e.Index(), next)
	return nil
}

// Get returns a pointer to entity e's T component, or (nil, false) if e
// has none or T was never registered.
func Get[T any](r *Registry, e Entity) (*T, bool) {
	pool, _, ok := getPool[T](r)
	if !ok {
		return nil, false
	}
	return pool.Get(e)
}

// Has reports whether entity e currently carries a T component.
func Has[T any](r *Registry, e Entity) bool {
	pool, _, ok := getPool[T](r)
	if !ok {
		return false
	}
	return pool.Contains(e)
}

// GetMany2 returns pointers to entity e's A and B components in one call,
// each nil if e lacks it or the type was never registered. Mirrors
// original_source/SparseSetECS/Registry.h's GetComponents<Ts...>, which
// returns a tuple of possibly-null pointers rather than failing the whole
// call when one component is absent.
func GetMany2[A, B any](r *Registry, e Entity) (*A, *B) {
	a, _ := Get[A](r, e)
	b, _ := Get[B](r, e)
	return a, b
}

// GetMany3 is GetMany2 generalized to three component types.
func GetMany3[A, B, C any](r *Registry, e Entity) (*A, *B, *C) {
	a, _ := Get[A](r, e)
	b, _ := Get[B](r, e)
	c, _ := Get[C](r, e)
	return a, b, c
}

// GetMany4 is GetMany2 generalized to four component types.
func GetMany4[A, B, C, D any](r *Registry, e Entity) (*A, *B, *C, *D) {
	a, _ := Get[A](r, e)
	b, _ := Get[B](r, e)
	c, _ := Get[C](r, e)
	d, _ := Get[D](r, e)
	return a, b, c, d
}

// AllOf reports whether e carries every component in ids.
func AllOf(r *Registry, e Entity, ids ...ComponentID) bool {
	sig := r.signatures.Get(e.Index())
	for _, id := range ids {
		if !sig.Test(id) {
			return false
		}
	}
	return true
}

// AnyOf reports whether e carries at least one component in ids.
func AnyOf(r *Registry, e Entity, ids ...ComponentID) bool {
	sig := r.signatures.Get(e.Index())
	for _, id := range ids {
		if sig.Test(id) {
			return true
		}
	}
	return false
}

func getOrRegister[T any](r *Registry) (*Pool[T], ComponentID, bool) {
	Register[T](r)
	return getPool[T](r)
}

// reconcileAdd runs after a component is added to e, advancing e into the
// prefix of every owned group whose signature newly became satisfied.
func (r *Registry) reconcileAdd(e Entity, old, next Signature) {
	for _, g := range r.groups {
		if g.pureFilter {
			continue
		}
		wasMember := old.Contains(g.allSig)
		isMember := next.Contains(g.allSig)
		if !wasMember && isMember {
			g.promote(e)
		}
	}
}

// reconcileRemove runs before a component is removed from e, evicting e
// from every owned group whose signature will no longer be satisfied. Must
// run before the pool's own Remove so that promote/evict's pool.Swap calls
// still see e's old packed slot.
func (r *Registry) reconcileRemove(e Entity, old, next Signature) {
	for _, g := range r.groups {
		if g.pureFilter {
			continue
		}
		wasMember := old.Contains(g.allSig)
		isMember := next.Contains(g.allSig)
		if wasMember && !isMember {
			g.evict(e)
		}
	}
}

// DestroyGroup detaches g from every pool it owns and drops it from r's
// group list. The prefix packing already present in each owned pool is
// left exactly as-is; nothing is unpacked or moved.
func (r *Registry) DestroyGroup(g *Group) {
	for _, id := range g.ownedIDs {
		if pool := r.pools[id]; pool != nil && pool.owner() == g {
			pool.setOwner(nil)
		}
	}
	for i, candidate := range r.groups {
		if candidate == g {
			r.groups = append(r.groups[:i], r.groups[i+1:]...)
			break
		}
	}
}
