package ecs

import "go.uber.org/zap"

// nullSlot marks a sparse-side slot as unoccupied. Unlike the spec's
// conceptual 2^20-wide paged NullIndex, a pool's sparse side here is a
// flat, lazily-grown slice (adapted from the teacher's SparseSet.sparse
// []int32) rather than a page-table, since a pool's domain is bounded by
// however many distinct entity indices have ever touched it, not by the
// full MaxEntities range the registry's signature table must cover. See
// DESIGN.md for why this doesn't change any observable behavior. The slice
// grows geometrically so that Insert stays amortized O(1).
const nullSlot = -1

// Pool is a sparse-set store for component type T: a dense entity array,
// a parallel dense component-value array, and a sparse side mapping
// entity index to dense slot. Insert/Remove/Get/Contains are O(1); the
// dense arrays are contiguous and safe to iterate directly.
type Pool[T any] struct {
	sparse []int32
	dense  []Entity
	data   []T
	owning *Group
	logger *zap.Logger
}

// NewPool creates an empty pool for component type T.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{logger: noopLogger()}
}

func (p *Pool[T]) setLogger(l *zap.Logger) {
	p.logger = l
}

// logGrowth reports a capacity increase against beforeCap, the dense
// buffer's capacity just before the mutation that may have grown it.
func (p *Pool[T]) logGrowth(beforeCap int) {
	if after := cap(p.dense); after > beforeCap {
		p.logger.Debug("ecs: component pool grew", zap.Int("new_capacity", after))
	}
}

func (p *Pool[T]) ensureSparse(index uint32) {
	if int(index) < len(p.sparse) {
		return
	}
	size := int(index) + 1
	if doubled := 2 * len(p.sparse); doubled > size {
		size = min(doubled, MaxEntities+1)
	}
	grown := make([]int32, size)
	for i := range grown {
		grown[i] = nullSlot
	}
	copy(grown, p.sparse)
	p.sparse = grown
}

// Contains reports whether e currently has a component in this pool.
func (p *Pool[T]) Contains(e Entity) bool {
	idx := e.Index()
	if int(idx) >= len(p.sparse) {
		return false
	}
	return p.sparse[idx] != nullSlot
}

// Get returns a pointer to e's component value, or nil if absent.
func (p *Pool[T]) Get(e Entity) (*T, bool) {
	if !p.Contains(e) {
		return nil, false
	}
	slot := p.sparse[e.Index()]
	return &p.data[slot], true
}

// Insert appends e and value to the packed arrays. Precondition:
// !p.Contains(e). Returns false (no-op) if the precondition is violated.
func (p *Pool[T]) Insert(e Entity, value T) bool {
	if p.Contains(e) {
		return false
	}
	idx := e.Index()
	p.ensureSparse(idx)

	beforeCap := cap(p.dense)
	slot := int32(len(p.dense))
	p.dense = append(p.dense, e)
	p.data = append(p.data, value)
	p.sparse[idx] = slot
	p.logGrowth(beforeCap)
	return true
}

// Emplace is Insert, but constructs the value in place via init, called
// directly against the destination slot rather than moving in a
// pre-built value — the closest Go idiom to the spec's "construct
// without an intervening move".
func (p *Pool[T]) Emplace(e Entity, init func(*T)) bool {
	if p.Contains(e) {
		return false
	}
	idx := e.Index()
	p.ensureSparse(idx)

	beforeCap := cap(p.dense)
	var zero T
	p.dense = append(p.dense, e)
	p.data = append(p.data, zero)
	slot := len(p.data) - 1
	if init != nil {
		init(&p.data[slot])
	}
	p.sparse[idx] = int32(slot)
	p.logGrowth(beforeCap)
	return true
}

// Replace overwrites e's existing component value. Precondition:
// p.Contains(e). Returns false (no-op) if the precondition is violated.
func (p *Pool[T]) Replace(e Entity, value T) bool {
	if !p.Contains(e) {
		return false
	}
	p.data[p.sparse[e.Index()]] = value
	return true
}

// Remove drops e's component, swapping the last packed slot into the
// vacated one. Precondition: p.Contains(e). Returns false (no-op) if the
// precondition is violated.
func (p *Pool[T]) Remove(e Entity) bool {
	if !p.Contains(e) {
		return false
	}
	idx := e.Index()
	k := p.sparse[idx]
	m := int32(len(p.dense) - 1)

	if k != m {
		lastEntity := p.dense[m]
		p.dense[k] = lastEntity
		p.data[k] = p.data[m]
		p.sparse[lastEntity.Index()] = k
	}

	p.sparse[idx] = nullSlot
	var zero T
	p.data[m] = zero
	p.dense = p.dense[:m]
	p.data = p.data[:m]
	return true
}

// Swap exchanges the packed slots of a and b, keeping the sparse side
// consistent. Both entities must already be present; used internally by
// group promote/evict to permute a pool's prefix.
func (p *Pool[T]) Swap(a, b Entity) {
	if a == b {
		return
	}
	ia, ib := p.sparse[a.Index()], p.sparse[b.Index()]
	p.dense[ia], p.dense[ib] = p.dense[ib], p.dense[ia]
	p.data[ia], p.data[ib] = p.data[ib], p.data[ia]
	p.sparse[a.Index()], p.sparse[b.Index()] = ib, ia
}

// Reserve pre-allocates the dense and data buffers to hold at least
// capacity elements. No-op if they already do.
func (p *Pool[T]) Reserve(capacity int) {
	if capacity <= cap(p.dense) {
		return
	}
	grownDense := make([]Entity, len(p.dense), capacity)
	copy(grownDense, p.dense)
	p.dense = grownDense

	grownData := make([]T, len(p.data), capacity)
	copy(grownData, p.data)
	p.data = grownData

	p.logger.Debug("ecs: component pool reserved", zap.Int("new_capacity", capacity))
}

// Size returns the number of live components in the pool.
func (p *Pool[T]) Size() int {
	return len(p.dense)
}

// Capacity returns the current backing capacity of the dense buffers.
func (p *Pool[T]) Capacity() int {
	return cap(p.dense)
}

// Entities returns the packed entity list, in dense order.
func (p *Pool[T]) Entities() []Entity {
	return p.dense
}

// All returns the packed component values, aligned with Entities().
// Iterating it directly is random-access-equivalent and undefined if the
// pool mutates concurrently with the iteration.
func (p *Pool[T]) All() []T {
	return p.data
}

// At returns a direct pointer into dense slot k and the entity occupying
// it, without a sparse lookup — used by owned-group iteration, which
// already knows k is within the group's prefix.
func (p *Pool[T]) At(k int) (*T, Entity) {
	return &p.data[k], p.dense[k]
}

func (p *Pool[T]) owner() *Group {
	return p.owning
}

func (p *Pool[T]) setOwner(g *Group) {
	p.owning = g
}

// iPool is the type-erased face of Pool[T] the Registry uses for
// operations that don't need to know the component type: dropping all of
// an entity's components on Free, and the group machinery's swap-by-ID.
// This is the pool's value-ops descriptor resolved to an interface
// rather than a function-pointer vtable, per the monomorphization
// allowance of the design notes (see DESIGN.md).
type iPool interface {
	Contains(e Entity) bool
	Remove(e Entity) bool
	Swap(a, b Entity)
	Size() int
	Entities() []Entity
	Reserve(capacity int)
	owner() *Group
	setOwner(g *Group)
	setLogger(l *zap.Logger)
}
