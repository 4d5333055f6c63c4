package ecs

// groupSpec records one wrapped component type in a group's declaration
// order, tagged owned or partial.
type groupSpec struct {
	id    ComponentID
	owned bool
}

// Group maintains the prefix invariant over one or more owned pools: the
// entities in packed slots [0, endIndex) of every owned pool are exactly
// those whose signature satisfies allSig, in the same relative order
// across all owned pools. A group with no owned pools is a read-only
// filter with no prefix to maintain; its "size" is computed on demand by
// scanning the referenced pool that was smallest when the group was built.
//
// Grounded on _examples/original_source/SparseSetECS/Registry.h's
// m_MoveEntityIntoGroup / CreateGroup and GroupData.h's owned/partial/
// affected signature split, generalized from the C++'s all-owned-only
// group to the spec's owned+partial mix.
type Group struct {
	r          *Registry
	specs      []groupSpec
	ownedIDs   []ComponentID
	partialIDs []ComponentID
	allSig     Signature
	driverID   ComponentID
	endIndex   int
	pureFilter bool
}

// GroupBuilder accumulates a group's wrapped component list before Build
// validates it and performs the initial promotion pass.
type GroupBuilder struct {
	r     *Registry
	specs []groupSpec
}

// NewGroupBuilder starts a group declaration against r.
func NewGroupBuilder(r *Registry) *GroupBuilder {
	return &GroupBuilder{r: r}
}

// Owned adds T to the group as an owned component: its pool will be
// reordered so matching entities occupy the group's prefix.
func Owned[T any](b *GroupBuilder) *GroupBuilder {
	id := Register[T](b.r)
	b.specs = append(b.specs, groupSpec{id: id, owned: true})
	return b
}

// Partial adds T to the group as a required but non-reordered component.
func Partial[T any](b *GroupBuilder) *GroupBuilder {
	id := Register[T](b.r)
	b.specs = append(b.specs, groupSpec{id: id, owned: false})
	return b
}

// Build validates the accumulated spec and constructs the group,
// performing the initial promotion pass over already-matching entities.
func (b *GroupBuilder) Build() (*Group, error) {
	if len(b.specs) == 0 {
		return nil, wrapErr(ErrInvalidGroupSpec, "group: no component types specified")
	}

	var allSig Signature
	var ownedIDs, partialIDs []ComponentID
	for _, s := range b.specs {
		allSig = allSig.Set(s.id, true)
		if s.owned {
			ownedIDs = append(ownedIDs, s.id)
		} else {
			partialIDs = append(partialIDs, s.id)
		}
	}

	for _, id := range ownedIDs {
		pool := b.r.pools[id]
		if pool != nil && pool.owner() != nil {
			return nil, wrapErr(ErrGroupConflict, "group: pool for component %d already owned", id)
		}
	}

	g := &Group{
		r:          b.r,
		specs:      append([]groupSpec(nil), b.specs...),
		ownedIDs:   ownedIDs,
		partialIDs: partialIDs,
		allSig:     allSig,
		pureFilter: len(ownedIDs) == 0,
	}

	referenced := append(append([]ComponentID(nil), ownedIDs...), partialIDs...)

	if !g.pureFilter {
		g.driverID = smallestPool(b.r, ownedIDs)
		for _, id := range ownedIDs {
			b.r.pools[id].setOwner(g)
		}
		g.buildInitialPrefix()
	} else {
		g.driverID = smallestPool(b.r, referenced)
	}

	b.r.groups = append(b.r.groups, g)
	return g, nil
}

func smallestPool(r *Registry, ids []ComponentID) ComponentID {
	best := ids[0]
	bestSize := r.pools[best].Size()
	for _, id := range ids[1:] {
		if size := r.pools[id].Size(); size < bestSize {
			best = id
			bestSize = size
		}
	}
	return best
}

// buildInitialPrefix walks the chosen driver pool's current packed list
// (bounded at its size at the start of this pass, which stays in range
// even as later promotions permute the driver's order) and promotes every
// entity whose signature already satisfies allSig.
func (g *Group) buildInitialPrefix() {
	driver := g.r.pools[g.driverID]
	n := driver.Size()
	for k := 0; k < n; k++ {
		e := driver.Entities()[k]
		sig := g.r.signatures.Get(e.Index())
		if sig.Contains(g.allSig) {
			g.promote(e)
		}
	}
}

// promote swaps e into slot endIndex of every owned pool and advances
// endIndex, per the spec's promote(e) procedure.
func (g *Group) promote(e Entity) {
	for _, id := range g.ownedIDs {
		pool := g.r.pools[id]
		replacement := pool.Entities()[g.endIndex]
		pool.Swap(e, replacement)
	}
	g.endIndex++
}

// evict swaps e out to the slot currently at endIndex-1 in every owned
// pool and retreats endIndex, per the spec's evict(e, g) procedure. Must
// run before the underlying component's pool.Remove.
func (g *Group) evict(e Entity) {
	target := g.endIndex - 1
	for _, id := range g.ownedIDs {
		pool := g.r.pools[id]
		last := pool.Entities()[target]
		pool.Swap(e, last)
	}
	g.endIndex = target
}

func (g *Group) entityAt(k int) Entity {
	return g.r.pools[g.driverID].Entities()[k]
}

func (g *Group) forEachFiltered(fn func(Entity)) {
	for _, e := range g.r.pools[g.driverID].Entities() {
		sig := g.r.signatures.Get(e.Index())
		if sig.Contains(g.allSig) {
			fn(e)
		}
	}
}

// Size returns the number of entities currently in the group.
func (g *Group) Size() int {
	if g.pureFilter {
		count := 0
		g.forEachFiltered(func(Entity) { count++ })
		return count
	}
	return g.endIndex
}
