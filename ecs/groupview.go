package ecs

// GroupView2 iterates a built Group declared over exactly two component
// types, in the order they were passed to NewGroupBuilder's Owned/Partial
// calls. An owned component is read via its pool's packed position k
// (pool.At), since the group guarantees slots [0, endIndex) already match;
// a partial component is looked up by entity (pool.Get), since its pool
// isn't reordered by this group.
type GroupView2[A, B any] struct {
	g            *Group
	poolA, poolB iPool
}

// NewGroupView2 binds a built group to component types A and B, checked
// against the builder's declared order. Panics if g was not built with
// exactly A then B, since a mismatched view would silently read the wrong
// columns.
func NewGroupView2[A, B any](g *Group) GroupView2[A, B] {
	mustMatch(g, ID[A](), ID[B]())
	return GroupView2[A, B]{g: g, poolA: g.r.pools[ID[A]()], poolB: g.r.pools[ID[B]()]}
}

// Size returns the number of entities currently in the group.
func (v GroupView2[A, B]) Size() int {
	return v.g.Size()
}

// ForEach visits every entity in the group with pointers to its A and B
// components.
func (v GroupView2[A, B]) ForEach(fn func(Entity, *A, *B)) {
	g := v.g
	if g.pureFilter {
		g.forEachFiltered(func(e Entity) {
			a, _ := v.poolA.(*Pool[A]).Get(e)
			b, _ := v.poolB.(*Pool[B]).Get(e)
			fn(e, a, b)
		})
		return
	}

	for k := 0; k < g.endIndex; k++ {
		e := g.entityAt(k)
		a := componentAt[A](v.poolA, g, k, e)
		b := componentAt[B](v.poolB, g, k, e)
		fn(e, a, b)
	}
}

// GroupView3 is GroupView2 generalized to three component types.
type GroupView3[A, B, C any] struct {
	g                   *Group
	poolA, poolB, poolC iPool
}

// NewGroupView3 binds a built group to component types A, B, and C,
// checked against the builder's declared order.
func NewGroupView3[A, B, C any](g *Group) GroupView3[A, B, C] {
	mustMatch(g, ID[A](), ID[B](), ID[C]())
	return GroupView3[A, B, C]{g: g, poolA: g.r.pools[ID[A]()], poolB: g.r.pools[ID[B]()], poolC: g.r.pools[ID[C]()]}
}

// Size returns the number of entities currently in the group.
func (v GroupView3[A, B, C]) Size() int {
	return v.g.Size()
}

// ForEach visits every entity in the group with pointers to its A, B, and
// C components.
func (v GroupView3[A, B, C]) ForEach(fn func(Entity, *A, *B, *C)) {
	g := v.g
	if g.pureFilter {
		g.forEachFiltered(func(e Entity) {
			a, _ := v.poolA.(*Pool[A]).Get(e)
			b, _ := v.poolB.(*Pool[B]).Get(e)
			c, _ := v.poolC.(*Pool[C]).Get(e)
			fn(e, a, b, c)
		})
		return
	}

	for k := 0; k < g.endIndex; k++ {
		e := g.entityAt(k)
		a := componentAt[A](v.poolA, g, k, e)
		b := componentAt[B](v.poolB, g, k, e)
		c := componentAt[C](v.poolC, g, k, e)
		fn(e, a, b, c)
	}
}

// mustMatch panics if the group's declared specs don't name exactly ids,
// in order. A built Group's specs are fixed at Build time, so this only
// ever fires against a caller's programming error.
func mustMatch(g *Group, ids ...ComponentID) {
	if len(g.specs) != len(ids) {
		panic("ecs: group view arity does not match group declaration")
	}
	for i, id := range ids {
		if g.specs[i].id != id {
			panic("ecs: group view component order does not match group declaration")
		}
	}
}

// componentAt fetches entity e's component from pool, using the owned
// fast path (direct slot k) when the group owns this component, falling
// back to a sparse lookup for a partial component.
func componentAt[T any](pool iPool, g *Group, k int, e Entity) *T {
	typed := pool.(*Pool[T])
	if pool.owner() == g {
		v, _ := typed.At(k)
		return v
	}
	v, _ := typed.Get(e)
	return v
}
