package ecs

// View1 iterates every entity carrying A. Since a single pool's dense
// arrays are already the full answer, this is a thin wrapper rather than
// a driven multi-pool intersection.
type View1[A any] struct {
	r *Registry
}

// NewView1 constructs a view over A, registering it if unused so far.
func NewView1[A any](r *Registry) View1[A] {
	Register[A](r)
	return View1[A]{r: r}
}

// ForEach visits every entity carrying A.
func (v View1[A]) ForEach(fn func(Entity, *A)) {
	pool, _, _ := getPool[A](v.r)
	for i, e := range pool.Entities() {
		fn(e, &pool.data[i])
	}
}

// Size returns the number of entities carrying A.
func (v View1[A]) Size() int {
	pool, _, _ := getPool[A](v.r)
	return pool.Size()
}

// View2 iterates entities carrying both A and B, driven by whichever
// pool is smaller at iteration time. Grounded on
// _examples/lzuwei-pecs-go/ecs/query.go's Iterator2/ViewBuilder, adapted
// from the teacher's filter-list query to the spec's fixed-arity view.
type View2[A, B any] struct {
	r *Registry
}

// View3 iterates entities carrying A, B, and C.
type View3[A, B, C any] struct {
	r *Registry
}

// View4 iterates entities carrying A, B, C, and D.
type View4[A, B, C, D any] struct {
	r *Registry
}

// NewView2 constructs a view over A and B, registering either type that
// has not yet been touched in r.
func NewView2[A, B any](r *Registry) View2[A, B] {
	Register[A](r)
	Register[B](r)
	return View2[A, B]{r: r}
}

// NewView3 constructs a view over A, B, and C.
func NewView3[A, B, C any](r *Registry) View3[A, B, C] {
	Register[A](r)
	Register[B](r)
	Register[C](r)
	return View3[A, B, C]{r: r}
}

// NewView4 constructs a view over A, B, C, and D.
func NewView4[A, B, C, D any](r *Registry) View4[A, B, C, D] {
	Register[A](r)
	Register[B](r)
	Register[C](r)
	Register[D](r)
	return View4[A, B, C, D]{r: r}
}

func driverEntities(r *Registry, ids ...ComponentID) []Entity {
	best := ids[0]
	bestSize := r.pools[best].Size()
	for _, id := range ids[1:] {
		if size := r.pools[id].Size(); size < bestSize {
			best = id
			bestSize = size
		}
	}
	return r.pools[best].Entities()
}

// ForEach visits every entity whose signature contains both components,
// calling fn with pointers to each. Skips entities missing either
// component, the practical idiom for most call sites.
func (v View2[A, B]) ForEach(fn func(Entity, *A, *B)) {
	a, idA, _ := getPool[A](v.r)
	b, idB, _ := getPool[B](v.r)
	for _, e := range driverEntities(v.r, idA, idB) {
		pa, ok := a.Get(e)
		if !ok {
			continue
		}
		pb, ok := b.Get(e)
		if !ok {
			continue
		}
		fn(e, pa, pb)
	}
}

// ForEachAny visits every entity in the smaller of A's and B's pools,
// passing nil for whichever component is absent. This is the spec-literal
// traversal: a tuple is yielded even when incomplete. Entities missing from
// the driving pool are not visited.
func (v View2[A, B]) ForEachAny(fn func(Entity, *A, *B)) {
	a, idA, _ := getPool[A](v.r)
	b, idB, _ := getPool[B](v.r)
	for _, e := range driverEntities(v.r, idA, idB) {
		pa, _ := a.Get(e)
		pb, _ := b.Get(e)
		if pa == nil && pb == nil {
			continue
		}
		fn(e, pa, pb)
	}
}

// Size returns an upper bound on the number of entities ForEach may visit:
// the size of whichever of A, B is smaller. The true yield count can be
// less, since it also requires the other component.
func (v View2[A, B]) Size() int {
	_, idA, _ := getPool[A](v.r)
	_, idB, _ := getPool[B](v.r)
	return len(driverEntities(v.r, idA, idB))
}

// ForEach visits every entity carrying A, B, and C.
func (v View3[A, B, C]) ForEach(fn func(Entity, *A, *B, *C)) {
	a, idA, _ := getPool[A](v.r)
	b, idB, _ := getPool[B](v.r)
	c, idC, _ := getPool[C](v.r)
	for _, e := range driverEntities(v.r, idA, idB, idC) {
		pa, ok := a.Get(e)
		if !ok {
			continue
		}
		pb, ok := b.Get(e)
		if !ok {
			continue
		}
		pc, ok := c.Get(e)
		if !ok {
			continue
		}
		fn(e, pa, pb, pc)
	}
}

// ForEachAny visits every entity in the smallest of the A, B, C pools,
// passing nil for each absent component.
func (v View3[A, B, C]) ForEachAny(fn func(Entity, *A, *B, *C)) {
	a, idA, _ := getPool[A](v.r)
	b, idB, _ := getPool[B](v.r)
	c, idC, _ := getPool[C](v.r)
	for _, e := range driverEntities(v.r, idA, idB, idC) {
		pa, _ := a.Get(e)
		pb, _ := b.Get(e)
		pc, _ := c.Get(e)
		if pa == nil && pb == nil && pc == nil {
			continue
		}
		fn(e, pa, pb, pc)
	}
}

// Size returns an upper bound on ForEach's visit count.
func (v View3[A, B, C]) Size() int {
	_, idA, _ := getPool[A](v.r)
	_, idB, _ := getPool[B](v.r)
	_, idC, _ := getPool[C](v.r)
	return len(driverEntities(v.r, idA, idB, idC))
}

// ForEach visits every entity carrying A, B, C, and D.
func (v View4[A, B, C, D]) ForEach(fn func(Entity, *A, *B, *C, *D)) {
	a, idA, _ := getPool[A](v.r)
	b, idB, _ := getPool[B](v.r)
	c, idC, _ := getPool[C](v.r)
	d, idD, _ := getPool[D](v.r)
	for _, e := range driverEntities(v.r, idA, idB, idC, idD) {
		pa, ok := a.Get(e)
		if !ok {
			continue
		}
		pb, ok := b.Get(e)
		if !ok {
			continue
		}
		pc, ok := c.Get(e)
		if !ok {
			continue
		}
		pd, ok := d.Get(e)
		if !ok {
			continue
		}
		fn(e, pa, pb, pc, pd)
	}
}

// ForEachAny visits every entity in the smallest of the A, B, C, D pools,
// passing nil for each absent component.
func (v View4[A, B, C, D]) ForEachAny(fn func(Entity, *A, *B, *C, *D)) {
	a, idA, _ := getPool[A](v.r)
	b, idB, _ := getPool[B](v.r)
	c, idC, _ := getPool[C](v.r)
	d, idD, _ := getPool[D](v.r)
	for _, e := range driverEntities(v.r, idA, idB, idC, idD) {
		pa, _ := a.Get(e)
		pb, _ := b.Get(e)
		pc, _ := c.Get(e)
		pd, _ := d.Get(e)
		if pa == nil && pb == nil && pc == nil && pd == nil {
			continue
		}
		fn(e, pa, pb, pc, pd)
	}
}

// Size returns an upper bound on ForEach's visit count.
func (v View4[A, B, C, D]) Size() int {
	_, idA, _ := getPool[A](v.r)
	_, idB, _ := getPool[B](v.r)
	_, idC, _ := getPool[C](v.r)
	_, idD, _ := getPool[D](v.r)
	return len(driverEntities(v.r, idA, idB, idC, idD))
}
