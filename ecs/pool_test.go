package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Pool_InsertAndGet(t *testing.T) {
	p := NewPool[int]()
	e := newEntity(5, 0)

	ok := p.Insert(e, 42)

	assert.True(t, ok)
	v, found := p.Get(e)
	assert.True(t, found)
	assert.Equal(t, 42, *v)
}

func Test_Pool_InsertDuplicateIsNoOp(t *testing.T) {
	p := NewPool[int]()
	e := newEntity(5, 0)
	p.Insert(e, 1)

	ok := p.Insert(e, 2)

	assert.False(t, ok)
	v, _ := p.Get(e)
	assert.Equal(t, 1, *v)
}

func Test_Pool_RemoveSwapsLastIntoVacatedSlot(t *testing.T) {
	p := NewPool[int]()
	a, b, c := newEntity(1, 0), newEntity(2, 0), newEntity(3, 0)
	p.Insert(a, 10)
	p.Insert(b, 20)
	p.Insert(c, 30)

	ok := p.Remove(a)

	assert.True(t, ok)
	assert.False(t, p.Contains(a))
	assert.Equal(t, 2, p.Size())
	// c was the last packed slot; removing a's slot 0 should have moved c there.
	assert.Equal(t, []Entity{c, b}, p.Entities())
}

func Test_Pool_RemoveNonMemberIsNoOp(t *testing.T) {
	p := NewPool[int]()
	e := newEntity(1, 0)

	ok := p.Remove(e)

	assert.False(t, ok)
}

func Test_Pool_ReplaceRequiresExistingMember(t *testing.T) {
	p := NewPool[int]()
	e := newEntity(1, 0)

	assert.False(t, p.Replace(e, 9))

	p.Insert(e, 1)
	assert.True(t, p.Replace(e, 9))
	v, _ := p.Get(e)
	assert.Equal(t, 9, *v)
}

func Test_Pool_SwapExchangesSlotsAndKeepsSparseConsistent(t *testing.T) {
	p := NewPool[string]()
	a, b := newEntity(1, 0), newEntity(2, 0)
	p.Insert(a, "a")
	p.Insert(b, "b")

	p.Swap(a, b)

	assert.Equal(t, []Entity{b, a}, p.Entities())
	va, _ := p.Get(a)
	vb, _ := p.Get(b)
	assert.Equal(t, "a", *va)
	assert.Equal(t, "b", *vb)
}

func Test_Pool_EmplaceInitializesInPlace(t *testing.T) {
	type vec struct{ X, Y int }
	p := NewPool[vec]()
	e := newEntity(1, 0)

	p.Emplace(e, func(v *vec) { v.X, v.Y = 3, 4 })

	v, ok := p.Get(e)
	assert.True(t, ok)
	assert.Equal(t, vec{3, 4}, *v)
}

func Test_Pool_AtReturnsDirectSlotAccess(t *testing.T) {
	p := NewPool[int]()
	e := newEntity(7, 0)
	p.Insert(e, 100)

	v, entity := p.At(0)

	assert.Equal(t, 100, *v)
	assert.Equal(t, e, entity)
}
