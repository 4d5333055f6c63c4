package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gvA struct{ N int }
type gvB struct{ N int }
type gvC struct{ N int }

func Test_GroupView3_VisitsAllThreeComponents(t *testing.T) {
	r := NewRegistry(0)
	g, err := Owned[gvC](Owned[gvB](Owned[gvA](NewGroupBuilder(r)))).Build()
	require.NoError(t, err)

	e, _ := r.Create()
	require.NoError(t, Add(r, e, gvA{1}))
	require.NoError(t, Add(r, e, gvB{2}))
	require.NoError(t, Add(r, e, gvC{3}))

	view := NewGroupView3[gvA, gvB, gvC](g)
	var sumN int
	view.ForEach(func(_ Entity, a *gvA, b *gvB, c *gvC) {
		sumN = a.N + b.N + c.N
	})

	assert.Equal(t, 6, sumN)
	assert.Equal(t, 1, view.Size())
}

func Test_GroupView2_PanicsOnDeclarationOrderMismatch(t *testing.T) {
	r := NewRegistry(0)
	g, err := Owned[gvB](Owned[gvA](NewGroupBuilder(r))).Build()
	require.NoError(t, err)

	assert.Panics(t, func() {
		NewGroupView2[gvB, gvA](g)
	})
}
