package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gPos struct{ X int }
type gVel struct{ X int }
type gTag struct{}

func Test_GroupBuilder_EmptySpecIsInvalid(t *testing.T) {
	_, err := NewGroupBuilder(NewRegistry(0)).Build()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGroupSpec)
}

func Test_GroupBuilder_ConflictingOwnershipIsRejected(t *testing.T) {
	r := NewRegistry(0)
	_, err := Owned[gPos](NewGroupBuilder(r)).Build()
	require.NoError(t, err)

	_, err = Owned[gPos](NewGroupBuilder(r)).Build()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGroupConflict)
}

func Test_Group_PromotesAlreadyMatchingEntitiesOnBuild(t *testing.T) {
	r := NewRegistry(0)
	e, _ := r.Create()
	require.NoError(t, Add(r, e, gPos{1}))
	require.NoError(t, Add(r, e, gVel{2}))

	g, err := Owned[gVel](Owned[gPos](NewGroupBuilder(r))).Build()
	require.NoError(t, err)

	assert.Equal(t, 1, g.Size())
}

func Test_Group_AddingMissingComponentPromotesEntityIntoGroup(t *testing.T) {
	r := NewRegistry(0)
	g, err := Owned[gVel](Owned[gPos](NewGroupBuilder(r))).Build()
	require.NoError(t, err)

	e, _ := r.Create()
	require.NoError(t, Add(r, e, gPos{1}))
	assert.Equal(t, 0, g.Size())

	require.NoError(t, Add(r, e, gVel{2}))
	assert.Equal(t, 1, g.Size())
}

func Test_Group_RemovingComponentEvictsEntityFromGroup(t *testing.T) {
	r := NewRegistry(0)
	g, err := Owned[gVel](Owned[gPos](NewGroupBuilder(r))).Build()
	require.NoError(t, err)

	e, _ := r.Create()
	require.NoError(t, Add(r, e, gPos{1}))
	require.NoError(t, Add(r, e, gVel{2}))
	require.Equal(t, 1, g.Size())

	require.NoError(t, Remove[gVel](r, e))

	assert.Equal(t, 0, g.Size())
}

func Test_Group_MaintainsPrefixAcrossMultipleEntities(t *testing.T) {
	r := NewRegistry(0)
	g, err := Owned[gVel](Owned[gPos](NewGroupBuilder(r))).Build()
	require.NoError(t, err)

	var entities []Entity
	for i := 0; i < 5; i++ {
		e, _ := r.Create()
		require.NoError(t, Add(r, e, gPos{i}))
		require.NoError(t, Add(r, e, gVel{i * 10}))
		entities = append(entities, e)
	}

	require.NoError(t, Remove[gVel](r, entities[2]))

	assert.Equal(t, 4, g.Size())
	view := NewGroupView2[gPos, gVel](g)
	seen := map[Entity]bool{}
	view.ForEach(func(e Entity, pos *gPos, vel *gVel) {
		seen[e] = true
	})
	assert.Len(t, seen, 4)
	assert.False(t, seen[entities[2]])
}

func Test_Group_PartialComponentIsRequiredButNotReordered(t *testing.T) {
	r := NewRegistry(0)
	g, err := Partial[gVel](Owned[gPos](NewGroupBuilder(r))).Build()
	require.NoError(t, err)

	e, _ := r.Create()
	require.NoError(t, Add(r, e, gPos{1}))
	assert.Equal(t, 0, g.Size())

	require.NoError(t, Add(r, e, gVel{2}))
	assert.Equal(t, 1, g.Size())

	view := NewGroupView2[gPos, gVel](g)
	var got gVel
	view.ForEach(func(_ Entity, pos *gPos, vel *gVel) {
		got = *vel
	})
	assert.Equal(t, gVel{2}, got)
}

func Test_Group_PureFilterComputesSizeLiveWithNoOwnedPools(t *testing.T) {
	r := NewRegistry(0)
	g, err := Partial[gVel](Partial[gPos](NewGroupBuilder(r))).Build()
	require.NoError(t, err)

	e, _ := r.Create()
	require.NoError(t, Add(r, e, gPos{1}))
	assert.Equal(t, 0, g.Size())

	require.NoError(t, Add(r, e, gVel{2}))
	assert.Equal(t, 1, g.Size())

	require.NoError(t, Remove[gVel](r, e))
	assert.Equal(t, 0, g.Size())
}

func Test_Registry_FreeEvictsFromGroupExactlyOnce(t *testing.T) {
	r := NewRegistry(0)
	g, err := Owned[gVel](Owned[gPos](NewGroupBuilder(r))).Build()
	require.NoError(t, err)

	var entities []Entity
	for i := 0; i < 3; i++ {
		e, _ := r.Create()
		require.NoError(t, Add(r, e, gPos{i}))
		require.NoError(t, Add(r, e, gVel{i * 10}))
		entities = append(entities, e)
	}
	require.Equal(t, 3, g.Size())

	require.NoError(t, r.Free(entities[1]))

	assert.Equal(t, 2, g.Size())
	posPool, _, _ := getPool[gPos](r)
	velPool, _, _ := getPool[gVel](r)
	assert.Equal(t, 2, posPool.Size())
	assert.Equal(t, 2, velPool.Size())
}

func Test_Registry_DestroyGroupDetachesOwnershipWithoutMovingData(t *testing.T) {
	r := NewRegistry(0)
	g, err := Owned[gPos](NewGroupBuilder(r)).Build()
	require.NoError(t, err)

	e, _ := r.Create()
	require.NoError(t, Add(r, e, gPos{1}))

	r.DestroyGroup(g)

	pool, _, _ := getPool[gPos](r)
	assert.Nil(t, pool.owner())
	assert.True(t, pool.Contains(e))
}
