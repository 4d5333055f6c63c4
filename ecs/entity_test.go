package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Entity_IndexAndVersionRoundTrip(t *testing.T) {
	e := newEntity(12345, 7)

	assert.Equal(t, uint32(12345), e.Index())
	assert.Equal(t, uint32(7), e.Version())
	assert.True(t, e.Valid())
}

func Test_Entity_DeadIsInvalid(t *testing.T) {
	assert.False(t, DeadEntity.Valid())
}

func Test_EntityLifecycle_CreateIssuesFreshIndices(t *testing.T) {
	el := newEntityLifecycle()

	a, err := el.create()
	require.NoError(t, err)
	b, err := el.create()
	require.NoError(t, err)

	assert.Equal(t, uint32(0), a.Index())
	assert.Equal(t, uint32(1), b.Index())
	assert.Equal(t, uint32(0), a.Version())
}

func Test_EntityLifecycle_FreeThenCreateRecyclesIndexWithBumpedVersion(t *testing.T) {
	el := newEntityLifecycle()
	a, err := el.create()
	require.NoError(t, err)

	el.free(a)
	b, err := el.create()
	require.NoError(t, err)

	assert.Equal(t, a.Index(), b.Index())
	assert.Equal(t, a.Version()+1, b.Version())
	assert.NotEqual(t, a, b)
}

func Test_EntityLifecycle_IsCurrentRejectsStaleHandle(t *testing.T) {
	el := newEntityLifecycle()
	a, err := el.create()
	require.NoError(t, err)

	el.free(a)
	b, err := el.create()
	require.NoError(t, err)

	assert.True(t, el.isCurrent(b))
	assert.False(t, el.isCurrent(a))
}

func Test_EntityLifecycle_ExhaustionReported(t *testing.T) {
	el := newEntityLifecycle()
	el.nextFresh = MaxEntities

	_, err := el.create()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExhausted)
}

func Test_EntityLifecycle_FreeListReusesMostRecentlyFreedFirst(t *testing.T) {
	el := newEntityLifecycle()
	a, _ := el.create()
	b, _ := el.create()

	el.free(a)
	el.free(b)

	first, err := el.create()
	require.NoError(t, err)
	assert.Equal(t, b.Index(), first.Index())

	second, err := el.create()
	require.NoError(t, err)
	assert.Equal(t, a.Index(), second.Index())
}
