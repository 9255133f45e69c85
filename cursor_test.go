package wavlmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorOccupiedVacant(t *testing.T) {
	m := New[int, string]()
	m.Set(1, "one")
	m.Set(2, "two")

	c := m.Cursor(1)
	assert.True(t, c.IsOccupied())
	k, v, ok := c.Entry()
	require.True(t, ok)
	assert.Equal(t, 1, k)
	assert.Equal(t, "one", v)

	c2 := m.Cursor(99)
	assert.False(t, c2.IsOccupied())
	_, _, ok = c2.Entry()
	assert.False(t, ok)
}

func TestKeyedCursorSetMorphsVacantToOccupied(t *testing.T) {
	m := New[int, string]()
	m.Set(1, "one")
	m.Set(3, "three")

	c := m.Cursor(2)
	assert.False(t, c.IsOccupied())

	_, had := c.Set("two")
	assert.False(t, had)
	assert.True(t, c.IsOccupied())
	v, ok := c.Value()
	require.True(t, ok)
	assert.Equal(t, "two", v)
	assert.True(t, m.Has(2))

	old, had := c.Set("TWO")
	assert.True(t, had)
	assert.Equal(t, "two", old)
}

func TestKeyedCursorRemoveMorphsOccupiedToVacant(t *testing.T) {
	m := New[int, string]()
	m.Set(1, "one")
	m.Set(2, "two")

	c := m.Cursor(2)
	require.True(t, c.IsOccupied())

	old, ok := c.Remove()
	assert.True(t, ok)
	assert.Equal(t, "two", old)
	assert.False(t, c.IsOccupied())
	assert.False(t, m.Has(2))

	_, ok = c.Remove()
	assert.False(t, ok)
}

func TestCursorStaleAfterExternalDelete(t *testing.T) {
	m := New[int, string]()
	m.Set(1, "one")
	m.Set(2, "two")

	c := m.Cursor(1)
	require.True(t, c.IsOccupied())

	m.Delete(1)

	assert.Panics(t, func() {
		c.IsOccupied()
	})
}

func TestCursorInsertBeforeAfter(t *testing.T) {
	m := New[int, string]()
	m.Set(10, "ten")
	m.Set(20, "twenty")

	c := m.Cursor(10)
	nc := c.InsertAfter(15, "fifteen")
	k, _ := nc.Key()
	assert.Equal(t, 15, k)
	assert.True(t, m.Has(15))

	pc := c.InsertBefore(5, "five")
	k, _ = pc.Key()
	assert.Equal(t, 5, k)
	assert.True(t, m.Has(5))
}

func TestCursorInsertOrderViolationPanics(t *testing.T) {
	m := New[int, string]()
	m.Set(10, "ten")
	m.Set(20, "twenty")

	c := m.Cursor(10)
	assert.Panics(t, func() {
		c.InsertAfter(30, "thirty") // 30 does not fall before 20
	})
	assert.Panics(t, func() {
		c.InsertBefore(15, "fifteen") // 15 does not fall before 10
	})
}

func TestCursorNavigationPastInternalGap(t *testing.T) {
	m := New[int, string]()
	m.Set(1, "one")
	m.Set(3, "three")
	m.Set(5, "five")

	gap := m.Cursor(2)
	assert.False(t, gap.IsOccupied())

	k, _ := gap.Next().Key()
	assert.Equal(t, 3, k)
	k, _ = gap.Prev().Key()
	assert.Equal(t, 1, k)
}

func TestKeyedCursorRemoveThenSetDoesNotDropSubtree(t *testing.T) {
	m := New[int, string]()
	for _, k := range []int{10, 5, 15, 3, 7, 12, 20, 1, 4, 6, 8} {
		m.Set(k, "v")
	}

	c := m.Cursor(5)
	require.True(t, c.IsOccupied())
	_, ok := c.Remove()
	assert.True(t, ok)
	assert.False(t, m.Has(5))

	// 3, 4, 6, 7 must still be reachable: removing 5 (an internal node
	// with children) must not have let a later Set on the cursor's
	// stale anchor overwrite their subtree.
	for _, k := range []int{3, 4, 6, 7} {
		assert.True(t, m.Has(k), "key %d missing after removing 5", k)
	}

	c2 := m.Cursor(5)
	_, had := c2.Set("five-again")
	assert.False(t, had)
	for _, k := range []int{3, 4, 6, 7} {
		assert.True(t, m.Has(k), "key %d lost after re-setting 5", k)
	}
}

func TestCursorNavigationAtEnds(t *testing.T) {
	m := New[int, int]()
	m.Set(1, 1)
	m.Set(2, 2)
	m.Set(3, 3)

	first := m.First()
	before := first.Prev()
	assert.False(t, before.IsOccupied())
	assert.True(t, before.Next().IsOccupied())
	k, _ := before.Next().Key()
	assert.Equal(t, 1, k)

	last := m.Last()
	after := last.Next()
	assert.False(t, after.IsOccupied())
	assert.True(t, after.Prev().IsOccupied())
	k, _ = after.Prev().Key()
	assert.Equal(t, 3, k)
}
