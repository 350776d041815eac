package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theflywheel/chaintable/list"
)

// collect walks the list head to tail with a fresh cursor.
func collect[T any](l *list.List[T]) []T {
	var out []T
	for c := l.Cursor(); c.Valid(); c.Next() {
		out = append(out, *c.Get())
	}
	return out
}

func TestNilList(t *testing.T) {
	var l *list.List[string]

	assert.Equal(t, -1, l.Len())
	assert.ErrorIs(t, l.Prepend("one"), list.ErrNilList)
	assert.ErrorIs(t, l.Append("one"), list.ErrNilList)

	_, err := l.PopHead()
	assert.ErrorIs(t, err, list.ErrNilList)
	_, err = l.PopTail()
	assert.ErrorIs(t, err, list.ErrNilList)

	assert.Nil(t, l.Cursor())
	assert.NotPanics(t, func() { l.Free(nil) })
}

func TestEmptyList(t *testing.T) {
	l := list.New[int]()
	require.NotNil(t, l)
	assert.Equal(t, 0, l.Len())

	_, err := l.PopHead()
	assert.ErrorIs(t, err, list.ErrEmpty)
	_, err = l.PopTail()
	assert.ErrorIs(t, err, list.ErrEmpty)
	assert.Equal(t, 0, l.Len())

	_, ok := l.Front()
	assert.False(t, ok)
	_, ok = l.Back()
	assert.False(t, ok)
}

func TestPrependAppend(t *testing.T) {
	l := list.New[string]()
	require.NoError(t, l.Append("two"))
	require.NoError(t, l.Prepend("one"))
	require.NoError(t, l.Append("three"))

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"one", "two", "three"}, collect(l))

	front, ok := l.Front()
	require.True(t, ok)
	assert.Equal(t, "one", front)
	back, ok := l.Back()
	require.True(t, ok)
	assert.Equal(t, "three", back)
}

func TestPopHeadTail(t *testing.T) {
	l := list.New[int]()
	for i := 1; i <= 4; i++ {
		require.NoError(t, l.Append(i))
	}

	v, err := l.PopHead()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = l.PopTail()
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	assert.Equal(t, []int{2, 3}, collect(l))

	v, err = l.PopTail()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	v, err = l.PopHead()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	assert.Equal(t, 0, l.Len())
	assert.Empty(t, collect(l))

	// the list is reusable once drained
	require.NoError(t, l.Prepend(9))
	assert.Equal(t, []int{9}, collect(l))
}

func TestFree(t *testing.T) {
	l := list.New[string]()
	for _, s := range []string{"a", "b", "c"} {
		require.NoError(t, l.Append(s))
	}

	var freed []string
	l.Free(func(s string) { freed = append(freed, s) })

	assert.Equal(t, []string{"a", "b", "c"}, freed)
	assert.Equal(t, 0, l.Len())
}

func TestFreeWithoutDestructor(t *testing.T) {
	l := list.New[int]()
	require.NoError(t, l.Append(1))
	l.Free(nil)
	assert.Equal(t, 0, l.Len())
}

func TestLenTracksMutations(t *testing.T) {
	l := list.New[int]()
	want := 0
	for i := 0; i < 100; i++ {
		switch i % 5 {
		case 0, 1:
			require.NoError(t, l.Append(i))
			want++
		case 2:
			require.NoError(t, l.Prepend(i))
			want++
		case 3:
			_, err := l.PopHead()
			require.NoError(t, err)
			want--
		case 4:
			c := l.Cursor()
			c.Next()
			_, err := c.Remove()
			require.NoError(t, err)
			want--
		}
		require.Equal(t, want, l.Len())
		require.Len(t, collect(l), want)
	}
}
