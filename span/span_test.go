package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-values/valid"
)

func mustStart(t *testing.T, raw int) Start {
	t.Helper()

	start, err := NewStart(raw)
	require.NoError(t, err)

	return start
}

func mustEnd(t *testing.T, raw int) End {
	t.Helper()

	end, err := NewEnd(raw)
	require.NoError(t, err)

	return end
}

func mustLength(t *testing.T, raw int) Length {
	t.Helper()

	length, err := NewLength(raw)
	require.NoError(t, err)

	return length
}

func TestScalarConstructors(t *testing.T) {
	t.Parallel()

	t.Run("non-negative values round-trip", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, mustStart(t, 0).Int())
		assert.Equal(t, 42, mustStart(t, 42).Int())
		assert.Equal(t, 0, mustEnd(t, 0).Int())
		assert.Equal(t, 7, mustEnd(t, 7).Int())
		assert.Equal(t, 0, mustLength(t, 0).Int())
		assert.Equal(t, 3, mustLength(t, 3).Int())
	})

	t.Run("negative values are rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewStart(-1)
		assert.ErrorIs(t, err, valid.ErrValidation)

		_, err = NewEnd(-1)
		assert.ErrorIs(t, err, valid.ErrValidation)

		_, err = NewLength(-1)
		assert.ErrorIs(t, err, valid.ErrValidation)
	})
}

func TestFromEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("start before end succeeds", func(t *testing.T) {
		t.Parallel()

		s, err := FromEndpoints(mustStart(t, 1), mustEnd(t, 3))
		require.NoError(t, err)
		assert.Equal(t, 1, s.Start().Int())
		assert.Equal(t, 3, s.End().Int())
	})

	t.Run("start equal to end succeeds", func(t *testing.T) {
		t.Parallel()

		s, err := FromEndpoints(mustStart(t, 5), mustEnd(t, 5))
		require.NoError(t, err)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("start after end fails", func(t *testing.T) {
		t.Parallel()

		_, err := FromEndpoints(mustStart(t, 4), mustEnd(t, 3))
		require.ErrorIs(t, err, valid.ErrValidation)
		assert.ErrorIs(t, err, ErrEndBeforeStart)
	})
}

func TestFromLength(t *testing.T) {
	t.Parallel()

	t.Run("end is start plus length", func(t *testing.T) {
		t.Parallel()

		s := FromLength(mustStart(t, 1), mustLength(t, 2))
		assert.Equal(t, 1, s.Start().Int())
		assert.Equal(t, 3, s.End().Int())
		assert.Equal(t, 2, s.Len())
	})

	t.Run("zero length yields an empty span", func(t *testing.T) {
		t.Parallel()

		s := FromLength(mustStart(t, 9), mustLength(t, 0))
		assert.Equal(t, 9, s.Start().Int())
		assert.Equal(t, 9, s.End().Int())
		assert.Equal(t, 0, s.Len())
	})

	t.Run("never violates the ordering invariant", func(t *testing.T) {
		t.Parallel()

		for _, pair := range [][2]int{{0, 0}, {0, 10}, {5, 1}, {100, 100}} {
			s := FromLength(mustStart(t, pair[0]), mustLength(t, pair[1]))
			assert.Equal(t, pair[0]+pair[1], s.End().Int())
			assert.LessOrEqual(t, s.Start().Int(), s.End().Int())
		}
	})
}

func TestContains(t *testing.T) {
	t.Parallel()

	s := FromLength(mustStart(t, 1), mustLength(t, 2)) // [1,3)

	assert.False(t, s.Contains(0))
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(3)) // half-open: end is excluded
}

func TestSpanString(t *testing.T) {
	t.Parallel()

	s := FromLength(mustStart(t, 1), mustLength(t, 2))
	assert.Equal(t, "[1,3)", s.String())
}
