package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNewUncheckedDerivesHeight is white-box: the private fast path keeps the
// width and derives the height from the slice length alone.
func TestNewUncheckedDerivesHeight(t *testing.T) {
	g := newUnchecked(4, make([]byte, 12))
	require.Equal(t, uint(4), g.width)
	require.Equal(t, uint(3), g.Height())
	require.Equal(t, uint(12), g.Size())
}

// TestCheckedSize checks the overflow guard shared by the constructors.
func TestCheckedSize(t *testing.T) {
	size, err := checkedSize(7, 6)
	require.NoError(t, err)
	require.Equal(t, 42, size)

	_, err = checkedSize(^uint(0), ^uint(0))
	require.ErrorIs(t, err, ErrSizeOverflow)
}

// TestShift covers the saturation edges of the neighbor step.
func TestShift(t *testing.T) {
	_, ok := shift(0, -1)
	require.False(t, ok)
	_, ok = shift(^uint(0), 1)
	require.False(t, ok)
	v, ok := shift(5, 0)
	require.True(t, ok)
	require.Equal(t, uint(5), v)
}
