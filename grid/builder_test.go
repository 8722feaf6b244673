package grid_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/grid2d/grid"
	"github.com/stretchr/testify/require"
)

// TestBuilderOutcomes walks the full hint table; failures must return the items.
func TestBuilderOutcomes(t *testing.T) {
	six := []int{1, 2, 3, 4, 5, 6}
	five := []int{1, 2, 3, 4, 5}
	cases := []struct {
		name      string
		items     []int
		width     uint // 0 = unset
		height    uint // 0 = unset
		err       error
		wantWidth uint
		wantH     uint
	}{
		{"WidthOnly", six, 2, 0, nil, 2, 3},
		{"HeightOnly", six, 0, 2, nil, 3, 2},
		{"BothMatch", six, 3, 2, nil, 3, 2},
		{"SingleRow", five, 5, 0, nil, 5, 1},
		{"SingleColumn", five, 0, 5, nil, 1, 5},
		{"Neither", five, 0, 0, grid.ErrNeitherDimensionSet, 0, 0},
		{"TooWide", five, 6, 0, grid.ErrTooWide, 0, 0},
		{"TooTall", five, 0, 6, grid.ErrTooTall, 0, 0},
		{"SizeMismatch", six, 3, 3, grid.ErrSizeMismatch, 0, 0},
		{"NotMultipleOfWidth", five, 3, 0, grid.ErrSizeNotMultipleOfWidth, 0, 0},
		{"NotMultipleOfHeight", five, 0, 2, grid.ErrSizeNotMultipleOfHeight, 0, 0},
		{"HeightNotDivisor", six, 0, 4, grid.ErrSizeNotMultipleOfHeight, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := grid.NewBuilder(slices.Clone(tc.items))
			if tc.width != 0 {
				b.Width(tc.width)
			}
			if tc.height != 0 {
				b.Height(tc.height)
			}

			g, err := b.Build()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.Nil(t, g)

				var be *grid.BuildError[int]
				require.True(t, errors.As(err, &be))
				require.Equal(t, tc.items, be.Items)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantWidth, g.Width())
			require.Equal(t, tc.wantH, g.Height())
			require.Equal(t, tc.items, g.Slice())
		})
	}
}

// TestBuilderMatchesFromSlice compares a width-only build with FromSlice.
func TestBuilderMatchesFromSlice(t *testing.T) {
	built, err := grid.NewBuilder([]int{1, 2, 3, 4, 5, 6}).Width(2).Build()
	require.NoError(t, err)
	direct, err := grid.FromSlice([]int{1, 2, 3, 4, 5, 6}, 2)
	require.NoError(t, err)
	require.True(t, grid.Equal(built, direct))
}

// TestBuilderZeroHints rejects explicit zero dimensions.
func TestBuilderZeroHints(t *testing.T) {
	_, err := grid.NewBuilder([]int{1, 2}).Width(0).Build()
	require.ErrorIs(t, err, grid.ErrZeroWidth)

	_, err = grid.NewBuilder([]int{1, 2}).Height(0).Build()
	require.ErrorIs(t, err, grid.ErrZeroHeight)
}

// TestBuilderOverflowingHints treats an overflowing product as a mismatch.
func TestBuilderOverflowingHints(t *testing.T) {
	_, err := grid.NewBuilder([]int{1, 2}).Width(math.MaxUint).Height(2).Build()
	require.ErrorIs(t, err, grid.ErrSizeMismatch)
}

// TestBuilderHintsOverwrite checks last-write-wins for each dimension.
func TestBuilderHintsOverwrite(t *testing.T) {
	g, err := grid.NewBuilder([]int{1, 2, 3, 4, 5, 6}).
		Width(4).
		Height(1).
		Width(3).
		Height(2).
		Build()
	require.NoError(t, err)
	require.Equal(t, uint(3), g.Width())
	require.Equal(t, uint(2), g.Height())
}

// TestBuilderAccumulation covers Push, Append, Extend, Items and Len.
func TestBuilderAccumulation(t *testing.T) {
	b := grid.NewBuilder[string](nil).
		Push("a").
		Append("b", "c").
		Extend(slices.Values([]string{"d", "e", "f"}))
	require.Equal(t, 6, b.Len())
	require.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, b.Items())

	g, err := b.Height(3).Build()
	require.NoError(t, err)
	require.Equal(t, "a\tb\nc\td\ne\tf", g.String())

	require.Zero(t, b.Len()) // Build resets the builder
}

// TestBuilderRetryFromError rebuilds from the items carried back in the error.
func TestBuilderRetryFromError(t *testing.T) {
	_, err := grid.NewBuilder([]int{1, 2, 3, 4, 5, 6}).Width(4).Build()
	require.ErrorIs(t, err, grid.ErrSizeNotMultipleOfWidth)

	var be *grid.BuildError[int]
	require.True(t, errors.As(err, &be))
	require.Equal(t, grid.ErrSizeNotMultipleOfWidth.Error(), be.Error())

	g, err := grid.NewBuilder(be.Items).Width(3).Build()
	require.NoError(t, err)
	require.Equal(t, uint(2), g.Height())
}
