package watermask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orcasim/seaway/watermask"
)

//----------------------------------------------------------------------------//
// NewMask, ParseRows and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewMask_Errors verifies that NewMask rejects empty or ragged inputs.
func TestNewMask_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, watermask.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, watermask.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, watermask.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := watermask.NewMask(tc.grid, watermask.DefaultGridOptions())
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewMask_DeepCopy ensures later edits of the input do not leak in.
func TestNewMask_DeepCopy(t *testing.T) {
	grid := [][]int{{0, 0}, {0, 0}}
	m, err := watermask.NewMask(grid, watermask.DefaultGridOptions())
	require.NoError(t, err)

	grid[0][0] = 5
	assert.True(t, m.IsWater(0, 0))
}

// TestParseRows checks symbol decoding and the north-up flip.
func TestParseRows(t *testing.T) {
	values, err := watermask.ParseRows([]string{
		"#..",
		"~L.",
	})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 0}, {1, 0, 0}}, values)

	_, err = watermask.ParseRows([]string{"..x"})
	assert.ErrorIs(t, err, watermask.ErrBadSymbol)

	_, err = watermask.ParseRows(nil)
	assert.ErrorIs(t, err, watermask.ErrEmptyGrid)

	_, err = watermask.FromRows([]string{"...", ".."})
	assert.ErrorIs(t, err, watermask.ErrNonRectangular)
}

// TestIsWater checks threshold handling and out-of-bounds cells on a 3×2 grid.
func TestIsWater(t *testing.T) {
	grid := [][]int{
		{0, 1, 2},
		{3, 0, 1},
	}
	opts := watermask.DefaultGridOptions()
	opts.LandThreshold = 2
	m, err := watermask.NewMask(grid, opts)
	require.NoError(t, err)

	water := [][2]int{{0, 0}, {1, 0}, {1, 1}, {2, 1}}
	for _, xy := range water {
		assert.True(t, m.IsWater(xy[0], xy[1]), "IsWater(%d,%d)", xy[0], xy[1])
	}
	land := [][2]int{{2, 0}, {0, 1}, {-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range land {
		assert.False(t, m.IsWater(xy[0], xy[1]), "IsWater(%d,%d)", xy[0], xy[1])
	}
	assert.Equal(t, 4, m.WaterCount())
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	m, err := watermask.FromRows([]string{"...", "..."})
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, m.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, m.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	x, y := m.Coordinate(5)
	assert.Equal(t, [2]int{2, 1}, [2]int{x, y})
}

// TestAccessors reads the mask's dimensions, options and raw values.
func TestAccessors(t *testing.T) {
	grid := [][]int{
		{0, 4, 2},
		{3, 0, 1},
	}
	opts := watermask.DefaultGridOptions()
	opts.LandThreshold = 2
	opts.Conn = watermask.Conn4
	m, err := watermask.NewMask(grid, opts)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, 2, m.LandThreshold())
	assert.Equal(t, watermask.Conn4, m.Connectivity())

	v, ok := m.Value(1, 0)
	assert.True(t, ok)
	assert.Equal(t, 4, v)
	v, ok = m.Value(2, 1)
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = m.Value(3, 0)
	assert.False(t, ok)
	_, ok = m.Value(0, -1)
	assert.False(t, ok)
}
