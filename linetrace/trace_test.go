package linetrace_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orcasim/seaway/linetrace"
)

// allWater classifies every cell as water.
func allWater(int, int) bool { return true }

// landAt returns a WaterFunc with land exactly at the given cells.
func landAt(cells ...linetrace.Cell) linetrace.WaterFunc {
	land := make(map[linetrace.Cell]bool, len(cells))
	for _, c := range cells {
		land[c] = true
	}
	return func(x, y int) bool { return !land[linetrace.Cell{X: x, Y: y}] }
}

func cells(xy ...int) linetrace.Path {
	p := make(linetrace.Path, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		p = append(p, linetrace.Cell{X: xy[i], Y: xy[i+1]})
	}
	return p
}

//----------------------------------------------------------------------------//
// Straight runs
//----------------------------------------------------------------------------//

// TestTrace_Column verifies the single-column walk in both directions.
func TestTrace_Column(t *testing.T) {
	path, err := linetrace.Trace(3, 2, 3, 7, allWater)
	require.NoError(t, err)
	assert.Equal(t, cells(3, 2, 3, 3, 3, 4, 3, 5, 3, 6, 3, 7), path)

	down, err := linetrace.Trace(3, 7, 3, 2, allWater)
	require.NoError(t, err)
	assert.Equal(t, cells(3, 7, 3, 6, 3, 5, 3, 4, 3, 3, 3, 2), down)
}

// TestTrace_SameCell returns the lone cell for a segment inside one cell.
func TestTrace_SameCell(t *testing.T) {
	path, err := linetrace.Trace(4.1, 4.2, 3.8, 3.9, allWater)
	require.NoError(t, err)
	assert.Equal(t, cells(4, 4), path)
}

// TestTrace_Table checks exact cell sequences for representative slopes.
func TestTrace_Table(t *testing.T) {
	cases := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           linetrace.Path
	}{
		{"Horizontal", 0, 0, 3, 0, cells(0, 0, 1, 0, 2, 0, 3, 0)},
		{"HorizontalOnBoundary", 0, 0.5, 3, 0.5, cells(0, 1, 1, 1, 2, 1, 3, 1)},
		{"GentleRise", 0, 0, 2, 1, cells(0, 0, 1, 0, 1, 1, 2, 1)},
		{"SteepRise", 0, 0, 1, 3, cells(0, 0, 0, 1, 1, 2, 1, 3)},
		{"GentleFall", 0, 1, 2, 0, cells(0, 1, 1, 1, 1, 0, 2, 0)},
		{"Diagonal", 0, 0, 2, 2, cells(0, 0, 1, 1, 2, 2)},
		{"AntiDiagonal", 0, 2, 2, 0, cells(0, 2, 1, 1, 2, 0)},
		{"EndsOnRisingCorner", 0, 0, 1.5, 1.5, cells(0, 0, 1, 1, 2, 2)},
		{"EndsOnFallingCorner", 0, 1, 0.5, 0.5, cells(0, 1, 1, 1)},
		{"Westward", 2, 1, 0, 0, cells(2, 1, 1, 1, 1, 0, 0, 0)},
		{"Fractional", 0.2, 0.3, 3.4, 1.9, cells(0, 0, 1, 0, 1, 1, 2, 1, 3, 1, 3, 2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path, err := linetrace.Trace(tc.x1, tc.y1, tc.x2, tc.y2, allWater)
			require.NoError(t, err)
			assert.Equal(t, tc.want, path)
		})
	}
}

//----------------------------------------------------------------------------//
// Land
//----------------------------------------------------------------------------//

// TestTrace_LandBlocks verifies that any land cell on the way fails the
// trace and that turning it back into water restores the path.
func TestTrace_LandBlocks(t *testing.T) {
	blocked := landAt(linetrace.Cell{X: 2, Y: 0})
	_, err := linetrace.Trace(0, 0, 4, 0, blocked)
	require.ErrorIs(t, err, linetrace.ErrNoPath)

	var be *linetrace.BlockedError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, linetrace.Cell{X: 2, Y: 0}, be.Cell)
	assert.Equal(t, linetrace.BlockedCell, be.Reason)

	path, err := linetrace.Trace(0, 0, 4, 0, allWater)
	require.NoError(t, err)
	assert.Contains(t, path, linetrace.Cell{X: 2, Y: 0})
}

// TestTrace_LandOffPath ignores land the segment never enters.
func TestTrace_LandOffPath(t *testing.T) {
	water := landAt(linetrace.Cell{X: 1, Y: 1}, linetrace.Cell{X: 3, Y: -1})
	path, err := linetrace.Trace(0, 0, 4, 0, water)
	require.NoError(t, err)
	assert.Len(t, path, 5)
}

// TestTrace_Endpoints fails when either endpoint sits on land, whichever
// order the endpoints are given in.
func TestTrace_Endpoints(t *testing.T) {
	water := landAt(linetrace.Cell{X: 0, Y: 0})

	_, err := linetrace.Trace(0, 0, 3, 1, water)
	var be *linetrace.BlockedError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, linetrace.BlockedStart, be.Reason)

	_, err = linetrace.Trace(3, 1, 0, 0, water)
	require.ErrorIs(t, err, linetrace.ErrNoPath)

	_, err = linetrace.Trace(0, 3, 0, 0, water)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, linetrace.BlockedCell, be.Reason)
	assert.Equal(t, linetrace.Cell{X: 0, Y: 0}, be.Cell)
}

// TestTrace_CornerTolerance checks that a corner crossing tolerates one land
// cell beside the corner but not two.
func TestTrace_CornerTolerance(t *testing.T) {
	one := landAt(linetrace.Cell{X: 1, Y: 0})
	path, err := linetrace.Trace(0, 0, 2, 2, one)
	require.NoError(t, err)
	assert.Equal(t, cells(0, 0, 1, 1, 2, 2), path)

	other := landAt(linetrace.Cell{X: 0, Y: 1})
	_, err = linetrace.Trace(2, 2, 0, 0, other)
	require.NoError(t, err)

	both := landAt(linetrace.Cell{X: 1, Y: 0}, linetrace.Cell{X: 0, Y: 1})
	_, err = linetrace.Trace(0, 0, 2, 2, both)
	var be *linetrace.BlockedError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, linetrace.BlockedCorner, be.Reason)
	assert.Equal(t, linetrace.Cell{X: 1, Y: 1}, be.Cell)

	_, err = linetrace.Trace(2, 2, 0, 0, both)
	require.ErrorIs(t, err, linetrace.ErrNoPath)
}

// TestTrace_FallingCornerTolerance mirrors the corner rule for a descending
// segment, whose corner neighbours are (x+1, y) and (x, y-1).
func TestTrace_FallingCornerTolerance(t *testing.T) {
	one := landAt(linetrace.Cell{X: 1, Y: 2})
	path, err := linetrace.Trace(0, 2, 2, 0, one)
	require.NoError(t, err)
	assert.Equal(t, cells(0, 2, 1, 1, 2, 0), path)

	both := landAt(linetrace.Cell{X: 1, Y: 2}, linetrace.Cell{X: 0, Y: 1})
	assert.False(t, linetrace.OnWater(0, 2, 2, 0, both))
	assert.False(t, linetrace.OnWater(2, 0, 0, 2, both))
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// onCorner reports whether (x, y) is a cell corner, where rounding picks one
// of four cells and a diagonal step may pass between the other three.
func onCorner(x, y float64) bool {
	half := func(v float64) bool { return math.Abs(v-math.Floor(v)-0.5) < 1e-9 }
	return half(x) && half(y)
}

// TestTrace_Properties traces random segments over a random mask and checks
// symmetry, containment, adjacency and coverage of every result. Coverage
// samples the segment densely and requires each sample's cell on the path.
func TestTrace_Properties(t *testing.T) {
	const n = 24
	rng := rand.New(rand.NewSource(42))
	land := make([]bool, n*n)
	for i := range land {
		land[i] = rng.Float64() < 0.15
	}
	water := func(x, y int) bool {
		if x < 0 || y < 0 || x >= n || y >= n {
			return false
		}
		return !land[y*n+x]
	}
	// Quarter steps keep many segments on exact boundaries and corners.
	coord := func() float64 { return float64(rng.Intn(4*(n-1))) / 4 }

	ok := 0
	for i := 0; i < 5000; i++ {
		x1, y1, x2, y2 := coord(), coord(), coord(), coord()
		fwd, errF := linetrace.Trace(x1, y1, x2, y2, water)
		back, errB := linetrace.Trace(x2, y2, x1, y1, water)
		require.Equal(t, errF == nil, errB == nil, "symmetry (%g,%g)-(%g,%g)", x1, y1, x2, y2)
		require.Equal(t, errF == nil, linetrace.OnWater(x1, y1, x2, y2, water))
		if errF != nil {
			continue
		}
		ok++

		for j := range fwd {
			require.Equal(t, fwd[j], back[len(back)-1-j], "mirror (%g,%g)-(%g,%g)", x1, y1, x2, y2)
		}
		assert.Equal(t, linetrace.Cell{X: int(math.Floor(x1 + 0.5)), Y: int(math.Floor(y1 + 0.5))}, fwd[0])
		assert.Equal(t, linetrace.Cell{X: int(math.Floor(x2 + 0.5)), Y: int(math.Floor(y2 + 0.5))}, fwd[len(fwd)-1])

		seen := make(map[linetrace.Cell]bool, len(fwd))
		for j, c := range fwd {
			require.True(t, water(c.X, c.Y), "land cell %v on path", c)
			require.False(t, seen[c], "duplicate cell %v", c)
			seen[c] = true
			if j == 0 {
				continue
			}
			dx, dy := c.X-fwd[j-1].X, c.Y-fwd[j-1].Y
			require.True(t, dx*dx <= 1 && dy*dy <= 1 && (dx != 0 || dy != 0),
				"gap between %v and %v", fwd[j-1], c)
		}

		const samples = 512
		for k := 0; k <= samples; k++ {
			f := float64(k) / samples
			sx, sy := x1+(x2-x1)*f, y1+(y2-y1)*f
			if onCorner(sx, sy) {
				continue
			}
			c := linetrace.Cell{X: int(math.Floor(sx + 0.5)), Y: int(math.Floor(sy + 0.5))}
			require.True(t, seen[c], "(%g,%g)-(%g,%g) passes through %v, missing from %v",
				x1, y1, x2, y2, c, fwd)
		}
	}
	assert.Greater(t, ok, 100, "too few successful traces to be meaningful")
}

//----------------------------------------------------------------------------//
// Options and input validation
//----------------------------------------------------------------------------//

// TestTrace_Invalid rejects nil classifications and non-finite coordinates.
func TestTrace_Invalid(t *testing.T) {
	_, err := linetrace.Trace(0, 0, 1, 1, nil)
	assert.ErrorIs(t, err, linetrace.ErrNilWaterFunc)
	assert.False(t, linetrace.OnWater(0, 0, 1, 1, nil))

	_, err = linetrace.Trace(math.NaN(), 0, 1, 1, allWater)
	assert.ErrorIs(t, err, linetrace.ErrNonFinite)
	_, err = linetrace.Trace(0, 0, math.Inf(1), 1, allWater)
	assert.ErrorIs(t, err, linetrace.ErrNonFinite)
}

// TestTrace_OnCellHook sees cells in walk order, west to east.
func TestTrace_OnCellHook(t *testing.T) {
	var visited linetrace.Path
	path, err := linetrace.Trace(2, 1, 0, 0, allWater,
		linetrace.WithOnCell(func(c linetrace.Cell) { visited = append(visited, c) }))
	require.NoError(t, err)
	assert.Equal(t, cells(0, 0, 1, 0, 1, 1, 2, 1), visited)
	assert.Equal(t, cells(2, 1, 1, 1, 1, 0, 0, 0), path)

	var count int
	assert.True(t, linetrace.OnWater(0, 0, 5, 0, allWater,
		linetrace.WithOnCell(func(linetrace.Cell) { count++ })))
	assert.Equal(t, 6, count)
}

// TestTrace_Logger emits a debug record naming the blocking cell.
func TestTrace_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := linetrace.Trace(0, 0, 3, 0, landAt(linetrace.Cell{X: 2, Y: 0}), linetrace.WithLogger(logger))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "trace blocked")
	assert.Contains(t, buf.String(), "(2,0)")
}
