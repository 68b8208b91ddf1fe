package watermask

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// ASCII map symbols understood by ParseRows.
const (
	SymbolWater    = '.'
	SymbolWaterAlt = '~'
	SymbolLand     = '#'
	SymbolLandAlt  = 'L'
)

// GridOptions contains tunable parameters for the mask.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered land.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity for WaterBodies.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn8,
	}
}

// Mask is an immutable water/land classification of a W×H grid.
// Fields are unexported so the cell values cannot drift from the body labels.
type Mask struct {
	width, height int
	cells         [][]int // cells[y][x], y=0 being the bottom row
	conn          Connectivity
	landThreshold int

	// body[i] is the Conn8 water-body label of cell i, or -1 for land.
	body []int
}
