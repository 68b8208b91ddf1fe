package watermask

import "fmt"

// NewMask constructs a Mask from a non-empty, rectangular 2D slice indexed
// [y][x] with y=0 the southern row. It deep-copies the input.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewMask(values [][]int, opts GridOptions) (*Mask, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	m := &Mask{
		width:         w,
		height:        h,
		cells:         cells,
		conn:          opts.Conn,
		landThreshold: opts.LandThreshold,
	}
	m.body = m.label(offsets8)

	return m, nil
}

// ParseRows converts an ASCII map into grid values: '.' or '~' is water (0),
// '#' or 'L' is land (1). rows[0] is the northern edge, as the map reads on
// screen; the result is flipped so that index 0 is the southern row.
func ParseRows(rows []string) ([][]int, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	h := len(rows)
	values := make([][]int, h)
	for i, line := range rows {
		row := make([]int, 0, len(line))
		for j, r := range line {
			switch r {
			case SymbolWater, SymbolWaterAlt:
				row = append(row, 0)
			case SymbolLand, SymbolLandAlt:
				row = append(row, 1)
			default:
				return nil, fmt.Errorf("%w %q at row %d, column %d", ErrBadSymbol, r, i, j)
			}
		}
		values[h-1-i] = row
	}
	return values, nil
}

// FromRows parses an ASCII map and builds a Mask with default options.
func FromRows(rows []string) (*Mask, error) {
	values, err := ParseRows(rows)
	if err != nil {
		return nil, err
	}
	return NewMask(values, DefaultGridOptions())
}

// Width returns the number of columns.
func (m *Mask) Width() int { return m.width }

// Height returns the number of rows.
func (m *Mask) Height() int { return m.height }

// Connectivity returns the neighbourhood used by WaterBodies.
func (m *Mask) Connectivity() Connectivity { return m.conn }

// LandThreshold returns the minimum value classified as land.
func (m *Mask) LandThreshold() int { return m.landThreshold }

// Value returns the input value of cell (x,y); ok is false out of bounds.
func (m *Mask) Value(x, y int) (v int, ok bool) {
	if !m.InBounds(x, y) {
		return 0, false
	}
	return m.cells[y][x], true
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (m *Mask) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// IsWater reports whether (x,y) is an in-bounds water cell.
// It satisfies linetrace.WaterFunc.
// Complexity: O(1).
func (m *Mask) IsWater(x, y int) bool {
	return m.InBounds(x, y) && m.cells[y][x] < m.landThreshold
}

// WaterCount returns the number of water cells.
func (m *Mask) WaterCount() int {
	n := 0
	for _, b := range m.body {
		if b >= 0 {
			n++
		}
	}
	return n
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (m *Mask) index(x, y int) int {
	return y*m.width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (m *Mask) Coordinate(idx int) (x, y int) {
	return idx % m.width, idx / m.width
}
