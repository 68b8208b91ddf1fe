package watermask

// WaterBodies finds all contiguous regions of water cells according to
// the mask's connectivity. Each body is a slice of row-major cell indices in
// BFS order; bodies are ordered by their lowest index.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (m *Mask) WaterBodies() [][]int {
	offsets := offsets4
	if m.conn == Conn8 {
		offsets = offsets8
	}
	var bodies [][]int
	m.walkBodies(offsets, func(body []int) {
		bodies = append(bodies, body)
	})
	return bodies
}

// SameBody reports whether (x1,y1) and (x2,y2) are water cells joined by an
// eight-way water path. A straight water path between them can exist only
// if SameBody is true.
// Complexity: O(1).
func (m *Mask) SameBody(x1, y1, x2, y2 int) bool {
	if !m.IsWater(x1, y1) || !m.IsWater(x2, y2) {
		return false
	}
	return m.body[m.index(x1, y1)] == m.body[m.index(x2, y2)]
}

// label returns per-cell body labels under the given offsets, -1 for land.
func (m *Mask) label(offsets [][2]int) []int {
	labels := make([]int, m.width*m.height)
	for i := range labels {
		labels[i] = -1
	}
	id := 0
	m.walkBodies(offsets, func(body []int) {
		for _, i := range body {
			labels[i] = id
		}
		id++
	})
	return labels
}

// walkBodies runs a BFS from every unvisited water cell and hands each
// completed body to fn.
func (m *Mask) walkBodies(offsets [][2]int, fn func(body []int)) {
	seen := make([]bool, m.width*m.height)

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if !m.IsWater(x, y) {
				continue // land
			}
			i0 := m.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect body
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := m.Coordinate(queue[qi])
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !m.IsWater(vx, vy) {
						continue
					}
					vi := m.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			fn(queue)
		}
	}
}
