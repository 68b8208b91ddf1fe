package linetrace

import (
	"math"
	"slices"
)

// Trace walks the segment (x1,y1)→(x2,y2) across the grid and returns every
// cell it passes through, starting in the cell of (x1,y1) and ending in the
// cell of (x2,y2).
//
// Behavior:
//  1. Swap the endpoints if x1 > x2 so the walk runs towards +x.
//  2. Fail if the start cell is land.
//  3. Same column: step row by row to the end row.
//  4. Otherwise, for each column until the end column: climb (or descend)
//     the rows the segment crosses inside the column, then step into the
//     next column. A segment leaving the column exactly on a row boundary
//     crosses the corner diagonally; the two cells beside that corner may
//     not both be land. Finish with the rows of the last column.
//  5. Reverse the path if the endpoints were swapped.
//
// Every entered cell must be water. On failure the error is a *BlockedError
// wrapping ErrNoPath; no partial path is returned.
func Trace(x1, y1, x2, y2 float64, isWater WaterFunc, opts ...Option) (Path, error) {
	w, err := newWalker(isWater, true, opts)
	if err != nil {
		return nil, err
	}
	reversed, err := w.walk(x1, y1, x2, y2)
	if err != nil {
		return nil, err
	}
	if reversed {
		slices.Reverse(w.path)
	}
	return w.path, nil
}

// OnWater reports whether Trace would succeed, without building the path.
// A nil isWater or non-finite coordinate yields false.
func OnWater(x1, y1, x2, y2 float64, isWater WaterFunc, opts ...Option) bool {
	w, err := newWalker(isWater, false, opts)
	if err != nil {
		return false
	}
	_, err = w.walk(x1, y1, x2, y2)
	return err == nil
}

// walker holds the state of one traversal.
type walker struct {
	isWater WaterFunc
	keep    bool // accumulate path
	path    Path
	cur     Cell
	opts    Options
}

func newWalker(isWater WaterFunc, keep bool, opts []Option) (*walker, error) {
	if isWater == nil {
		return nil, ErrNilWaterFunc
	}
	w := &walker{isWater: isWater, keep: keep}
	for _, opt := range opts {
		opt(&w.opts)
	}
	return w, nil
}

func (w *walker) walk(x1, y1, x2, y2 float64) (reversed bool, err error) {
	for _, v := range [...]float64{x1, y1, x2, y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false, ErrNonFinite
		}
	}
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
		reversed = true
	}
	start := Cell{X: round(x1), Y: round(y1)}
	end := Cell{X: round(x2), Y: round(y2)}
	if !w.isWater(start.X, start.Y) {
		return reversed, w.block(start, BlockedStart)
	}
	w.accept(start)

	if start.X != end.X {
		dx, dy := x2-x1, y2-y1
		for w.cur.X < end.X {
			edge := float64(w.cur.X) + 0.5
			// Multiply before dividing: exact for dyadic inputs, so corners
			// at integer and half-integer coordinates compare equal.
			yEdge := y1 + dy*(edge-x1)/dx
			if dy >= 0 {
				err = w.crossUp(yEdge)
			} else {
				err = w.crossDown(yEdge, edge == x2)
			}
			if err != nil {
				return reversed, err
			}
		}
	}
	if err = w.stepRows(end.Y); err != nil {
		return reversed, err
	}
	w.debug("trace ok", "from", start, "to", end, "cells", len(w.path))
	return reversed, nil
}

// crossUp finishes the current column of a rising segment whose height at
// the column's right edge is yEdge, and moves into the next column.
func (w *walker) crossUp(yEdge float64) error {
	for yEdge > float64(w.cur.Y)+0.5 {
		if err := w.enter(w.cur.X, w.cur.Y+1); err != nil {
			return err
		}
	}
	if yEdge == float64(w.cur.Y)+0.5 {
		return w.corner(1)
	}
	return w.enter(w.cur.X+1, w.cur.Y)
}

// crossDown is crossUp for a falling segment. A corner point belongs to the
// cell above it, so a segment ending exactly on the corner enters its end
// cell horizontally.
func (w *walker) crossDown(yEdge float64, endsOnEdge bool) error {
	for yEdge < float64(w.cur.Y)-0.5 {
		if err := w.enter(w.cur.X, w.cur.Y-1); err != nil {
			return err
		}
	}
	if yEdge == float64(w.cur.Y)-0.5 && !endsOnEdge {
		return w.corner(-1)
	}
	return w.enter(w.cur.X+1, w.cur.Y)
}

// corner moves diagonally to (x+1, y+dy). Of the two cells sharing the
// corner, (x+1, y) and (x, y+dy), at most one may be land.
func (w *walker) corner(dy int) error {
	x, y := w.cur.X, w.cur.Y
	if !w.isWater(x+1, y) && !w.isWater(x, y+dy) {
		return w.block(Cell{X: x + 1, Y: y + dy}, BlockedCorner)
	}
	return w.enter(x+1, y+dy)
}

// stepRows walks the current column to row to.
func (w *walker) stepRows(to int) error {
	step := 1
	if to < w.cur.Y {
		step = -1
	}
	for w.cur.Y != to {
		if err := w.enter(w.cur.X, w.cur.Y+step); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) enter(x, y int) error {
	c := Cell{X: x, Y: y}
	if !w.isWater(x, y) {
		return w.block(c, BlockedCell)
	}
	w.accept(c)
	return nil
}

func (w *walker) accept(c Cell) {
	w.cur = c
	if w.keep {
		w.path = append(w.path, c)
	}
	if w.opts.OnCell != nil {
		w.opts.OnCell(c)
	}
}

func (w *walker) block(c Cell, r BlockReason) error {
	w.debug("trace blocked", "cell", c, "reason", r)
	return &BlockedError{Cell: c, Reason: r}
}

func (w *walker) debug(msg string, args ...any) {
	if w.opts.Logger != nil {
		w.opts.Logger.Debug(msg, args...)
	}
}

// round maps a coordinate to the cell containing it, halves rounding up.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
