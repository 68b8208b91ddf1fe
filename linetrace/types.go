package linetrace

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for linetrace operations.
var (
	// ErrNoPath indicates the segment crosses land.
	ErrNoPath = errors.New("linetrace: no water path")
	// ErrNilWaterFunc indicates a nil WaterFunc was passed.
	ErrNilWaterFunc = errors.New("linetrace: water func is nil")
	// ErrNonFinite indicates a NaN or infinite endpoint coordinate.
	ErrNonFinite = errors.New("linetrace: coordinates must be finite")
)

// Cell is an integer grid address.
type Cell struct {
	X, Y int // column, row
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Path is an ordered run of cells from the first endpoint to the second.
type Path []Cell

// WaterFunc reports whether cell (x, y) is navigable water.
// It must be safe to call for any integer pair, including cells outside
// the world, and must not change while a trace is running.
type WaterFunc func(x, y int) bool

// BlockReason classifies why a segment is not navigable.
type BlockReason int

const (
	// BlockedStart means the walk's starting cell is land. The walk starts
	// from the endpoint with the smaller x.
	BlockedStart BlockReason = iota
	// BlockedCell means a crossed cell, possibly the last one, is land.
	BlockedCell
	// BlockedCorner means both cells beside a corner crossing are land.
	BlockedCorner
)

func (r BlockReason) String() string {
	switch r {
	case BlockedStart:
		return "start on land"
	case BlockedCell:
		return "crosses land"
	case BlockedCorner:
		return "corner between land"
	default:
		return fmt.Sprintf("BlockReason(%d)", int(r))
	}
}

// BlockedError is returned when a trace fails. Cell is the offending cell,
// or for corners the cell the walk was entering. It unwraps to ErrNoPath.
type BlockedError struct {
	Cell   Cell
	Reason BlockReason
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("linetrace: no water path: %s at %s", e.Reason, e.Cell)
}

// Unwrap makes errors.Is(err, ErrNoPath) hold.
func (e *BlockedError) Unwrap() error { return ErrNoPath }

// Options configures a trace. The zero value is silent.
type Options struct {
	// OnCell is called for each accepted cell in walk order (left to right,
	// before any final reversal).
	OnCell func(Cell)
	// Logger receives debug diagnostics; nil disables them.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithOnCell registers a hook called for every accepted cell.
func WithOnCell(fn func(Cell)) Option {
	return func(o *Options) { o.OnCell = fn }
}

// WithLogger enables debug diagnostics on l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
