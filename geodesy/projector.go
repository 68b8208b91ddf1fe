package geodesy

import (
	"fmt"
	"math"
)

const (
	// heronTolerance is the relative slack under Heron's square root,
	// scaled by s⁴ so it tracks the triangle's size.
	heronTolerance = 1e-9
	// edgeTolerance is the slack, as a fraction of a side, on the feet and
	// fractions of the Heron triangles. It absorbs the non-Euclidean drift
	// of the flat-Earth distances for points on the rectangle's edges.
	edgeTolerance = 1e-2
	roundOff      = 1e-9
)

// Project maps p onto grid coordinates.
//
// Steps:
//  1. Bottom triangle (p, LowerLeft, LowerRight): its height over the bottom
//     side is p's northward offset.
//  2. Left triangle (p, LowerLeft, UpperLeft): its height over the left side
//     is p's eastward offset.
//  3. Each height divided by the opposite geodetic side gives a 0..1
//     fraction; scaled by HeightKm/WidthKm and divided by KmPerCell it
//     becomes a grid coordinate.
//
// Heights carry no sign, so containment is decided first in the extent's
// local frame: a point beyond any side by more than round-off is rejected
// rather than mirrored back inside.
//
// Returns an error wrapping ErrOutOfBounds when p lies outside the
// rectangle, when either triangle is degenerate beyond round-off, when the
// foot of a height falls outside the side it stands on, or when a fraction
// exceeds 1.
func (e *GridExtent) Project(p GeoPoint) (GridCoord, error) {
	if !finite(p.Lon) || !finite(p.Lat) {
		return GridCoord{}, fmt.Errorf("%w: %s is not a position", ErrOutOfBounds, p)
	}
	switch u, v := e.frame.fractions(p); {
	case u < -roundOff:
		return GridCoord{}, fmt.Errorf("%w: %s lies west of the left side", ErrOutOfBounds, p)
	case u > 1+roundOff:
		return GridCoord{}, fmt.Errorf("%w: %s lies east of the right side", ErrOutOfBounds, p)
	case v < -roundOff:
		return GridCoord{}, fmt.Errorf("%w: %s lies south of the bottom side", ErrOutOfBounds, p)
	case v > 1+roundOff:
		return GridCoord{}, fmt.Errorf("%w: %s lies north of the top side", ErrOutOfBounds, p)
	}

	toLL := DistanceKm(p, e.LowerLeft)

	north, ok := heronHeight(toLL, DistanceKm(p, e.LowerRight), e.baseKm)
	if !ok {
		return GridCoord{}, fmt.Errorf("%w: %s lies beyond the left or right side", ErrOutOfBounds, p)
	}
	east, ok := heronHeight(toLL, DistanceKm(p, e.UpperLeft), e.sideKm)
	if !ok {
		return GridCoord{}, fmt.Errorf("%w: %s lies beyond the bottom or top side", ErrOutOfBounds, p)
	}

	fy, fx := north/e.sideKm, east/e.baseKm
	if fx > 1+edgeTolerance || fy > 1+edgeTolerance {
		return GridCoord{}, fmt.Errorf("%w: %s lies beyond the far side", ErrOutOfBounds, p)
	}
	return GridCoord{
		X: fx * e.WidthKm / e.KmPerCell,
		Y: fy * e.HeightKm / e.KmPerCell,
	}, nil
}

// CellFor projects p and rounds the result to its cell address.
// Projection failures are propagated unchanged.
func (e *GridExtent) CellFor(p GeoPoint) (x, y int, err error) {
	c, err := e.Project(p)
	if err != nil {
		return 0, 0, err
	}
	x, y = c.Cell()
	return x, y, nil
}

// heronHeight returns the height over side base of the triangle whose other
// sides are a (to the base's first corner) and b (to its second corner).
// ok is false when the triangle cannot be formed or when the foot of the
// height lands outside the base.
func heronHeight(a, b, base float64) (h float64, ok bool) {
	s := (a + b + base) / 2
	prod := s * (s - a) * (s - b) * (s - base)
	if prod < -heronTolerance*s*s*s*s {
		return 0, false
	}
	if prod < 0 {
		prod = 0
	}

	// Foot of the height, measured along the base from its first corner.
	foot := (a*a + base*base - b*b) / (2 * base)
	if foot < -edgeTolerance*base || foot > (1+edgeTolerance)*base {
		return 0, false
	}
	return 2 * math.Sqrt(prod) / base, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
