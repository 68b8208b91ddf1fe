package geodesy

import (
	"fmt"
	"math"
)

// rightAngleTolerance bounds |cos θ| of the corner angle at LowerLeft.
const rightAngleTolerance = 1e-3

// NewGridExtent validates the world geometry and returns an immutable extent.
//
// The three corners must form a right angle at ll, measured in a local
// kilometre frame at the corners' mean latitude, and widthKm, heightKm and
// kmPerCell must be finite and strictly positive. Any violation returns an
// error wrapping ErrInvalidExtent.
func NewGridExtent(ll, lr, ul GeoPoint, widthKm, heightKm, kmPerCell float64) (*GridExtent, error) {
	for _, d := range []struct {
		name string
		v    float64
	}{{"width_km", widthKm}, {"height_km", heightKm}, {"km_per_cell", kmPerCell}} {
		if !(d.v > 0) || math.IsInf(d.v, 0) {
			return nil, fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidExtent, d.name, d.v)
		}
	}
	for _, p := range []GeoPoint{ll, lr, ul} {
		if math.IsNaN(p.Lon) || math.IsNaN(p.Lat) || math.Abs(p.Lat) >= 90 {
			return nil, fmt.Errorf("%w: corner %s is not a valid position", ErrInvalidExtent, p)
		}
	}

	base, side := DistanceKm(ll, lr), DistanceKm(ll, ul)
	if base == 0 || side == 0 {
		return nil, fmt.Errorf("%w: corners must be distinct", ErrInvalidExtent)
	}

	// Corner angle in a shared local frame.
	f := newLocalFrame(ll, lr, ul)
	cos := (f.bx*f.sx + f.by*f.sy) / (math.Hypot(f.bx, f.by) * math.Hypot(f.sx, f.sy))
	if math.Abs(cos) > rightAngleTolerance {
		return nil, fmt.Errorf("%w: corners meet at %.3f°, want 90°", ErrInvalidExtent, math.Acos(cos)/degToRad)
	}
	// The upper-left corner must sit counter-clockwise from the bottom side.
	if f.det <= 0 {
		return nil, fmt.Errorf("%w: upper-left corner lies below the bottom side", ErrInvalidExtent)
	}

	return &GridExtent{
		LowerLeft:  ll,
		LowerRight: lr,
		UpperLeft:  ul,
		WidthKm:    widthKm,
		HeightKm:   heightKm,
		KmPerCell:  kmPerCell,
		baseKm:     base,
		sideKm:     side,
		frame:      f,
	}, nil
}

// Columns returns the number of cells along the bottom side.
func (e *GridExtent) Columns() int {
	return int(math.Ceil(e.WidthKm/e.KmPerCell - roundOff))
}

// Rows returns the number of cells along the left side.
func (e *GridExtent) Rows() int {
	return int(math.Ceil(e.HeightKm/e.KmPerCell - roundOff))
}

// Unproject maps grid coordinates back to a geographic position by bilinear
// interpolation between the corners. It is the inverse of Project to within
// the flat-Earth approximation, well inside half a cell for extents of about
// a degree.
func (e *GridExtent) Unproject(c GridCoord) GeoPoint {
	fx := c.X * e.KmPerCell / e.WidthKm
	fy := c.Y * e.KmPerCell / e.HeightKm
	return GeoPoint{
		Lon: e.LowerLeft.Lon + fx*(e.LowerRight.Lon-e.LowerLeft.Lon) + fy*(e.UpperLeft.Lon-e.LowerLeft.Lon),
		Lat: e.LowerLeft.Lat + fx*(e.LowerRight.Lat-e.LowerLeft.Lat) + fy*(e.UpperLeft.Lat-e.LowerLeft.Lat),
	}
}

// CellCenter returns the geographic position of the centre of cell (x, y).
func (e *GridExtent) CellCenter(x, y int) GeoPoint {
	return e.Unproject(GridCoord{X: float64(x), Y: float64(y)})
}
