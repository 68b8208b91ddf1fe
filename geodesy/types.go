package geodesy

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for geodesy operations.
var (
	// ErrOutOfBounds indicates a point lies outside the extent's footprint.
	ErrOutOfBounds = errors.New("geodesy: point outside grid extent")
	// ErrInvalidExtent indicates malformed extent geometry.
	ErrInvalidExtent = errors.New("geodesy: invalid grid extent")
)

// GeoPoint is a geographic position in decimal degrees.
type GeoPoint struct {
	Lon float64 // longitude, degrees east
	Lat float64 // latitude, degrees north
}

// String renders the point as "lon,lat".
func (p GeoPoint) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.Lon, p.Lat)
}

// GridCoord is a real-valued position in grid-cell units.
// Integer values denote cell centres; (0,0) is the centre of the
// lower-left cell and Y grows northwards.
type GridCoord struct {
	X, Y float64
}

// Cell rounds the coordinate to the address of the cell containing it.
// Halves round up, so a point on a cell boundary belongs to the cell above
// (or to the right of) that boundary.
func (c GridCoord) Cell() (x, y int) {
	return RoundHalfUp(c.X), RoundHalfUp(c.Y)
}

// RoundHalfUp rounds v to the nearest integer, ties towards +Inf.
// Cell k covers the half-open interval [k-0.5, k+0.5).
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// GridExtent is the immutable geometry of the rectangular world.
// Build it with NewGridExtent; the zero value is not usable.
type GridExtent struct {
	LowerLeft  GeoPoint
	LowerRight GeoPoint
	UpperLeft  GeoPoint
	WidthKm    float64 // physical length of the bottom side
	HeightKm   float64 // physical length of the left side
	KmPerCell  float64 // physical edge length of one grid cell

	// geodetic side lengths, cached for projection
	baseKm float64 // LowerLeft → LowerRight
	sideKm float64 // LowerLeft → UpperLeft

	frame localFrame
}

// localFrame is an equirectangular km frame centred on LowerLeft at the
// corners' mean latitude. Degrees map linearly into it, so the corners span
// an exact parallelogram with sides base and side.
type localFrame struct {
	lat    float64
	origin GeoPoint
	bx, by float64 // bottom side vector
	sx, sy float64 // left side vector
	det    float64 // bx*sy - by*sx, positive
}

func newLocalFrame(ll, lr, ul GeoPoint) localFrame {
	f := localFrame{lat: (ll.Lat + lr.Lat + ul.Lat) / 3, origin: ll}
	f.bx, f.by = f.offset(lr)
	f.sx, f.sy = f.offset(ul)
	f.det = f.bx*f.sy - f.by*f.sx
	return f
}

// offset returns p relative to the origin in km.
func (f localFrame) offset(p GeoPoint) (x, y float64) {
	return DegreesLongitudeToKm(p.Lon-f.origin.Lon, f.lat), DegreesLatitudeToKm(p.Lat-f.origin.Lat, f.lat)
}

// fractions returns p as u·base + v·side. The footprint is 0 ≤ u, v ≤ 1.
func (f localFrame) fractions(p GeoPoint) (u, v float64) {
	px, py := f.offset(p)
	return (px*f.sy - py*f.sx) / f.det, (f.bx*py - f.by*px) / f.det
}
