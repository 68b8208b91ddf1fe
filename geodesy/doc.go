// Package geodesy places geographic points on the simulation grid.
//
// What:
//
//   - GeoPoint is a (longitude, latitude) pair in degrees.
//   - GridExtent describes the rectangular world: the geographic positions of
//     its lower-left, lower-right and upper-left corners, its physical width
//     and height in kilometres, and the kilometres covered by one grid cell.
//   - Project maps a GeoPoint onto real-valued grid coordinates; CellFor rounds
//     the result to the integer cell address.
//   - DistanceKm measures the flat-Earth distance between two points.
//
// How:
//
//	Distances use a local small-angle approximation: longitude spans shrink
//	with cos(latitude) on a sphere of radius 6367.5 km, latitude spans follow
//	the WGS84 meridian arc polynomial. Both conversions take the average
//	latitude of the two points in degrees.
//
//	Projection uses Heron's formula. The triangle (P, lower-left, lower-right)
//	gives the perpendicular distance of P above the bottom side; the triangle
//	(P, lower-left, upper-left) gives the distance of P right of the left side.
//	Each distance is taken as a fraction of the opposite side length, scaled
//	to the configured width or height and divided by KmPerCell.
//
// Accuracy:
//
//   - Good for extents spanning roughly a degree or less. The error grows with
//     the span; this is not a geodesic.
//   - Points far outside the rectangle are reported as ErrOutOfBounds, never
//     clamped onto the grid.
//
// Errors:
//
//   - ErrInvalidExtent: the corners do not form an axis-aligned rectangle, or a
//     dimension is not strictly positive. Fatal at world setup.
//   - ErrOutOfBounds: a point cannot be placed inside the rectangle.
//
// Complexity: every operation is O(1) and allocation-free.
package geodesy
