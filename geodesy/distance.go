package geodesy

import "math"

// EarthRadiusKm is the mean Earth radius used by the small-circle
// longitude approximation.
const EarthRadiusKm = 6367.5

// WGS84 meridian arc coefficients, metres per degree of latitude.
const (
	meridianM0 = 111132.954
	meridianM2 = -559.822
	meridianM4 = 1.175
)

const degToRad = math.Pi / 180

// DegreesLongitudeToKm converts a longitude span in degrees to kilometres
// along the parallel at avgLatDeg.
func DegreesLongitudeToKm(span, avgLatDeg float64) float64 {
	return span * degToRad * EarthRadiusKm * math.Cos(avgLatDeg*degToRad)
}

// DegreesLatitudeToKm converts a latitude span in degrees to kilometres
// along the meridian, centred on avgLatDeg.
func DegreesLatitudeToKm(span, avgLatDeg float64) float64 {
	phi := avgLatDeg * degToRad
	mPerDeg := meridianM0 + meridianM2*math.Cos(2*phi) + meridianM4*math.Cos(4*phi)
	return span * mPerDeg / 1000
}

// DistanceKm returns the flat-Earth distance between p1 and p2 in kilometres.
// Both axes are scaled at the pair's average latitude, so the result is
// symmetric in its arguments and exactly zero for identical points.
// Accurate to well under a percent for separations up to about one degree.
func DistanceKm(p1, p2 GeoPoint) float64 {
	avgLat := (p1.Lat + p2.Lat) / 2
	dx := DegreesLongitudeToKm(p2.Lon-p1.Lon, avgLat)
	dy := DegreesLatitudeToKm(p2.Lat-p1.Lat, avgLat)
	return math.Hypot(dx, dy)
}
