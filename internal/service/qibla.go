package service

import "math"

// Kaaba coordinates, the fixed target of every qibla computation.
const (
	KaabaLatitude  = 21.4225
	KaabaLongitude = 39.8262
)

// QiblaDirection returns the initial great-circle bearing from the given
// point toward the Kaaba, in degrees clockwise from true north, normalized
// to [0, 360) and rounded to two decimals.
//
// The atan2 form never divides, so the poles are safe: at latitude ±90 the
// cos(lat) term vanishes and the bearing is driven purely by the longitude
// delta. Standing exactly on the Kaaba gives atan2(0, 0) = 0, so the
// function returns 0 there by convention.
func QiblaDirection(latitude, longitude float64) float64 {
	latRad := latitude * math.Pi / 180
	lngRad := longitude * math.Pi / 180
	kaabaLatRad := KaabaLatitude * math.Pi / 180
	kaabaLngRad := KaabaLongitude * math.Pi / 180

	deltaLng := kaabaLngRad - lngRad

	x := math.Sin(deltaLng)
	y := math.Cos(latRad)*math.Tan(kaabaLatRad) - math.Sin(latRad)*math.Cos(deltaLng)

	bearing := math.Atan2(x, y) * 180 / math.Pi
	if bearing < 0 {
		bearing += 360
	}

	// Rounding can push a value like 359.9999 up to 360, which would
	// escape the [0, 360) range.
	bearing = math.Round(bearing*100) / 100
	if bearing >= 360 {
		bearing -= 360
	}
	return bearing
}
