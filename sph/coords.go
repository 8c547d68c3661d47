package sph

import "math"

// Cart2Sph converts Cartesian coordinates to spherical coordinates.
//
// Azimuth is measured in the x/y plane from the positive x axis,
// colatitude from the positive z axis (0 at the north pole, pi at the
// south pole). The origin maps to (0, 0, 0).
func Cart2Sph(x, y, z float64) (azimuth, colatitude, radius float64) {
	radius = math.Sqrt(x*x + y*y + z*z)
	if radius == 0 {
		return 0, 0, 0
	}
	azimuth = math.Atan2(y, x)
	colatitude = math.Acos(z / radius)
	return azimuth, colatitude, radius
}

// Sph2Cart converts spherical coordinates back to Cartesian coordinates.
func Sph2Cart(azimuth, colatitude, radius float64) (x, y, z float64) {
	sinCol := math.Sin(colatitude)
	x = radius * sinCol * math.Cos(azimuth)
	y = radius * sinCol * math.Sin(azimuth)
	z = radius * math.Cos(colatitude)
	return x, y, z
}

// WrapAzimuth maps an angle into [0, 2*pi).
func WrapAzimuth(azimuth float64) float64 {
	az := math.Mod(azimuth, 2*math.Pi)
	if az < 0 {
		az += 2 * math.Pi
	}
	return az
}
