// Package geo provides the small amount of Earth geometry the fixture
// generators need: ECEF vectors, geodetic-to-ECEF conversion, and
// elevation angles. A spherical Earth is good enough for deciding which
// satellites sit above an observer's horizon.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius (kilometres).
const EarthRadiusKm = 6371.0

// Vec3 is an ECEF-style vector in kilometres.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Norm returns the Euclidean norm of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// FromLLA converts a geodetic position (degrees, metres) to a spherical
// ECEF vector in kilometres.
func FromLLA(latDeg, lngDeg, altMeters float64) Vec3 {
	lat := latDeg * math.Pi / 180
	lng := lngDeg * math.Pi / 180
	r := EarthRadiusKm + altMeters/1000

	return Vec3{
		X: r * math.Cos(lat) * math.Cos(lng),
		Y: r * math.Cos(lat) * math.Sin(lng),
		Z: r * math.Sin(lat),
	}
}

// ElevationDegrees returns the elevation angle of the target as seen from
// the observer, in degrees. 0° = geometric horizon, 90° = overhead.
func ElevationDegrees(observer, target Vec3) float64 {
	v := target.Sub(observer)
	vNorm := v.Norm()
	if vNorm == 0 {
		return 90
	}

	// Local zenith at observer is its normalised position vector.
	r := observer.Norm()
	if r == 0 {
		return 90
	}
	zenith := Vec3{
		X: observer.X / r,
		Y: observer.Y / r,
		Z: observer.Z / r,
	}

	cosGamma := v.Dot(zenith) / vNorm
	if cosGamma > 1 {
		cosGamma = 1
	} else if cosGamma < -1 {
		cosGamma = -1
	}
	gammaDeg := math.Acos(cosGamma) * 180.0 / math.Pi

	// Elevation is measured from local horizon (90° − zenith angle).
	return 90.0 - gammaDeg
}
