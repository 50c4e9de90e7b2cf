package geo

import (
	"math"
	"testing"
)

func TestFromLLA(t *testing.T) {
	// Equator at the prime meridian sits on the +X axis.
	v := FromLLA(0, 0, 0)
	if math.Abs(v.X-EarthRadiusKm) > 1e-9 || math.Abs(v.Y) > 1e-9 || math.Abs(v.Z) > 1e-9 {
		t.Errorf("FromLLA(0,0,0) = %+v", v)
	}

	// North pole sits on the +Z axis; altitude adds to the radius.
	v = FromLLA(90, 0, 1000)
	if math.Abs(v.Z-(EarthRadiusKm+1)) > 1e-9 {
		t.Errorf("FromLLA(90,0,1000).Z = %v, want %v", v.Z, EarthRadiusKm+1)
	}
	if math.Abs(v.X) > 1e-9 {
		t.Errorf("FromLLA(90,0,1000).X = %v, want 0", v.X)
	}
}

func TestElevationDegrees(t *testing.T) {
	observer := FromLLA(0, 0, 0)

	cases := []struct {
		name   string
		target Vec3
		want   float64
	}{
		{"directly overhead", FromLLA(0, 0, 500_000), 90},
		{"below the observer", Vec3{X: EarthRadiusKm / 2}, -90},
		{"on the local horizon", Vec3{X: EarthRadiusKm, Y: 1000}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ElevationDegrees(observer, tc.target)
			if math.Abs(got-tc.want) > 1e-6 {
				t.Errorf("ElevationDegrees = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestElevationDegreesDegenerateInputs(t *testing.T) {
	observer := FromLLA(0, 0, 0)
	if got := ElevationDegrees(observer, observer); got != 90 {
		t.Errorf("coincident points = %v, want 90", got)
	}
	if got := ElevationDegrees(Vec3{}, Vec3{X: 1}); got != 90 {
		t.Errorf("observer at origin = %v, want 90", got)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{X: 3, Y: 4, Z: 0}
	b := Vec3{X: 1, Y: 1, Z: 1}

	if diff := a.Sub(b); diff != (Vec3{X: 2, Y: 3, Z: -1}) {
		t.Errorf("Sub = %+v", diff)
	}
	if dot := a.Dot(b); dot != 7 {
		t.Errorf("Dot = %v, want 7", dot)
	}
	if norm := a.Norm(); norm != 5 {
		t.Errorf("Norm = %v, want 5", norm)
	}
}
