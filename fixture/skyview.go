package fixture

import (
	"time"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/signalsfoundry/gnss-conformance/hal"
	"github.com/signalsfoundry/gnss-conformance/internal/geo"
)

// OrbitingSat describes one satellite available to the sky-view
// generator: its identity in the HAL enumeration plus its TLE.
type OrbitingSat struct {
	Constellation      hal.Constellation
	SVID               uint16
	CarrierFrequencyHz float64

	TLELine1 string
	TLELine2 string
}

// Observer is the geodetic position a sky view is computed for.
type Observer struct {
	LatLng    hal.LatLng
	AltMeters float64
}

// SkyView propagates each satellite to the given instant with SGP4 and
// returns one correction entry per satellite above the elevation mask
// (degrees). Entries are ordered as the input and carry an
// elevation-derived line-of-sight probability and excess path length, so
// the output is fully determined by its inputs.
func SkyView(sats []OrbitingSat, obs Observer, at time.Time, maskDeg float64) []hal.SatCorrection {
	at = at.UTC()
	observer := geo.FromLLA(obs.LatLng.Latitude, obs.LatLng.Longitude, obs.AltMeters)

	var out []hal.SatCorrection
	for _, s := range sats {
		pos, ok := propagate(s.TLELine1, s.TLELine2, at)
		if !ok {
			continue
		}

		elev := geo.ElevationDegrees(observer, pos)
		if elev < maskDeg {
			continue
		}

		out = append(out, hal.SatCorrection{
			Constellation:          s.Constellation,
			SVID:                   s.SVID,
			CarrierFrequencyHz:     s.CarrierFrequencyHz,
			ProbSatIsLOS:           hal.Present(losProbability(elev)),
			ExcessPathLength:       hal.Present(excessPathMeters(elev)),
			ExcessPathLengthUncert: hal.Present(excessPathMeters(elev) * 0.2),
		})
	}
	return out
}

// propagate runs SGP4 for the instant and returns the ECEF position in
// kilometres. A TLE the library cannot parse propagates to the origin;
// treat that as "no position".
func propagate(line1, line2 string, at time.Time) (geo.Vec3, bool) {
	sat := satellite.TLEToSat(line1, line2, satellite.GravityWGS72)

	year, month, day := at.Date()
	hour, min, sec := at.Clock()

	posECI, _ := satellite.Propagate(sat, year, int(month), day, hour, min, sec)
	jd := satellite.JDay(year, int(month), day, hour, min, sec)
	gmst := satellite.ThetaG_JD(jd)
	posECEF := satellite.ECIToECEF(posECI, gmst)

	pos := geo.Vec3{X: posECEF.X, Y: posECEF.Y, Z: posECEF.Z}
	return pos, pos.Norm() > 0
}

// losProbability maps elevation to a line-of-sight probability: 0.5 at the
// horizon rising linearly to 1.0 at zenith.
func losProbability(elevDeg float64) float64 {
	if elevDeg < 0 {
		elevDeg = 0
	} else if elevDeg > 90 {
		elevDeg = 90
	}
	return 0.5 + 0.5*elevDeg/90
}

// excessPathMeters models multipath as worst near the horizon and zero at
// zenith.
func excessPathMeters(elevDeg float64) float64 {
	if elevDeg < 0 {
		elevDeg = 0
	} else if elevDeg > 90 {
		elevDeg = 90
	}
	return (90 - elevDeg) * 1.5
}
