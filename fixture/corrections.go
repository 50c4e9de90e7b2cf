// Package fixture builds deterministic GNSS HAL records for conformance
// test benches: literal-valued golden records, a location that passes
// every contract rule, and synthetic sky views propagated from TLEs.
package fixture

import "github.com/signalsfoundry/gnss-conformance/hal"

// MeasurementCorrections returns the golden two-satellite correction
// record. Every call returns an equal value; callers may mutate their copy
// freely.
func MeasurementCorrections() hal.MeasurementCorrections {
	plane := hal.ReflectingPlane{
		Latitude:  37.4220039,
		Longitude: -122.0840991,
		Altitude:  250.35,
		Azimuth:   203.0,
	}

	sat1 := hal.SatCorrection{
		Constellation:          hal.ConstellationGPS,
		SVID:                   12,
		CarrierFrequencyHz:     1.59975e+09,
		ProbSatIsLOS:           hal.Present(0.50001),
		ExcessPathLength:       hal.Present(137.4802),
		ExcessPathLengthUncert: hal.Present(25.5),
		ReflectingPlane:        hal.Present(plane),
	}
	sat2 := hal.SatCorrection{
		Constellation:          hal.ConstellationGPS,
		SVID:                   9,
		CarrierFrequencyHz:     1.59975e+09,
		ProbSatIsLOS:           hal.Present(0.873),
		ExcessPathLength:       hal.Present(26.294),
		ExcessPathLengthUncert: hal.Present(10.0),
	}

	return hal.MeasurementCorrections{
		Latitude:              37.4219999,
		Longitude:             -122.0840575,
		Altitude:              30.60062531,
		HorizontalUncertainty: 9.23542,
		VerticalUncertainty:   15.02341,
		TOAGPSNanosOfWeek:     2935633453,
		SatCorrections:        []hal.SatCorrection{sat1, sat2},
	}
}

// MeasurementCorrectionsExt returns the golden record re-expressed for the
// extended HAL version. The extended satellite list carries IRNSS, which
// the base enumeration cannot represent, so the corresponding entries in
// the embedded base record are narrowed to Unknown.
//
// Surprising but deliberate: the embedded base record loses constellation
// information that its extended siblings still carry. HAL consumers that
// only read the base record see Unknown, exactly as a real device
// reporting IRNSS would present it to a base-version client. Do not "fix"
// this; test benches depend on it.
func MeasurementCorrectionsExt() hal.MeasurementCorrectionsExt {
	base := MeasurementCorrections()

	ext := make([]hal.SatCorrectionExt, len(base.SatCorrections))
	for i, sat := range base.SatCorrections {
		ext[i] = hal.SatCorrectionExt{
			Base:          sat,
			Constellation: hal.ConstellationExtIRNSS,
		}
		base.SatCorrections[i].Constellation = hal.ConstellationUnknown
	}

	return hal.MeasurementCorrectionsExt{
		Base: base,
		EnvironmentBearing: hal.Present(hal.EnvironmentBearing{
			Degrees:            45.0,
			UncertaintyDegrees: 4.0,
		}),
		SatCorrections: ext,
	}
}
