// Package conformance checks GNSS HAL records against the documented
// range/flag contract. Checks never stop at the first failure: every
// violated rule is reported as its own finding, and the caller decides
// what a non-empty finding list means.
package conformance

import (
	"fmt"

	"github.com/signalsfoundry/gnss-conformance/hal"
)

// Options selects the optional parts of the location contract. CheckSpeed
// requires a speed to be reported; CheckMoreAccuracies requires the
// accuracy fields introduced for 2017+ hardware.
type Options struct {
	CheckSpeed          bool `json:"check_speed"`
	CheckMoreAccuracies bool `json:"check_more_accuracies"`
}

// Violation is one failed rule, with enough context for a report.
// Got is nil for presence rules, where there is no offending value.
type Violation struct {
	Rule  Rule   `json:"rule"`
	Field string `json:"field"`
	Want  string `json:"want"`
	Got   any    `json:"got,omitempty"`
}

func (v Violation) String() string {
	if v.Got == nil {
		return fmt.Sprintf("%s: %s: want %s", v.Rule, v.Field, v.Want)
	}
	return fmt.Sprintf("%s: %s: want %s, got %v", v.Rule, v.Field, v.Want, v.Got)
}

// CheckLocation validates a single fix against the location contract and
// returns one Violation per failed rule. An empty result means the record
// conforms. Range rules only apply to fields that are present; a missing
// mandatory field is reported by its presence rule alone.
func CheckLocation(loc hal.Location, opts Options) []Violation {
	var out []Violation

	fail := func(rule Rule, field, want string, got any) {
		out = append(out, Violation{Rule: rule, Field: field, Want: want, Got: got})
	}

	// Mandatory fields. Altitude presence is part of the HAL contract even
	// though its range check below tolerates extreme terrain.
	if !loc.LatLng.Valid {
		fail(RuleLatLngFlag, "lat_lng", "present on every fix", nil)
	}
	if !loc.Altitude.Valid {
		fail(RuleAltitudeFlag, "altitude", "present on every fix", nil)
	}
	if !loc.HorizontalAccuracy.Valid {
		fail(RuleHorizontalAccuracyFlag, "horizontal_accuracy", "present on every fix", nil)
	}
	if opts.CheckSpeed && !loc.Speed.Valid {
		fail(RuleSpeedFlag, "speed", "present when speed is checked", nil)
	}

	// Uncertainties available on modern (2017+) hardware.
	if opts.CheckMoreAccuracies {
		if !loc.VerticalAccuracy.Valid {
			fail(RuleVerticalAccuracyFlag, "vertical_accuracy", "present on modern hardware", nil)
		}
		if opts.CheckSpeed {
			if !loc.SpeedAccuracy.Valid {
				fail(RuleSpeedAccuracyFlag, "speed_accuracy", "present on modern hardware", nil)
			}
			if loc.Bearing.Valid && !loc.BearingAccuracy.Valid {
				fail(RuleBearingAccuracyFlag, "bearing_accuracy", "present whenever bearing is reported", nil)
			}
		}
	}

	if pos, ok := loc.LatLng.Get(); ok {
		if pos.Latitude < MinLatitudeDeg || pos.Latitude > MaxLatitudeDeg {
			fail(RuleLatitudeRange, "latitude",
				fmt.Sprintf("[%g, %g] degrees", MinLatitudeDeg, MaxLatitudeDeg), pos.Latitude)
		}
		if pos.Longitude < MinLongitudeDeg || pos.Longitude > MaxLongitudeDeg {
			fail(RuleLongitudeRange, "longitude",
				fmt.Sprintf("[%g, %g] degrees", MinLongitudeDeg, MaxLongitudeDeg), pos.Longitude)
		}
	}
	if alt, ok := loc.Altitude.Get(); ok {
		if alt < MinAltitudeMeters || alt > MaxAltitudeMeters {
			fail(RuleAltitudeRange, "altitude",
				fmt.Sprintf("[%g, %g] metres", MinAltitudeMeters, MaxAltitudeMeters), alt)
		}
	}

	if opts.CheckSpeed {
		if speed, ok := loc.Speed.Get(); ok {
			if speed < 0 || speed > MaxSpeedMetersPerSec {
				fail(RuleSpeedRange, "speed",
					fmt.Sprintf("[0, %g] m/s on a stationary rig", MaxSpeedMetersPerSec), speed)
			}
			// A moving fix must report which way it is moving.
			if speed > 0 && !loc.Bearing.Valid {
				fail(RuleBearingForMotion, "bearing", "present whenever speed > 0", nil)
			}
		}
	}

	// Tolerate especially large horizontal uncertainty: a first fix with
	// poor geometry occasionally reports a few hundred metres.
	if hAcc, ok := loc.HorizontalAccuracy.Get(); ok {
		if hAcc <= 0 || hAcc > MaxHorizontalAccuracyMeters {
			fail(RuleHorizontalAccuracyRange, "horizontal_accuracy",
				fmt.Sprintf("(0, %g] metres", MaxHorizontalAccuracyMeters), hAcc)
		}
	}

	// Some devices report bearing as -180..180, others as 0..360. Both are
	// accepted.
	if bearing, ok := loc.Bearing.Get(); ok {
		if bearing < MinBearingDeg || bearing > MaxBearingDeg {
			fail(RuleBearingRange, "bearing",
				fmt.Sprintf("[%g, %g] degrees", MinBearingDeg, MaxBearingDeg), bearing)
		}
	}
	if vAcc, ok := loc.VerticalAccuracy.Get(); ok {
		if vAcc <= 0 || vAcc > MaxVerticalAccuracyMeters {
			fail(RuleVerticalAccuracyRange, "vertical_accuracy",
				fmt.Sprintf("(0, %g] metres", MaxVerticalAccuracyMeters), vAcc)
		}
	}
	if sAcc, ok := loc.SpeedAccuracy.Get(); ok {
		if sAcc <= 0 || sAcc > MaxSpeedAccuracyMPS {
			fail(RuleSpeedAccuracyRange, "speed_accuracy",
				fmt.Sprintf("(0, %g] m/s", MaxSpeedAccuracyMPS), sAcc)
		}
	}
	if bAcc, ok := loc.BearingAccuracy.Get(); ok {
		if bAcc <= 0 || bAcc > MaxBearingAccuracyDeg {
			fail(RuleBearingAccuracyRange, "bearing_accuracy",
				fmt.Sprintf("(0, %g] degrees", MaxBearingAccuracyDeg), bAcc)
		}
	}

	if loc.TimestampMillis <= MinTimestampMillis {
		fail(RuleTimestampSanity, "timestamp_millis",
			fmt.Sprintf("> %d (2017 or later)", MinTimestampMillis), loc.TimestampMillis)
	}

	return out
}
