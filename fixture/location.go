package fixture

import "github.com/signalsfoundry/gnss-conformance/hal"

// Location returns a canned fix that satisfies every rule of the location
// contract under any Options combination. Useful both as a golden input
// and as a self-test of the validator.
func Location() hal.Location {
	return hal.Location{
		LatLng: hal.Present(hal.LatLng{
			Latitude:  37.4219999,
			Longitude: -122.0840575,
		}),
		Altitude:           hal.Present(1.60062531),
		Speed:              hal.Present(0.0),
		Bearing:            hal.Present(140.0),
		HorizontalAccuracy: hal.Present(5.0),
		VerticalAccuracy:   hal.Present(5.0),
		SpeedAccuracy:      hal.Present(0.5),
		BearingAccuracy:    hal.Present(90.0),
		TimestampMillis:    1519930775453,
	}
}
