// Package hal holds the value types exchanged with the GNSS hardware
// abstraction layer: location fixes and measurement-correction records in
// their base and extended versions. All types are plain value records;
// extended versions own their base version by value rather than extending it.
package hal

// LatLng is a geodetic position in decimal degrees.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is a single reported fix. Fields that the HAL gates behind a
// presence flag are Optional here; TimestampMillis is always reported.
type Location struct {
	LatLng             Optional[LatLng]   `json:"lat_lng"`
	Altitude           Optional[float64]  `json:"altitude"`            // metres above WGS84 ellipsoid
	Speed              Optional[float64]  `json:"speed"`               // metres per second
	Bearing            Optional[float64]  `json:"bearing"`             // degrees
	HorizontalAccuracy Optional[float64]  `json:"horizontal_accuracy"` // metres
	VerticalAccuracy   Optional[float64]  `json:"vertical_accuracy"`   // metres
	SpeedAccuracy      Optional[float64]  `json:"speed_accuracy"`      // metres per second
	BearingAccuracy    Optional[float64]  `json:"bearing_accuracy"`    // degrees

	// TimestampMillis is UTC milliseconds since the Unix epoch.
	TimestampMillis int64 `json:"timestamp_millis"`
}
