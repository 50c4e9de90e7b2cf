package conformance

// Rule identifies a single check of the location contract. Each rule can
// fail independently; a report may carry several rules for one record.
type Rule string

const (
	RuleLatLngFlag             Rule = "lat_lng_flag"
	RuleAltitudeFlag           Rule = "altitude_flag"
	RuleSpeedFlag              Rule = "speed_flag"
	RuleHorizontalAccuracyFlag Rule = "horizontal_accuracy_flag"
	RuleVerticalAccuracyFlag   Rule = "vertical_accuracy_flag"
	RuleSpeedAccuracyFlag      Rule = "speed_accuracy_flag"
	RuleBearingAccuracyFlag    Rule = "bearing_accuracy_flag"
	RuleBearingForMotion       Rule = "bearing_for_motion"

	RuleLatitudeRange           Rule = "latitude_range"
	RuleLongitudeRange          Rule = "longitude_range"
	RuleAltitudeRange           Rule = "altitude_range"
	RuleSpeedRange              Rule = "speed_range"
	RuleHorizontalAccuracyRange Rule = "horizontal_accuracy_range"
	RuleBearingRange            Rule = "bearing_range"
	RuleVerticalAccuracyRange   Rule = "vertical_accuracy_range"
	RuleSpeedAccuracyRange      Rule = "speed_accuracy_range"
	RuleBearingAccuracyRange    Rule = "bearing_accuracy_range"
	RuleTimestampSanity         Rule = "timestamp_sanity"
)

// Bounds used by the range rules. Values come from the HAL conformance
// contract; speed assumes a stationary test rig.
const (
	MinLatitudeDeg = -90.0
	MaxLatitudeDeg = 90.0

	MinLongitudeDeg = -180.0
	MaxLongitudeDeg = 180.0

	MinAltitudeMeters = -1000.0
	MaxAltitudeMeters = 30000.0

	MaxSpeedMetersPerSec = 5.0

	MaxHorizontalAccuracyMeters = 250.0
	MaxVerticalAccuracyMeters   = 500.0
	MaxSpeedAccuracyMPS         = 50.0
	MaxBearingAccuracyDeg       = 360.0

	// Bearing accepts both the -180..180 and 0..360 conventions.
	MinBearingDeg = -180.0
	MaxBearingDeg = 360.0

	// MinTimestampMillis rejects clocks pre-dating 2017.
	MinTimestampMillis = int64(1.48e12)
)
