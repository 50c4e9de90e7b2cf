package hal

// ReflectingPlane describes the surface a non-line-of-sight signal is
// assumed to have bounced off.
type ReflectingPlane struct {
	Latitude  float64 `json:"latitude"`  // degrees
	Longitude float64 `json:"longitude"` // degrees
	Altitude  float64 `json:"altitude"`  // metres
	Azimuth   float64 `json:"azimuth"`   // degrees
}

// SatCorrection is a per-satellite correction estimate in the base HAL
// version.
type SatCorrection struct {
	Constellation      Constellation `json:"constellation"`
	SVID               uint16        `json:"svid"`
	CarrierFrequencyHz float64       `json:"carrier_frequency_hz"`

	ProbSatIsLOS           Optional[float64]         `json:"prob_sat_is_los"`           // probability signal is line-of-sight
	ExcessPathLength       Optional[float64]         `json:"excess_path_length"`        // metres
	ExcessPathLengthUncert Optional[float64]         `json:"excess_path_length_uncert"` // metres
	ReflectingPlane        Optional[ReflectingPlane] `json:"reflecting_plane"`
}

// MeasurementCorrections aggregates position-correction estimates around a
// reference point, plus per-satellite entries.
type MeasurementCorrections struct {
	Latitude  float64 `json:"latitude"`  // degrees
	Longitude float64 `json:"longitude"` // degrees
	Altitude  float64 `json:"altitude"`  // metres

	HorizontalUncertainty float64 `json:"horizontal_uncertainty"` // metres
	VerticalUncertainty   float64 `json:"vertical_uncertainty"`   // metres

	// TOAGPSNanosOfWeek is the GPS time-of-arrival reference, in
	// nanoseconds within the GPS week.
	TOAGPSNanosOfWeek uint64 `json:"toa_gps_nanos_of_week"`

	SatCorrections []SatCorrection `json:"sat_corrections"`
}

// EnvironmentBearing is the extended version's estimate of the bearing of
// the surrounding environment (a street canyon, say), with uncertainty.
type EnvironmentBearing struct {
	Degrees            float64 `json:"degrees"`
	UncertaintyDegrees float64 `json:"uncertainty_degrees"`
}

// SatCorrectionExt wraps a base per-satellite correction and re-expresses
// its constellation in the extended enumeration.
type SatCorrectionExt struct {
	Base          SatCorrection    `json:"base"`
	Constellation ConstellationExt `json:"constellation"`
}

// MeasurementCorrectionsExt owns a base record by value and carries a
// parallel extended satellite-correction list.
type MeasurementCorrectionsExt struct {
	Base MeasurementCorrections `json:"base"`

	EnvironmentBearing Optional[EnvironmentBearing] `json:"environment_bearing"`

	SatCorrections []SatCorrectionExt `json:"sat_corrections"`
}
