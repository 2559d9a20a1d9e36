package domain

// UnitSystem selects metric or imperial rendering for one measurement kind.
type UnitSystem string

const (
	UnitMetric   UnitSystem = "metric"
	UnitImperial UnitSystem = "imperial"
)

// MeasurementSettings holds the user's two independent unit choices.
type MeasurementSettings struct {
	WeightUnit   UnitSystem `json:"weightUnit"`
	DistanceUnit UnitSystem `json:"distanceUnit"`
}

// DefaultMeasurementSettings is the signed-out / fresh-install baseline.
func DefaultMeasurementSettings() MeasurementSettings {
	return MeasurementSettings{
		WeightUnit:   UnitMetric,
		DistanceUnit: UnitMetric,
	}
}
