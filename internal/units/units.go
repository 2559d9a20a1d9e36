// Package units converts and formats weight and distance values between
// the metric and imperial systems. Conversions are pure multiplications;
// formatting renders for the unit system the caller's settings select,
// so callers must convert before formatting if the stored value is in
// the other system.
package units

import (
	"fmt"

	"coachdata/internal/domain"
)

const (
	// KgToLb is pounds per kilogram.
	KgToLb = 2.20462
	// KmToMi is miles per kilometer.
	KmToMi = 0.621371
)

// ConvertWeight converts a weight between unit systems. Identity when
// from == to.
func ConvertWeight(value float64, from, to domain.UnitSystem) float64 {
	if from == to {
		return value
	}
	if from == domain.UnitMetric && to == domain.UnitImperial {
		return value * KgToLb
	}
	return value / KgToLb
}

// ConvertDistance converts a distance between unit systems. Identity when
// from == to.
func ConvertDistance(value float64, from, to domain.UnitSystem) float64 {
	if from == to {
		return value
	}
	if from == domain.UnitMetric && to == domain.UnitImperial {
		return value * KmToMi
	}
	return value / KmToMi
}

// FormatWeight renders a weight to one decimal place with the suffix of
// the active weight unit. The value itself is not converted.
func FormatWeight(value float64, settings domain.MeasurementSettings) string {
	if settings.WeightUnit == domain.UnitImperial {
		return fmt.Sprintf("%.1f lb", value)
	}
	return fmt.Sprintf("%.1f kg", value)
}

// FormatDistance renders a distance to two decimal places with the suffix
// of the active distance unit. The value itself is not converted.
func FormatDistance(value float64, settings domain.MeasurementSettings) string {
	if settings.DistanceUnit == domain.UnitImperial {
		return fmt.Sprintf("%.2f mi", value)
	}
	return fmt.Sprintf("%.2f km", value)
}
