// Package triage maps vital-sign readings to severity categories and decides
// when a submitted reading set warrants a health alert.
//
// Classify is pure and total. Thresholds (boundaries inclusive as written):
//
//	systolic (mmHg)  excellent <120, good 120–<130, warning 130–<140, danger ≥140
//	heart rate (bpm) excellent 60–100, warning 40–<60 or >100–110, danger <40 or >110
//	glucose (mg/dL)  excellent <100, good 100–<126, warning 126–<180, danger ≥180
//	temperature (°F) excellent 97–99, warning 95–<97 or >99–100.4, danger <95 or >100.4
//
// NaN, infinities and values ≤ 0 are not physiological and classify as danger
// for every kind.
package triage

import (
	"math"

	"github.com/dmitrijs2005/healthguard/internal/models"
)

// Classify returns the severity of value for kind. Unknown kinds are
// reported as good, the dashboard's neutral state.
func Classify(kind models.VitalKind, value float64) models.Severity {
	switch kind {
	case models.VitalSystolic, models.VitalHeartRate, models.VitalGlucose, models.VitalTemperature:
	default:
		return models.SeverityGood
	}

	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return models.SeverityDanger
	}

	switch kind {
	case models.VitalSystolic:
		return systolic(value)
	case models.VitalHeartRate:
		return heartRate(value)
	case models.VitalGlucose:
		return glucose(value)
	default:
		return temperature(value)
	}
}

func systolic(v float64) models.Severity {
	switch {
	case v < 120:
		return models.SeverityExcellent
	case v < 130:
		return models.SeverityGood
	case v < 140:
		return models.SeverityWarning
	default:
		return models.SeverityDanger
	}
}

// heartRate checks the normal band first, then the two warning bands; what
// remains is danger. Each value satisfies exactly one branch.
func heartRate(v float64) models.Severity {
	switch {
	case v >= 60 && v <= 100:
		return models.SeverityExcellent
	case v > 100 && v <= 110:
		return models.SeverityWarning
	case v >= 40 && v < 60:
		return models.SeverityWarning
	default:
		return models.SeverityDanger
	}
}

func glucose(v float64) models.Severity {
	switch {
	case v < 100:
		return models.SeverityExcellent
	case v < 126:
		return models.SeverityGood
	case v < 180:
		return models.SeverityWarning
	default:
		return models.SeverityDanger
	}
}

// temperature uses the same ordering as heartRate.
func temperature(v float64) models.Severity {
	switch {
	case v >= 97 && v <= 99:
		return models.SeverityExcellent
	case v > 99 && v <= 100.4:
		return models.SeverityWarning
	case v >= 95 && v < 97:
		return models.SeverityWarning
	default:
		return models.SeverityDanger
	}
}
