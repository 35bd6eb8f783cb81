package models

import "fmt"

// VitalKind identifies which vital sign a reading measures.
type VitalKind string

const (
	VitalSystolic    VitalKind = "systolic"    // mmHg
	VitalHeartRate   VitalKind = "heart_rate"  // bpm
	VitalGlucose     VitalKind = "glucose"     // mg/dL
	VitalTemperature VitalKind = "temperature" // °F
)

// VitalKinds lists every classified kind in display order.
var VitalKinds = []VitalKind{VitalSystolic, VitalHeartRate, VitalGlucose, VitalTemperature}

// Unit returns the display unit for k.
func (k VitalKind) Unit() string {
	switch k {
	case VitalSystolic:
		return "mmHg"
	case VitalHeartRate:
		return "bpm"
	case VitalGlucose:
		return "mg/dL"
	case VitalTemperature:
		return "°F"
	}
	return ""
}

// Reading is a single numeric vital-sign measurement.
type Reading struct {
	Kind  VitalKind
	Value float64
}

// ReadingSet is one submitted vitals form. Diastolic pressure is collected
// for display only and is not classified.
type ReadingSet struct {
	Systolic    float64
	Diastolic   float64
	HeartRate   float64
	Glucose     float64
	Temperature float64
}

// Readings returns the classified readings of the set.
func (s ReadingSet) Readings() []Reading {
	return []Reading{
		{Kind: VitalSystolic, Value: s.Systolic},
		{Kind: VitalHeartRate, Value: s.HeartRate},
		{Kind: VitalGlucose, Value: s.Glucose},
		{Kind: VitalTemperature, Value: s.Temperature},
	}
}

// Severity is the triage category of a reading. Values are ordered by
// clinical severity: Excellent < Good < Warning < Danger.
type Severity int

const (
	SeverityExcellent Severity = iota
	SeverityGood
	SeverityWarning
	SeverityDanger
)

var severityNames = [...]string{"excellent", "good", "warning", "danger"}

func (s Severity) String() string {
	if s < SeverityExcellent || s > SeverityDanger {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// AtLeast reports whether s is as severe as or more severe than other.
func (s Severity) AtLeast(other Severity) bool {
	return s >= other
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
