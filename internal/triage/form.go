package triage

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/healthguard/internal/common"
	"github.com/dmitrijs2005/healthguard/internal/models"
	"github.com/dmitrijs2005/healthguard/internal/notify"
)

// MissingAlert is shown when a vitals form is submitted incomplete.
var MissingAlert = notify.Alert{
	Level:   notify.LevelWarning,
	Title:   "Missing Information",
	Message: "Please fill in all vital signs before submitting.",
}

// Form is the raw text of a vitals submission. Every field is required.
type Form struct {
	Systolic    string
	Diastolic   string
	HeartRate   string
	Glucose     string
	Temperature string
}

// ParseReadingSet validates the form and converts it to a ReadingSet. Empty fields
// yield common.ErrMissingReading, non-numeric ones common.ErrInvalidReading.
func ParseReadingSet(f Form) (models.ReadingSet, error) {
	var rs models.ReadingSet
	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"systolic", f.Systolic, &rs.Systolic},
		{"diastolic", f.Diastolic, &rs.Diastolic},
		{"heart rate", f.HeartRate, &rs.HeartRate},
		{"glucose", f.Glucose, &rs.Glucose},
		{"temperature", f.Temperature, &rs.Temperature},
	}

	var missing []string
	for _, fl := range fields {
		if strings.TrimSpace(fl.raw) == "" {
			missing = append(missing, fl.name)
		}
	}
	if len(missing) > 0 {
		return models.ReadingSet{}, fmt.Errorf("%w: %s", common.ErrMissingReading, strings.Join(missing, ", "))
	}

	for _, fl := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(fl.raw), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return models.ReadingSet{}, fmt.Errorf("%w: %s=%q", common.ErrInvalidReading, fl.name, fl.raw)
		}
		*fl.dst = v
	}
	return rs, nil
}
