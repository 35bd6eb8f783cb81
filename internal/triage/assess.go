package triage

import (
	"context"

	"github.com/dmitrijs2005/healthguard/internal/models"
	"github.com/dmitrijs2005/healthguard/internal/notify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var alertsRaisedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: "healthguard",
		Subsystem: "triage",
		Name:      "health_alerts_total",
		Help:      "Submitted reading sets that raised a health alert.",
	},
)

// HealthAlert is emitted for a reading set for which AlertWorthy holds.
var HealthAlert = notify.Alert{
	Level:   notify.LevelWarning,
	Title:   "Health Alert",
	Message: "Some vital signs are outside normal range. Consider contacting your healthcare provider.",
}

// RecordedAlert confirms that a reading set was accepted.
var RecordedAlert = notify.Alert{
	Level:   notify.LevelInfo,
	Title:   "Vital Signs Recorded",
	Message: "Your health data has been successfully logged.",
}

// AlertWorthy reports whether a newly submitted set must raise an alert:
// systolic ≥140, heart rate >100 or glucose >180.
func AlertWorthy(s models.ReadingSet) bool {
	return s.Systolic >= 140 || s.HeartRate > 100 || s.Glucose > 180
}

// Assessment is the triage of one reading set.
type Assessment struct {
	Readings []Result
	Worst    models.Severity
	Alert    bool
}

// Result is one classified reading.
type Result struct {
	models.Reading
	Severity models.Severity
}

// Assess classifies every reading of s.
func Assess(s models.ReadingSet) Assessment {
	a := Assessment{Alert: AlertWorthy(s)}
	for _, r := range s.Readings() {
		sev := Classify(r.Kind, r.Value)
		a.Readings = append(a.Readings, Result{Reading: r, Severity: sev})
		if sev > a.Worst {
			a.Worst = sev
		}
	}
	return a
}

// Submit assesses s and emits the confirmation and, when warranted, the
// health alert to n.
func Submit(ctx context.Context, n notify.Notifier, s models.ReadingSet) Assessment {
	a := Assess(s)
	n.Notify(ctx, RecordedAlert)
	if a.Alert {
		alertsRaisedTotal.Inc()
		n.Notify(ctx, HealthAlert)
	}
	return a
}
