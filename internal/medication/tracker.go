// Package medication tracks today's medication schedule of the signed-in
// patient and produces the reminder alerts shown on the dashboard.
package medication

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/healthguard/internal/common"
	"github.com/dmitrijs2005/healthguard/internal/notify"
)

// Medication is one scheduled dose. A dose is pending until it is either
// taken or missed; taking a missed dose clears Missed.
type Medication struct {
	ID     string
	Name   string
	Dosage string
	Time   string
	Taken  bool
	Missed bool
}

// Pending reports whether the dose is still due.
func (m Medication) Pending() bool {
	return !m.Taken && !m.Missed
}

// Status is a one-word description of the dose state.
func (m Medication) Status() string {
	switch {
	case m.Taken:
		return "taken"
	case m.Missed:
		return "missed"
	default:
		return "pending"
	}
}

// RecordedAlert confirms a dose marked as taken.
var RecordedAlert = notify.Alert{
	Level:   notify.LevelInfo,
	Title:   "Medication Recorded",
	Message: "Medication marked as taken successfully.",
}

// DefaultSchedule is the demo schedule loaded for a new tracker.
func DefaultSchedule() []Medication {
	return []Medication{
		{ID: "1", Name: "Lisinopril", Dosage: "10mg", Time: "8:00 AM", Taken: true},
		{ID: "2", Name: "Metformin", Dosage: "500mg", Time: "12:00 PM"},
		{ID: "3", Name: "Atorvastatin", Dosage: "20mg", Time: "6:00 PM", Missed: true},
	}
}

// Tracker holds a schedule in memory. It is safe for concurrent use.
type Tracker struct {
	mu       sync.Mutex
	meds     []Medication
	notifier notify.Notifier
}

// NewTracker returns a tracker over a copy of schedule.
func NewTracker(schedule []Medication, n notify.Notifier) *Tracker {
	if n == nil {
		n = notify.Discard{}
	}
	meds := make([]Medication, len(schedule))
	copy(meds, schedule)
	return &Tracker{meds: meds, notifier: n}
}

// List returns a copy of the schedule in order.
func (t *Tracker) List() []Medication {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Medication, len(t.meds))
	copy(out, t.meds)
	return out
}

// MarkTaken records the dose id as taken and emits RecordedAlert. An unknown
// id yields common.ErrorNotFound.
func (t *Tracker) MarkTaken(ctx context.Context, id string) (Medication, error) {
	t.mu.Lock()
	idx := -1
	for i := range t.meds {
		if t.meds[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.mu.Unlock()
		return Medication{}, fmt.Errorf("medication %q: %w", id, common.ErrorNotFound)
	}
	t.meds[idx].Taken = true
	t.meds[idx].Missed = false
	m := t.meds[idx]
	t.mu.Unlock()

	t.notifier.Notify(ctx, RecordedAlert)
	return m, nil
}

// Counts returns the number of pending and missed doses.
func (t *Tracker) Counts() (pending, missed int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, m := range t.meds {
		switch {
		case m.Pending():
			pending++
		case m.Missed:
			missed++
		}
	}
	return pending, missed
}

// Reminder returns the "Medication Reminder" alert while doses are pending.
func (t *Tracker) Reminder() (notify.Alert, bool) {
	pending, _ := t.Counts()
	if pending == 0 {
		return notify.Alert{}, false
	}
	plural := ""
	if pending > 1 {
		plural = "s"
	}
	return notify.Alert{
		Level: notify.LevelWarning,
		Title: "Medication Reminder",
		Message: fmt.Sprintf("You have %d medication%s pending. Don't forget to take your prescribed medications on time.",
			pending, plural),
	}, true
}

// Remind emits the reminder when one is due and reports whether it did.
func (t *Tracker) Remind(ctx context.Context) bool {
	a, ok := t.Reminder()
	if ok {
		t.notifier.Notify(ctx, a)
	}
	return ok
}
