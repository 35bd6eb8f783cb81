package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/healthguard/internal/access"
	"github.com/dmitrijs2005/healthguard/internal/common"
	"github.com/dmitrijs2005/healthguard/internal/notify"
	"github.com/dmitrijs2005/healthguard/internal/triage"
)

// EmergencyAlert confirms the emergency call.
var EmergencyAlert = notify.Alert{
	Level:   notify.LevelInfo,
	Title:   "Emergency Alert Sent",
	Message: "Your emergency contacts and healthcare provider have been notified.",
}

// errNotAllowed is returned by dashboard actions the gate did not admit.
var errNotAllowed = errors.New("not allowed")

// requireDashboard gates actions that live on the dashboard view.
func (a *App) requireDashboard(ctx context.Context) error {
	if a.gate(ctx, access.Views["dashboard"]).Outcome != access.Render {
		return errNotAllowed
	}
	return nil
}

// Vitals prompts for a full set of vital signs, classifies it and shows the
// result.
func (a *App) Vitals(ctx context.Context) error {
	if err := a.requireDashboard(ctx); err != nil {
		return err
	}

	var f triage.Form
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Systolic pressure (mmHg)", &f.Systolic},
		{"Diastolic pressure (mmHg)", &f.Diastolic},
		{"Heart rate (bpm)", &f.HeartRate},
		{"Blood glucose (mg/dL)", &f.Glucose},
		{"Temperature (°F)", &f.Temperature},
	}
	for _, p := range prompts {
		v, err := GetSimpleText(a.reader, p.label, a.out)
		if err != nil {
			a.log.Error(ctx, "read vitals", "error", err)
			return err
		}
		*p.dst = v
	}

	set, err := triage.ParseReadingSet(f)
	if err != nil {
		if errors.Is(err, common.ErrMissingReading) {
			a.bus.Notify(ctx, triage.MissingAlert)
			a.drainEvents(ctx)
		} else {
			a.printf("Error: %v\n", err)
		}
		return err
	}

	res := triage.Submit(ctx, a.bus, set)
	a.latest = &res
	a.latestSet = set
	a.log.Info(ctx, "vitals recorded", "worst", res.Worst, "alert", res.Alert)

	a.renderAssessment()
	a.drainEvents(ctx)
	return nil
}

// Meds lists today's medications and reminds about pending ones.
func (a *App) Meds(ctx context.Context) error {
	if err := a.requireDashboard(ctx); err != nil {
		return err
	}

	for _, m := range a.meds.List() {
		a.printf("  [%s] %-13s %-6s %-9s %s\n", m.ID, m.Name, m.Dosage, m.Time, m.Status())
	}
	a.meds.Remind(ctx)
	a.drainEvents(ctx)
	return nil
}

// Take marks medication id as taken.
func (a *App) Take(ctx context.Context, id string) error {
	if err := a.requireDashboard(ctx); err != nil {
		return err
	}

	m, err := a.meds.MarkTaken(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.printf("No medication with id %q.\n", id)
		}
		return err
	}
	a.log.Info(ctx, "medication taken", "id", m.ID, "name", m.Name)
	a.drainEvents(ctx)
	return nil
}

// Emergency notifies the emergency contact of the signed-in user.
func (a *App) Emergency(ctx context.Context) error {
	if err := a.requireDashboard(ctx); err != nil {
		return err
	}

	s := a.sessions.Current()
	ec := s.User.EmergencyContact
	a.log.Warn(ctx, "emergency call", "username", s.User.Username, "contact", ec.Name, "phone", ec.Phone)

	a.bus.Notify(ctx, EmergencyAlert)
	a.drainEvents(ctx)
	return nil
}
