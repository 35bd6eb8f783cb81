package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/healthguard/internal/access"
	"github.com/dmitrijs2005/healthguard/internal/notify"
)

// Open asks the access gate for view and renders it, redirects to login or
// prints the denial.
func (a *App) Open(ctx context.Context, name string) error {
	v, ok := access.LookupView(name)
	if !ok {
		a.printf("Unknown view %q. Views: %s\n", name, strings.Join(access.ViewNames(), ", "))
		return fmt.Errorf("unknown view %q", name)
	}
	if d := a.gate(ctx, v); d.Outcome != access.Render {
		return d.Err()
	}

	a.println("== " + v.Title + " ==")
	switch v.Name {
	case "dashboard":
		a.renderDashboard()
	case "profile":
		a.renderProfile()
	case "patients":
		a.renderPatients()
	case "admin":
		a.renderAdmin()
	}
	return nil
}

// gate evaluates the access gate for v and handles every outcome except
// Render.
func (a *App) gate(ctx context.Context, v access.View) access.Decision {
	d := access.EvaluateView(a.sessions.State(), v)

	switch d.Outcome {
	case access.Render:
	case access.RedirectToLogin:
		a.println(d.Message())
		a.bus.Navigate(ctx, notify.Navigation{To: notify.DestinationLogin, From: d.From})
		a.drainEvents(ctx)
	case access.Deny:
		a.log.Info(ctx, "access denied", "view", v.Name, "required", d.Required, "actual", d.Actual)
		a.println(d.Message())
	default:
		a.println(d.Message())
	}
	return d
}

func (a *App) renderDashboard() {
	s := a.sessions.Current()
	a.printf("Welcome back, %s\n", s.User.Name)

	if a.latest == nil {
		a.println("No vital signs recorded yet. Use 'vitals' to add a reading.")
	} else {
		a.renderAssessment()
	}

	pending, missed := a.meds.Counts()
	a.printf("Medications: %d pending, %d missed\n", pending, missed)
	if al, ok := a.meds.Reminder(); ok {
		a.printAlert(al)
	}
}

func (a *App) renderAssessment() {
	for _, r := range a.latest.Readings {
		a.printf("  %-12s %7.1f %-6s %s\n", r.Kind, r.Value, r.Kind.Unit(), r.Severity)
	}
	a.printf("  %-12s %7.1f %-6s\n", "diastolic", a.latestSet.Diastolic, "mmHg")
	a.printf("Overall: %s\n", a.latest.Worst)
}

func (a *App) renderProfile() {
	p := a.sessions.Current().User

	a.printf("Name:        %s\n", p.Name)
	a.printf("Username:    %s\n", p.Username)
	a.printf("Role:        %s\n", p.Role)
	a.printf("Patient ID:  %s\n", p.ID)
	if p.Age > 0 {
		a.printf("Age:         %d\n", p.Age)
	}
	a.printf("Email:       %s\n", p.Email)
	if p.Phone != "" {
		a.printf("Phone:       %s\n", p.Phone)
	}
	if p.Location != "" {
		a.printf("Location:    %s\n", p.Location)
	}
	if p.BloodType != "" {
		a.printf("Blood type:  %s\n", p.BloodType)
	}
	if p.Allergies != "" {
		a.printf("Allergies:   %s\n", p.Allergies)
	}
	if ec := p.EmergencyContact; ec.Name != "" {
		a.printf("Emergency:   %s (%s) %s\n", ec.Name, ec.Relation, ec.Phone)
	}
}

func (a *App) renderPatients() {
	a.println("No patients are assigned to you today.")
}

func (a *App) renderAdmin() {
	s := a.sessions.Current()
	a.printf("Session %s established %s\n", s.ID, s.EstablishedAt.Local().Format("2006-01-02 15:04:05"))
	a.printf("Views: %s\n", strings.Join(access.ViewNames(), ", "))
}
