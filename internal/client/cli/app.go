package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/healthguard/internal/logging"
	"github.com/dmitrijs2005/healthguard/internal/medication"
	"github.com/dmitrijs2005/healthguard/internal/models"
	"github.com/dmitrijs2005/healthguard/internal/notify"
	"github.com/dmitrijs2005/healthguard/internal/session"
	"github.com/dmitrijs2005/healthguard/internal/triage"
)

// Deps are the collaborators of an App. Sessions must publish its alerts and
// navigation requests to Bus.
type Deps struct {
	Sessions *session.Manager
	Bus      *notify.Bus
	Schedule []medication.Medication
	Log      logging.Logger
	In       io.Reader
	Out      io.Writer
}

// App is the terminal dashboard. It is driven from a single goroutine.
type App struct {
	sessions *session.Manager
	bus      *notify.Bus
	schedule []medication.Medication
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer

	events      <-chan notify.Event
	cancels     []func()
	meds        *medication.Tracker
	latest      *triage.Assessment
	latestSet   models.ReadingSet
	pendingView string
}

// NewApp wires an App and subscribes it to the bus and to session changes.
// Call Close to release the subscriptions.
func NewApp(d Deps) *App {
	a := &App{
		sessions: d.Sessions,
		bus:      d.Bus,
		schedule: d.Schedule,
		log:      d.Log.With("component", "cli"),
		reader:   bufio.NewReader(d.In),
		out:      d.Out,
	}
	if a.schedule == nil {
		a.schedule = medication.DefaultSchedule()
	}
	a.resetSessionData()

	events, cancel := a.bus.Subscribe()
	a.events = events
	a.cancels = append(a.cancels, cancel)
	a.cancels = append(a.cancels, a.sessions.Subscribe(a.onSessionChange))

	return a
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.println("Welcome to HealthGuard (type 'help' for commands)")
	if s := a.sessions.Current(); s != nil {
		fmt.Fprintf(a.out, "Signed in as %s (%s)\n", s.User.Name, s.Role())
	}
	a.drainEvents(ctx)

	runREPL(ctx, a, a.status, a.reader, a.out)
}

// Close cancels the bus and session subscriptions.
func (a *App) Close() {
	for i := len(a.cancels) - 1; i >= 0; i-- {
		a.cancels[i]()
	}
	a.cancels = nil
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current() != nil
}

func (a *App) status() string {
	s := a.sessions.Current()
	if s == nil {
		return ""
	}
	return fmt.Sprintf(" (%s %s)", s.User.Username, s.Role())
}

// onSessionChange drops per-session data once the session ends.
func (a *App) onSessionChange(st session.State) {
	if !st.Authenticated() {
		a.resetSessionData()
	}
}

func (a *App) resetSessionData() {
	a.meds = medication.NewTracker(a.schedule, a.bus)
	a.latest = nil
	a.latestSet = models.ReadingSet{}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
