package cli

import (
	"context"

	"github.com/dmitrijs2005/healthguard/internal/notify"
)

// drainEvents handles every event already queued on the bus. Publishing is
// synchronous, so after a command returns its events are in the queue.
func (a *App) drainEvents(ctx context.Context) {
	for {
		select {
		case evt, ok := <-a.events:
			if !ok {
				return
			}
			a.handleEvent(ctx, evt)
		default:
			return
		}
	}
}

func (a *App) handleEvent(ctx context.Context, evt notify.Event) {
	switch {
	case evt.Alert != nil:
		a.printAlert(*evt.Alert)
	case evt.Navigation != nil:
		a.navigate(ctx, *evt.Navigation)
	}
}

func (a *App) printAlert(al notify.Alert) {
	a.printf("[%s] %s: %s\n", al.Level, al.Title, al.Message)
}

// navigate follows a navigation request. A redirect to login remembers the
// requested view; reaching the protected area reopens it.
func (a *App) navigate(ctx context.Context, n notify.Navigation) {
	a.log.Debug(ctx, "navigate", "to", n.To, "from", n.From)

	switch n.To {
	case notify.DestinationLogin:
		a.pendingView = n.From
		a.println("Type 'login' to sign in.")
	case notify.DestinationProtected:
		view := a.pendingView
		a.pendingView = ""
		if view == "" {
			view = "dashboard"
		}
		_ = a.Open(ctx, view)
	case notify.DestinationPublic:
		a.pendingView = ""
		a.println("You are signed out.")
	}
}
