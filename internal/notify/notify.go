// Package notify carries one-way notifications from the core to the
// presentation layer: user-facing alerts and navigation requests.
package notify

import "context"

// Level is the urgency of an alert.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// Alert is a one-shot user notification. It is not stored anywhere.
type Alert struct {
	Level   Level
	Title   string
	Message string
}

// Destination names an area of the dashboard.
type Destination string

const (
	DestinationLogin     Destination = "login"
	DestinationProtected Destination = "dashboard"
	DestinationPublic    Destination = "home"
)

// Navigation asks the presentation layer to move to To. From carries the
// originally requested location when a protected view redirected to login.
type Navigation struct {
	To   Destination
	From string
}

// Notifier receives alerts.
type Notifier interface {
	Notify(ctx context.Context, a Alert)
}

// Navigator receives navigation requests.
type Navigator interface {
	Navigate(ctx context.Context, n Navigation)
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Notify(context.Context, Alert) {}
func (Discard) Navigate(context.Context, Navigation) {}
