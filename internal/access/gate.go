// Package access decides whether a protected view may render for the
// current session. It is a client-side gate, not a security boundary.
package access

import (
	"fmt"

	"github.com/dmitrijs2005/healthguard/internal/common"
	"github.com/dmitrijs2005/healthguard/internal/models"
	"github.com/dmitrijs2005/healthguard/internal/session"
)

// Outcome is the kind of gate decision.
type Outcome int

const (
	// Pending: session restoration has not finished; show a loading state.
	Pending Outcome = iota
	// Render: the view may be shown.
	Render
	// RedirectToLogin: no session; Decision.From holds the requested location.
	RedirectToLogin
	// Deny: the session's role does not match the view's required role.
	Deny
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Render:
		return "render"
	case RedirectToLogin:
		return "redirect_to_login"
	case Deny:
		return "deny"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Decision is the result of Evaluate.
type Decision struct {
	Outcome Outcome

	// From is the originally requested location, set for RedirectToLogin.
	From string

	// Required and Actual are set for Deny.
	Required models.Role
	Actual   models.Role
}

// Err returns common.ErrRoleMismatch for Deny and nil otherwise.
func (d Decision) Err() error {
	if d.Outcome == Deny {
		return fmt.Errorf("%w: requires %s, have %s", common.ErrRoleMismatch, d.Required, d.Actual)
	}
	return nil
}

// Message is the text to show for a decision that does not render.
func (d Decision) Message() string {
	switch d.Outcome {
	case Pending:
		return "Loading..."
	case RedirectToLogin:
		return "Please log in to continue."
	case Deny:
		return fmt.Sprintf("Access Denied. You don't have permission to access this page. Required role: %s | Your role: %s",
			d.Required, d.Actual)
	}
	return ""
}

// Evaluate decides what to do with a request for target. An empty required
// role admits any authenticated session. Evaluate performs no I/O.
func Evaluate(st session.State, target string, required models.Role) Decision {
	if !st.Restored && st.Session == nil {
		return Decision{Outcome: Pending}
	}
	if st.Session == nil {
		return Decision{Outcome: RedirectToLogin, From: target}
	}
	if required != "" && st.Session.Role() != required {
		return Decision{Outcome: Deny, Required: required, Actual: st.Session.Role()}
	}
	return Decision{Outcome: Render}
}
