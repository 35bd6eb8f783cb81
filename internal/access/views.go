package access

import (
	"sort"

	"github.com/dmitrijs2005/healthguard/internal/models"
	"github.com/dmitrijs2005/healthguard/internal/session"
)

// View is a named area of the dashboard and the role it requires.
type View struct {
	Name     string
	Required models.Role
	Title    string
}

// Views lists the dashboard areas. An empty Required admits any role.
var Views = map[string]View{
	"dashboard": {Name: "dashboard", Title: "Health Overview"},
	"profile":   {Name: "profile", Title: "My Profile"},
	"patients":  {Name: "patients", Required: models.RoleDoctor, Title: "Patient List"},
	"admin":     {Name: "admin", Required: models.RoleAdmin, Title: "Administration"},
}

// LookupView returns the view called name.
func LookupView(name string) (View, bool) {
	v, ok := Views[name]
	return v, ok
}

// ViewNames returns the known view names in sorted order.
func ViewNames() []string {
	names := make([]string, 0, len(Views))
	for n := range Views {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// EvaluateView is Evaluate for a named view.
func EvaluateView(st session.State, v View) Decision {
	return Evaluate(st, v.Name, v.Required)
}
