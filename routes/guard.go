package routes

import "net/url"

// Action is the guard's verdict kind.
type Action int

const (
	// ActionAllow is an exported constant or variable used by the API client.
	ActionAllow Action = iota
	// ActionRedirect is an exported constant or variable used by the API client.
	ActionRedirect
)

func (a Action) String() string {
	switch a {
	case ActionAllow:
		return "allow"
	case ActionRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Decision is the guard's verdict for one navigation intent.
type Decision struct {
	Action Action
	// Target is the route name to redirect to when Action is
	// ActionRedirect.
	Target string
	// Query carries recoverable redirect state, e.g. the originally
	// intended path under "redirect".
	Query url.Values
}

// RedirectQueryKey is the query parameter carrying the originally intended
// path through a login redirect.
const RedirectQueryKey = "redirect"

// Guard evaluates navigation intents against a fixed route table.
type Guard struct {
	table          Table
	loginRoute     string
	dashboardRoute string
}

// NewGuard describes the newguard operation and its observable behavior.
//
// Empty route names fall back to the canonical Login and Dashboard names.
func NewGuard(table Table, loginRoute, dashboardRoute string) Guard {
	if loginRoute == "" {
		loginRoute = NameLogin
	}
	if dashboardRoute == "" {
		dashboardRoute = NameDashboard
	}
	return Guard{table: table, loginRoute: loginRoute, dashboardRoute: dashboardRoute}
}

// Evaluate is the navigation guard: a pure function of the target route's
// metadata and the session state.
//
//   - Target requires auth and the session is anonymous: redirect to the
//     login route, preserving fullPath under [RedirectQueryKey].
//   - Target is the login or registration entry point and the session is
//     authenticated: redirect to the dashboard.
//   - Otherwise the navigation is allowed unchanged.
func (g Guard) Evaluate(target Route, fullPath string, authenticated bool) Decision {
	if target.RequiresAuth && !authenticated {
		q := url.Values{}
		if fullPath != "" {
			q.Set(RedirectQueryKey, fullPath)
		}
		return Decision{Action: ActionRedirect, Target: g.loginRoute, Query: q}
	}
	if !target.RequiresAuth && authenticated &&
		(target.Name == NameLogin || target.Name == NameRegister) {
		return Decision{Action: ActionRedirect, Target: g.dashboardRoute}
	}
	return Decision{Action: ActionAllow}
}

// EvaluatePath matches fullPath against the table and evaluates the result.
// Unknown paths are allowed through; surfacing a not-found view is the host
// application's concern, not the guard's.
func (g Guard) EvaluatePath(fullPath string, authenticated bool) Decision {
	path := fullPath
	if u, err := url.Parse(fullPath); err == nil {
		path = u.Path
	}
	target, ok := g.table.Match(path)
	if !ok {
		return Decision{Action: ActionAllow}
	}
	return g.Evaluate(target, fullPath, authenticated)
}
