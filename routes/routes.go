package routes

import "strings"

// Route is one entry of the declarative route table.
type Route struct {
	// Path is the route pattern. Segments starting with ':' are
	// parameters, e.g. "/teams/:teamId".
	Path string
	Name string
	// RequiresAuth gates the route behind an authenticated session.
	RequiresAuth bool
}

// Canonical route names.
const (
	NameLogin          = "Login"
	NameRegister       = "Register"
	NameForgotPassword = "ForgotPassword"
	NameResetPassword  = "ResetPassword"
	NameGoogleCallback = "GoogleCallback"
	NameDashboard      = "Dashboard"
	NameProfile        = "Profile"
	NameTeamList       = "TeamList"
	NameTeamDetail     = "TeamDetail"
	NameKanbanBoard    = "KanbanBoard"
	NameIssueDetail    = "IssueDetail"
)

// Table is an ordered route set. Matching takes the first route whose
// pattern covers the path, so register more specific patterns first.
type Table struct {
	routes []Route
}

// NewTable describes the newtable operation and its observable behavior.
func NewTable(rs ...Route) Table {
	return Table{routes: rs}
}

// DefaultTable is the application's route set: public auth entry points
// plus the authenticated layout.
func DefaultTable() Table {
	return NewTable(
		Route{Path: "/login", Name: NameLogin},
		Route{Path: "/register", Name: NameRegister},
		Route{Path: "/forgot-password", Name: NameForgotPassword},
		Route{Path: "/reset-password/:token", Name: NameResetPassword},
		Route{Path: "/auth/google/callback", Name: NameGoogleCallback},
		Route{Path: "/", Name: NameDashboard, RequiresAuth: true},
		Route{Path: "/profile", Name: NameProfile, RequiresAuth: true},
		Route{Path: "/teams", Name: NameTeamList, RequiresAuth: true},
		Route{Path: "/teams/:teamId", Name: NameTeamDetail, RequiresAuth: true},
		Route{Path: "/projects/:projectId", Name: NameKanbanBoard, RequiresAuth: true},
		Route{Path: "/projects/:projectId/issues/:issueId", Name: NameIssueDetail, RequiresAuth: true},
	)
}

// Routes returns a copy of the table's entries.
func (t Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Lookup finds a route by name.
func (t Table) Lookup(name string) (Route, bool) {
	for _, r := range t.routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}

// Match resolves a concrete path (query string stripped by the caller)
// against the table. Parameter segments match any single non-empty
// segment.
func (t Table) Match(path string) (Route, bool) {
	segs := splitPath(path)
	var best Route
	bestLen := -1
	for _, r := range t.routes {
		pat := splitPath(r.Path)
		if !segmentsMatch(pat, segs) {
			continue
		}
		if len(pat) > bestLen {
			best = r
			bestLen = len(pat)
		}
	}
	return best, bestLen >= 0
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func segmentsMatch(pattern, path []string) bool {
	if len(pattern) != len(path) {
		return false
	}
	for i, seg := range pattern {
		if strings.HasPrefix(seg, ":") {
			if path[i] == "" {
				return false
			}
			continue
		}
		if seg != path[i] {
			return false
		}
	}
	return true
}
