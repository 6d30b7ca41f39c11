package format

// Priority is a display descriptor for an issue priority.
type Priority struct {
	Value string
	Label string
	Color string
}

// Issue priorities in descending order of urgency.
var (
	// PriorityHigh is an exported constant or variable used by the API client.
	PriorityHigh = Priority{Value: "HIGH", Label: "High", Color: "#d03050"}
	// PriorityMedium is an exported constant or variable used by the API client.
	PriorityMedium = Priority{Value: "MEDIUM", Label: "Medium", Color: "#f0a020"}
	// PriorityLow is an exported constant or variable used by the API client.
	PriorityLow = Priority{Value: "LOW", Label: "Low", Color: "#18a058"}
)

// Priorities maps the wire value to its display descriptor.
var Priorities = map[string]Priority{
	PriorityHigh.Value:   PriorityHigh,
	PriorityMedium.Value: PriorityMedium,
	PriorityLow.Value:    PriorityLow,
}

// DefaultStatuses is the board column set a new project starts with.
var DefaultStatuses = []string{"Backlog", "In Progress", "Done"}

// Team membership roles as the backend reports them.
const (
	// TeamRoleOwner is an exported constant or variable used by the API client.
	TeamRoleOwner = "OWNER"
	// TeamRoleAdmin is an exported constant or variable used by the API client.
	TeamRoleAdmin = "ADMIN"
	// TeamRoleMember is an exported constant or variable used by the API client.
	TeamRoleMember = "MEMBER"
)
