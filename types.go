package boardclient

import "time"

// User is the authenticated account profile returned by the backend.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	ProfileImage string    `json:"profile_image,omitempty"`
	AuthProvider string    `json:"auth_provider"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserBrief is the slim user shape embedded in issues and comments.
type UserBrief struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// TokenResponse is the login/register success payload: a bearer access
// token plus the authenticated profile.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// LoginRequest defines a public type used by boardclient APIs.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest defines a public type used by boardclient APIs.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// UpdateUserRequest carries the mutable profile fields.
type UpdateUserRequest struct {
	Name         string `json:"name,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// ChangePasswordRequest defines a public type used by boardclient APIs.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// GoogleLoginResponse carries the OAuth authorization URL the application
// should open to start the Google sign-in flow.
type GoogleLoginResponse struct {
	AuthURL string `json:"auth_url"`
}

// Team defines a public type used by boardclient APIs.
type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TeamWithRole is a team annotated with the caller's membership role and
// aggregate counts, as returned by the team list endpoint.
type TeamWithRole struct {
	Team
	MyRole       string `json:"my_role"`
	MemberCount  int    `json:"member_count"`
	ProjectCount int    `json:"project_count"`
}

// TeamMember defines a public type used by boardclient APIs.
type TeamMember struct {
	ID           int64     `json:"id"`
	TeamID       int64     `json:"team_id"`
	UserID       int64     `json:"user_id"`
	Role         string    `json:"role"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profile_image,omitempty"`
	JoinedAt     time.Time `json:"joined_at"`
}

// TeamInvite defines a public type used by boardclient APIs.
type TeamInvite struct {
	ID        int64     `json:"id"`
	TeamID    int64     `json:"team_id"`
	Email     string    `json:"email"`
	InvitedBy int64     `json:"invited_by"`
	ExpiresAt time.Time `json:"expires_at"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityEntry is one row of a team's activity feed.
type ActivityEntry struct {
	ID        int64     `json:"id"`
	TeamID    int64     `json:"team_id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Project defines a public type used by boardclient APIs.
type Project struct {
	ID          int64     `json:"id"`
	TeamID      int64     `json:"team_id"`
	OwnerID     int64     `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsArchived  bool      `json:"is_archived"`
	IsFavorite  bool      `json:"is_favorite"`
	IssueCount  int       `json:"issue_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProjectDetail is a project plus its per-status issue statistics.
type ProjectDetail struct {
	Project
	IssueStats map[string]int `json:"issue_stats"`
}

// ProjectRequest carries the writable project fields.
type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Label defines a public type used by boardclient APIs.
type Label struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// LabelBrief is the slim label shape embedded in issues.
type LabelBrief struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// LabelRequest defines a public type used by boardclient APIs.
type LabelRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Issue defines a public type used by boardclient APIs.
//
// DueDate is a date-only string in "2006-01-02" form, empty when unset; see
// the format package for parsing and deadline helpers.
type Issue struct {
	ID          int64        `json:"id"`
	ProjectID   int64        `json:"project_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Priority    string       `json:"priority"`
	Status      string       `json:"status"`
	Position    int          `json:"position"`
	Owner       UserBrief    `json:"owner"`
	AssigneeID  int64        `json:"assignee_id,omitempty"`
	Assignee    *UserBrief   `json:"assignee,omitempty"`
	Labels      []LabelBrief `json:"labels"`
	DueDate     string       `json:"due_date,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// IssueDetail is an issue plus its AI annotations and comment count.
type IssueDetail struct {
	Issue
	AISummary    string `json:"ai_summary,omitempty"`
	AISuggestion string `json:"ai_suggestion,omitempty"`
	CommentCount int    `json:"comment_count"`
}

// IssueRequest carries the writable issue fields for create and update.
type IssueRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	Status      string  `json:"status,omitempty"`
	AssigneeID  int64   `json:"assignee_id,omitempty"`
	DueDate     string  `json:"due_date,omitempty"`
	LabelIDs    []int64 `json:"label_ids,omitempty"`
}

// IssueListParams narrows a project issue listing. Zero values are omitted.
type IssueListParams struct {
	Status     string
	Priority   string
	AssigneeID int64
	LabelID    int64
	Search     string
}

// IssuePosition is one entry of a bulk kanban reorder.
type IssuePosition struct {
	IssueID  int64  `json:"issue_id"`
	Status   string `json:"status"`
	Position int    `json:"position"`
}

// HistoryEntry is one row of an issue's change history.
type HistoryEntry struct {
	ID        int64     `json:"id"`
	IssueID   int64     `json:"issue_id"`
	UserName  string    `json:"user_name"`
	Field     string    `json:"field"`
	OldValue  string    `json:"old_value,omitempty"`
	NewValue  string    `json:"new_value,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment defines a public type used by boardclient APIs.
type Comment struct {
	ID        int64     `json:"id"`
	IssueID   int64     `json:"issue_id"`
	Content   string    `json:"content"`
	User      UserBrief `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Notification defines a public type used by boardclient APIs.
type Notification struct {
	ID             int64     `json:"id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	RelatedIssueID int64     `json:"related_issue_id,omitempty"`
	RelatedTeamID  int64     `json:"related_team_id,omitempty"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

// NotificationList is the notification feed plus the total unread count.
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

// IssueBrief is the slim issue shape used by dashboard payloads.
type IssueBrief struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	DueDate     string `json:"due_date,omitempty"`
	ProjectName string `json:"project_name"`
	Status      string `json:"status"`
}

// CommentBrief is the slim comment shape used by dashboard payloads.
type CommentBrief struct {
	ID         int64     `json:"id"`
	IssueTitle string    `json:"issue_title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// TeamBrief is the slim team shape used by dashboard payloads.
type TeamBrief struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// ProjectBrief is the slim project shape used by dashboard payloads.
type ProjectBrief struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	TeamName   string `json:"team_name"`
	IssueCount int    `json:"issue_count"`
}

// PersonalDashboard defines a public type used by boardclient APIs.
type PersonalDashboard struct {
	MyIssues       map[string]int `json:"my_issues"`
	DueSoon        []IssueBrief   `json:"due_soon"`
	RecentComments []CommentBrief `json:"recent_comments"`
	MyTeams        []TeamBrief    `json:"my_teams"`
	MyProjects     []ProjectBrief `json:"my_projects"`
}

// ProjectDashboard defines a public type used by boardclient APIs.
type ProjectDashboard struct {
	IssueStats     map[string]int `json:"issue_stats"`
	CompletionRate float64        `json:"completion_rate"`
	PriorityStats  map[string]int `json:"priority_stats"`
	RecentIssues   []IssueBrief   `json:"recent_issues"`
	DueSoon        []IssueBrief   `json:"due_soon"`
}

// AISummary defines a public type used by boardclient APIs.
type AISummary struct {
	Summary string `json:"summary"`
}

// AISuggestion defines a public type used by boardclient APIs.
type AISuggestion struct {
	Suggestion string `json:"suggestion"`
}

// AILabelRecommendation defines a public type used by boardclient APIs.
type AILabelRecommendation struct {
	RecommendedLabels []LabelBrief `json:"recommended_labels"`
}

// AIDuplicateReport defines a public type used by boardclient APIs.
type AIDuplicateReport struct {
	SimilarIssues []IssueBrief `json:"similar_issues"`
}
