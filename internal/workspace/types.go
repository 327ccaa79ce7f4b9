package workspace

// Output shapes. JSON names are part of the tool contract: flat,
// snake_case, with nested people and references collapsed.

// Pagination is attached to every list result. Booleans default to
// false and cursors to null when the remote omits them.
type Pagination struct {
	HasNextPage     bool    `json:"has_next_page"`
	HasPreviousPage bool    `json:"has_previous_page"`
	EndCursor       *string `json:"end_cursor"`
	StartCursor     *string `json:"start_cursor"`
}

// Person is a user reference in detail views.
type Person struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// Ref is an id/name reference to another entity.
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ErrorResult is what every operation yields at the tool boundary when
// it fails. Callers must check for it before trusting the rest of a
// response.
type ErrorResult struct {
	Error string `json:"error"`
}

// Failure converts err into an ErrorResult.
func Failure(err error) ErrorResult {
	return ErrorResult{Error: err.Error()}
}

// --- Initiatives ---

// InitiativeSummary is one row of list_initiatives.
type InitiativeSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Status       *string `json:"status"`
	Owner        *string `json:"owner"`
	ProjectCount *int    `json:"project_count"`
	TargetDate   *string `json:"target_date"`
	StartedAt    *string `json:"started_at"`
	CompletedAt  *string `json:"completed_at"`
	ArchivedAt   *string `json:"archived_at"`
	CreatedAt    *string `json:"created_at"`
	UpdatedAt    *string `json:"updated_at"`
	Color        *string `json:"color"`
	Icon         *string `json:"icon"`
}

// InitiativeList is the list_initiatives result.
type InitiativeList struct {
	Initiatives []InitiativeSummary `json:"initiatives"`
	TotalCount  int                 `json:"total_count"`
	Pagination  Pagination          `json:"pagination"`
}

// InitiativeProject is a child project nested in an initiative.
type InitiativeProject struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	State       *string  `json:"state"`
	Progress    *float64 `json:"progress"`
	TargetDate  *string  `json:"target_date"`
}

// DocumentRef is a child document nested in an initiative or project.
type DocumentRef struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

// InitiativeDetail is the get_initiative result.
type InitiativeDetail struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Description  *string             `json:"description"`
	Content      *string             `json:"content"`
	Status       *string             `json:"status"`
	Owner        *Person             `json:"owner"`
	ProjectCount int                 `json:"project_count"`
	TargetDate   *string             `json:"target_date"`
	StartedAt    *string             `json:"started_at"`
	CompletedAt  *string             `json:"completed_at"`
	ArchivedAt   *string             `json:"archived_at"`
	CreatedAt    *string             `json:"created_at"`
	UpdatedAt    *string             `json:"updated_at"`
	Color        *string             `json:"color"`
	Icon         *string             `json:"icon"`
	Projects     []InitiativeProject `json:"projects"`
	Documents    []DocumentRef       `json:"documents"`
}

// --- Projects ---

// ProjectSummary is one row of list_projects. Teams and initiatives are
// reduced to their names.
type ProjectSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	State       *string  `json:"state"`
	Progress    *float64 `json:"progress"`
	Lead        *string  `json:"lead"`
	Teams       []string `json:"teams"`
	Initiatives []string `json:"initiatives"`
	TargetDate  *string  `json:"target_date"`
	CompletedAt *string  `json:"completed_at"`
	ArchivedAt  *string  `json:"archived_at"`
	Color       *string  `json:"color"`
	Icon        *string  `json:"icon"`
}

// ProjectList is the list_projects result.
type ProjectList struct {
	Projects   []ProjectSummary `json:"projects"`
	TotalCount int              `json:"total_count"`
	Pagination Pagination       `json:"pagination"`
}

// Team is a team a project belongs to.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Key  string `json:"key"`
}

// Issue is a project issue with its state flattened.
type Issue struct {
	ID          string   `json:"id"`
	Identifier  string   `json:"identifier"`
	Title       string   `json:"title"`
	State       *string  `json:"state"`
	StateType   *string  `json:"state_type"`
	Priority    *float64 `json:"priority"`
	MilestoneID *string  `json:"milestone_id"`
}

// IssueRef is the short issue form used inside milestone groups.
type IssueRef struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
}

// Milestone is a project milestone with the issues assigned to it.
// Progress is on a 0..1 scale.
type Milestone struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	TargetDate  *string    `json:"target_date"`
	Status      *string    `json:"status"`
	Progress    *float64   `json:"progress"`
	SortOrder   *float64   `json:"sort_order"`
	CreatedAt   *string    `json:"created_at"`
	UpdatedAt   *string    `json:"updated_at"`
	IssueCount  int        `json:"issue_count"`
	Issues      []IssueRef `json:"issues"`
}

// ProjectDetail is the get_project_with_milestones_and_associated_issues
// result.
type ProjectDetail struct {
	ID                     string        `json:"id"`
	Name                   string        `json:"name"`
	Description            *string       `json:"description"`
	Content                *string       `json:"content"`
	State                  *string       `json:"state"`
	Progress               *float64      `json:"progress"`
	Lead                   *Person       `json:"lead"`
	Slug                   *string       `json:"slug"`
	Teams                  []Team        `json:"teams"`
	Initiatives            []Ref         `json:"initiatives"`
	Issues                 []Issue       `json:"issues"`
	Documents              []DocumentRef `json:"documents"`
	Milestones             []Milestone   `json:"milestones"`
	IssuesWithoutMilestone []IssueRef    `json:"issues_without_milestone"`
	TargetDate             *string       `json:"target_date"`
	CompletedAt            *string       `json:"completed_at"`
	ArchivedAt             *string       `json:"archived_at"`
	CreatedAt              *string       `json:"created_at"`
	UpdatedAt              *string       `json:"updated_at"`
	Color                  *string       `json:"color"`
	Icon                   *string       `json:"icon"`
}

// --- Documents ---

// DocumentSummary is one row of list_documents. Creator, project and
// initiative are reduced to their names.
type DocumentSummary struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Creator    *string `json:"creator"`
	Project    *string `json:"project"`
	Initiative *string `json:"initiative"`
	ArchivedAt *string `json:"archived_at"`
	CreatedAt  *string `json:"created_at"`
	UpdatedAt  *string `json:"updated_at"`
	Color      *string `json:"color"`
	Icon       *string `json:"icon"`
}

// DocumentList is the list_documents result.
type DocumentList struct {
	Documents  []DocumentSummary `json:"documents"`
	TotalCount int               `json:"total_count"`
	Pagination Pagination        `json:"pagination"`
}

// DocumentDetail is the get_document result.
type DocumentDetail struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Content    *string `json:"content"`
	Creator    *Person `json:"creator"`
	Project    *Ref    `json:"project"`
	Initiative *Ref    `json:"initiative"`
	ArchivedAt *string `json:"archived_at"`
	CreatedAt  *string `json:"created_at"`
	UpdatedAt  *string `json:"updated_at"`
	Color      *string `json:"color"`
	Icon       *string `json:"icon"`
}

// Viewer is the authenticated user.
type Viewer struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
