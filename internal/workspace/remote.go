package workspace

// Remote shapes, decoded straight from the GraphQL data object. Field
// names follow Linear's schema; the mappers rename them for output.

type pageInfo struct {
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	EndCursor       *string `json:"endCursor"`
	StartCursor     *string `json:"startCursor"`
}

type connection[N any] struct {
	Nodes    []N       `json:"nodes"`
	PageInfo *pageInfo `json:"pageInfo"`
}

type personNode struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type refNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type teamNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Key  string `json:"key"`
}

type initiativeNode struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	Content     *string     `json:"content"`
	Status      *string     `json:"status"`
	Owner       *personNode `json:"owner"`
	TargetDate  *string     `json:"targetDate"`
	StartedAt   *string     `json:"startedAt"`
	CompletedAt *string     `json:"completedAt"`
	ArchivedAt  *string     `json:"archivedAt"`
	CreatedAt   *string     `json:"createdAt"`
	UpdatedAt   *string     `json:"updatedAt"`
	Icon        *string     `json:"icon"`
	Color       *string     `json:"color"`

	Projects  connection[projectNode]  `json:"projects"`
	Documents connection[documentNode] `json:"documents"`
}

type projectNode struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	Content     *string     `json:"content"`
	State       *string     `json:"state"`
	Progress    *float64    `json:"progress"`
	StartedAt   *string     `json:"startedAt"`
	StartDate   *string     `json:"startDate"`
	TargetDate  *string     `json:"targetDate"`
	CompletedAt *string     `json:"completedAt"`
	CanceledAt  *string     `json:"canceledAt"`
	ArchivedAt  *string     `json:"archivedAt"`
	CreatedAt   *string     `json:"createdAt"`
	UpdatedAt   *string     `json:"updatedAt"`
	Icon        *string     `json:"icon"`
	Color       *string     `json:"color"`
	SlugID      *string     `json:"slugId"`
	Lead        *personNode `json:"lead"`

	Teams             connection[teamNode]      `json:"teams"`
	Initiatives       connection[refNode]       `json:"initiatives"`
	Issues            connection[issueNode]     `json:"issues"`
	Documents         connection[documentNode]  `json:"documents"`
	ProjectMilestones connection[milestoneNode] `json:"projectMilestones"`
}

type issueStateNode struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}

type issueNode struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Identifier       string          `json:"identifier"`
	State            *issueStateNode `json:"state"`
	Priority         *float64        `json:"priority"`
	ProjectMilestone *refNode        `json:"projectMilestone"`
}

type milestoneNode struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	TargetDate  *string  `json:"targetDate"`
	Status      *string  `json:"status"`
	Progress    *float64 `json:"progress"`
	SortOrder   *float64 `json:"sortOrder"`
	CreatedAt   *string  `json:"createdAt"`
	UpdatedAt   *string  `json:"updatedAt"`
}

type documentNode struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Content    *string     `json:"content"`
	Icon       *string     `json:"icon"`
	Color      *string     `json:"color"`
	ArchivedAt *string     `json:"archivedAt"`
	CreatedAt  *string     `json:"createdAt"`
	UpdatedAt  *string     `json:"updatedAt"`
	Creator    *personNode `json:"creator"`
	Project    *refNode    `json:"project"`
	Initiative *refNode    `json:"initiative"`
}
