package workspace

const (
	// DefaultLimit is the page size used when the caller gives none.
	DefaultLimit = 50
	// MaxLimit caps the page size sent upstream. Larger values are
	// silently reduced, never rejected.
	MaxLimit = 250
)

// ListParams are the inputs shared by the three list operations. Empty
// strings mean "not given". Fields an entity does not filter on are
// ignored.
type ListParams struct {
	Limit           int
	Search          string
	IncludeArchived bool
	TeamID          string
	InitiativeID    string
	ProjectID       string
	After           string
	Before          string
}

// ClampLimit caps n at MaxLimit.
func ClampLimit(n int) int {
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// variables assembles the GraphQL variables for a list query. Cursors
// pass through opaquely; absent ones are sent as null. The filter is
// omitted entirely when empty.
func (p ListParams) variables(filter map[string]any) map[string]any {
	vars := map[string]any{
		"first":  ClampLimit(p.Limit),
		"after":  nullable(p.After),
		"before": nullable(p.Before),
	}
	if len(filter) > 0 {
		vars["filter"] = filter
	}
	return vars
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// filterRules declares how ListParams translate into an entity's remote
// filter object. All produced constraints combine with implicit AND.
type filterRules struct {
	// searchField receives a "contains" constraint from Search.
	searchField string
	// archivedAware entities get an archivedAt null constraint unless
	// IncludeArchived is set.
	archivedAware bool
	relations     []relationFilter
}

// relationFilter maps one id parameter onto an equality constraint on a
// relationship field.
type relationFilter struct {
	field string
	id    func(ListParams) string
	match func(id string) map[string]any
}

func (s filterRules) build(p ListParams) map[string]any {
	filter := map[string]any{}
	if p.Search != "" {
		filter[s.searchField] = map[string]any{"contains": p.Search}
	}
	for _, r := range s.relations {
		if id := r.id(p); id != "" {
			filter[r.field] = r.match(id)
		}
	}
	if s.archivedAware && !p.IncludeArchived {
		filter["archivedAt"] = map[string]any{"null": true}
	}
	return filter
}

// someID matches a to-many relationship containing id.
func someID(id string) map[string]any {
	return map[string]any{"some": eqID(id)}
}

// eqID matches a to-one relationship pointing at id.
func eqID(id string) map[string]any {
	return map[string]any{"id": map[string]any{"eq": id}}
}

// Initiatives accept include_archived for symmetry only: the remote
// schema has no archive filter for them, so it never reaches the query.
var initiativeFilters = filterRules{
	searchField: "name",
}

var projectFilters = filterRules{
	searchField:   "name",
	archivedAware: true,
	relations: []relationFilter{
		{field: "teams", id: func(p ListParams) string { return p.TeamID }, match: someID},
		{field: "initiatives", id: func(p ListParams) string { return p.InitiativeID }, match: someID},
	},
}

var documentFilters = filterRules{
	searchField:   "title",
	archivedAware: true,
	relations: []relationFilter{
		{field: "project", id: func(p ListParams) string { return p.ProjectID }, match: eqID},
		{field: "initiative", id: func(p ListParams) string { return p.InitiativeID }, match: eqID},
	},
}
