package workspace

var projectList = listDescriptor[projectNode, ProjectSummary]{
	query:   listProjectsQuery,
	field:   "projects",
	filters: projectFilters,
	mapNode: toProjectSummary,
}

var projectDetail = detailDescriptor[projectNode, ProjectDetail]{
	query:   getProjectQuery,
	field:   "project",
	entity:  "Project",
	mapNode: toProjectDetail,
}

func toProjectSummary(n projectNode) ProjectSummary {
	return ProjectSummary{
		ID:          n.ID,
		Name:        n.Name,
		Description: n.Description,
		State:       n.State,
		Progress:    n.Progress,
		Lead:        n.Lead.name(),
		Teams:       mapNodes(n.Teams.Nodes, func(t teamNode) string { return t.Name }),
		Initiatives: mapNodes(n.Initiatives.Nodes, func(r refNode) string { return r.Name }),
		TargetDate:  n.TargetDate,
		CompletedAt: n.CompletedAt,
		ArchivedAt:  n.ArchivedAt,
		Color:       n.Color,
		Icon:        n.Icon,
	}
}

func toProjectDetail(n projectNode) ProjectDetail {
	milestones, unassigned := groupByMilestone(n.ProjectMilestones.Nodes, n.Issues.Nodes)
	return ProjectDetail{
		ID:          n.ID,
		Name:        n.Name,
		Description: n.Description,
		Content:     n.Content,
		State:       n.State,
		Progress:    n.Progress,
		Lead:        n.Lead.person(),
		Slug:        n.SlugID,
		Teams: mapNodes(n.Teams.Nodes, func(t teamNode) Team {
			return Team{ID: t.ID, Name: t.Name, Key: t.Key}
		}),
		Initiatives: mapNodes(n.Initiatives.Nodes, func(r refNode) Ref {
			return Ref{ID: r.ID, Name: r.Name}
		}),
		Issues:                 mapNodes(n.Issues.Nodes, toIssue),
		Documents:              mapNodes(n.Documents.Nodes, toDocumentRef),
		Milestones:             milestones,
		IssuesWithoutMilestone: unassigned,
		TargetDate:             n.TargetDate,
		CompletedAt:            n.CompletedAt,
		ArchivedAt:             n.ArchivedAt,
		CreatedAt:              n.CreatedAt,
		UpdatedAt:              n.UpdatedAt,
		Color:                  n.Color,
		Icon:                   n.Icon,
	}
}

func toIssue(n issueNode) Issue {
	issue := Issue{
		ID:         n.ID,
		Identifier: n.Identifier,
		Title:      n.Title,
		Priority:   n.Priority,
	}
	if n.State != nil {
		issue.State = n.State.Name
		issue.StateType = n.State.Type
	}
	if n.ProjectMilestone != nil {
		id := n.ProjectMilestone.ID
		issue.MilestoneID = &id
	}
	return issue
}
