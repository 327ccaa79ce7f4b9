package workspace

var initiativeList = listDescriptor[initiativeNode, InitiativeSummary]{
	query:   listInitiativesQuery,
	field:   "initiatives",
	filters: initiativeFilters,
	mapNode: toInitiativeSummary,
}

var initiativeDetail = detailDescriptor[initiativeNode, InitiativeDetail]{
	query:   getInitiativeQuery,
	field:   "initiative",
	entity:  "Initiative",
	mapNode: toInitiativeDetail,
}

// The list query does not select projects, so project_count stays null.
func toInitiativeSummary(n initiativeNode) InitiativeSummary {
	return InitiativeSummary{
		ID:          n.ID,
		Name:        n.Name,
		Description: n.Description,
		Status:      n.Status,
		Owner:       n.Owner.name(),
		TargetDate:  n.TargetDate,
		StartedAt:   n.StartedAt,
		CompletedAt: n.CompletedAt,
		ArchivedAt:  n.ArchivedAt,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
		Color:       n.Color,
		Icon:        n.Icon,
	}
}

func toInitiativeDetail(n initiativeNode) InitiativeDetail {
	projects := mapNodes(n.Projects.Nodes, func(p projectNode) InitiativeProject {
		return InitiativeProject{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			State:       p.State,
			Progress:    p.Progress,
			TargetDate:  p.TargetDate,
		}
	})
	return InitiativeDetail{
		ID:           n.ID,
		Name:         n.Name,
		Description:  n.Description,
		Content:      n.Content,
		Status:       n.Status,
		Owner:        n.Owner.person(),
		ProjectCount: len(projects),
		TargetDate:   n.TargetDate,
		StartedAt:    n.StartedAt,
		CompletedAt:  n.CompletedAt,
		ArchivedAt:   n.ArchivedAt,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
		Color:        n.Color,
		Icon:         n.Icon,
		Projects:     projects,
		Documents:    mapNodes(n.Documents.Nodes, toDocumentRef),
	}
}
