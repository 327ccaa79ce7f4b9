package workspace

// groupByMilestone partitions issues across milestones. Every issue lands
// in exactly one place: the milestone it references, or the unassigned
// list when it references none or one this project does not have.
// Milestones and issues keep their remote order.
func groupByMilestone(milestones []milestoneNode, issues []issueNode) ([]Milestone, []IssueRef) {
	grouped := make([]Milestone, len(milestones))
	index := make(map[string]int, len(milestones))
	for i, m := range milestones {
		grouped[i] = toMilestone(m)
		index[m.ID] = i
	}

	unassigned := []IssueRef{}
	for _, n := range issues {
		ref := IssueRef{ID: n.ID, Identifier: n.Identifier, Title: n.Title}
		if n.ProjectMilestone != nil {
			if i, ok := index[n.ProjectMilestone.ID]; ok {
				grouped[i].Issues = append(grouped[i].Issues, ref)
				continue
			}
		}
		unassigned = append(unassigned, ref)
	}

	for i := range grouped {
		grouped[i].IssueCount = len(grouped[i].Issues)
	}
	return grouped, unassigned
}

func toMilestone(m milestoneNode) Milestone {
	return Milestone{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		TargetDate:  m.TargetDate,
		Status:      m.Status,
		Progress:    fraction(m.Progress),
		SortOrder:   m.SortOrder,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Issues:      []IssueRef{},
	}
}

// fraction rescales a 0..100 percentage to 0..1.
func fraction(pct *float64) *float64 {
	if pct == nil {
		return nil
	}
	v := *pct / 100
	return &v
}
