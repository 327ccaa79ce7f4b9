package workspace

var documentList = listDescriptor[documentNode, DocumentSummary]{
	query:   listDocumentsQuery,
	field:   "documents",
	filters: documentFilters,
	mapNode: toDocumentSummary,
}

var documentDetail = detailDescriptor[documentNode, DocumentDetail]{
	query:   getDocumentQuery,
	field:   "document",
	entity:  "Document",
	mapNode: toDocumentDetail,
}

func toDocumentSummary(n documentNode) DocumentSummary {
	return DocumentSummary{
		ID:         n.ID,
		Title:      n.Title,
		Creator:    n.Creator.name(),
		Project:    n.Project.name(),
		Initiative: n.Initiative.name(),
		ArchivedAt: n.ArchivedAt,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
		Color:      n.Color,
		Icon:       n.Icon,
	}
}

func toDocumentDetail(n documentNode) DocumentDetail {
	return DocumentDetail{
		ID:         n.ID,
		Title:      n.Title,
		Content:    n.Content,
		Creator:    n.Creator.person(),
		Project:    n.Project.ref(),
		Initiative: n.Initiative.ref(),
		ArchivedAt: n.ArchivedAt,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
		Color:      n.Color,
		Icon:       n.Icon,
	}
}

// toDocumentRef drops content; nested documents only carry identity and
// timestamps.
func toDocumentRef(n documentNode) DocumentRef {
	return DocumentRef{
		ID:        n.ID,
		Title:     n.Title,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
