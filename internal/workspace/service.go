// Package workspace turns Linear initiatives, projects and documents into
// flat result documents.
//
// Each operation sends exactly one fixed GraphQL document through an
// Executor and reshapes the reply: camelCase becomes snake_case, nested
// people and references collapse to names or {id, name} pairs, and list
// results gain a total_count and a pagination block. Operations are
// independent and hold no state of their own.
package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingID is returned by the detail operations for an empty id.
// No request is sent in that case.
var ErrMissingID = errors.New("id is required")

// Service exposes the read operations over an Executor.
type Service struct {
	exec Executor
}

// NewService creates a Service that sends its queries through exec.
func NewService(exec Executor) *Service {
	return &Service{exec: exec}
}

// ListInitiatives returns one page of initiatives.
func (s *Service) ListInitiatives(ctx context.Context, p ListParams) (*InitiativeList, error) {
	pg, err := run(ctx, s.exec, initiativeList.op(p))
	if err != nil {
		return nil, err
	}
	return &InitiativeList{
		Initiatives: pg.items,
		TotalCount:  len(pg.items),
		Pagination:  pg.pagination,
	}, nil
}

// GetInitiative returns one initiative with its projects and documents.
func (s *Service) GetInitiative(ctx context.Context, id string) (*InitiativeDetail, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	detail, err := run(ctx, s.exec, initiativeDetail.op(id))
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// ListProjects returns one page of projects.
func (s *Service) ListProjects(ctx context.Context, p ListParams) (*ProjectList, error) {
	pg, err := run(ctx, s.exec, projectList.op(p))
	if err != nil {
		return nil, err
	}
	return &ProjectList{
		Projects:   pg.items,
		TotalCount: len(pg.items),
		Pagination: pg.pagination,
	}, nil
}

// GetProject returns one project with its issues grouped by milestone.
func (s *Service) GetProject(ctx context.Context, id string) (*ProjectDetail, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	detail, err := run(ctx, s.exec, projectDetail.op(id))
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// ListDocuments returns one page of documents.
func (s *Service) ListDocuments(ctx context.Context, p ListParams) (*DocumentList, error) {
	pg, err := run(ctx, s.exec, documentList.op(p))
	if err != nil {
		return nil, err
	}
	return &DocumentList{
		Documents:  pg.items,
		TotalCount: len(pg.items),
		Pagination: pg.pagination,
	}, nil
}

// GetDocument returns one document including its content.
func (s *Service) GetDocument(ctx context.Context, id string) (*DocumentDetail, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	detail, err := run(ctx, s.exec, documentDetail.op(id))
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// Viewer returns the user the API key belongs to. It doubles as a
// connectivity check.
func (s *Service) Viewer(ctx context.Context) (*Viewer, error) {
	return run(ctx, s.exec, operation[*Viewer]{
		query: viewerQuery,
		field: "viewer",
		shape: func(raw json.RawMessage) (*Viewer, error) {
			if raw == nil {
				return nil, errors.New("linear returned no viewer for this API key")
			}
			var v Viewer
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, fmt.Errorf("decoding viewer: %w", err)
			}
			return &v, nil
		},
	})
}
