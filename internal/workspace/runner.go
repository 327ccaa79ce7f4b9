package workspace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Executor runs one GraphQL document and returns the top-level fields of
// the response's data object. *linear.Client satisfies it.
type Executor interface {
	Execute(ctx context.Context, query string, variables map[string]any) (map[string]json.RawMessage, error)
}

// operation describes one round trip: the document to send, the data
// field holding the answer, and how to shape it. When entity is set a
// null or missing field means the entity does not exist.
type operation[T any] struct {
	query     string
	variables map[string]any
	field     string
	entity    string
	id        string
	shape     func(raw json.RawMessage) (T, error)
}

// run executes op and shapes its result. Shape functions receive nil
// when a list field is absent.
func run[T any](ctx context.Context, exec Executor, op operation[T]) (T, error) {
	var zero T
	data, err := exec.Execute(ctx, op.query, op.variables)
	if err != nil {
		return zero, err
	}

	raw := data[op.field]
	if isNull(raw) {
		if op.entity != "" {
			return zero, &NotFoundError{Entity: op.entity, ID: op.id}
		}
		raw = nil
	}
	return op.shape(raw)
}

// page is a shaped list plus its pagination block.
type page[T any] struct {
	items      []T
	pagination Pagination
}

// listDescriptor binds a list query to its filter rules and node mapper.
type listDescriptor[N, T any] struct {
	query   string
	field   string
	filters filterRules
	mapNode func(N) T
}

func (d listDescriptor[N, T]) op(p ListParams) operation[page[T]] {
	return operation[page[T]]{
		query:     d.query,
		variables: p.variables(d.filters.build(p)),
		field:     d.field,
		shape:     d.shape,
	}
}

func (d listDescriptor[N, T]) shape(raw json.RawMessage) (page[T], error) {
	var conn connection[N]
	if raw != nil {
		if err := json.Unmarshal(raw, &conn); err != nil {
			return page[T]{}, fmt.Errorf("decoding %s: %w", d.field, err)
		}
	}
	return page[T]{
		items:      mapNodes(conn.Nodes, d.mapNode),
		pagination: toPagination(conn.PageInfo),
	}, nil
}

// detailDescriptor binds a single-entity query to its node mapper.
type detailDescriptor[N, T any] struct {
	query   string
	field   string
	entity  string
	mapNode func(N) T
}

func (d detailDescriptor[N, T]) op(id string) operation[T] {
	return operation[T]{
		query:     d.query,
		variables: map[string]any{"id": id},
		field:     d.field,
		entity:    d.entity,
		id:        id,
		shape:     d.shape,
	}
}

func (d detailDescriptor[N, T]) shape(raw json.RawMessage) (T, error) {
	var node N
	if err := json.Unmarshal(raw, &node); err != nil {
		var zero T
		return zero, fmt.Errorf("decoding %s: %w", d.field, err)
	}
	return d.mapNode(node), nil
}

// mapNodes applies fn to every node. The result is never nil so empty
// collections encode as [] rather than null.
func mapNodes[N, T any](nodes []N, fn func(N) T) []T {
	out := make([]T, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, fn(n))
	}
	return out
}

func toPagination(pi *pageInfo) Pagination {
	if pi == nil {
		return Pagination{}
	}
	return Pagination{
		HasNextPage:     pi.HasNextPage,
		HasPreviousPage: pi.HasPreviousPage,
		EndCursor:       pi.EndCursor,
		StartCursor:     pi.StartCursor,
	}
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// name returns the person's display name, or nil.
func (p *personNode) name() *string {
	if p == nil {
		return nil
	}
	return p.Name
}

func (p *personNode) person() *Person {
	if p == nil {
		return nil
	}
	return &Person{Name: p.Name, Email: p.Email}
}

func (r *refNode) name() *string {
	if r == nil {
		return nil
	}
	name := r.Name
	return &name
}

func (r *refNode) ref() *Ref {
	if r == nil {
		return nil
	}
	return &Ref{ID: r.ID, Name: r.Name}
}
