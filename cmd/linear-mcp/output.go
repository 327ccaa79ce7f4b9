package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jonathanykh/linear-api/internal/workspace"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTable = "table"
)

func validateFormat(format string) error {
	switch format {
	case formatJSON, formatYAML, formatTable:
		return nil
	}
	return fmt.Errorf("unknown output format %q: want json, yaml or table", format)
}

// render prints v in the requested format. Only list results have a
// table form; everything else falls back to JSON.
func render(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		return printYAML(w, v)
	case formatTable:
		if tw := listTable(v); tw != nil {
			tw.SetOutputMirror(w)
			tw.Render()
			return nil
		}
	}
	return printJSON(w, v)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printYAML writes v as YAML with the same keys, and in the same order,
// as its JSON form.
func printYAML(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	blockStyle(&doc)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

// blockStyle clears the flow and quoting styles the JSON input left on
// every node.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

func listTable(v any) table.Writer {
	tw := table.NewWriter()
	switch list := v.(type) {
	case *workspace.InitiativeList:
		tw.AppendHeader(table.Row{"ID", "Name", "Status", "Owner", "Target Date"})
		for _, it := range list.Initiatives {
			tw.AppendRow(table.Row{it.ID, it.Name, deref(it.Status), deref(it.Owner), deref(it.TargetDate)})
		}
		tw.SetCaption(caption(list.TotalCount, list.Pagination))
	case *workspace.ProjectList:
		tw.AppendHeader(table.Row{"ID", "Name", "State", "Progress", "Lead", "Teams"})
		for _, p := range list.Projects {
			tw.AppendRow(table.Row{p.ID, p.Name, deref(p.State), percent(p.Progress), deref(p.Lead), strings.Join(p.Teams, ", ")})
		}
		tw.SetCaption(caption(list.TotalCount, list.Pagination))
	case *workspace.DocumentList:
		tw.AppendHeader(table.Row{"ID", "Title", "Creator", "Project", "Initiative", "Updated"})
		for _, d := range list.Documents {
			tw.AppendRow(table.Row{d.ID, d.Title, deref(d.Creator), deref(d.Project), deref(d.Initiative), deref(d.UpdatedAt)})
		}
		tw.SetCaption(caption(list.TotalCount, list.Pagination))
	default:
		return nil
	}
	return tw
}

func caption(total int, p workspace.Pagination) string {
	if p.HasNextPage && p.EndCursor != nil {
		return fmt.Sprintf("%d shown, more after cursor %s", total, *p.EndCursor)
	}
	return fmt.Sprintf("%d shown", total)
}

func percent(f *float64) string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%.0f%%", *f*100)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
