package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/archmap-labs/archmap/pkg/export"
	"github.com/archmap-labs/archmap/pkg/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// renderSummary writes an export summary in the requested output format.
func renderSummary(w io.Writer, s *export.Summary, format string) error {
	switch format {
	case "json":
		return renderJSON(w, s)
	case "yaml":
		return renderYAML(w, s)
	default:
		renderSummaryTable(w, s)
		return nil
	}
}

// renderSummaryTable prints the headline counts plus per-layer and
// per-status breakdowns. Per-type counts stay in json/yaml output.
func renderSummaryTable(w io.Writer, s *export.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRow(table.Row{"Documents", s.Documents})
	t.AppendRow(table.Row{"Elements", s.Elements})
	t.AppendRow(table.Row{"Relationships", s.Relationships})
	t.AppendRow(table.Row{"Views", s.Views})
	if s.OrphanedRelationships > 0 {
		t.AppendRow(table.Row{"Orphaned relationships", s.OrphanedRelationships})
	}
	for _, layer := range sortedCountKeys(s.ByLayer) {
		t.AppendRow(table.Row{"Layer: " + layer, s.ByLayer[layer]})
	}
	for _, status := range sortedCountKeys(s.ByStatus) {
		t.AppendRow(table.Row{"Status: " + status, s.ByStatus[status]})
	}
	t.Render()
}

// elementRow is the flat listing shape shared by the table, json and
// yaml renderings of the list command.
type elementRow struct {
	ID     string `json:"id" yaml:"id"`
	Type   string `json:"type" yaml:"type"`
	Layer  string `json:"layer" yaml:"layer"`
	Name   string `json:"name" yaml:"name"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

func elementRows(elems []*model.Element) []elementRow {
	rows := make([]elementRow, 0, len(elems))
	for _, e := range elems {
		rows = append(rows, elementRow{
			ID:     e.ID,
			Type:   string(e.Type),
			Layer:  string(e.Layer),
			Name:   e.Name,
			Source: e.Source,
		})
	}
	return rows
}

// renderElements writes model elements in the requested output format.
func renderElements(w io.Writer, elems []*model.Element, format string) error {
	rows := elementRows(elems)
	switch format {
	case "json":
		return renderJSON(w, rows)
	case "yaml":
		return renderYAML(w, rows)
	default:
		renderElementTable(w, rows)
		return nil
	}
}

func renderElementTable(w io.Writer, rows []elementRow) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Type", "Layer", "Name", "Source"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.ID, r.Type, r.Layer, r.Name, r.Source})
	}
	t.Render()
	fmt.Fprintf(w, "%d elements\n", len(rows))
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func sortedCountKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
