package extract

import (
	"strings"

	"github.com/archmap-labs/archmap/pkg/docparse"
	"github.com/archmap-labs/archmap/pkg/migration"
	"github.com/archmap-labs/archmap/pkg/model"
)

// runExtractor walks one document under the routed phase's spec:
// heading sections first (tables inherit their section's baseline or
// target context), then flowcharts over the whole text.
func (p *Pass) runExtractor(phase Phase, filename, text string) {
	spec, ok := phaseSpecs[phase]
	if !ok {
		spec = phaseSpecs[PhaseGeneric]
	}

	dc := &docContext{
		filename: filename,
		names:    make(map[string]*model.Element),
	}

	for _, section := range docparse.Sections(text) {
		dc.heading = migration.ClassifyHeading(section.Heading)
		for _, table := range docparse.Tables(section.Body) {
			for _, row := range table.Rows {
				p.extractRow(dc, spec, table.Headers, row)
			}
		}
	}

	for _, graph := range docparse.MermaidGraphs(text) {
		p.extractGraph(dc, spec, graph)
	}
}

// extractRow handles one table row: the universal Baseline/Target/Gap
// shape first, then the extractor's own row kinds.
func (p *Pass) extractRow(dc *docContext, spec extractorSpec, headers []string, row docparse.Row) {
	if p.extractGapRow(dc, headers, row) {
		return
	}

	kind, nameHeader, name, ok := matchRowKind(spec, headers, row)
	if !ok {
		return
	}

	e := p.ensureElement(dc, name, kind.elemType)
	consumed := map[string]bool{nameHeader: true}

	if h, ok := findColumn(headers, documentationColumns); ok {
		consumed[h] = true
		if v := row[h]; v != "" && e.Documentation == "" {
			e.Documentation = v
		}
	}

	// A Status/Lifecycle cell is kept raw as a property; a recognized
	// retire-like or new-like value also becomes a classification
	// override for the element's name.
	if h, ok := findColumn(headers, statusColumns); ok {
		consumed[h] = true
		if v := row[h]; v != "" {
			e.SetProperty("status", v)
			if status, ok := migration.ParseStatus(v); ok {
				p.ga.SetOverride(name, status)
			}
		}
	}

	for key, value := range kind.props {
		e.SetProperty(key, value)
	}

	for _, h := range headers {
		if consumed[h] {
			continue
		}
		if v := row[h]; v != "" {
			e.SetProperty(h, v)
		}
	}

	p.ga.Mark(dc.heading, name)
}

// extractGapRow handles rows with usable Baseline, Target and Gap
// cells. Such a row always yields exactly one Gap element named from
// the Gap cell, whatever the extractor. Reports whether the row was
// consumed.
func (p *Pass) extractGapRow(dc *docContext, headers []string, row docparse.Row) bool {
	bh, ok := findColumn(headers, baselineColumns)
	if !ok {
		return false
	}
	th, ok := findColumn(headers, targetColumns)
	if !ok {
		return false
	}
	gh, ok := findColumn(headers, gapColumns)
	if !ok {
		return false
	}

	baseline, target, gap := row[bh], row[th], row[gh]
	if !usableCell(baseline) || !usableCell(target) || !usableCell(gap) {
		return false
	}

	e := p.ensureElement(dc, gap, model.Gap)
	e.Documentation = "Baseline: " + baseline + "; Target: " + target
	e.SetProperty("baseline", baseline)
	e.SetProperty("target", target)

	p.ga.MarkBaseline(baseline)
	p.ga.MarkTarget(target)
	p.ga.SetOverride(gap, migration.StatusAdd)
	p.ga.Mark(dc.heading, gap)
	return true
}

// extractGraph turns flowchart nodes into elements of the phase's node
// type and edges into relationships of its edge type. Node labels
// deduplicate against everything already extracted from the document.
func (p *Pass) extractGraph(dc *docContext, spec extractorSpec, graph docparse.Graph) {
	byNode := make(map[string]string, len(graph.Nodes))
	for _, n := range graph.Nodes {
		e := p.ensureElement(dc, n.Label, spec.nodeType)
		if n.Subgraph != "" {
			e.SetProperty("group", n.Subgraph)
		}
		byNode[n.ID] = e.ID
	}

	for _, edge := range graph.Edges {
		from, okFrom := byNode[edge.From]
		to, okTo := byNode[edge.To]
		if !okFrom || !okTo {
			continue
		}
		p.addRelationship(spec.edgeType, edge.Label, from, to)
	}
}

// matchRowKind finds the first row kind whose name column holds a
// non-empty cell.
func matchRowKind(spec extractorSpec, headers []string, row docparse.Row) (rowKind, string, string, bool) {
	for _, kind := range spec.rowKinds {
		h, ok := findColumn(headers, kind.nameColumns)
		if !ok {
			continue
		}
		if name := row[h]; name != "" {
			return kind, h, name, true
		}
	}
	return rowKind{}, "", "", false
}

// findColumn returns the first header equal (case-insensitively) to one
// of the synonyms, in synonym order.
func findColumn(headers []string, synonyms []string) (string, bool) {
	for _, syn := range synonyms {
		for _, h := range headers {
			if strings.ToLower(h) == syn {
				return h, true
			}
		}
	}
	return "", false
}

// usableCell reports whether a gap-table cell carries a real value.
func usableCell(v string) bool {
	return v != "" && !strings.EqualFold(v, "n/a")
}
