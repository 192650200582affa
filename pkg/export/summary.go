package export

import (
	"sort"

	"github.com/archmap-labs/archmap/pkg/migration"
	"github.com/archmap-labs/archmap/pkg/model"
)

// Summary aggregates the counts an export run reports back to the
// caller. Status counts are filled only by flavors that run migration
// classification.
type Summary struct {
	Documents     int `json:"documents" yaml:"documents"`
	Elements      int `json:"elements" yaml:"elements"`
	Relationships int `json:"relationships" yaml:"relationships"`
	Views         int `json:"views" yaml:"views"`

	ByLayer  map[string]int `json:"by_layer" yaml:"by_layer"`
	ByType   map[string]int `json:"by_type" yaml:"by_type"`
	ByStatus map[string]int `json:"by_status" yaml:"by_status"`

	// SourceFiles lists the distinct documents that contributed at
	// least one element, sorted.
	SourceFiles []string `json:"source_files" yaml:"source_files"`

	// OrphanedRelationships counts relationships with at least one
	// endpoint that does not resolve to an element. The XML writers
	// drop these silently; the count surfaces them as a data-quality
	// signal.
	OrphanedRelationships int `json:"orphaned_relationships" yaml:"orphaned_relationships"`
}

func summarize(m *model.Model, cls *migration.Classification, documents int) *Summary {
	s := &Summary{
		Documents:     documents,
		Elements:      len(m.Elements),
		Relationships: len(m.Relationships),
		Views:         len(m.Views),
		ByLayer:       make(map[string]int),
		ByType:        make(map[string]int),
		ByStatus:      make(map[string]int),
	}

	seen := make(map[string]bool)
	for _, e := range m.Elements {
		s.ByLayer[string(e.Layer)]++
		s.ByType[string(e.Type)]++
		if e.Source != "" && !seen[e.Source] {
			seen[e.Source] = true
			s.SourceFiles = append(s.SourceFiles, e.Source)
		}
	}
	sort.Strings(s.SourceFiles)

	if cls != nil {
		for _, status := range cls.Elements {
			s.ByStatus[string(status)]++
		}
	}

	idx := m.ElementIndex()
	for _, r := range m.Relationships {
		if idx[r.SourceID] == nil || idx[r.TargetID] == nil {
			s.OrphanedRelationships++
		}
	}

	return s
}
