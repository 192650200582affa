// Package layout computes deterministic 2-D placement for diagram
// views. Three layouts share one family: the full-model layered
// overview, per-layer swimlanes for the migration diagrams, and a
// plain grid for single-layer views. All geometry is integer pixels,
// absolute within the view canvas.
package layout

import (
	"github.com/archmap-labs/archmap/pkg/migration"
	"github.com/archmap-labs/archmap/pkg/model"
)

// Fixed geometry shared by all layouts.
const (
	ElementW = 120
	ElementH = 55
	HGap     = 30
	VGap     = 45
	Margin   = 40

	SwimlaneCellW     = 160
	SwimlaneCellH     = 80
	SwimlaneStartSize = 30
	SwimlanePad       = 20

	MaxGridCols = 5
)

// Mode selects which classified elements a swimlane view shows.
type Mode string

const (
	// ModeAsIs shows the baseline state: everything not newly added.
	ModeAsIs Mode = "as-is"
	// ModeTarget shows the target state: everything not removed.
	ModeTarget Mode = "target"
	// ModeMigration shows all elements.
	ModeMigration Mode = "migration"
)

// Label returns the display name used for view and page titles.
func (m Mode) Label() string {
	switch m {
	case ModeAsIs:
		return "As-Is"
	case ModeTarget:
		return "Target"
	case ModeMigration:
		return "Migration"
	}
	return string(m)
}

// includes reports whether an element with the given status belongs in
// the mode's view. Unclassified elements count as keep.
func (m Mode) includes(status migration.Status) bool {
	switch m {
	case ModeAsIs:
		return status != migration.StatusAdd
	case ModeTarget:
		return status != migration.StatusRemove
	}
	return true
}

// connectionsFor keeps only relationships whose endpoints are both
// placed in the view. Everything else, dangling ids included, is
// silently omitted.
func connectionsFor(m *model.Model, nodes []model.ViewNode) []model.ViewConnection {
	present := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		present[n.ElementID] = true
	}

	var conns []model.ViewConnection
	for _, r := range m.Relationships {
		if present[r.SourceID] && present[r.TargetID] {
			conns = append(conns, model.ViewConnection{
				RelationshipID: r.ID,
				SourceID:       r.SourceID,
				TargetID:       r.TargetID,
			})
		}
	}
	return conns
}

// finishView sizes the canvas to the bounding extent plus margin.
func finishView(v *model.View) {
	maxX, maxY := Margin, Margin
	for _, l := range v.Lanes {
		if l.X+l.W > maxX {
			maxX = l.X + l.W
		}
		if l.Y+l.H > maxY {
			maxY = l.Y + l.H
		}
	}
	for _, n := range v.Nodes {
		if n.X+n.W > maxX {
			maxX = n.X + n.W
		}
		if n.Y+n.H > maxY {
			maxY = n.Y + n.H
		}
	}
	v.Width = maxX + Margin
	v.Height = maxY + Margin
}
