// Package model defines the typed architecture model produced by
// extraction: elements, relationships, views with computed geometry,
// and the identifier generator that keeps one export run consistent.
//
// A Model is created fresh per export call and treated as immutable
// once returned; only the extraction pass that created an element may
// still accumulate entries in its Properties map.
package model

import "time"

// Element is a typed node in the architecture model.
type Element struct {
	// ID is unique within one Model, assigned by the run's IDGenerator.
	ID string
	// Type is the element kind (ArchiMate vocabulary).
	Type ElementType
	// Name is the display name, taken from the source row or diagram node.
	Name string
	// Documentation is optional free text from description-like columns.
	Documentation string
	// Layer the element belongs to, derived from Type at creation.
	Layer Layer
	// Source is the filename of the document the element came from.
	Source string
	// Properties holds leftover table cells keyed by header. Nil until
	// the first write.
	Properties map[string]string
}

// SetProperty records a key/value pair, allocating the map on first use.
func (e *Element) SetProperty(key, value string) {
	if e.Properties == nil {
		e.Properties = make(map[string]string)
	}
	e.Properties[key] = value
}

// Property returns the value for key, or "" when absent.
func (e *Element) Property(key string) string {
	return e.Properties[key]
}

// Relationship is a typed, directed edge between two elements.
// Dangling endpoint ids are legal to construct; they are dropped at
// render/serialize time, never earlier.
type Relationship struct {
	ID       string
	Type     RelationshipType
	Name     string
	SourceID string
	TargetID string
}

// ViewNode places one element on a view at absolute coordinates.
type ViewNode struct {
	ElementID string
	X, Y      int
	W, H      int
}

// ViewConnection renders one relationship between two placed elements.
// SourceID and TargetID are element ids, both guaranteed present in the
// owning view's node list.
type ViewConnection struct {
	RelationshipID string
	SourceID       string
	TargetID       string
}

// Lane is a horizontal swimlane container for one layer. Only swimlane
// views carry lanes.
type Lane struct {
	Layer Layer
	Label string
	X, Y  int
	W, H  int
}

// View is a named, laid-out subset of the model intended for one
// diagram page.
type View struct {
	ID          string
	Name        string
	Viewpoint   string
	Nodes       []ViewNode
	Connections []ViewConnection
	Lanes       []Lane
	// Width and Height are the canvas extent including margins.
	Width, Height int
}

// Metadata describes one export run. GeneratedAt is informational only
// and never serialized, so identical input yields identical output.
type Metadata struct {
	GeneratedAt   time.Time
	DocumentCount int
	Generator     string
}

// Model is the complete extracted architecture: all elements,
// relationships and generated views from one export run.
type Model struct {
	Name          string
	Documentation string
	Elements      []*Element
	Relationships []*Relationship
	Views         []*View
	Metadata      Metadata
}

// ElementIndex builds an id → element lookup. Serializers and the
// classifier build this once per pass instead of scanning the slice.
func (m *Model) ElementIndex() map[string]*Element {
	idx := make(map[string]*Element, len(m.Elements))
	for _, e := range m.Elements {
		idx[e.ID] = e
	}
	return idx
}

// ElementsInLayer returns the model's elements of one layer in
// extraction order.
func (m *Model) ElementsInLayer(layer Layer) []*Element {
	var out []*Element
	for _, e := range m.Elements {
		if e.Layer == layer {
			out = append(out, e)
		}
	}
	return out
}
