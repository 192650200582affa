package migration

import (
	"strings"

	"github.com/archmap-labs/archmap/pkg/model"
)

// Classification holds the derived lifecycle status per element id and
// per relationship id.
type Classification struct {
	Elements      map[string]Status
	Relationships map[string]Status
}

// Classify resolves a status for every element and relationship of the
// model. Element status priority:
//
//  1. explicit override recorded for the element's name
//  2. membership in the baseline-only (remove) or target-only (add)
//     name sets; both or neither means keep
//  3. the element's own "status" property, when it carries a
//     recognized signal, replaces the step-2 result
//  4. Gap elements are always add, whatever the earlier steps said
//
// Relationship status is derived from the endpoints, never assigned
// independently. A nil gap analysis classifies everything keep (Gap
// elements aside).
func Classify(m *model.Model, ga *GapAnalysis) *Classification {
	if ga == nil {
		ga = NewGapAnalysis()
	}

	cls := &Classification{
		Elements:      make(map[string]Status, len(m.Elements)),
		Relationships: make(map[string]Status, len(m.Relationships)),
	}

	for _, e := range m.Elements {
		cls.Elements[e.ID] = classifyElement(e, ga)
	}

	for _, r := range m.Relationships {
		source := statusOrKeep(cls.Elements[r.SourceID])
		target := statusOrKeep(cls.Elements[r.TargetID])
		cls.Relationships[r.ID] = DeriveRelationshipStatus(source, target)
	}
	return cls
}

func classifyElement(e *model.Element, ga *GapAnalysis) Status {
	status := StatusKeep

	name := strings.ToLower(e.Name)
	if s, ok := ga.Overrides[name]; ok {
		status = s
	} else {
		inBaseline := ga.Baseline[name]
		inTarget := ga.Target[name]
		switch {
		case inBaseline && !inTarget:
			status = StatusRemove
		case inTarget && !inBaseline:
			status = StatusAdd
		}
		if s, ok := ParseStatus(e.Property("status")); ok {
			status = s
		}
	}

	// Gaps describe what is missing between the states, so they are
	// additive regardless of any recorded signal.
	if e.Type == model.Gap {
		return StatusAdd
	}
	return status
}

// DeriveRelationshipStatus computes an edge's status from its endpoint
// statuses: remove if either endpoint is removed, else add if either is
// added, else keep.
func DeriveRelationshipStatus(source, target Status) Status {
	if source == StatusRemove || target == StatusRemove {
		return StatusRemove
	}
	if source == StatusAdd || target == StatusAdd {
		return StatusAdd
	}
	return StatusKeep
}

// statusOrKeep treats an unclassified (dangling) endpoint as keep.
func statusOrKeep(s Status) Status {
	if s == "" {
		return StatusKeep
	}
	return s
}
