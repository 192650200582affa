package migration

import "strings"

// GapAnalysis accumulates the migration signals a document set carries:
// explicit status overrides from Status/Lifecycle columns and Gap rows,
// plus baseline/target name sets from gap tables and section headings.
// All keys are lowercased element names.
type GapAnalysis struct {
	Overrides map[string]Status
	Baseline  map[string]bool
	Target    map[string]bool
}

// NewGapAnalysis returns an empty collection ready for extraction.
func NewGapAnalysis() *GapAnalysis {
	return &GapAnalysis{
		Overrides: make(map[string]Status),
		Baseline:  make(map[string]bool),
		Target:    make(map[string]bool),
	}
}

// SetOverride records an explicit status for an element name.
func (ga *GapAnalysis) SetOverride(name string, status Status) {
	if name == "" {
		return
	}
	ga.Overrides[strings.ToLower(name)] = status
}

// MarkBaseline adds a name to the baseline state set.
func (ga *GapAnalysis) MarkBaseline(name string) {
	if name == "" {
		return
	}
	ga.Baseline[strings.ToLower(name)] = true
}

// MarkTarget adds a name to the target state set.
func (ga *GapAnalysis) MarkTarget(name string) {
	if name == "" {
		return
	}
	ga.Target[strings.ToLower(name)] = true
}

// Mark routes a name into the set matching a heading context. Neutral
// context records nothing.
func (ga *GapAnalysis) Mark(kind HeadingKind, name string) {
	switch kind {
	case HeadingBaseline:
		ga.MarkBaseline(name)
	case HeadingTarget:
		ga.MarkTarget(name)
	}
}
