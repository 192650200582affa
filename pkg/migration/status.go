// Package migration derives keep/add/remove lifecycle classifications
// for the diagram-export flow. The classification is a read-only
// annotation computed from gap-analysis signals collected during
// extraction; it is never stored on the model itself.
package migration

import "strings"

// Status is the migration lifecycle tag of an element or relationship.
type Status string

const (
	// StatusKeep marks content present in both baseline and target.
	StatusKeep Status = "keep"
	// StatusAdd marks content newly introduced in the target state.
	StatusAdd Status = "add"
	// StatusRemove marks content retired from the baseline state.
	StatusRemove Status = "remove"
)

// retireWords and newWords are the status vocabularies recognized in
// Status/Lifecycle table cells. Matching is word-prefix based, so
// "Decommissioning" and "Retire in 2026" both carry a signal.
var (
	retireWords = []string{"retire", "retired", "decommission", "decommissioned", "sunset", "obsolete"}
	newWords    = []string{"new", "planned", "proposed", "emerging", "future"}
)

// ParseStatus maps free-form status text to a migration status.
// The second return is false when the text carries no recognized
// signal.
func ParseStatus(text string) (Status, bool) {
	if hasWordPrefix(text, retireWords) {
		return StatusRemove, true
	}
	if hasWordPrefix(text, newWords) {
		return StatusAdd, true
	}
	return "", false
}

func hasWordPrefix(text string, words []string) bool {
	for _, field := range strings.Fields(strings.ToLower(text)) {
		for _, w := range words {
			if strings.HasPrefix(field, w) {
				return true
			}
		}
	}
	return false
}

// HeadingKind classifies a section heading as baseline context, target
// context or neither. Extractors feed every element name found under a
// baseline or target heading into the matching gap-analysis name set.
type HeadingKind int

const (
	HeadingNeutral HeadingKind = iota
	HeadingBaseline
	HeadingTarget
)

var (
	baselineHeadingWords = []string{"as-is", "as is", "baseline", "current"}
	targetHeadingWords   = []string{"to-be", "to be", "target", "future"}
)

// ClassifyHeading returns the gap-analysis context a section heading
// establishes for the tables below it.
func ClassifyHeading(heading string) HeadingKind {
	h := strings.ToLower(heading)
	for _, w := range baselineHeadingWords {
		if strings.Contains(h, w) {
			return HeadingBaseline
		}
	}
	for _, w := range targetHeadingWords {
		if strings.Contains(h, w) {
			return HeadingTarget
		}
	}
	return HeadingNeutral
}
