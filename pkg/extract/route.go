package extract

import (
	"strings"
	"unicode"
)

// Phase identifies which extractor handles a document. Phases follow
// the architecture development cycle the input documents are written
// around.
type Phase string

const (
	PhasePreliminary  Phase = "preliminary"
	PhaseVision       Phase = "vision"
	PhaseBusiness     Phase = "business"
	PhaseApplication  Phase = "application"
	PhaseTechnology   Phase = "technology"
	PhaseMigration    Phase = "migration"
	PhaseRequirements Phase = "requirements"
	PhaseStakeholders Phase = "stakeholders"
	PhasePrinciples   Phase = "principles"
	PhaseGovernance   Phase = "governance"
	PhaseGeneric      Phase = "generic"
)

// routeInput is the evidence one routing decision sees.
type routeInput struct {
	// base is the lowercased final path component of the filename.
	base string
	// phase is the lowercased togaf_phase front matter value, "" when absent.
	phase string
	// prefix is the leading run of letters in base.
	prefix string
}

// routeRule pairs one predicate with the phase it selects. Rules are
// data so each can be tested on its own; Route walks them in order and
// the first match wins.
type routeRule struct {
	match func(in routeInput) bool
	phase Phase
}

var routeRules = []routeRule{
	// Special document families route on the filename itself, ahead of
	// any front matter.
	{baseContains("stakeholder"), PhaseStakeholders},
	{baseContains("principle"), PhasePrinciples},
	{baseContains("governance"), PhaseGovernance},

	// togaf_phase front matter, by substring.
	{phaseContains("preliminary"), PhasePreliminary},
	{phaseMatches(containsAny("vision", "phase a"), equals("a")), PhaseVision},
	{phaseContains("business", "phase b"), PhaseBusiness},
	{phaseContains("application", "data", "information", "phase c"), PhaseApplication},
	{phaseContains("technology", "phase d"), PhaseTechnology},
	{phaseContains("opportunities", "migration", "phase e", "phase f"), PhaseMigration},
	{phaseContains("requirements"), PhaseRequirements},
	{phaseContains("governance", "phase g", "change", "phase h"), PhaseGovernance},

	// Filename prefix token fallback.
	{prefixIs("business"), PhaseBusiness},
	{prefixIs("application", "data"), PhaseApplication},
	{prefixIs("technology", "infrastructure"), PhaseTechnology},
	{prefixIs("migration", "roadmap", "gap"), PhaseMigration},
	{prefixIs("requirements", "requirement"), PhaseRequirements},
	{prefixIs("vision", "architecture"), PhaseVision},
	{prefixIs("preliminary", "strategy"), PhasePreliminary},
	{prefixIs("stakeholder"), PhaseStakeholders},
	{prefixIs("principle"), PhasePrinciples},
}

// Route decides which phase extractor handles a document, from its
// filename and front matter. Unroutable documents fall through to the
// generic extractor.
func Route(filename string, meta map[string]string) Phase {
	base := baseName(filename)
	in := routeInput{
		base:   base,
		phase:  strings.ToLower(meta["togaf_phase"]),
		prefix: leadingAlpha(base),
	}
	for _, rule := range routeRules {
		if rule.match(in) {
			return rule.phase
		}
	}
	return PhaseGeneric
}

func baseContains(sub string) func(routeInput) bool {
	return func(in routeInput) bool { return strings.Contains(in.base, sub) }
}

func phaseContains(subs ...string) func(routeInput) bool {
	return func(in routeInput) bool {
		if in.phase == "" {
			return false
		}
		for _, sub := range subs {
			if strings.Contains(in.phase, sub) {
				return true
			}
		}
		return false
	}
}

// phaseMatches combines arbitrary predicates over the phase value.
// Needed for the bare "A" phase label, where a substring check would
// swallow nearly everything.
func phaseMatches(preds ...func(string) bool) func(routeInput) bool {
	return func(in routeInput) bool {
		if in.phase == "" {
			return false
		}
		for _, pred := range preds {
			if pred(in.phase) {
				return true
			}
		}
		return false
	}
}

func containsAny(subs ...string) func(string) bool {
	return func(s string) bool {
		for _, sub := range subs {
			if strings.Contains(s, sub) {
				return true
			}
		}
		return false
	}
}

func equals(want string) func(string) bool {
	return func(s string) bool { return s == want }
}

func prefixIs(tokens ...string) func(routeInput) bool {
	return func(in routeInput) bool {
		for _, tok := range tokens {
			if in.prefix == tok {
				return true
			}
		}
		return false
	}
}

// leadingAlpha returns the run of letters at the start of s.
func leadingAlpha(s string) string {
	for i, r := range s {
		if !unicode.IsLetter(r) {
			return s[:i]
		}
	}
	return s
}
