package extract

import (
	"strings"
	"unicode"

	"github.com/archmap-labs/archmap/pkg/model"
)

// inferenceRule links elements of a source selection to elements of a
// target selection when their names share a significant token.
type inferenceRule struct {
	source  func(*model.Element) bool
	target  func(*model.Element) bool
	relType model.RelationshipType
}

var inferenceRules = []inferenceRule{
	{inLayer(model.LayerApplication), inLayer(model.LayerBusiness), model.Serving},
	{inLayer(model.LayerTechnology), inLayer(model.LayerApplication), model.Realization},
	{ofType(model.Requirement, model.Constraint), ofType(model.Principle), model.Influence},
}

func inLayer(l model.Layer) func(*model.Element) bool {
	return func(e *model.Element) bool { return e.Layer == l }
}

func ofType(types ...model.ElementType) func(*model.Element) bool {
	return func(e *model.Element) bool {
		for _, t := range types {
			if e.Type == t {
				return true
			}
		}
		return false
	}
}

// inferenceStopWords are tokens too generic to signal a real link.
var inferenceStopWords = map[string]bool{
	"with": true, "from": true, "this": true, "that": true,
	"will": true, "shall": true, "have": true, "been": true,
	"into": true, "over": true, "system": true, "service": true,
	"process": true, "component": true, "management": true,
	"architecture": true, "application": true, "business": true,
	"technology": true, "data": true,
}

// nameTokens returns the significant tokens of a name: split on
// whitespace, underscores, dashes and slashes, longer than three
// characters, lowercased, stop words removed.
func nameTokens(name string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return unicode.IsSpace(r) || r == '_' || r == '-' || r == '/'
	})
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		if len(f) > 3 && !inferenceStopWords[f] {
			set[f] = true
		}
	}
	return set
}

func shareToken(a, b map[string]bool) bool {
	for tok := range a {
		if b[tok] {
			return true
		}
	}
	return false
}

// infer adds one advisory relationship per rule pair whose names
// overlap, skipping pairs already related in either direction. The
// linking is intentionally coarse; false positives are acceptable.
// Returns the number of relationships added.
func (p *Pass) infer() int {
	related := make(map[[2]string]bool, len(p.relationships)*2)
	for _, r := range p.relationships {
		related[[2]string{r.SourceID, r.TargetID}] = true
		related[[2]string{r.TargetID, r.SourceID}] = true
	}

	tokens := make(map[string]map[string]bool, len(p.elements))
	tokensOf := func(e *model.Element) map[string]bool {
		t, ok := tokens[e.ID]
		if !ok {
			t = nameTokens(e.Name)
			tokens[e.ID] = t
		}
		return t
	}

	added := 0
	for _, rule := range inferenceRules {
		for _, src := range p.elements {
			if !rule.source(src) {
				continue
			}
			for _, dst := range p.elements {
				if src == dst || !rule.target(dst) {
					continue
				}
				if related[[2]string{src.ID, dst.ID}] {
					continue
				}
				if !shareToken(tokensOf(src), tokensOf(dst)) {
					continue
				}
				p.addRelationship(rule.relType, "", src.ID, dst.ID)
				related[[2]string{src.ID, dst.ID}] = true
				related[[2]string{dst.ID, src.ID}] = true
				added++
			}
		}
	}
	return added
}
