package model

import "strconv"

// Identifier categories used by the pipeline.
const (
	CategoryElement      = "elem"
	CategoryRelationship = "rel"
	CategoryView         = "view"
)

// IDGenerator produces identifiers of the form id-<category>-<base36>.
// One counter is shared across categories, so every id a run hands out
// is distinct regardless of category. A generator belongs to a single
// export call; it is not safe for concurrent use, and sharing one
// across runs would make output depend on run order.
type IDGenerator struct {
	n int64
}

// NewIDGenerator returns a generator whose first id ends in "1".
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the next identifier for the given category.
func (g *IDGenerator) Next(category string) string {
	g.n++
	return "id-" + category + "-" + strconv.FormatInt(g.n, 36)
}
