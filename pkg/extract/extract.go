// Package extract turns parsed documents into typed model content.
// Each document is routed to exactly one phase extractor; extractors
// read markdown tables and mermaid flowcharts through a shared harness
// and accumulate elements, relationships and gap-analysis signals into
// a Pass. After all documents are in, a cross-layer inference step
// links elements across adjacent layers by name overlap.
package extract

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/archmap-labs/archmap/pkg/docparse"
	"github.com/archmap-labs/archmap/pkg/migration"
	"github.com/archmap-labs/archmap/pkg/model"
)

// Options configure an extraction pass.
type Options struct {
	// IDs owns identifier sequencing for the run. Required.
	IDs *model.IDGenerator
	// Logger receives debug output. Nil discards.
	Logger *slog.Logger
}

// Result is everything one extraction pass produced.
type Result struct {
	Elements      []*model.Element
	Relationships []*model.Relationship
	GapAnalysis   *migration.GapAnalysis
}

// Pass accumulates extraction state for one export run. A Pass is not
// safe for concurrent use; each run owns its own.
type Pass struct {
	gen    *model.IDGenerator
	logger *slog.Logger

	elements      []*model.Element
	relationships []*model.Relationship
	ga            *migration.GapAnalysis
}

// NewPass returns a Pass ready to extract documents. A nil IDs option
// gets a fresh generator, which is only useful for single-package
// tests; real runs share one generator across the whole export.
func NewPass(opts Options) *Pass {
	gen := opts.IDs
	if gen == nil {
		gen = model.NewIDGenerator()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pass{
		gen:    gen,
		logger: logger,
		ga:     migration.NewGapAnalysis(),
	}
}

// Document routes one document to its phase extractor and extracts it.
// Documents must be supplied in the caller's stable order; the order
// determines generated ids.
func (p *Pass) Document(filename, text string) {
	meta := docparse.FrontMatter(text)
	phase := Route(filename, meta)

	before := len(p.elements)
	p.runExtractor(phase, filename, text)

	p.logger.Debug("extracted document",
		"file", filename,
		"phase", string(phase),
		"elements", len(p.elements)-before)
}

// Finish runs cross-layer inference and returns the accumulated result.
func (p *Pass) Finish() *Result {
	added := p.infer()
	p.logger.Debug("inference complete",
		"elements", len(p.elements),
		"relationships", len(p.relationships),
		"inferred", added)

	return &Result{
		Elements:      p.elements,
		Relationships: p.relationships,
		GapAnalysis:   p.ga,
	}
}

// docContext tracks per-document extraction state: the name index used
// for deduplication and the heading context of the current section.
type docContext struct {
	filename string
	names    map[string]*model.Element
	heading  migration.HeadingKind
}

// ensureElement returns the document's element for name, creating it
// with the given type when the name is new. The first occurrence wins;
// later callers merge into it.
func (p *Pass) ensureElement(dc *docContext, name string, typ model.ElementType) *model.Element {
	if e, ok := dc.names[name]; ok {
		return e
	}
	e := &model.Element{
		ID:     p.gen.Next(model.CategoryElement),
		Type:   typ,
		Name:   name,
		Layer:  model.LayerOf(typ),
		Source: dc.filename,
	}
	p.elements = append(p.elements, e)
	dc.names[name] = e
	return e
}

func (p *Pass) addRelationship(typ model.RelationshipType, name, sourceID, targetID string) {
	p.relationships = append(p.relationships, &model.Relationship{
		ID:       p.gen.Next(model.CategoryRelationship),
		Type:     typ,
		Name:     name,
		SourceID: sourceID,
		TargetID: targetID,
	})
}

// baseName lowercases the final path component of a document name.
func baseName(filename string) string {
	return strings.ToLower(filepath.Base(filename))
}
