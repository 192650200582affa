// Package export orchestrates the full pipeline: document extraction,
// cross-layer inference, migration classification, view layout and
// XML serialization. Each exported call owns a fresh id generator, so
// identical document lists produce byte-identical output and separate
// calls may run concurrently.
package export

import (
	"log/slog"
	"time"

	"github.com/archmap-labs/archmap/pkg/archimate"
	"github.com/archmap-labs/archmap/pkg/drawio"
	"github.com/archmap-labs/archmap/pkg/extract"
	"github.com/archmap-labs/archmap/pkg/layout"
	"github.com/archmap-labs/archmap/pkg/migration"
	"github.com/archmap-labs/archmap/pkg/model"
)

// Version is stamped into model metadata and reported by the command
// line tool. Set at build time.
var Version = "0.1.0"

// Document is one named input to an export run.
type Document struct {
	Name string
	Text string
}

// Options configure an export run.
type Options struct {
	// ModelName names the produced model.
	ModelName string
	// Documentation is attached to the model root.
	Documentation string
	// Logger receives debug output. Nil discards.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// ArchimateExport is the result of an exchange-format export.
type ArchimateExport struct {
	Model   *model.Model
	XML     string
	Summary *Summary
}

// DrawioExport is the result of a diagram export: three per-mode
// single-page files plus one combined three-page file.
type DrawioExport struct {
	Model          *model.Model
	Classification *migration.Classification
	AsIsXML        string
	TargetXML      string
	MigrationXML   string
	CombinedXML    string
	Summary        *Summary
}

// ExtractModel turns the documents into a model with layered and
// per-layer views. Document order determines generated ids, so
// callers must hold it stable. The function is total: empty input
// yields a valid empty model.
func ExtractModel(docs []Document, opts Options) *model.Model {
	m, _, _ := buildModel(docs, opts)
	return m
}

// Archimate extracts the model and serializes it as ArchiMate Open
// Exchange XML. Migration classification is not involved, so the
// summary carries no status counts.
func Archimate(docs []Document, opts Options) (*ArchimateExport, error) {
	m, _, _ := buildModel(docs, opts)

	xml, err := archimate.Write(m)
	if err != nil {
		return nil, err
	}

	summary := summarize(m, nil, len(docs))
	opts.logger().Debug("archimate export complete",
		"elements", summary.Elements,
		"relationships", summary.Relationships,
		"views", summary.Views)

	return &ArchimateExport{Model: m, XML: xml, Summary: summary}, nil
}

// Drawio extracts the model, classifies it against the gap analysis
// and renders as-is, target and migration swimlane diagrams, each as
// its own file plus one combined multi-page file.
func Drawio(docs []Document, opts Options) (*DrawioExport, error) {
	m, ga, gen := buildModel(docs, opts)
	cls := migration.Classify(m, ga)

	asis := layout.Swimlanes(m, cls, layout.ModeAsIs, gen)
	target := layout.Swimlanes(m, cls, layout.ModeTarget, gen)
	mig := layout.Swimlanes(m, cls, layout.ModeMigration, gen)
	m.Views = append(m.Views, asis, target, mig)

	pages := []drawio.Page{
		{Name: layout.ModeAsIs.Label(), View: asis},
		{Name: layout.ModeTarget.Label(), View: target},
		{Name: layout.ModeMigration.Label(), View: mig},
	}

	out := &DrawioExport{Model: m, Classification: cls}
	var err error
	if out.AsIsXML, err = drawio.Write(m, cls, pages[:1]); err != nil {
		return nil, err
	}
	if out.TargetXML, err = drawio.Write(m, cls, pages[1:2]); err != nil {
		return nil, err
	}
	if out.MigrationXML, err = drawio.Write(m, cls, pages[2:]); err != nil {
		return nil, err
	}
	if out.CombinedXML, err = drawio.Write(m, cls, pages); err != nil {
		return nil, err
	}

	out.Summary = summarize(m, cls, len(docs))
	opts.logger().Debug("drawio export complete",
		"elements", out.Summary.Elements,
		"relationships", out.Summary.Relationships,
		"views", out.Summary.Views)

	return out, nil
}

// buildModel runs the extraction pass and view layout shared by all
// export flavors. The returned generator continues the run's id
// sequence for any views layered on afterwards.
func buildModel(docs []Document, opts Options) (*model.Model, *migration.GapAnalysis, *model.IDGenerator) {
	gen := model.NewIDGenerator()
	pass := extract.NewPass(extract.Options{IDs: gen, Logger: opts.Logger})
	for _, d := range docs {
		pass.Document(d.Name, d.Text)
	}
	res := pass.Finish()

	m := &model.Model{
		Name:          opts.ModelName,
		Documentation: opts.Documentation,
		Elements:      res.Elements,
		Relationships: res.Relationships,
		Metadata: model.Metadata{
			GeneratedAt:   time.Now().UTC(),
			DocumentCount: len(docs),
			Generator:     "archmap " + Version,
		},
	}

	m.Views = append(m.Views, layout.Layered(m, gen))
	for _, layer := range model.Layers() {
		if len(m.ElementsInLayer(layer)) == 0 {
			continue
		}
		m.Views = append(m.Views, layout.LayerGrid(m, layer, gen))
	}

	return m, res.GapAnalysis, gen
}
