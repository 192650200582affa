package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/archmap-labs/archmap/internal/docload"
	"github.com/archmap-labs/archmap/pkg/export"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [docs-dir]",
		Short: "Export architecture documents to ArchiMate and draw.io files",
		Long: `Parse architecture documents and export them as model files.

Reads every .md and .html file from the documents directory, extracts
elements, relationships and migration gaps, then writes an ArchiMate
Open Exchange file and as-is/target/migration draw.io diagrams to the
output directory. Empty input produces valid empty files.`,
		Example: `  # Export docs/ to export/ in both formats
  archmap export

  # Export a specific directory
  archmap export ./architecture

  # ArchiMate only, custom model name
  archmap export --format archimate --model-name "Payments Landscape"

  # Summary as JSON for scripting
  archmap export --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args)
		},
	}

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger

	if err := cfg.Validate(); err != nil {
		return err
	}

	dir := resolveDocsDir(cfg, args)
	docs, err := docload.Load(dir, logger)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	startTime := time.Now()
	logger.Info("starting export",
		"run_id", runID,
		"docs_dir", dir,
		"documents", len(docs),
		"format", cfg.Format)

	opts := export.Options{
		ModelName: cfg.ModelName,
		Logger:    logger,
	}

	// The two codecs share no state, so generate them concurrently.
	var (
		arch *export.ArchimateExport
		draw *export.DrawioExport
	)
	g := new(errgroup.Group)
	if cfg.Format == "archimate" || cfg.Format == "all" {
		g.Go(func() error {
			var err error
			arch, err = export.Archimate(docs, opts)
			return err
		})
	}
	if cfg.Format == "drawio" || cfg.Format == "all" {
		g.Go(func() error {
			var err error
			draw, err = export.Drawio(docs, opts)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutDir, 0750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	base := modelFileBase(cfg.ModelName)
	var written []string
	if arch != nil {
		path, err := writeArtifact(cfg.OutDir, base+".xml", arch.XML)
		if err != nil {
			return err
		}
		written = append(written, path)
	}
	if draw != nil {
		for _, artifact := range []struct {
			suffix  string
			content string
		}{
			{"-asis.drawio", draw.AsIsXML},
			{"-target.drawio", draw.TargetXML},
			{"-migration.drawio", draw.MigrationXML},
			{"-combined.drawio", draw.CombinedXML},
		} {
			path, err := writeArtifact(cfg.OutDir, base+artifact.suffix, artifact.content)
			if err != nil {
				return err
			}
			written = append(written, path)
		}
	}

	logger.Info("export complete",
		"run_id", runID,
		"files", len(written),
		"elapsed", time.Since(startTime).Round(time.Millisecond))

	// File listing goes to stdout only in table mode so that json and
	// yaml summaries stay machine-readable.
	if cfg.OutputFormat == "table" {
		for _, path := range written {
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		}
	}

	// The drawio summary includes the status breakdown, so it wins
	// when both formats ran.
	var summary *export.Summary
	if draw != nil {
		summary = draw.Summary
	} else {
		summary = arch.Summary
	}
	return renderSummary(cmd.OutOrStdout(), summary, cfg.OutputFormat)
}

// writeArtifact writes one output file and returns its path.
func writeArtifact(dir, name, content string) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// modelFileBase derives the output file base name from the model name:
// lowercased, runs of non-alphanumerics collapsed to single dashes.
// "Architecture Model" becomes "architecture-model".
func modelFileBase(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	base := strings.TrimSuffix(b.String(), "-")
	if base == "" {
		return "model"
	}
	return base
}
