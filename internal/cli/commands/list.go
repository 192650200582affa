package commands

import (
	"fmt"
	"strings"

	"github.com/archmap-labs/archmap/internal/docload"
	"github.com/archmap-labs/archmap/pkg/export"
	"github.com/archmap-labs/archmap/pkg/model"
	"github.com/spf13/cobra"
)

// ListOptions holds options for the list command.
type ListOptions struct {
	Layer string
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list [docs-dir]",
		Short: "List extracted model elements",
		Long: `Extract the model from the documents directory and list its elements
without writing any files.

Use --layer to restrict the listing to one architectural layer and
--output to switch between table, json and yaml.`,
		Example: `  # List all elements
  archmap list

  # Only application layer elements
  archmap list --layer application

  # Elements as JSON
  archmap list --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Layer, "layer", "", "Restrict listing to one layer (e.g. business, application)")

	// Register completion for layer flag
	_ = cmd.RegisterFlagCompletionFunc("layer", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(model.Layers()))
		for _, l := range model.Layers() {
			names = append(names, strings.ToLower(string(l)))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runList(cmd *cobra.Command, args []string, opts *ListOptions) error {
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

	m := export.ExtractModel(docs, export.Options{ModelName: cfg.ModelName, Logger: logger})

	elems := m.Elements
	if opts.Layer != "" {
		layer, err := layerByName(opts.Layer)
		if err != nil {
			return err
		}
		elems = m.ElementsInLayer(layer)
	}

	return renderElements(cmd.OutOrStdout(), elems, cfg.OutputFormat)
}

// layerByName resolves a layer from its case-insensitive name.
func layerByName(name string) (model.Layer, error) {
	names := make([]string, 0, len(model.Layers()))
	for _, l := range model.Layers() {
		if strings.EqualFold(name, string(l)) {
			return l, nil
		}
		names = append(names, strings.ToLower(string(l)))
	}
	return "", fmt.Errorf("unknown layer %q (expected one of %s)", name, strings.Join(names, ", "))
}
