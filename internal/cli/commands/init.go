package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new archmap project",
		Long: `Initialize a new archmap project with a configuration file and example documents.

This creates:
  - archmap.yaml configuration file
  - docs/ directory with example architecture documents
  - .gitignore excluding the export output

The example documents cover an application portfolio, business processes
and a migration roadmap, and export cleanly as they stand.`,
		Example: `  # Initialize in the current directory
  archmap init

  # Initialize in a new directory
  archmap init my-architecture

  # Overwrite an existing configuration
  archmap init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "archmap.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("archmap.yaml already exists. Use --force to overwrite")
	}

	written, err := scaffoldProject(dir, force)
	if err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, f := range written {
		fmt.Fprintf(out, "  created %s\n", f)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "archmap project initialized!")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Describe your landscape in docs/")
	fmt.Fprintln(out, "  2. Run 'archmap export' to generate the model files")
	fmt.Fprintln(out, "  3. Run 'archmap serve --watch' to preview while editing")

	return nil
}
