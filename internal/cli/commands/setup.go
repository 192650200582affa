// Package commands implements the archmap subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/archmap-labs/archmap/internal/cli/config"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// NewCommandContext creates a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	return &CommandContext{
		Cfg:    getConfig(),
		Logger: config.GetLogger(cmd.Context()),
	}
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	return &config.Config{
		DocsDir:      getEnvOrDefault("ARCHMAP_DOCS_DIR", config.DefaultDocsDir),
		OutDir:       getEnvOrDefault("ARCHMAP_OUT_DIR", config.DefaultOutDir),
		ModelName:    getEnvOrDefault("ARCHMAP_MODEL_NAME", config.DefaultModelName),
		Format:       getEnvOrDefault("ARCHMAP_FORMAT", config.DefaultFormat),
		OutputFormat: getEnvOrDefault("ARCHMAP_OUTPUT", config.DefaultOutput),
		Verbose:      os.Getenv("ARCHMAP_VERBOSE") == "true",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// resolveDocsDir picks the documents directory for a command: an
// explicit positional argument wins over the configured default.
func resolveDocsDir(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.DocsDir
}
