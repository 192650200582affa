package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/archmap-labs/archmap/internal/cli/config"
	"github.com/archmap-labs/archmap/internal/preview"
	"github.com/spf13/cobra"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port  int
	Watch bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve [docs-dir]",
		Short: "Serve exported artifacts over HTTP",
		Long: `Run a local preview server that exports the documents in memory and
serves the resulting model files over HTTP.

With --watch the documents directory is watched for changes, the export
is rebuilt automatically and open pages reload via server-sent events.`,
		Example: `  # Serve docs/ on the default port
  archmap serve

  # Rebuild whenever a document changes
  archmap serve --watch

  # Different docs directory and port
  archmap serve ./architecture --port 9000`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", config.DefaultServePort, "Port to serve on")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Rebuild the export when documents change")

	return cmd
}

func runServe(cmd *cobra.Command, args []string, opts *ServeOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger

	if err := cfg.Validate(); err != nil {
		return err
	}

	dir := resolveDocsDir(cfg, args)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("documents directory does not exist: %s", dir)
	}

	serveCfg := cfg.GetServeConfig()
	// Flags beat the config file only when actually set.
	if cmd.Flags().Changed("port") {
		serveCfg.Port = opts.Port
	}
	if cmd.Flags().Changed("watch") {
		serveCfg.Watch = opts.Watch
	}

	srv := preview.NewServer(preview.Config{
		DocsDir:   dir,
		ModelName: cfg.ModelName,
		Port:      serveCfg.Port,
		Watch:     serveCfg.Watch,
		Logger:    logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Serve(ctx)
}
