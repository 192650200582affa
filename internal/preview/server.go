// Package preview provides a local HTTP server that exports the
// documents in memory and serves the resulting model files, with
// optional watch mode and live reload.
package preview

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/archmap-labs/archmap/internal/docload"
	"github.com/archmap-labs/archmap/pkg/export"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// Server exports the documents directory on demand and serves the
// artifacts over HTTP.
type Server struct {
	docsDir   string
	modelName string
	port      int
	watch     bool
	logger    *slog.Logger

	mu   sync.RWMutex
	arch *export.ArchimateExport
	draw *export.DrawioExport

	clients   map[chan struct{}]struct{}
	clientsMu sync.Mutex
}

// Config holds configuration for the preview server.
type Config struct {
	DocsDir   string
	ModelName string
	Port      int
	Watch     bool
	Logger    *slog.Logger
}

// NewServer creates a new preview server instance.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Server{
		docsDir:   cfg.DocsDir,
		modelName: cfg.ModelName,
		port:      cfg.Port,
		watch:     cfg.Watch,
		logger:    logger,
		clients:   make(map[chan struct{}]struct{}),
	}
}

// Serve starts the preview server and blocks until the context is
// cancelled.
func (s *Server) Serve(ctx context.Context) error {
	if err := s.rebuild(); err != nil {
		return fmt.Errorf("initial export failed: %w", err)
	}

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting preview server",
		"addr", fmt.Sprintf("http://localhost:%d", s.port),
		"docs_dir", s.docsDir,
		"watch", s.watch)

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start file watcher if enabled
	if s.watch {
		eg.Go(func() error {
			return s.watchFiles(egctx)
		})
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down preview server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// rebuild runs a fresh export of the documents directory and swaps it
// in as the served state.
func (s *Server) rebuild() error {
	docs, err := docload.Load(s.docsDir, s.logger)
	if err != nil {
		return err
	}

	opts := export.Options{ModelName: s.modelName, Logger: s.logger}
	arch, err := export.Archimate(docs, opts)
	if err != nil {
		return err
	}
	draw, err := export.Drawio(docs, opts)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.arch = arch
	s.draw = draw
	s.mu.Unlock()

	s.logger.Info("export rebuilt",
		"documents", draw.Summary.Documents,
		"elements", draw.Summary.Elements,
		"relationships", draw.Summary.Relationships)
	return nil
}

// isDocFile reports whether a changed path is one the export reads.
func isDocFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".html":
		return true
	}
	return false
}

// watchFiles watches the documents directory and rebuilds the export
// when a document changes.
func (s *Server) watchFiles(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watchDirRecursive(watcher, s.docsDir); err != nil {
		s.logger.Error("failed to watch documents directory", "error", err)
		// Don't fail - continue without watching
	}

	// Debounce timer
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !isDocFile(event.Name) {
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Debug("document changed, re-exporting", "file", event.Name)

				if err := s.rebuild(); err != nil {
					s.logger.Error("rebuild failed", "error", err)
					return
				}
				s.notifyClients()
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

// handleSSE handles Server-Sent Events for live reload.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	// Create channel for this client
	ch := make(chan struct{}, 1)
	s.clientsMu.Lock()
	s.clients[ch] = struct{}{}
	s.clientsMu.Unlock()

	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, ch)
		s.clientsMu.Unlock()
		close(ch)
	}()

	// Send initial ping
	_, _ = fmt.Fprintf(w, "data: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ch:
			_, _ = fmt.Fprintf(w, "data: reload\n\n")
			flusher.Flush()
		}
	}
}

// notifyClients sends reload signal to all connected clients.
func (s *Server) notifyClients() {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	for ch := range s.clients {
		select {
		case ch <- struct{}{}:
		default:
			// Channel full, skip
		}
	}
}

// liveReloadScript is injected into the index page in watch mode.
const liveReloadScript = `
;(function() {
  var es = new EventSource('/__reload');
  es.onmessage = function(e) {
    if (e.data === 'reload') {
      console.log('[archmap] Reloading...');
      window.location.reload();
    }
  };
  es.onerror = function() {
    console.log('[archmap] Connection lost, reconnecting...');
    setTimeout(function() { window.location.reload(); }, 1000);
  };
})();
`
