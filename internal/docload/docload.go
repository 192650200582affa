// Package docload reads architecture documents from a directory and
// prepares them for extraction. HTML files are converted to markdown
// on the way in; everything else the extractor understands natively.
package docload

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/archmap-labs/archmap/pkg/export"
)

// Load reads every .md and .html file directly inside dir. Entries
// come back sorted by filename (os.ReadDir order), which fixes the id
// sequence for repeated runs over the same directory. An HTML file
// that fails conversion is logged and skipped; a read failure aborts
// the load.
func Load(dir string, logger *slog.Logger) ([]export.Document, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading document directory: %w", err)
	}

	var docs []export.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".md" && ext != ".html" {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		text := string(raw)

		if ext == ".html" {
			converted, err := htmltomarkdown.ConvertString(text)
			if err != nil {
				logger.Warn("skipping document, html conversion failed",
					"file", name, "error", err)
				continue
			}
			text = converted
		}

		docs = append(docs, export.Document{Name: name, Text: text})
	}

	logger.Debug("loaded documents", "dir", dir, "count", len(docs))
	return docs, nil
}
