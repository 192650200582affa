package preview

import (
	"html/template"
	"io"
	"net/http"

	"github.com/archmap-labs/archmap/pkg/export"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler builds the HTTP routes. Exposed so tests can drive the
// server without a listener.
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	r.Get("/", s.handleIndex)
	r.Get("/model.xml", s.handleArchimate)
	r.Get("/asis.drawio", s.handleDrawio(func(d *export.DrawioExport) string { return d.AsIsXML }))
	r.Get("/target.drawio", s.handleDrawio(func(d *export.DrawioExport) string { return d.TargetXML }))
	r.Get("/migration.drawio", s.handleDrawio(func(d *export.DrawioExport) string { return d.MigrationXML }))
	r.Get("/combined.drawio", s.handleDrawio(func(d *export.DrawioExport) string { return d.CombinedXML }))
	r.Get("/__reload", s.handleSSE)

	return r
}

// handleArchimate serves the Open Exchange file from the latest export.
func (s *Server) handleArchimate(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	arch := s.arch
	s.mu.RUnlock()

	if arch == nil {
		http.Error(w, "export not ready", http.StatusServiceUnavailable)
		return
	}

	writeXML(w, arch.XML)
}

// handleDrawio serves one page of the latest diagram export, selected
// by pick.
func (s *Server) handleDrawio(pick func(*export.DrawioExport) string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s.mu.RLock()
		draw := s.draw
		s.mu.RUnlock()

		if draw == nil {
			http.Error(w, "export not ready", http.StatusServiceUnavailable)
			return
		}

		writeXML(w, pick(draw))
	}
}

func writeXML(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	_, _ = io.WriteString(w, content)
}

// handleIndex serves the artifact listing page.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	draw := s.draw
	s.mu.RUnlock()

	if draw == nil {
		http.Error(w, "export not ready", http.StatusServiceUnavailable)
		return
	}

	data := indexData{
		ModelName: s.modelName,
		Summary:   draw.Summary,
		Watch:     s.watch,
	}
	if s.watch {
		data.ReloadScript = template.JS(liveReloadScript) //nolint:gosec // G203: static script constant
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	if err := indexTemplate.Execute(w, data); err != nil {
		s.logger.Error("rendering index failed", "error", err)
	}
}

type indexData struct {
	ModelName    string
	Summary      *export.Summary
	Watch        bool
	ReloadScript template.JS
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.ModelName}} - archmap preview</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 40rem; margin: 3rem auto; padding: 0 1rem; color: #1a1a2e; }
h1 { font-size: 1.4rem; }
ul { line-height: 1.9; }
.counts { color: #555; }
</style>
</head>
<body>
<h1>{{.ModelName}}</h1>
<p class="counts">{{.Summary.Documents}} documents &middot; {{.Summary.Elements}} elements &middot; {{.Summary.Relationships}} relationships &middot; {{.Summary.Views}} views</p>
<ul>
<li><a href="/model.xml">model.xml</a> (ArchiMate Open Exchange)</li>
<li><a href="/asis.drawio">asis.drawio</a> (current landscape)</li>
<li><a href="/target.drawio">target.drawio</a> (target landscape)</li>
<li><a href="/migration.drawio">migration.drawio</a> (full migration view)</li>
<li><a href="/combined.drawio">combined.drawio</a> (all three pages)</li>
</ul>
{{if .Watch}}<p class="counts">Watching for document changes.</p>
<script>{{.ReloadScript}}</script>{{end}}
</body>
</html>
`))
