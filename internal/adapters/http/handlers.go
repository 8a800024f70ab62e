package web

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/csrf"
)

const templatesDir = "internal/adapters/http/templates"

// isHTMLRequest reports whether the client wants a rendered page. Anything
// else (scripts, tests) gets JSON from the list views.
func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

// internalError logs the real error and returns a generic message to the
// client. Store and template failures all land here undifferentiated.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// badRequest reports a form decode or presence failure, naming the field.
func badRequest(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), http.StatusBadRequest)
}

// writeJSON encodes rows for non-browser clients of the list views.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// renderTemplate renders the named page inside the shared layout. The
// pending flash, if any, is popped here so it displays exactly once.
func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	data["Flash"] = popFlash(w, r)

	funcMap := template.FuncMap{
		"csrfToken": func() string { return csrf.Token(r) },
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		internalError(w, err)
		return
	}
}

// handleHome renders the dashboard: six independent row counts, recomputed
// on every request.
func handleHome(w http.ResponseWriter, r *http.Request) {
	// ServeMux routes every unknown path to "/"; only the root is a page.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	counts, err := stores.StatsStore.Counts(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "index.html", map[string]any{"Stats": counts})
		return
	}
	writeJSON(w, counts)
}
