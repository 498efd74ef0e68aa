package api

import (
	"net/http"
	"strconv"

	"github.com/theagenttimes/tat-mcp-server/catalog"
)

// ListArticlesHandler returns the published catalog, optionally limited.
func (h *Handlers) ListArticlesHandler(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	articles := h.Catalog.Latest(limit)
	writeJSON(w, http.StatusOK, map[string]any{
		"total":    len(h.Catalog.All()),
		"articles": articles,
	})
}

// SectionArticlesHandler returns the articles in one section.
func (h *Handlers) SectionArticlesHandler(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("section")
	title, ok := catalog.Sections[key]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return
	}
	articles := h.Catalog.Section(key)
	writeJSON(w, http.StatusOK, map[string]any{
		"section":  key,
		"title":    title,
		"articles": articles,
	})
}

// SearchArticlesHandler searches headlines and slugs.
func (h *Handlers) SearchArticlesHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	results := h.Catalog.Search(query, limit)
	writeJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"results": results,
	})
}
