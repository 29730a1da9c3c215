package handlers

import (
	"net/http"
	"time"

	"github.com/jayparimi/beyond-january/internal/catalog"
	"github.com/jayparimi/beyond-january/internal/domain"
)

type templateDTO struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Emoji       string `json:"emoji,omitempty"`
}

func templateFromDomain(t domain.GoalTemplate) templateDTO {
	return templateDTO{
		ID:          t.ID,
		Slug:        t.Slug,
		Title:       t.Title,
		Category:    t.Category,
		Description: t.Description,
		Emoji:       t.Emoji,
	}
}

func (a *App) CatalogTemplates(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	templates, err := a.Templates.ListActive(r.Context(), category)
	if err != nil {
		a.domainError(w, err, "failed to load templates")
		return
	}
	items := make([]templateDTO, 0, len(templates))
	for _, t := range templates {
		items = append(items, templateFromDomain(t))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// CatalogFeatured serves the curated collections from the hot-reloaded YAML
// file.
func (a *App) CatalogFeatured(w http.ResponseWriter, r *http.Request) {
	var current *catalog.Catalog
	if a.Catalog != nil {
		current = a.Catalog.Current()
	}
	if current == nil {
		a.error(w, http.StatusServiceUnavailable, "unavailable", "featured catalog not loaded")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"version":     current.Version,
		"collections": current.Collections,
		"fetched_at":  time.Now().UTC(),
	})
}
