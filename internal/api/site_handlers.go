package api

import (
	"net/http"

	"samarlodge/internal/entities"
)

// SiteHandler serves the small read-only endpoints backing the static site.
type SiteHandler struct{}

func NewSiteHandler() *SiteHandler {
	return &SiteHandler{}
}

// ListRooms returns the room catalogue for the rooms section.
func (h *SiteHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	allowCORS(w)
	writeJSON(w, http.StatusOK, entities.Catalogue)
}

func (h *SiteHandler) Health(w http.ResponseWriter, r *http.Request) {
	allowCORS(w)
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
