package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aviadn777/qflow-stripe-glow/internal/models"
	"github.com/aviadn777/qflow-stripe-glow/internal/services"
)

// DiscoveryHandler exposes the business discovery pipeline over HTTP.
type DiscoveryHandler struct {
	Service *services.DiscoveryService
	Presets services.PresetService
}

type searchRequest struct {
	Filters  *models.SearchFilters `json:"filters"`
	Query    string                `json:"query"`
	Language string                `json:"language"`
}

type searchResponse struct {
	Businesses []models.Business `json:"businesses"`
	Total      int               `json:"total"`
	Language   models.Locale     `json:"language"`
}

// SearchBusinesses runs one discovery fetch for the posted filters and then
// narrows the result by the free-text query. Omitted filters fall back to
// the documented defaults.
func (h *DiscoveryHandler) SearchBusinesses(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}

	filters := models.DefaultSearchFilters()
	if req.Filters != nil {
		filters = *req.Filters
	}
	locale := models.ParseLocale(req.Language)

	businesses, err := h.Service.Discover(r.Context(), filters)
	if err != nil {
		if errors.Is(err, models.ErrInvalidFilters) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to load businesses", http.StatusBadGateway)
		return
	}

	businesses = services.FilterByQuery(businesses, req.Query, locale)
	if businesses == nil {
		businesses = []models.Business{}
	}

	json.NewEncoder(w).Encode(searchResponse{
		Businesses: businesses,
		Total:      len(businesses),
		Language:   locale,
	})
}

// GetPresets serves the localized filter preset tables.
func (h *DiscoveryHandler) GetPresets(w http.ResponseWriter, r *http.Request) {
	locale := models.ParseLocale(r.URL.Query().Get("lang"))
	json.NewEncoder(w).Encode(h.Presets.Presets(locale))
}
