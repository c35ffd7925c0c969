package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/aviadn777/qflow-stripe-glow/internal/models"
	"github.com/aviadn777/qflow-stripe-glow/internal/services"
)

// BusinessHandler serves single-business projections for the profile and
// booking navigation intents.
type BusinessHandler struct {
	Service *services.DiscoveryService
}

// GetBusinessByID returns one business with its services and derived
// presentation fields.
func (h *BusinessHandler) GetBusinessByID(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "Invalid business id", http.StatusBadRequest)
		return
	}

	business, err := h.Service.GetBusiness(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrBusinessNotFound) {
			http.Error(w, "Business not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load business", http.StatusBadGateway)
		return
	}
	json.NewEncoder(w).Encode(business)
}

// BookAppointment is the booking stub. The route exists so the front end has
// a target for the "book now" intent; there is no write path behind it yet.
func (h *BusinessHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "Invalid business id", http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNotImplemented)
	json.NewEncoder(w).Encode(map[string]string{
		"business_id": id,
		"status":      "booking flow not implemented",
	})
}
