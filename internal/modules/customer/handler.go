package customer

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/strifelabs/storefront/internal/platform/envelope"
)

// Handler exposes the customer HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/v1/customers", h.createCustomer)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	// A missing or unreadable body is a structural failure, reported
	// plainly rather than through the result envelope.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "no body provided", http.StatusBadRequest)
		return
	}

	c, err := h.service.CreateCustomer(r.Context(), req)
	if err != nil {
		envelope.WriteError(w, http.StatusInternalServerError, "unexpected-error")
		return
	}
	envelope.Write(w, http.StatusCreated, c)
}
