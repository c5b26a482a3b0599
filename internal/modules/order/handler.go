package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/strifelabs/storefront/internal/platform/envelope"
)

// Handler exposes the order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/v1/orders", h.createOrder)
	r.Get("/api/v1/orders/{id}", h.getOrder)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var in OrderInput
	// A missing or unreadable body is a structural failure, reported
	// plainly rather than through the result envelope.
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "no body provided", http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateOrder(r.Context(), in)
	if err != nil {
		envelope.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	envelope.Write(w, http.StatusCreated, created)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.service.GetOrder(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		envelope.WriteError(w, http.StatusNotFound, ErrNotFound.Error())
		return
	}
	if err != nil {
		envelope.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	envelope.Write(w, http.StatusOK, found)
}
