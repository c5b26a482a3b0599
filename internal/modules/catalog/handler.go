package catalog

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/strifelabs/storefront/internal/platform/envelope"
)

// Handler exposes the catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/v1/products", h.listProducts)
	r.Get("/api/v1/products/{id}", h.getProduct)
	r.Get("/api/v1/collections", h.listCollections)
	r.Get("/api/v1/collections/{id}", h.getCollection)
	r.Get("/api/v1/capabilities", h.capabilities)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := ListProductsQuery{
		CollectionID: params.Get("collectionId"),
		IDs:          params["ids"],
		Sort:         params.Get("sort"),
		Order:        params.Get("order"),
	}

	list, err := h.service.ListProducts(r.Context(), query)
	if err != nil {
		envelope.WriteError(w, http.StatusInternalServerError, ErrUnexpected.Error())
		return
	}
	envelope.Write(w, http.StatusOK, list)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.service.GetProduct(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		envelope.WriteError(w, http.StatusNotFound, ErrNotFound.Error())
		return
	}
	if err != nil {
		envelope.WriteError(w, http.StatusInternalServerError, ErrUnexpected.Error())
		return
	}
	envelope.Write(w, http.StatusOK, p)
}

func (h *Handler) listCollections(w http.ResponseWriter, r *http.Request) {
	// limit and next are accepted and ignored; see Capabilities.
	list, err := h.service.ListCollections(r.Context())
	if err != nil {
		envelope.WriteError(w, http.StatusInternalServerError, ErrUnexpected.Error())
		return
	}
	envelope.Write(w, http.StatusOK, list)
}

func (h *Handler) getCollection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, err := h.service.GetCollection(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		envelope.WriteError(w, http.StatusNotFound, ErrNotFound.Error())
		return
	}
	if err != nil {
		envelope.WriteError(w, http.StatusInternalServerError, ErrUnexpected.Error())
		return
	}
	envelope.Write(w, http.StatusOK, c)
}

func (h *Handler) capabilities(w http.ResponseWriter, r *http.Request) {
	envelope.Write(w, http.StatusOK, h.service.Capabilities())
}
