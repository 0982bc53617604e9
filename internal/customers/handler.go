package customers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/northwind-api/northwind-api/internal/platform/httpx"
	"github.com/northwind-api/northwind-api/internal/schema"
)

// Handler manages customer HTTP endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers routes on the router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/customers", h.list)
	r.Post("/customers", h.create)
	r.Get("/customers/{id}", h.show)
	r.Put("/customers/{id}", h.update)
	r.Delete("/customers/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list customers failed", "error", err)
		httpx.Message(w, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	raw, ok := httpx.DecodeBody(r)
	if !ok {
		httpx.Message(w, http.StatusBadRequest, "No input data provided")
		return
	}

	fields, fieldErrs := ValidateInput(raw, schema.Full)
	if fieldErrs != nil {
		httpx.JSON(w, http.StatusBadRequest, fieldErrs)
		return
	}

	customer, err := h.service.Create(r.Context(), fields)
	if err != nil {
		h.logger.Error("create customer failed", "error", err)
		httpx.Message(w, http.StatusInternalServerError, fmt.Sprintf("Error inserting customer: %v", err))
		return
	}
	httpx.JSON(w, http.StatusCreated, customer)
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	customer, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, fmt.Sprintf("Customer ID %s not found", id))
			return
		}
		h.logger.Error("get customer failed", "error", err, "id", id)
		httpx.Message(w, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		return
	}
	httpx.JSON(w, http.StatusOK, customer)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	raw, ok := httpx.DecodeBody(r)
	if !ok {
		httpx.Message(w, http.StatusBadRequest, "No input data provided")
		return
	}

	fields, fieldErrs := ValidateInput(raw, schema.Partial)
	if fieldErrs != nil {
		httpx.JSON(w, http.StatusBadRequest, fieldErrs)
		return
	}

	customer, err := h.service.Update(r.Context(), id, fields)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, fmt.Sprintf("Customer ID %s not found", id))
			return
		}
		h.logger.Error("update customer failed", "error", err, "id", id)
		httpx.Message(w, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		return
	}
	httpx.JSON(w, http.StatusOK, customer)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, fmt.Sprintf("Customer ID %s not found", id))
			return
		}
		h.logger.Error("delete customer failed", "error", err, "id", id)
		httpx.Message(w, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		return
	}
	httpx.NoContent(w)
}
