package products

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/northwind-api/northwind-api/internal/platform/httpx"
	"github.com/northwind-api/northwind-api/internal/schema"
)

// Handler manages product HTTP endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers routes on the router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/products", h.list)
	r.Post("/products", h.create)
	r.Get("/products/{id}", h.show)
	r.Put("/products/{id}", h.update)
	r.Delete("/products/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list products failed", "error", err)
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

	product, err := h.service.Create(r.Context(), fields)
	if err != nil {
		h.logger.Error("create product failed", "error", err)
		httpx.Message(w, http.StatusInternalServerError, fmt.Sprintf("Error inserting product: %v", err))
		return
	}
	httpx.JSON(w, http.StatusCreated, product)
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, fmt.Sprintf("Product ID %d not found", id))
			return
		}
		h.logger.Error("get product failed", "error", err, "id", id)
		httpx.Message(w, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

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

	product, err := h.service.Update(r.Context(), id, fields)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, fmt.Sprintf("Product ID %d not found", id))
			return
		}
		h.logger.Error("update product failed", "error", err, "id", id)
		httpx.Message(w, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, fmt.Sprintf("Product ID %d not found", id))
			return
		}
		h.logger.Error("delete product failed", "error", err, "id", id)
		httpx.Message(w, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		return
	}
	httpx.NoContent(w)
}

func (h *Handler) productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	param := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		httpx.Message(w, http.StatusNotFound, fmt.Sprintf("Product ID %s not found", param))
		return 0, false
	}
	return id, true
}
