package orders

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

// Handler manages order HTTP endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers routes on the router. The history route is mounted
// before the keyed routes so "history" is never parsed as an order id.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/orders", h.list)
	r.Post("/orders", h.create)
	r.Get("/orders/history/{customerId}", h.history)
	r.Get("/orders/{id}", h.show)
	r.Put("/orders/{id}", h.update)
	r.Delete("/orders/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list orders failed", "error", err)
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

	order, err := h.service.Create(r.Context(), fields)
	if err != nil {
		h.logger.Error("create order failed", "error", err)
		httpx.Message(w, http.StatusInternalServerError, fmt.Sprintf("Error inserting order: %v", err))
		return
	}
	httpx.JSON(w, http.StatusCreated, order)
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, fmt.Sprintf("Order ID %d not found", id))
			return
		}
		h.logger.Error("get order failed", "error", err, "id", id)
		httpx.Message(w, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
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

	order, err := h.service.Update(r.Context(), id, fields)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, fmt.Sprintf("Order ID %d not found", id))
			return
		}
		h.logger.Error("update order failed", "error", err, "id", id)
		httpx.Message(w, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, fmt.Sprintf("Order ID %d not found", id))
			return
		}
		h.logger.Error("delete order failed", "error", err, "id", id)
		httpx.Message(w, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		return
	}
	httpx.NoContent(w)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")

	history, err := h.service.History(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			httpx.Message(w, http.StatusNotFound, fmt.Sprintf("Customer ID %s not found", customerID))
			return
		}
		h.logger.Error("order history failed", "error", err, "customer_id", customerID)
		httpx.Message(w, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		return
	}

	if len(history) == 0 {
		httpx.Message(w, http.StatusOK, fmt.Sprintf("Customer ID %s has no orders", customerID))
		return
	}
	httpx.JSON(w, http.StatusOK, history)
}

func (h *Handler) orderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	param := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		httpx.Message(w, http.StatusNotFound, fmt.Sprintf("Order ID %s not found", param))
		return 0, false
	}
	return id, true
}
