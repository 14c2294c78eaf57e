package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Saharyasa/best-buy-2.0/internal/delivery/http/request"
	"github.com/Saharyasa/best-buy-2.0/internal/delivery/http/response"
	"github.com/Saharyasa/best-buy-2.0/internal/domain"
	"github.com/Saharyasa/best-buy-2.0/internal/pkg/logger"
	"github.com/Saharyasa/best-buy-2.0/internal/usecase/catalog"
	"github.com/Saharyasa/best-buy-2.0/internal/usecase/checkout"
)

// CheckoutHandler handles HTTP requests for placing orders
type CheckoutHandler struct {
	service  *checkout.Service
	validate *validator.Validate
	logger   *logger.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(service *checkout.Service, validate *validator.Validate, log *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service:  service,
		validate: validate,
		logger:   log,
	}
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	Items []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderLineRequest is one requested product and quantity
type OrderLineRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// Create handles POST /api/v1/orders
func (h *CheckoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	lines := make([]catalog.Line, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, catalog.Line{Name: item.Name, Quantity: item.Quantity})
	}

	receipt, err := h.service.PlaceOrder(r.Context(), lines)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, receipt)
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *CheckoutHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrOutOfStock):
		response.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("Internal error in checkout handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
