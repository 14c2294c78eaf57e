package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Saharyasa/best-buy-2.0/internal/delivery/http/request"
	"github.com/Saharyasa/best-buy-2.0/internal/delivery/http/response"
	"github.com/Saharyasa/best-buy-2.0/internal/domain"
	"github.com/Saharyasa/best-buy-2.0/internal/pkg/logger"
	"github.com/Saharyasa/best-buy-2.0/internal/seed"
	"github.com/Saharyasa/best-buy-2.0/internal/usecase/catalog"
)

// CatalogHandler handles HTTP requests for the product catalog
type CatalogHandler struct {
	service  *catalog.Service
	validate *validator.Validate
	logger   *logger.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *catalog.Service, validate *validator.Validate, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:  service,
		validate: validate,
		logger:   log,
	}
}

// ProductResponse is the JSON rendering of a catalog product
type ProductResponse struct {
	Name        string  `json:"name"`
	Kind        string  `json:"kind"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	MaxPurchase int     `json:"max_purchase,omitempty"`
	Active      bool    `json:"active"`
	Promotion   string  `json:"promotion,omitempty"`
	Display     string  `json:"display"`
}

// NewProductResponse builds the response DTO for a product
func NewProductResponse(p *domain.Product) ProductResponse {
	resp := ProductResponse{
		Name:        p.Name(),
		Kind:        string(p.Kind()),
		Price:       p.Price(),
		Quantity:    p.Quantity(),
		MaxPurchase: p.MaxPurchase(),
		Active:      p.IsActive(),
		Display:     p.Show(),
	}
	if promo := p.Promotion(); promo != nil {
		resp.Promotion = promo.Name()
	}
	return resp
}

func newProductListResponse(products []*domain.Product) []ProductResponse {
	list := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		list = append(list, NewProductResponse(p))
	}
	return list
}

// CreateProductRequest represents the request body for stocking a product
type CreateProductRequest struct {
	Name        string               `json:"name" validate:"required,min=1,max=255"`
	Kind        string               `json:"kind" validate:"omitempty,oneof=standard non_stocked limited"`
	Price       float64              `json:"price" validate:"gte=0"`
	Quantity    int                  `json:"quantity" validate:"gte=0"`
	MaxPurchase int                  `json:"max_purchase" validate:"omitempty,gt=0"`
	Promotion   *SetPromotionRequest `json:"promotion,omitempty"`
}

// SetPromotionRequest represents the request body for attaching a promotion.
// Type "none" (or an empty body) clears the promotion.
type SetPromotionRequest struct {
	Type    string  `json:"type" validate:"omitempty,oneof=none percent_discount second_half_price third_one_free"`
	Name    string  `json:"name" validate:"omitempty,min=1,max=255"`
	Percent float64 `json:"percent" validate:"gte=0,lte=100"`
}

// List handles GET /api/v1/products
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	var products []*domain.Product
	if request.GetBoolQuery(r, "include_inactive") {
		products = h.service.AllProducts()
	} else {
		products = h.service.ActiveProducts()
	}

	response.Success(w, newProductListResponse(products))
}

// GetByName handles GET /api/v1/products/{name}
func (h *CatalogHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	name, err := request.GetNameParam(r, "name")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product name")
		return
	}

	product, err := h.service.ProductByName(name)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, NewProductResponse(product))
}

// Create handles POST /api/v1/products
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	product, err := seed.BuildProduct(seed.ProductSpec{
		Name:        req.Name,
		Kind:        req.Kind,
		Price:       req.Price,
		Quantity:    req.Quantity,
		MaxPurchase: req.MaxPurchase,
		Promotion:   promotionSpec(req.Promotion),
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.service.AddProduct(product); err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, NewProductResponse(product))
}

// Delete handles DELETE /api/v1/products/{name}
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name, err := request.GetNameParam(r, "name")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product name")
		return
	}

	if err := h.service.RemoveProduct(name); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

// SetPromotion handles PUT /api/v1/products/{name}/promotion
func (h *CatalogHandler) SetPromotion(w http.ResponseWriter, r *http.Request) {
	name, err := request.GetNameParam(r, "name")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product name")
		return
	}

	var req SetPromotionRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var promotion domain.Promotion
	if spec := promotionSpec(&req); spec != nil {
		promotion, err = seed.BuildPromotion(*spec)
		if err != nil {
			h.handleError(w, err)
			return
		}
	}

	if err := h.service.SetPromotion(name, promotion); err != nil {
		h.handleError(w, err)
		return
	}

	product, err := h.service.ProductByName(name)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, NewProductResponse(product))
}

// TotalQuantity handles GET /api/v1/inventory
func (h *CatalogHandler) TotalQuantity(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]int{
		"total_quantity": h.service.TotalQuantity(),
	})
}

// promotionSpec converts the request form to a seed spec; "none" and empty
// both mean no promotion
func promotionSpec(req *SetPromotionRequest) *seed.PromotionSpec {
	if req == nil || req.Type == "" || req.Type == "none" {
		return nil
	}
	return &seed.PromotionSpec{
		Type:    req.Type,
		Name:    req.Name,
		Percent: req.Percent,
	}
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *CatalogHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		response.Error(w, http.StatusConflict, "Product already exists")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("Internal error in catalog handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
