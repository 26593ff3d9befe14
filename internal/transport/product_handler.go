package transport

import (
	"errors"
	"net/http"
	"time"

	"products-api/internal/domain"
	"products-api/internal/middleware"
	"products-api/internal/service"
	"products-api/internal/validation"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	MsgProductNotFound = "Producto No Encontrado"
	MsgProductDeleted  = "Producto Eliminado"
)

// ProductRequest documents the create and update body for the API docs.
type ProductRequest struct {
	Name         string  `json:"name" example:"Cemento Holcim"`
	Price        float64 `json:"price" example:"5900"`
	Availability bool    `json:"availability" example:"true"`
}

// ProductSummary is a list item; bookkeeping timestamps are left out
type ProductSummary struct {
	ID           int64   `json:"id" example:"1"`
	Name         string  `json:"name" example:"Cemento Holcim"`
	Price        float64 `json:"price" example:"5900"`
	Availability bool    `json:"availability" example:"true"`
}

// ProductResponse represents a single product
type ProductResponse struct {
	ID           int64     `json:"id" example:"1"`
	Name         string    `json:"name" example:"Cemento Holcim"`
	Price        float64   `json:"price" example:"5900"`
	Availability bool      `json:"availability" example:"true"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func newProductSummary(p *domain.Product) ProductSummary {
	return ProductSummary{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Availability: p.Availability,
	}
}

func newProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Availability: p.Availability,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes binds every product route to its validation chain
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	validID := middleware.ValidateParams(h.logger, validation.ProductIDRules()...)

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.With(middleware.ValidateInput(h.logger, validation.CreateProductRules()...)).Post("/", h.Create)

		r.With(validID).Get("/{id}", h.GetByID)
		r.With(middleware.ValidateInput(h.logger, validation.UpdateProductRules()...)).Put("/{id}", h.Update)
		r.With(validID).Patch("/{id}", h.ToggleAvailability)
		r.With(validID).Delete("/{id}", h.Delete)
	})
}

// List godoc
// @Summary     Get a list of products
// @Tags        Products
// @Produce     json
// @Success     200 {object} middleware.DataResponse{data=[]ProductSummary}
// @Failure     500 {object} middleware.ErrorResponse
// @Router      /api/products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.List(r.Context())
	if err != nil {
		h.respondWithServiceError(w, err, "Failed to list products")
		return
	}

	response := make([]ProductSummary, len(products))
	for i, product := range products {
		response[i] = newProductSummary(product)
	}

	middleware.RespondWithData(w, http.StatusOK, response)
}

// GetByID godoc
// @Summary     Get a product by ID
// @Tags        Products
// @Produce     json
// @Param       id  path     int true "Product ID"
// @Success     200 {object} middleware.DataResponse{data=ProductResponse}
// @Failure     400 {object} middleware.ValidationErrorResponse
// @Failure     404 {object} middleware.ErrorResponse
// @Failure     500 {object} middleware.ErrorResponse
// @Router      /api/products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	in, _ := validation.FromContext(r.Context())

	product, err := h.productService.GetByID(r.Context(), in.Int64(validation.IDParam))
	if err != nil {
		h.respondWithServiceError(w, err, "Failed to get product")
		return
	}

	middleware.RespondWithData(w, http.StatusOK, newProductResponse(product))
}

// Create godoc
// @Summary     Create a new product
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       request body     ProductRequest true "Product data"
// @Success     201 {object} middleware.DataResponse{data=ProductResponse}
// @Failure     400 {object} middleware.ValidationErrorResponse
// @Failure     500 {object} middleware.ErrorResponse
// @Router      /api/products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, _ := validation.FromContext(r.Context())

	product, err := h.productService.Create(r.Context(), in.String("name"), in.Float("price"))
	if err != nil {
		h.respondWithServiceError(w, err, "Failed to create product")
		return
	}

	h.logger.Info("Product created", zap.Int64("product_id", product.ID))
	middleware.RespondWithData(w, http.StatusCreated, newProductResponse(product))
}

// Update godoc
// @Summary     Replace a product
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       id      path     int            true "Product ID"
// @Param       request body     ProductRequest true "Product data"
// @Success     200 {object} middleware.DataResponse{data=ProductResponse}
// @Failure     400 {object} middleware.ValidationErrorResponse
// @Failure     404 {object} middleware.ErrorResponse
// @Failure     500 {object} middleware.ErrorResponse
// @Router      /api/products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	in, _ := validation.FromContext(r.Context())

	product, err := h.productService.Update(
		r.Context(),
		in.Int64(validation.IDParam),
		in.String("name"),
		in.Float("price"),
		in.Bool("availability"),
	)
	if err != nil {
		h.respondWithServiceError(w, err, "Failed to update product")
		return
	}

	middleware.RespondWithData(w, http.StatusOK, newProductResponse(product))
}

// ToggleAvailability godoc
// @Summary     Toggle product availability
// @Tags        Products
// @Produce     json
// @Param       id  path     int true "Product ID"
// @Success     200 {object} middleware.DataResponse{data=ProductResponse}
// @Failure     400 {object} middleware.ValidationErrorResponse
// @Failure     404 {object} middleware.ErrorResponse
// @Failure     500 {object} middleware.ErrorResponse
// @Router      /api/products/{id} [patch]
func (h *ProductHandler) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	in, _ := validation.FromContext(r.Context())

	product, err := h.productService.ToggleAvailability(r.Context(), in.Int64(validation.IDParam))
	if err != nil {
		h.respondWithServiceError(w, err, "Failed to toggle availability")
		return
	}

	middleware.RespondWithData(w, http.StatusOK, newProductResponse(product))
}

// Delete godoc
// @Summary     Delete a product
// @Tags        Products
// @Produce     json
// @Param       id  path     int true "Product ID"
// @Success     200 {object} middleware.DataResponse{data=string}
// @Failure     400 {object} middleware.ValidationErrorResponse
// @Failure     404 {object} middleware.ErrorResponse
// @Failure     500 {object} middleware.ErrorResponse
// @Router      /api/products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	in, _ := validation.FromContext(r.Context())
	id := in.Int64(validation.IDParam)

	if err := h.productService.Delete(r.Context(), id); err != nil {
		h.respondWithServiceError(w, err, "Failed to delete product")
		return
	}

	h.logger.Info("Product deleted", zap.Int64("product_id", id))
	middleware.RespondWithData(w, http.StatusOK, MsgProductDeleted)
}

func (h *ProductHandler) respondWithServiceError(w http.ResponseWriter, err error, logMsg string) {
	if errors.Is(err, service.ErrProductNotFound) {
		middleware.RespondWithError(w, http.StatusNotFound, MsgProductNotFound)
		return
	}

	h.logger.Error(logMsg, zap.Error(err))
	middleware.RespondWithError(w, http.StatusInternalServerError, middleware.MsgInternalError)
}
