package transport

import (
	"errors"
	"net/http"

	"mk-store/internal/middleware"
	"mk-store/internal/schema"
	"mk-store/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	catalog service.CatalogService
	logger  *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(catalog service.CatalogService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Get("/products", h.ListProducts)
	r.Post("/products", h.CreateProduct)
	r.Get("/products/{id}", h.GetProduct)
	r.Post("/seed", h.Seed)
}

// ListProducts handles GET /products with optional category and q
// query parameters.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	q := r.URL.Query().Get("q")

	products, err := h.catalog.ListProducts(r.Context(), category, q)
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// CreateProduct handles POST /products and returns the new identifier.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var p schema.Product

	if err := middleware.DecodeAndValidate(r, &p); err != nil {
		h.logger.Debug("Product validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.catalog.CreateProduct(r.Context(), &p)
	if err != nil {
		h.logger.Error("Failed to create product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	h.logger.Info("Product created", zap.String("product_id", id))
	middleware.RespondWithJSON(w, http.StatusCreated, id)
}

// GetProduct handles GET /products/{id}. A malformed identifier cannot
// have been issued by the store and is reported as not found.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}

		h.logger.Error("Failed to get product", zap.String("product_id", id), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Seed handles POST /seed. Seeding is a no-op when products already
// exist.
func (h *ProductHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalog.Seed(r.Context())
	if err != nil {
		h.logger.Error("Failed to seed products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to seed products")
		return
	}

	if result.Seeded {
		h.logger.Info("Sample products seeded", zap.Int("count", result.Count))
	}
	middleware.RespondWithJSON(w, http.StatusOK, result)
}
