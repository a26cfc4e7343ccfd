package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/divinelits/storefront/internal/catalog/cache"
	"github.com/divinelits/storefront/internal/catalog/domain"
	"github.com/divinelits/storefront/internal/catalog/usecase/command"
	"github.com/divinelits/storefront/internal/catalog/usecase/query"
	"github.com/divinelits/storefront/internal/search"
	"github.com/divinelits/storefront/kafka"
	"github.com/divinelits/storefront/pkg/logger"
)

// CatalogHandler handles HTTP requests for the catalog using CQRS pattern
type CatalogHandler struct {
	// Command handlers
	createHandler *command.CreateProductHandler
	updateHandler *command.UpdateProductHandler
	deleteHandler *command.DeleteProductHandler

	// Query handlers
	getHandler       *query.GetProductHandler
	getBySlugHandler *query.GetProductBySlugHandler
	listHandler      *query.ListProductsHandler
	randomHandler    *query.RandomProductsHandler
	categoryHandler  *query.GetCategoryPageHandler
	adminListHandler *query.ListAdminProductsHandler
	adminGetHandler  *query.GetAdminProductHandler

	repo      domain.ProductRepository
	engine    *search.Engine
	snapshot  *cache.SnapshotCache
	publisher *kafka.Publisher // nil when Kafka is not configured

	requestCounter  *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	requestSummary  *prometheus.SummaryVec
	visibleProducts prometheus.Gauge
}

// NewCatalogHandler creates a new catalog handler with CQRS pattern (manual DI)
func NewCatalogHandler(repo domain.ProductRepository, snapshot *cache.SnapshotCache, publisher *kafka.Publisher) *CatalogHandler {
	return newCatalogHandler(
		command.NewCreateProductHandler(repo),
		command.NewUpdateProductHandler(repo),
		command.NewDeleteProductHandler(repo),
		query.NewGetProductHandler(repo),
		query.NewGetProductBySlugHandler(repo),
		query.NewListProductsHandler(repo),
		query.NewRandomProductsHandler(repo),
		query.NewGetCategoryPageHandler(repo),
		query.NewListAdminProductsHandler(repo),
		query.NewGetAdminProductHandler(repo),
		repo, snapshot, publisher,
	)
}

// NewCatalogHandlerWithDI creates a new catalog handler using dependency injection.
// This is used by Wire for automatic dependency injection.
func NewCatalogHandlerWithDI(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	getHandler *query.GetProductHandler,
	getBySlugHandler *query.GetProductBySlugHandler,
	listHandler *query.ListProductsHandler,
	randomHandler *query.RandomProductsHandler,
	categoryHandler *query.GetCategoryPageHandler,
	adminListHandler *query.ListAdminProductsHandler,
	adminGetHandler *query.GetAdminProductHandler,
	repo domain.ProductRepository,
	snapshot *cache.SnapshotCache,
	publisher *kafka.Publisher,
) *CatalogHandler {
	return newCatalogHandler(
		createHandler, updateHandler, deleteHandler,
		getHandler, getBySlugHandler, listHandler, randomHandler,
		categoryHandler, adminListHandler, adminGetHandler,
		repo, snapshot, publisher,
	)
}

func newCatalogHandler(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	getHandler *query.GetProductHandler,
	getBySlugHandler *query.GetProductBySlugHandler,
	listHandler *query.ListProductsHandler,
	randomHandler *query.RandomProductsHandler,
	categoryHandler *query.GetCategoryPageHandler,
	adminListHandler *query.ListAdminProductsHandler,
	adminGetHandler *query.GetAdminProductHandler,
	repo domain.ProductRepository,
	snapshot *cache.SnapshotCache,
	publisher *kafka.Publisher,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_requests_total",
			Help: "Total number of requests to catalog service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_service_request_duration_seconds",
			Help:    "Duration of catalog service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "catalog_service_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	visibleProducts := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_service_visible_products",
			Help: "Number of products currently visible in the storefront",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(visibleProducts)

	return &CatalogHandler{
		createHandler:    createHandler,
		updateHandler:    updateHandler,
		deleteHandler:    deleteHandler,
		getHandler:       getHandler,
		getBySlugHandler: getBySlugHandler,
		listHandler:      listHandler,
		randomHandler:    randomHandler,
		categoryHandler:  categoryHandler,
		adminListHandler: adminListHandler,
		adminGetHandler:  adminGetHandler,
		repo:             repo,
		engine:           search.NewEngine(),
		snapshot:         snapshot,
		publisher:        publisher,
		requestCounter:   requestCounter,
		requestLatency:   requestLatency,
		requestSummary:   requestSummary,
		visibleProducts:  visibleProducts,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	// Public routes (no auth required)
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/random", h.metricsMiddleware("/api/products/random", h.RandomProducts)).Methods("GET")
	router.HandleFunc("/api/products/slug/{slug}", h.metricsMiddleware("/api/products/slug/{slug}", h.GetProductBySlug)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/categories/{slug}", h.metricsMiddleware("/api/categories/{slug}", h.GetCategoryPage)).Methods("GET")
	router.HandleFunc("/api/search", h.metricsMiddleware("/api/search", h.SearchProducts)).Methods("GET")

	// Admin routes (admin email required)
	router.HandleFunc("/api/admin/products", h.metricsMiddleware("/api/admin/products", AdminMiddleware(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/api/admin/products", h.metricsMiddleware("/api/admin/products", AdminMiddleware(h.ListAdminProducts))).Methods("GET")
	router.HandleFunc("/api/admin/products/{id}", h.metricsMiddleware("/api/admin/products/{id}", AdminMiddleware(h.GetAdminProduct))).Methods("GET")
	router.HandleFunc("/api/admin/products/{id}", h.metricsMiddleware("/api/admin/products/{id}", AdminMiddleware(h.UpdateProduct))).Methods("PUT")
	router.HandleFunc("/api/admin/products/{id}", h.metricsMiddleware("/api/admin/products/{id}", AdminMiddleware(h.DeleteProduct))).Methods("DELETE")
}

type productRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Discount    float64          `json:"discount"`
	Category    string           `json:"category"`
	Status      string           `json:"status"`
	Sizes       []string         `json:"sizes"`
	Variants    []domain.Variant `json:"variants"`
	Images      []string         `json:"images"`
}

// CreateProduct handles POST /api/admin/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateProductCommand{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Discount:    req.Discount,
		Category:    req.Category,
		Status:      req.Status,
		Sizes:       req.Sizes,
		Variants:    req.Variants,
		Images:      req.Images,
	}

	product, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.afterCatalogMutation(r, kafka.EventTypeProductCreated, product)

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// UpdateProduct handles PUT /api/admin/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateProductCommand{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Discount:    req.Discount,
		Category:    req.Category,
		Status:      req.Status,
		Sizes:       req.Sizes,
		Variants:    req.Variants,
		Images:      req.Images,
	}

	product, err := h.updateHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.afterCatalogMutation(r, kafka.EventTypeProductUpdated, product)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/admin/products/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteHandler.Handle(command.DeleteProductCommand{ID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete product")
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.afterCatalogMutation(r, kafka.EventTypeProductDeleted, &domain.Product{ID: id, Status: domain.StatusDeleted})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := query.ListProductsQuery{
		Category: r.URL.Query().Get("category"),
	}

	products, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list products")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    len(products),
		},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.getHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// GetProductBySlug handles GET /api/products/slug/{slug}
func (h *CatalogHandler) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	product, err := h.getBySlugHandler.Handle(query.GetProductBySlugQuery{Slug: slug})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// RandomProducts handles GET /api/products/random
func (h *CatalogHandler) RandomProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	q := query.RandomProductsQuery{
		ExcludeID: r.URL.Query().Get("exclude"),
		Limit:     limit,
	}

	products, err := h.randomHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to sample products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to sample products",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    products,
	})
}

// GetCategoryPage handles GET /api/categories/{slug}
func (h *CatalogHandler) GetCategoryPage(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	page, err := h.categoryHandler.Handle(query.GetCategoryPageQuery{Slug: slug})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Category not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    page,
	})
}

// SearchProducts handles GET /api/search
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	filters := search.ParseFilters(r.URL.Query())

	products, err := h.visibleSnapshot(r)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to load product snapshot")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to search products",
		})
		return
	}

	results := h.engine.Apply(products, filters)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"results": results,
			"total":   len(results),
			"filters": filters,
		},
	})
}

// ListAdminProducts handles GET /api/admin/products
func (h *CatalogHandler) ListAdminProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	products, err := h.adminListHandler.Handle(query.ListAdminProductsQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list admin products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list products",
		})
		return
	}

	count, _ := h.repo.Count()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    count,
			"limit":    limit,
			"offset":   offset,
		},
	})
}

// GetAdminProduct handles GET /api/admin/products/{id}
func (h *CatalogHandler) GetAdminProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.adminGetHandler.Handle(query.GetAdminProductQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Catalog service is healthy",
		})
	}).Methods("GET")
}

// visibleSnapshot returns the visible product set, served from Redis when
// the cached copy is still fresh.
func (h *CatalogHandler) visibleSnapshot(r *http.Request) ([]domain.Product, error) {
	if h.snapshot != nil {
		if products, ok := h.snapshot.Get(r.Context()); ok {
			return products, nil
		}
	}

	products, err := h.repo.FindAllVisible()
	if err != nil {
		return nil, err
	}

	if h.snapshot != nil {
		h.snapshot.Set(r.Context(), products)
	}
	return products, nil
}

// afterCatalogMutation keeps the derived state in line with an admin write:
// the visible-products gauge, the Redis snapshot, and the event stream.
func (h *CatalogHandler) afterCatalogMutation(r *http.Request, eventType string, product *domain.Product) {
	if count, err := h.repo.CountVisible(); err == nil {
		h.visibleProducts.Set(float64(count))
	}

	if h.snapshot != nil {
		h.snapshot.Invalidate(r.Context())
	}

	if h.publisher != nil {
		event := kafka.ProductEvent{
			ProductID: product.ID,
			Name:      product.Name,
			Category:  product.Category,
			Status:    string(product.Status),
		}
		if err := h.publisher.PublishProductEvent(r.Context(), eventType, event); err != nil {
			logger.Logger.Error().Err(err).Str("product_id", product.ID).Msg("Failed to publish catalog event")
		}
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
