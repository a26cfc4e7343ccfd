package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/divinelits/storefront/internal/cart/domain"
	"github.com/divinelits/storefront/internal/cart/usecase/command"
	"github.com/divinelits/storefront/internal/cart/usecase/query"
	"github.com/divinelits/storefront/pkg/logger"
)

// CartHandler handles HTTP requests for carts and wishlists using CQRS pattern
type CartHandler struct {
	// Command handlers
	addHandler      *command.AddItemHandler
	delOneHandler   *command.DelOneItemHandler
	toggleHandler   *command.ToggleWishlistHandler

	// Query handlers
	getCartHandler  *query.GetCartHandler
	countHandler    *query.GetTotalItemsHandler
	wishlistHandler *query.GetWishlistHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	cartMutations  *prometheus.CounterVec
}

// NewCartHandler creates a new cart handler with CQRS pattern (manual DI)
func NewCartHandler(cartRepo domain.CartRepository, wishlistRepo domain.WishlistRepository) *CartHandler {
	return newCartHandler(
		command.NewAddItemHandler(cartRepo),
		command.NewDelOneItemHandler(cartRepo),
		command.NewToggleWishlistHandler(wishlistRepo),
		query.NewGetCartHandler(cartRepo),
		query.NewGetTotalItemsHandler(cartRepo),
		query.NewGetWishlistHandler(wishlistRepo),
	)
}

// NewCartHandlerWithDI creates a new cart handler using dependency injection.
// This is used by Wire for automatic dependency injection.
func NewCartHandlerWithDI(
	addHandler *command.AddItemHandler,
	delOneHandler *command.DelOneItemHandler,
	toggleHandler *command.ToggleWishlistHandler,
	getCartHandler *query.GetCartHandler,
	countHandler *query.GetTotalItemsHandler,
	wishlistHandler *query.GetWishlistHandler,
) *CartHandler {
	return newCartHandler(
		addHandler, delOneHandler, toggleHandler,
		getCartHandler, countHandler, wishlistHandler,
	)
}

func newCartHandler(
	addHandler *command.AddItemHandler,
	delOneHandler *command.DelOneItemHandler,
	toggleHandler *command.ToggleWishlistHandler,
	getCartHandler *query.GetCartHandler,
	countHandler *query.GetTotalItemsHandler,
	wishlistHandler *query.GetWishlistHandler,
) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_service_requests_total",
			Help: "Total number of requests to cart service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cart_service_request_duration_seconds",
			Help:    "Duration of cart service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	cartMutations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_service_mutations_total",
			Help: "Cart and wishlist mutations by operation",
		},
		[]string{"operation"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(cartMutations)

	return &CartHandler{
		addHandler:      addHandler,
		delOneHandler:   delOneHandler,
		toggleHandler:   toggleHandler,
		getCartHandler:  getCartHandler,
		countHandler:    countHandler,
		wishlistHandler: wishlistHandler,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
		cartMutations:   cartMutations,
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
func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers cart routes. Every route requires a valid
// token; there is no anonymous cart.
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", AuthMiddleware(h.GetCart))).Methods("GET")
	router.HandleFunc("/api/cart/count", h.metricsMiddleware("/api/cart/count", AuthMiddleware(h.GetTotalItems))).Methods("GET")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", AuthMiddleware(h.AddItem))).Methods("POST")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", AuthMiddleware(h.DelOneItem))).Methods("DELETE")
	router.HandleFunc("/api/wishlist", h.metricsMiddleware("/api/wishlist", AuthMiddleware(h.GetWishlist))).Methods("GET")
	router.HandleFunc("/api/wishlist/toggle", h.metricsMiddleware("/api/wishlist/toggle", AuthMiddleware(h.ToggleWishlist))).Methods("POST")
}

type cartItemRequest struct {
	ProductID string  `json:"product_id"`
	Size      string  `json:"size"`
	VariantID string  `json:"variant_id"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(UserIDKey).(uint)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Authentication required",
		})
		return
	}

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.AddItemCommand{
		UserID:    userID,
		ProductID: req.ProductID,
		Size:      req.Size,
		VariantID: req.VariantID,
		Category:  req.Category,
		Price:     req.Price,
	}

	line, err := h.addHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to add cart item")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.cartMutations.WithLabelValues("add_item").Inc()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item added to cart",
		Data:    line,
	})
}

// DelOneItem handles DELETE /api/cart/items
func (h *CartHandler) DelOneItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(UserIDKey).(uint)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Authentication required",
		})
		return
	}

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.DelOneItemCommand{
		UserID:    userID,
		ProductID: req.ProductID,
		Size:      req.Size,
		VariantID: req.VariantID,
	}

	line, err := h.delOneHandler.Handle(cmd)
	if err != nil {
		if errors.Is(err, domain.ErrLineNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Cart line not found",
			})
			return
		}
		logger.Logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to remove cart item")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to remove cart item",
		})
		return
	}

	h.cartMutations.WithLabelValues("del_one_item").Inc()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item removed from cart",
		Data:    line,
	})
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(UserIDKey).(uint)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Authentication required",
		})
		return
	}

	view, err := h.getCartHandler.Handle(query.GetCartQuery{UserID: userID})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to fetch cart")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to fetch cart",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    view,
	})
}

// GetTotalItems handles GET /api/cart/count
func (h *CartHandler) GetTotalItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(UserIDKey).(uint)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Authentication required",
		})
		return
	}

	count, err := h.countHandler.Handle(query.GetTotalItemsQuery{UserID: userID})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to count cart lines")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to count cart items",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"count": count,
		},
	})
}

// GetWishlist handles GET /api/wishlist
func (h *CartHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(UserIDKey).(uint)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Authentication required",
		})
		return
	}

	items, err := h.wishlistHandler.Handle(query.GetWishlistQuery{UserID: userID})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to fetch wishlist")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to fetch wishlist",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    items,
	})
}

// ToggleWishlist handles POST /api/wishlist/toggle
func (h *CartHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(UserIDKey).(uint)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Authentication required",
		})
		return
	}

	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	wishlisted, err := h.toggleHandler.Handle(command.ToggleWishlistCommand{
		UserID:    userID,
		ProductID: req.ProductID,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to toggle wishlist")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.cartMutations.WithLabelValues("toggle_wishlist").Inc()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"product_id": req.ProductID,
			"wishlisted": wishlisted,
		},
	})
}

func (h *CartHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
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
			Message: "Cart service is healthy",
		})
	}).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
