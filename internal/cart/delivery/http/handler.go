package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/emre/storefront/internal/cart/store"
	"github.com/emre/storefront/internal/cart/usecase/command"
	"github.com/emre/storefront/internal/cart/usecase/query"
	catalog "github.com/emre/storefront/internal/catalog/domain"
	"github.com/emre/storefront/pkg/logger"
)

// CartHandler handles HTTP requests for the cart using CQRS pattern
type CartHandler struct {
	// Command handlers
	addHandler      *command.AddToCartHandler
	removeHandler   *command.RemoveFromCartHandler
	updateHandler   *command.UpdateQuantityHandler
	clearHandler    *command.ClearCartHandler
	checkoutHandler *command.CheckoutHandler

	// Query handlers
	getCartHandler   *query.GetCartHandler
	getTotalsHandler *query.GetTotalsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	cartItems      prometheus.Gauge
}

// NewCartHandler creates a new cart handler with CQRS pattern (manual DI)
func NewCartHandler(cartStore *store.Store, provider catalog.Provider) *CartHandler {
	return NewCartHandlerWithDI(
		command.NewAddToCartHandler(cartStore, provider),
		command.NewRemoveFromCartHandler(cartStore),
		command.NewUpdateQuantityHandler(cartStore),
		command.NewClearCartHandler(cartStore),
		command.NewCheckoutHandler(cartStore),
		query.NewGetCartHandler(cartStore),
		query.NewGetTotalsHandler(cartStore),
	)
}

// NewCartHandlerWithDI creates a new cart handler using dependency injection
func NewCartHandlerWithDI(
	addHandler *command.AddToCartHandler,
	removeHandler *command.RemoveFromCartHandler,
	updateHandler *command.UpdateQuantityHandler,
	clearHandler *command.ClearCartHandler,
	checkoutHandler *command.CheckoutHandler,
	getCartHandler *query.GetCartHandler,
	getTotalsHandler *query.GetTotalsHandler,
) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_requests_total",
			Help: "Total number of requests to cart endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_cart_request_duration_seconds",
			Help:    "Duration of cart requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	cartItems := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_cart_items",
			Help: "Current number of items in the cart",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(cartItems)

	return &CartHandler{
		addHandler:       addHandler,
		removeHandler:    removeHandler,
		updateHandler:    updateHandler,
		clearHandler:     clearHandler,
		checkoutHandler:  checkoutHandler,
		getCartHandler:   getCartHandler,
		getTotalsHandler: getTotalsHandler,
		requestCounter:   requestCounter,
		requestLatency:   requestLatency,
		cartItems:        cartItems,
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

// RegisterRoutes registers cart routes on the router
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.GetCart)).Methods("GET")
	router.HandleFunc("/api/cart/totals", h.metricsMiddleware("/api/cart/totals", h.GetTotals)).Methods("GET")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", h.AddItem)).Methods("POST")
	router.HandleFunc("/api/cart/items/{id}", h.metricsMiddleware("/api/cart/items/{id}", h.UpdateItem)).Methods("PUT")
	router.HandleFunc("/api/cart/items/{id}", h.metricsMiddleware("/api/cart/items/{id}", h.RemoveItem)).Methods("DELETE")
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.ClearCart)).Methods("DELETE")
	router.HandleFunc("/api/cart/checkout", h.metricsMiddleware("/api/cart/checkout", h.Checkout)).Methods("POST")
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	lines := h.getCartHandler.Handle(query.GetCartQuery{})
	totals := h.getTotalsHandler.Handle(query.GetTotalsQuery{})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"items":       lines,
			"total_price": totals.TotalPrice,
			"total_items": totals.TotalItems,
		},
	})
}

// GetTotals handles GET /api/cart/totals
func (h *CartHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	totals := h.getTotalsHandler.Handle(query.GetTotalsQuery{})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    totals,
	})
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
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

	cmd := command.AddToCartCommand{ProductID: req.ProductID}
	product, err := h.addHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Warn(r.Context()).Err(err).Str("product_id", req.ProductID).Msg("Failed to add item to cart")
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateCartItemsMetric()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Item added to cart",
		Data:    product,
	})
}

// UpdateItem handles PUT /api/cart/items/{id}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Quantity int `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateQuantityCommand{ProductID: vars["id"], Quantity: req.Quantity}
	if err := h.updateHandler.Handle(r.Context(), cmd); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateCartItemsMetric()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Quantity updated",
	})
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cmd := command.RemoveFromCartCommand{ProductID: vars["id"]}
	if err := h.removeHandler.Handle(r.Context(), cmd); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateCartItemsMetric()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item removed from cart",
	})
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.clearHandler.Handle(r.Context(), command.ClearCartCommand{}); err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to clear cart",
		})
		return
	}

	h.updateCartItemsMetric()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart cleared",
	})
}

// Checkout handles POST /api/cart/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	result, err := h.checkoutHandler.Handle(r.Context(), command.CheckoutCommand{})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateCartItemsMetric()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Checkout completed",
		Data:    result,
	})
}

func (h *CartHandler) updateCartItemsMetric() {
	totals := h.getTotalsHandler.Handle(query.GetTotalsQuery{})
	h.cartItems.Set(float64(totals.TotalItems))
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
