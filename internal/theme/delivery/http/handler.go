package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/emre/storefront/internal/theme/store"
	"github.com/emre/storefront/internal/theme/usecase/command"
	"github.com/emre/storefront/internal/theme/usecase/query"
)

// ThemeHandler handles HTTP requests for the theme preference
type ThemeHandler struct {
	toggleHandler *command.ToggleThemeHandler
	getHandler    *query.GetThemeHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewThemeHandler creates a new theme handler (manual DI)
func NewThemeHandler(themeStore *store.Store) *ThemeHandler {
	return NewThemeHandlerWithDI(
		command.NewToggleThemeHandler(themeStore),
		query.NewGetThemeHandler(themeStore),
	)
}

// NewThemeHandlerWithDI creates a new theme handler using dependency injection
func NewThemeHandlerWithDI(
	toggleHandler *command.ToggleThemeHandler,
	getHandler *query.GetThemeHandler,
) *ThemeHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_theme_requests_total",
			Help: "Total number of requests to theme endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_theme_request_duration_seconds",
			Help:    "Duration of theme requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &ThemeHandler{
		toggleHandler:  toggleHandler,
		getHandler:     getHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
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
func (h *ThemeHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers theme routes on the router
func (h *ThemeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/theme", h.metricsMiddleware("/api/theme", h.GetTheme)).Methods("GET")
	router.HandleFunc("/api/theme/toggle", h.metricsMiddleware("/api/theme/toggle", h.ToggleTheme)).Methods("POST")
}

// GetTheme handles GET /api/theme
func (h *ThemeHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	view := h.getHandler.Handle(query.GetThemeQuery{})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    view,
	})
}

// ToggleTheme handles POST /api/theme/toggle
func (h *ThemeHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	result := h.toggleHandler.Handle(r.Context(), command.ToggleThemeCommand{})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Theme toggled",
		Data:    result,
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
