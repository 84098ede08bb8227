package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/yusufkecer/bmi-tracker/internal/middleware"
)

type RouterConfig struct {
	APIKey         string
	AllowedOrigins string
	CalcRateLimit  int
}

func NewRouter(h *BMIHandler, cfg RouterConfig, log zerolog.Logger) *mux.Router {
	calcRL := middleware.NewRateLimiter(cfg.CalcRateLimit, time.Minute)

	r := mux.NewRouter()

	// Global middleware: request log → CORS → security headers → MaxBytesReader
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
			next.ServeHTTP(w, r)
		})
	})

	r.HandleFunc("/api/v1/health", Health).Methods(http.MethodGet, http.MethodOptions)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.APIKeyMiddleware(cfg.APIKey))

	api.Handle("/bmi", calcRL.Middleware(http.HandlerFunc(h.Calculate))).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/bmi/history", h.History).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/bmi/trend", h.Trend).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/bmi/trend.png", h.TrendChart).Methods(http.MethodGet, http.MethodOptions)

	return r
}
