package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pulsedash/pulsedash-go/internal/api/handler"
	"github.com/pulsedash/pulsedash-go/internal/api/middleware"
	"github.com/pulsedash/pulsedash-go/internal/services/analytics"
	"github.com/pulsedash/pulsedash-go/internal/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger              *slog.Logger
	AnalyticsController *analytics.Controller
	Hub                 *sse.Hub
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	analyticsHandler := handler.NewAnalyticsHandler(cfg.AnalyticsController, cfg.Hub)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/analytics", analyticsHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/analytics/summary", analyticsHandler.GetSummary).Methods(http.MethodGet)
	api.HandleFunc("/analytics", analyticsHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/analytics/events", analyticsHandler.Events).Methods(http.MethodGet)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
