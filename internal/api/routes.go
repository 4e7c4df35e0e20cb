package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fourcoretech/leaderboard-service/internal/handler"
	"github.com/fourcoretech/leaderboard-service/internal/middleware"
)

func SetupRouter(h *handler.Handler, registry *prometheus.Registry) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger)

	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Leaderboard
	r.HandleFunc("/leaderboard/top", h.GetTopPlayers).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/top/{region}", h.GetTopPlayersByRegion).Methods(http.MethodGet)

	// Health check and metrics
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		color.Yellow("[404] %s %s", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
