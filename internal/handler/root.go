package handler

import (
	"net/http"

	"github.com/fourcoretech/leaderboard-service/internal/utils"
)

// RootHandler lists the available routes.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]interface{}{
		"name":    "Leaderboard API",
		"version": "1.0.0",
		"status":  "running",
		"routes": []map[string]string{
			{"method": "GET", "path": "/leaderboard/top", "description": "Global top players (limit=1..1000, default 100)"},
			{"method": "GET", "path": "/leaderboard/top/{region}", "description": "Top players for a region (NA, EU, ASIA, SA, OCE)"},
			{"method": "GET", "path": "/health", "description": "Health check"},
			{"method": "GET", "path": "/metrics", "description": "Prometheus metrics"},
		},
	})
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
