package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fourcoretech/leaderboard-service/internal/leaderboard"
	model "github.com/fourcoretech/leaderboard-service/internal/models"
	"github.com/fourcoretech/leaderboard-service/internal/store"
	"github.com/fourcoretech/leaderboard-service/internal/utils"
)

// LeaderboardService is what the handlers need from the query core.
type LeaderboardService interface {
	TopPlayers(ctx context.Context, limit int) (leaderboard.Result, error)
	TopPlayersByRegion(ctx context.Context, region model.Region, limit int) (leaderboard.Result, error)
}

type Handler struct {
	svc          LeaderboardService
	defaultLimit int
	maxLimit     int
}

func New(svc LeaderboardService, defaultLimit, maxLimit int) *Handler {
	return &Handler{svc: svc, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// Metadata accompanies every leaderboard response.
type Metadata struct {
	Count       int    `json:"count"`
	TotalScores int64  `json:"totalScores"`
	Limit       int    `json:"limit"`
	Region      string `json:"region,omitempty"`
}

// GetTopPlayers handles GET /leaderboard/top?limit=100
func (h *Handler) GetTopPlayers(w http.ResponseWriter, r *http.Request) {
	limit, ok := h.parseLimit(w, r)
	if !ok {
		return
	}

	result, err := h.svc.TopPlayers(r.Context(), limit)
	if err != nil {
		writeQueryError(w, err)
		return
	}

	utils.SuccessMeta(w, result.Entries, Metadata{
		Count:       len(result.Entries),
		TotalScores: result.TotalAvailable,
		Limit:       limit,
	})
}

// GetTopPlayersByRegion handles GET /leaderboard/top/{region}?limit=50
func (h *Handler) GetTopPlayersByRegion(w http.ResponseWriter, r *http.Request) {
	region, ok := model.ParseRegion(mux.Vars(r)["region"])
	if !ok {
		utils.Error(w, http.StatusBadRequest, "invalid region, valid regions: NA, EU, ASIA, SA, OCE", nil)
		return
	}

	limit, okLimit := h.parseLimit(w, r)
	if !okLimit {
		return
	}

	result, err := h.svc.TopPlayersByRegion(r.Context(), region, limit)
	if err != nil {
		writeQueryError(w, err)
		return
	}

	utils.SuccessMeta(w, result.Entries, Metadata{
		Count:       len(result.Entries),
		TotalScores: result.TotalAvailable,
		Limit:       limit,
		Region:      string(region),
	})
}

// parseLimit validates the limit parameter before any store access.
// It writes the 400 itself and reports ok=false on rejection.
func (h *Handler) parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	limit := h.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "limit must be an integer", err)
			return 0, false
		}
		limit = parsed
	}
	if limit < 1 || limit > h.maxLimit {
		utils.Error(w, http.StatusBadRequest, "limit must be between 1 and "+strconv.Itoa(h.maxLimit), nil)
		return 0, false
	}
	return limit, true
}

// writeQueryError maps core failures to status codes: transient store
// trouble is retryable (503), everything else is a plain 500. A
// failure never carries a result list, so an empty leaderboard stays
// distinguishable from an error.
func writeQueryError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrUnavailable) || errors.Is(err, context.DeadlineExceeded) {
		utils.Error(w, http.StatusServiceUnavailable, "leaderboard temporarily unavailable", err)
		return
	}
	utils.Error(w, http.StatusInternalServerError, "could not fetch leaderboard", err)
}
