// Package leaderboard implements the ranking query pipeline: result
// cache, top-K score fetch, batched profile resolution, and dense-rank
// assembly.
package leaderboard

import (
	"context"
	"time"

	model "github.com/fourcoretech/leaderboard-service/internal/models"
	"github.com/fourcoretech/leaderboard-service/internal/store"
)

// Result is one complete leaderboard answer: the ranked window plus
// the total number of scores behind it. Cached and returned as a unit;
// there is no partial result.
type Result struct {
	Entries        []model.RankedEntry
	TotalAvailable int64
}

// Service is the single entry point for leaderboard queries. On a
// cache miss it runs exactly one score query, one batched profile
// lookup, one count query, and one cache write. Errors from either
// store propagate unmodified — a failed query never yields a guessed
// or partial ranking. Concurrent misses for the same key may recompute
// redundantly; each completes independently and the last Put wins.
type Service struct {
	scores       store.ScoreStore
	profiles     store.ProfileStore
	cache        *Cache
	metrics      *Metrics
	queryTimeout time.Duration
}

func NewService(scores store.ScoreStore, profiles store.ProfileStore, cache *Cache, metrics *Metrics, queryTimeout time.Duration) *Service {
	return &Service{
		scores:       scores,
		profiles:     profiles,
		cache:        cache,
		metrics:      metrics,
		queryTimeout: queryTimeout,
	}
}

// TopPlayers answers the global top-N query.
func (s *Service) TopPlayers(ctx context.Context, limit int) (Result, error) {
	return s.query(ctx, CacheKey{Scope: ScopeGlobal, Limit: limit})
}

// TopPlayersByRegion answers the region-scoped top-N query.
func (s *Service) TopPlayersByRegion(ctx context.Context, region model.Region, limit int) (Result, error) {
	return s.query(ctx, CacheKey{Scope: ScopeRegion, Region: region, Limit: limit})
}

func (s *Service) query(ctx context.Context, key CacheKey) (Result, error) {
	if result, ok := s.cache.Get(key); ok {
		s.metrics.CacheHits.WithLabelValues(string(key.Scope)).Inc()
		return result, nil
	}
	s.metrics.CacheMisses.WithLabelValues(string(key.Scope)).Inc()

	// Store calls are bounded so a slow store fails the request
	// instead of holding the worker. Cancelling the request context
	// cancels in-flight queries as well.
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	scores, err := s.fetchScores(ctx, key)
	if err != nil {
		s.metrics.StoreErrors.Inc()
		return Result{}, err
	}

	start := time.Now()
	profiles, err := s.profiles.ProfilesByIDs(ctx, playerIDs(scores))
	if err != nil {
		s.metrics.StoreErrors.Inc()
		return Result{}, err
	}
	s.metrics.StageDuration.WithLabelValues("resolve_profiles").Observe(time.Since(start).Seconds())

	start = time.Now()
	entries := Assemble(scores, profiles)
	s.metrics.StageDuration.WithLabelValues("assemble").Observe(time.Since(start).Seconds())

	total, err := s.countScores(ctx, key)
	if err != nil {
		s.metrics.StoreErrors.Inc()
		return Result{}, err
	}

	result := Result{Entries: entries, TotalAvailable: total}
	s.cache.Put(key, result)
	return result, nil
}

func (s *Service) fetchScores(ctx context.Context, key CacheKey) ([]model.ScoreRecord, error) {
	start := time.Now()
	defer func() {
		s.metrics.StageDuration.WithLabelValues("fetch_scores").Observe(time.Since(start).Seconds())
	}()

	if key.Scope == ScopeRegion {
		return s.scores.TopScoresByRegion(ctx, key.Region, key.Limit)
	}
	return s.scores.TopScores(ctx, key.Limit)
}

func (s *Service) countScores(ctx context.Context, key CacheKey) (int64, error) {
	if key.Scope == ScopeRegion {
		return s.scores.CountScoresByRegion(ctx, key.Region)
	}
	return s.scores.CountScores(ctx)
}
