package store

import (
	"context"
	"sort"
	"sync"

	model "github.com/fourcoretech/leaderboard-service/internal/models"
)

// MemoryStore is an in-memory ScoreStore and ProfileStore. It backs
// the demo mode (no DATABASE_URL configured) and the service tests.
// Iteration order matches the Postgres contract: score descending,
// player ID ascending.
type MemoryStore struct {
	mu       sync.RWMutex
	scores   []model.ScoreRecord
	profiles map[int64]model.PlayerProfile
	nextID   int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[int64]model.PlayerProfile)}
}

// AddProfile inserts or replaces a player profile.
func (s *MemoryStore) AddProfile(profile model.PlayerProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.ID] = profile
}

// AddScore records a score event and keeps the ranking order current.
func (s *MemoryStore) AddScore(record model.ScoreRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	if record.ID == 0 {
		record.ID = s.nextID
	}
	s.scores = append(s.scores, record)
	sort.SliceStable(s.scores, func(i, j int) bool {
		if s.scores[i].Score != s.scores[j].Score {
			return s.scores[i].Score > s.scores[j].Score
		}
		return s.scores[i].PlayerID < s.scores[j].PlayerID
	})
}

func (s *MemoryStore) TopScores(ctx context.Context, limit int) ([]model.ScoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.ScoreRecord, 0, limit)
	for _, record := range s.scores {
		if len(result) == limit {
			break
		}
		result = append(result, record)
	}
	return result, nil
}

func (s *MemoryStore) TopScoresByRegion(ctx context.Context, region model.Region, limit int) ([]model.ScoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.ScoreRecord, 0, limit)
	for _, record := range s.scores {
		if len(result) == limit {
			break
		}
		if record.Region == region {
			result = append(result, record)
		}
	}
	return result, nil
}

func (s *MemoryStore) CountScores(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.scores)), nil
}

func (s *MemoryStore) CountScoresByRegion(ctx context.Context, region model.Region) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, record := range s.scores {
		if record.Region == region {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) ProfilesByIDs(ctx context.Context, ids []int64) (map[int64]model.PlayerProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profiles := make(map[int64]model.PlayerProfile, len(ids))
	for _, id := range ids {
		if profile, ok := s.profiles[id]; ok {
			profiles[id] = profile
		}
	}
	return profiles, nil
}
