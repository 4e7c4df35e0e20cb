package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/fourcoretech/leaderboard-service/internal/models"
)

func seedScores(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemoryStore()
	now := time.Now()
	s.AddScore(model.ScoreRecord{PlayerID: 1, Score: 9500, Region: model.RegionNA, CreatedAt: now})
	s.AddScore(model.ScoreRecord{PlayerID: 2, Score: 9900, Region: model.RegionEU, CreatedAt: now})
	s.AddScore(model.ScoreRecord{PlayerID: 3, Score: 9500, Region: model.RegionNA, CreatedAt: now})
	s.AddScore(model.ScoreRecord{PlayerID: 4, Score: 7200, Region: model.RegionEU, CreatedAt: now})
	return s
}

func TestTopScoresOrderAndLimit(t *testing.T) {
	s := seedScores(t)

	records, err := s.TopScores(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, int64(2), records[0].PlayerID)
	assert.Equal(t, 9900, records[0].Score)
	// Equal scores break ties by ascending player ID.
	assert.Equal(t, int64(1), records[1].PlayerID)
}

func TestTopScoresTieBreak(t *testing.T) {
	s := seedScores(t)

	records, err := s.TopScores(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, int64(1), records[1].PlayerID)
	assert.Equal(t, int64(3), records[2].PlayerID)
}

func TestTopScoresByRegion(t *testing.T) {
	s := seedScores(t)

	records, err := s.TopScoresByRegion(context.Background(), model.RegionNA, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, record := range records {
		assert.Equal(t, model.RegionNA, record.Region)
	}
}

func TestCounts(t *testing.T) {
	s := seedScores(t)

	total, err := s.CountScores(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	eu, err := s.CountScoresByRegion(context.Background(), model.RegionEU)
	require.NoError(t, err)
	assert.Equal(t, int64(2), eu)
}

func TestProfilesByIDsMissingAbsent(t *testing.T) {
	s := NewMemoryStore()
	s.AddProfile(model.PlayerProfile{ID: 1, Username: "alpha"})
	s.AddProfile(model.PlayerProfile{ID: 3, Username: "gamma"})

	profiles, err := s.ProfilesByIDs(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)

	assert.Len(t, profiles, 2)
	assert.Contains(t, profiles, int64(1))
	assert.NotContains(t, profiles, int64(2))
	assert.Contains(t, profiles, int64(3))
}

func TestProfilesByIDsEmptySet(t *testing.T) {
	s := NewMemoryStore()

	profiles, err := s.ProfilesByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestSeedMemory(t *testing.T) {
	s := NewMemoryStore()
	SeedMemory(s, 20, 100)

	total, err := s.CountScores(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(100), total)

	records, err := s.TopScores(context.Background(), 100)
	require.NoError(t, err)
	for i := 1; i < len(records); i++ {
		assert.GreaterOrEqual(t, records[i-1].Score, records[i].Score)
	}
}
