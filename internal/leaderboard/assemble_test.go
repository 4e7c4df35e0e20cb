package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/fourcoretech/leaderboard-service/internal/models"
)

func TestAssembleJoinsScoresWithProfiles(t *testing.T) {
	scores := []model.ScoreRecord{
		{PlayerID: 2, Score: 9900, Region: model.RegionEU, GameMode: "ranked"},
		{PlayerID: 1, Score: 9500, Region: model.RegionNA, GameMode: "casual"},
	}
	profiles := map[int64]model.PlayerProfile{
		1: {ID: 1, Username: "alpha", Country: "US", Level: 12},
		2: {ID: 2, Username: "beta", Country: "DE", Level: 44, IsPremium: true},
	}

	entries := Assemble(scores, profiles)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "beta", entries[0].Username)
	assert.Equal(t, 9900, entries[0].Score)
	assert.Equal(t, model.RegionEU, entries[0].Region)
	assert.True(t, entries[0].IsPremium)
	assert.Equal(t, "ranked", entries[0].GameMode)

	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "alpha", entries[1].Username)
}

func TestAssembleDropsUnresolvedProfilesWithDenseRanks(t *testing.T) {
	scores := []model.ScoreRecord{
		{PlayerID: 1, Score: 900},
		{PlayerID: 2, Score: 800},
		{PlayerID: 3, Score: 700},
	}
	profiles := map[int64]model.PlayerProfile{
		1: {ID: 1, Username: "alpha"},
		3: {ID: 3, Username: "gamma"},
	}

	entries := Assemble(scores, profiles)
	require.Len(t, entries, 2)

	// Player 2 is silently omitted; no rank gap is left behind.
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, int64(1), entries[0].PlayerID)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, int64(3), entries[1].PlayerID)
}

func TestAssembleEmptyInputs(t *testing.T) {
	assert.Empty(t, Assemble(nil, nil))
	assert.Empty(t, Assemble([]model.ScoreRecord{{PlayerID: 7, Score: 1}}, nil))
}

func TestPlayerIDsDeduplicates(t *testing.T) {
	scores := []model.ScoreRecord{
		{PlayerID: 5}, {PlayerID: 3}, {PlayerID: 5}, {PlayerID: 9},
	}

	assert.Equal(t, []int64{5, 3, 9}, playerIDs(scores))
}
