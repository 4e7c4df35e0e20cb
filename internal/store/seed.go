package store

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"

	model "github.com/fourcoretech/leaderboard-service/internal/models"
)

// FakeProfile generates a realistic player profile for fixtures and
// demo mode.
func FakeProfile(id int64) model.PlayerProfile {
	createdAt := gofakeit.DateRange(time.Now().AddDate(-3, 0, 0), time.Now().AddDate(0, 0, -1))
	lastLogin := gofakeit.DateRange(createdAt, time.Now())

	return model.PlayerProfile{
		ID:          id,
		Username:    gofakeit.Username(),
		DisplayName: gofakeit.Name(),
		AvatarURL:   gofakeit.ImageURL(128, 128),
		Country:     gofakeit.CountryAbr(),
		Level:       gofakeit.Number(1, 100),
		IsPremium:   gofakeit.Bool(),
		CreatedAt:   createdAt,
		LastLoginAt: &lastLogin,
	}
}

// FakeScore generates a score event for an existing player.
func FakeScore(playerID int64) model.ScoreRecord {
	return model.ScoreRecord{
		PlayerID:  playerID,
		Score:     gofakeit.Number(100, 10000),
		Region:    model.Regions[gofakeit.Number(0, len(model.Regions)-1)],
		GameMode:  gofakeit.RandomString([]string{"ranked", "casual", "tournament"}),
		CreatedAt: gofakeit.DateRange(time.Now().AddDate(0, -6, 0), time.Now()),
	}
}

// SeedMemory fills a MemoryStore with fake players and scores.
func SeedMemory(s *MemoryStore, players, scores int) {
	for id := int64(1); id <= int64(players); id++ {
		s.AddProfile(FakeProfile(id))
	}
	for i := 0; i < scores; i++ {
		s.AddScore(FakeScore(int64(gofakeit.Number(1, players))))
	}
}
