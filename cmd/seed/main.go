// Command seed fills the database with generated players and scores
// for load testing.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/jackc/pgx/v5"

	"github.com/fourcoretech/leaderboard-service/internal/config"
	"github.com/fourcoretech/leaderboard-service/internal/database"
	"github.com/fourcoretech/leaderboard-service/internal/logger"
	"github.com/fourcoretech/leaderboard-service/internal/store"
)

func main() {
	players := flag.Int("players", 1000, "number of player profiles to create")
	scores := flag.Int("scores", 10000, "number of score rows to create")
	flag.Parse()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	pool, err := database.Connect(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer pool.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, pool); err != nil {
		logger.Error("Migration failed: %v", err)
		os.Exit(1)
	}

	profileRows := make([][]interface{}, 0, *players)
	for id := int64(1); id <= int64(*players); id++ {
		p := store.FakeProfile(id)
		profileRows = append(profileRows, []interface{}{
			p.Username, p.DisplayName, p.AvatarURL, p.Country,
			p.Level, p.IsPremium, p.CreatedAt, p.LastLoginAt,
		})
	}

	copied, err := pool.CopyFrom(ctx,
		pgx.Identifier{"player_profiles"},
		[]string{"username", "display_name", "avatar_url", "country", "level", "is_premium", "created_at", "last_login_at"},
		pgx.CopyFromRows(profileRows),
	)
	if err != nil {
		logger.Error("Seeding profiles failed: %v", err)
		os.Exit(1)
	}
	logger.Success("Inserted %d player profiles", copied)

	scoreRows := make([][]interface{}, 0, *scores)
	for i := 0; i < *scores; i++ {
		rec := store.FakeScore(int64(1 + i%*players))
		scoreRows = append(scoreRows, []interface{}{
			rec.PlayerID, rec.Score, string(rec.Region), rec.GameMode, rec.CreatedAt,
		})
	}

	copied, err = pool.CopyFrom(ctx,
		pgx.Identifier{"player_scores"},
		[]string{"player_id", "score", "region", "game_mode", "created_at"},
		pgx.CopyFromRows(scoreRows),
	)
	if err != nil {
		logger.Error("Seeding scores failed: %v", err)
		os.Exit(1)
	}
	logger.Success("Inserted %d scores", copied)
}
