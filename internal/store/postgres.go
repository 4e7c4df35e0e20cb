package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	model "github.com/fourcoretech/leaderboard-service/internal/models"
)

// PostgresStore implements ScoreStore and ProfileStore on a pgx pool.
// The top-K queries lean on idx_player_scores_score and
// idx_player_scores_region_score so cost stays bounded by the limit,
// not by table size.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const topScoresSQL = `
	SELECT id, player_id, score, region, game_mode, created_at
	FROM player_scores
	ORDER BY score DESC, player_id ASC
	LIMIT $1
`

const topScoresByRegionSQL = `
	SELECT id, player_id, score, region, game_mode, created_at
	FROM player_scores
	WHERE region = $1
	ORDER BY score DESC, player_id ASC
	LIMIT $2
`

func (s *PostgresStore) TopScores(ctx context.Context, limit int) ([]model.ScoreRecord, error) {
	rows, err := s.pool.Query(ctx, topScoresSQL, limit)
	if err != nil {
		return nil, unavailable("querying top scores", err)
	}
	defer rows.Close()

	return scanScoreRecords(rows)
}

func (s *PostgresStore) TopScoresByRegion(ctx context.Context, region model.Region, limit int) ([]model.ScoreRecord, error) {
	rows, err := s.pool.Query(ctx, topScoresByRegionSQL, string(region), limit)
	if err != nil {
		return nil, unavailable("querying top scores by region", err)
	}
	defer rows.Close()

	return scanScoreRecords(rows)
}

func (s *PostgresStore) CountScores(ctx context.Context) (int64, error) {
	var count int64
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM player_scores`).Scan(&count)
	if err != nil {
		return 0, unavailable("counting scores", err)
	}
	return count, nil
}

func (s *PostgresStore) CountScoresByRegion(ctx context.Context, region model.Region) (int64, error) {
	var count int64
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM player_scores WHERE region = $1`, string(region),
	).Scan(&count)
	if err != nil {
		return 0, unavailable("counting scores by region", err)
	}
	return count, nil
}

// ProfilesByIDs fetches every referenced profile in one round-trip.
// An empty ID set short-circuits without touching the database.
func (s *PostgresStore) ProfilesByIDs(ctx context.Context, ids []int64) (map[int64]model.PlayerProfile, error) {
	profiles := make(map[int64]model.PlayerProfile, len(ids))
	if len(ids) == 0 {
		return profiles, nil
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, username, display_name, avatar_url, country, level, is_premium, created_at, last_login_at
		FROM player_profiles
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, unavailable("querying player profiles", err)
	}
	defer rows.Close()

	for rows.Next() {
		profile, err := scanPlayerProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning player profile: %w", err)
		}
		profiles[profile.ID] = *profile
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("reading player profiles", err)
	}

	return profiles, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanScoreRecords(rows interface {
	rowScanner
	Next() bool
	Err() error
}) ([]model.ScoreRecord, error) {
	var records []model.ScoreRecord
	for rows.Next() {
		record, err := scanScoreRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning score record: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("reading score records", err)
	}
	return records, nil
}

func scanScoreRecord(scanner rowScanner) (*model.ScoreRecord, error) {
	var record model.ScoreRecord
	var region string
	var gameMode sql.NullString

	err := scanner.Scan(
		&record.ID, &record.PlayerID, &record.Score,
		&region, &gameMode, &record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Region = model.Region(region)
	record.GameMode = gameMode.String

	return &record, nil
}

func scanPlayerProfile(scanner rowScanner) (*model.PlayerProfile, error) {
	var profile model.PlayerProfile
	var displayName, avatarURL, country sql.NullString
	var lastLoginAt sql.NullTime

	err := scanner.Scan(
		&profile.ID, &profile.Username, &displayName, &avatarURL,
		&country, &profile.Level, &profile.IsPremium,
		&profile.CreatedAt, &lastLoginAt,
	)
	if err != nil {
		return nil, err
	}

	profile.DisplayName = displayName.String
	profile.AvatarURL = avatarURL.String
	profile.Country = country.String
	if lastLoginAt.Valid {
		profile.LastLoginAt = &lastLoginAt.Time
	}

	return &profile, nil
}

// unavailable tags a driver error as transient so the handler layer
// can map it to a retryable failure.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, ErrUnavailable)
}
