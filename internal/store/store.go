// Package store defines the persistence contract the ranking path
// needs: two index-backed top-K range queries over scores, a batched
// profile lookup, and the count queries behind response metadata.
// Anything that satisfies these interfaces (Postgres, the in-memory
// store, a test fake) is substitutable.
package store

import (
	"context"
	"errors"

	model "github.com/fourcoretech/leaderboard-service/internal/models"
)

// ErrUnavailable marks a transient store failure (unreachable, timed
// out, pool exhausted). Callers may treat it as retryable; no retry
// happens at this layer.
var ErrUnavailable = errors.New("store unavailable")

// ScoreStore serves ranked score windows. Both top-K queries must be
// answered by a single index-backed range scan ordered by score
// descending, player ID ascending — never a scan-then-sort. Result
// length is at most limit.
type ScoreStore interface {
	TopScores(ctx context.Context, limit int) ([]model.ScoreRecord, error)
	TopScoresByRegion(ctx context.Context, region model.Region, limit int) ([]model.ScoreRecord, error)
	CountScores(ctx context.Context) (int64, error)
	CountScoresByRegion(ctx context.Context, region model.Region) (int64, error)
}

// ProfileStore resolves player metadata. ProfilesByIDs is a single
// batched lookup; IDs with no profile are simply absent from the map.
type ProfileStore interface {
	ProfilesByIDs(ctx context.Context, ids []int64) (map[int64]model.PlayerProfile, error)
}
