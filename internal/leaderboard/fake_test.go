package leaderboard

import (
	"context"
	"sync/atomic"
	"time"

	model "github.com/fourcoretech/leaderboard-service/internal/models"
)

// fakeScoreStore serves a fixed, pre-sorted score list. Delay, when
// set, simulates a slow store while still honoring cancellation.
type fakeScoreStore struct {
	scores []model.ScoreRecord
	err    error
	delay  time.Duration

	calls atomic.Int64
}

func (f *fakeScoreStore) wait(ctx context.Context) error {
	if f.delay == 0 {
		return nil
	}
	select {
	case <-time.After(f.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeScoreStore) TopScores(ctx context.Context, limit int) ([]model.ScoreRecord, error) {
	f.calls.Add(1)
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	if limit > len(f.scores) {
		limit = len(f.scores)
	}
	return f.scores[:limit], nil
}

func (f *fakeScoreStore) TopScoresByRegion(ctx context.Context, region model.Region, limit int) ([]model.ScoreRecord, error) {
	f.calls.Add(1)
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	var filtered []model.ScoreRecord
	for _, record := range f.scores {
		if len(filtered) == limit {
			break
		}
		if record.Region == region {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

func (f *fakeScoreStore) CountScores(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.scores)), nil
}

func (f *fakeScoreStore) CountScoresByRegion(ctx context.Context, region model.Region) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, record := range f.scores {
		if record.Region == region {
			count++
		}
	}
	return count, nil
}

// fakeProfileStore resolves from a fixed map and records how many
// batch calls were made, to pin the one-round-trip contract.
type fakeProfileStore struct {
	profiles map[int64]model.PlayerProfile
	err      error

	calls atomic.Int64
}

func (f *fakeProfileStore) ProfilesByIDs(ctx context.Context, ids []int64) (map[int64]model.PlayerProfile, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	resolved := make(map[int64]model.PlayerProfile, len(ids))
	for _, id := range ids {
		if profile, ok := f.profiles[id]; ok {
			resolved[id] = profile
		}
	}
	return resolved, nil
}
