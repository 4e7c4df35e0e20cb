package leaderboard

import (
	model "github.com/fourcoretech/leaderboard-service/internal/models"
)

// Assemble joins an already-ranked score window with resolved profiles
// into the final entry list. Scores are walked in store order; a score
// whose player has no resolvable profile is silently dropped, and
// ranks stay dense over the entries actually emitted — a drop never
// leaves a gap. Pure function; no side effects.
func Assemble(scores []model.ScoreRecord, profiles map[int64]model.PlayerProfile) []model.RankedEntry {
	entries := make([]model.RankedEntry, 0, len(scores))
	rank := 1

	for _, score := range scores {
		profile, ok := profiles[score.PlayerID]
		if !ok {
			continue
		}

		entries = append(entries, model.RankedEntry{
			Rank:        rank,
			PlayerID:    score.PlayerID,
			Username:    profile.Username,
			DisplayName: profile.DisplayName,
			AvatarURL:   profile.AvatarURL,
			Score:       score.Score,
			Region:      score.Region,
			Country:     profile.Country,
			Level:       profile.Level,
			IsPremium:   profile.IsPremium,
			GameMode:    score.GameMode,
		})
		rank++
	}

	return entries
}

// playerIDs collects the distinct player IDs referenced by a score
// window, preserving first-seen order.
func playerIDs(scores []model.ScoreRecord) []int64 {
	seen := make(map[int64]struct{}, len(scores))
	ids := make([]int64, 0, len(scores))
	for _, score := range scores {
		if _, ok := seen[score.PlayerID]; ok {
			continue
		}
		seen[score.PlayerID] = struct{}{}
		ids = append(ids, score.PlayerID)
	}
	return ids
}
