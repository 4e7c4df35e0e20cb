package model

import "time"

// Region is the fixed set of leaderboard regions.
type Region string

const (
	RegionNA   Region = "NA"
	RegionEU   Region = "EU"
	RegionASIA Region = "ASIA"
	RegionSA   Region = "SA"
	RegionOCE  Region = "OCE"
)

// Regions lists every valid region code.
var Regions = []Region{RegionNA, RegionEU, RegionASIA, RegionSA, RegionOCE}

// ParseRegion validates a region code from the request path.
func ParseRegion(s string) (Region, bool) {
	for _, r := range Regions {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// ScoreRecord is a single score event as stored in player_scores.
// Records are immutable once written; the ranking path only reads them.
type ScoreRecord struct {
	ID        int64     `json:"id"`
	PlayerID  int64     `json:"playerId"`
	Score     int       `json:"score"`
	Region    Region    `json:"region"`
	GameMode  string    `json:"gameMode,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// RankedEntry is one row of an assembled leaderboard: a score joined
// with its player profile and a dense 1-based rank. Built fresh per
// query, never persisted.
type RankedEntry struct {
	Rank        int    `json:"rank"`
	PlayerID    int64  `json:"playerId"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	Score       int    `json:"score"`
	Region      Region `json:"region"`
	Country     string `json:"country,omitempty"`
	Level       int    `json:"level"`
	IsPremium   bool   `json:"isPremium"`
	GameMode    string `json:"gameMode,omitempty"`
}
