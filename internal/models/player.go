package model

import "time"

// PlayerProfile is the player identity and metadata shown alongside
// scores. Owned by the profile store; the ranking path never writes it.
type PlayerProfile struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	DisplayName string     `json:"displayName,omitempty"`
	AvatarURL   string     `json:"avatarUrl,omitempty"`
	Country     string     `json:"country,omitempty"` // ISO 3166-1 alpha-2
	Level       int        `json:"level"`
	IsPremium   bool       `json:"isPremium"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}
