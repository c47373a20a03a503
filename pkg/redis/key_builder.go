package redis

import "fmt"

// KeyBuilder provides environment-aware Redis key building so staging and
// production can share one instance.
type KeyBuilder struct {
	prefix string
}

// NewKeyBuilder creates a new key builder with environment-based prefix
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	if environment == "development" || environment == "staging" {
		prefix = "staging"
	}

	return &KeyBuilder{prefix: prefix}
}

// BuildKey constructs a Redis key with the environment prefix
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

func (kb *KeyBuilder) KeyLeaderboardOverall() string {
	return kb.BuildKey(KeyLeaderboardOverall)
}

func (kb *KeyBuilder) KeyLeaderboardGame(game string) string {
	return kb.BuildKey(fmt.Sprintf(KeyLeaderboardGame, game))
}

func (kb *KeyBuilder) KeyLeaderboardColleges() string {
	return kb.BuildKey(KeyLeaderboardColleges)
}

func (kb *KeyBuilder) KeyTeamStats(teamID string) string {
	return kb.BuildKey(fmt.Sprintf(KeyTeamStats, teamID))
}

// PatternLeaderboards matches every cached leaderboard view.
func (kb *KeyBuilder) PatternLeaderboards() string {
	return kb.BuildKey("leaderboard:*")
}

// PatternTeamStats matches every cached per-team stats entry.
func (kb *KeyBuilder) PatternTeamStats() string {
	return kb.BuildKey("team:*:stats")
}
