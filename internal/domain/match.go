package domain

// MatchStatus is the lifecycle state of a match. Transitions are
// admin-driven and unrestricted: any status may follow any other.
type MatchStatus string

const (
	MatchScheduled  MatchStatus = "scheduled"
	MatchInProgress MatchStatus = "in_progress"
	MatchCompleted  MatchStatus = "completed"
	MatchCancelled  MatchStatus = "cancelled"
)

// Valid reports whether s is a known match status.
func (s MatchStatus) Valid() bool {
	switch s {
	case MatchScheduled, MatchInProgress, MatchCompleted, MatchCancelled:
		return true
	}
	return false
}

// Match is a scheduled or completed tournament fixture for one game.
// (game, match_number) is unique.
type Match struct {
	ID          string      `json:"id"`
	Game        Game        `json:"game"`
	MatchNumber int         `json:"match_number"`
	MatchDate   string      `json:"match_date"`
	Status      MatchStatus `json:"status"`
	CreatedAt   string      `json:"created_at"`
}

// CreateMatch is the payload for scheduling a new match.
type CreateMatch struct {
	Game        Game        `json:"game"`
	MatchNumber int         `json:"match_number"`
	MatchDate   string      `json:"match_date"`
	Status      MatchStatus `json:"status,omitempty"`
}

// MatchWithResults is a match together with every result submitted for it.
type MatchWithResults struct {
	Match   Match         `json:"match"`
	Results []MatchResult `json:"results"`
}
