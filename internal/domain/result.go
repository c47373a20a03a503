package domain

// MatchResult is one team's submitted performance for one match. At most one
// result exists per (match_id, team_id): re-submission overwrites in place
// and resets verification.
type MatchResult struct {
	ID            string `json:"id"`
	MatchID       string `json:"match_id"`
	TeamID        string `json:"team_id"`
	Placement     int    `json:"placement"`
	Kills         int    `json:"kills"`
	Points        int    `json:"points"`
	ScreenshotURL string `json:"screenshot_url,omitempty"`
	Verified      bool   `json:"verified"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at,omitempty"`
	VerifiedAt    string `json:"verified_at,omitempty"`
}

// SubmitResult is the payload for submitting a match result.
type SubmitResult struct {
	MatchID       string `json:"match_id"`
	TeamID        string `json:"team_id"`
	Placement     int    `json:"placement"`
	Kills         int    `json:"kills"`
	ScreenshotURL string `json:"screenshot_url,omitempty"`
}
