package domain

// CollegeStanding is one row of the college leaderboard: every team of the
// college contributes its total points.
type CollegeStanding struct {
	College     string  `json:"college"`
	TotalPoints int     `json:"total_points"`
	TeamCount   int     `json:"team_count"`
	AvgPoints   float64 `json:"avg_points"`
}

// TeamStats are derived from verified results only. BestPlacement is 0 when
// the team has no verified results.
type TeamStats struct {
	TotalMatches  int     `json:"total_matches"`
	TotalKills    int     `json:"total_kills"`
	TotalPoints   int     `json:"total_points"`
	AvgKills      float64 `json:"avg_kills"`
	AvgPlacement  float64 `json:"avg_placement"`
	BestPlacement int     `json:"best_placement"`
}

// TeamDetail is the team page view: the team, its verified results and the
// stats derived from them.
type TeamDetail struct {
	Team    Team          `json:"team"`
	Results []MatchResult `json:"results"`
	Stats   TeamStats     `json:"stats"`
}

// AdminStats is the admin dashboard summary.
type AdminStats struct {
	TotalTeams      int `json:"total_teams"`
	TotalMatches    int `json:"total_matches"`
	PendingResults  int `json:"pending_results"`
	VerifiedResults int `json:"verified_results"`
}
