package domain

// Game is one of the tournament's supported titles.
type Game string

const (
	GameBGMI        Game = "BGMI"
	GameFreeFire    Game = "Free Fire"
	GameClashRoyale Game = "Clash Royale"
)

// Games lists every supported title.
var Games = []Game{GameBGMI, GameFreeFire, GameClashRoyale}

// Valid reports whether g is a supported title.
func (g Game) Valid() bool {
	for _, game := range Games {
		if g == game {
			return true
		}
	}
	return false
}

// Team is a registered competing unit tied to one game and one college.
// Identity fields are immutable after registration; the points counters are
// only touched by the admin standings recompute.
type Team struct {
	ID            string   `json:"id"`
	TeamName      string   `json:"team_name"`
	College       string   `json:"college"`
	Game          Game     `json:"game"`
	CaptainName   string   `json:"captain_name"`
	CaptainEmail  string   `json:"captain_email"`
	CaptainPhone  string   `json:"captain_phone"`
	PlayerNames   []string `json:"player_names"`
	TotalPoints   int      `json:"total_points"`
	MatchesPlayed int      `json:"matches_played"`
	Wins          int      `json:"wins"`
	CreatedAt     string   `json:"created_at"`
}

// TeamRegistration is the payload for registering a new team.
type TeamRegistration struct {
	TeamName     string   `json:"team_name"`
	College      string   `json:"college"`
	Game         Game     `json:"game"`
	CaptainName  string   `json:"captain_name"`
	CaptainEmail string   `json:"captain_email"`
	CaptainPhone string   `json:"captain_phone"`
	PlayerNames  []string `json:"player_names"`
}
