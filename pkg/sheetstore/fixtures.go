package sheetstore

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Fixture credentials for the in-memory store. The passwords below only ever
// exist in unconfigured development environments.
const (
	FixtureAdminEmail     = "admin@gameverse.com"
	FixtureAdminPassword  = "admin123"
	FixturePlayerEmail    = "rahul@example.com"
	FixturePlayerPassword = "player123"
)

// Fixtures returns the static development data set, one header row plus data
// rows per table, mirroring the layout of the real spreadsheet.
func Fixtures() map[string][][]string {
	inProgressDate := time.Now().Add(2 * time.Hour).UTC().Format(time.RFC3339)

	return map[string][][]string{
		TableTeams: {
			{"id", "team_name", "college", "game", "captain_name", "captain_email", "captain_phone", "player_names", "total_points", "matches_played", "wins", "created_at"},
			{"1", "Phoenix Legends", "MIT College", "BGMI", "Rahul Sharma", "rahul@example.com", "9876543210", `["Rahul Sharma","Amit Kumar","Priya Singh","Rohan Verma"]`, "2450", "12", "5", "2025-01-15T10:00:00Z"},
			{"2", "Thunder Squad", "Delhi University", "BGMI", "Vikram Patel", "vikram@example.com", "9876543211", `["Vikram Patel","Sneha Reddy","Arjun Mehta","Kavya Iyer"]`, "2380", "12", "4", "2025-01-16T11:00:00Z"},
			{"3", "Fire Dragons", "IIT Bombay", "Free Fire", "Aditya Gupta", "aditya@example.com", "9876543212", `["Aditya Gupta","Neha Joshi","Karan Singh","Pooja Nair"]`, "1890", "10", "3", "2025-01-17T12:00:00Z"},
			{"4", "Royal Clash", "St. Xavier's College", "Clash Royale", "Sanjay Kumar", "sanjay@example.com", "9876543213", `["Sanjay Kumar","Riya Sharma"]`, "1650", "8", "6", "2025-01-18T13:00:00Z"},
			{"5", "Elite Warriors", "Pune University", "BGMI", "Deepak Rao", "deepak@example.com", "9876543214", `["Deepak Rao","Anjali Desai","Rohit Kulkarni","Meera Patil"]`, "2100", "11", "3", "2025-01-19T14:00:00Z"},
			{"6", "Storm Riders", "Chennai Institute", "Free Fire", "Karthik Raj", "karthik@example.com", "9876543215", `["Karthik Raj","Divya Menon","Suresh Babu","Lakshmi Iyer"]`, "1750", "9", "4", "2025-01-20T15:00:00Z"},
			{"7", "Victory Squad", "Bangalore College", "Clash Royale", "Arjun Nair", "arjun@example.com", "9876543216", `["Arjun Nair","Priya Menon"]`, "1420", "7", "4", "2025-01-21T16:00:00Z"},
		},
		TableMatches: {
			{"id", "game", "match_number", "match_date", "status", "created_at"},
			{"1", "BGMI", "1", "2025-02-01T15:00:00Z", "scheduled", "2025-01-20T10:00:00Z"},
			{"2", "BGMI", "2", "2025-02-02T15:00:00Z", "scheduled", "2025-01-20T10:00:00Z"},
			{"3", "Free Fire", "1", "2025-02-03T16:00:00Z", "scheduled", "2025-01-20T10:00:00Z"},
			{"4", "Clash Royale", "1", "2025-01-25T14:00:00Z", "completed", "2025-01-20T10:00:00Z"},
			{"5", "BGMI", "3", inProgressDate, "in_progress", "2025-01-20T10:00:00Z"},
		},
		TableResults: {
			{"id", "match_id", "team_id", "placement", "kills", "points", "screenshot_url", "verified", "created_at", "updated_at", "verified_at"},
			{"1", "4", "4", "1", "0", "100", "/placeholder.svg", "true", "2025-01-25T15:00:00Z", "2025-01-25T15:00:00Z", "2025-01-25T16:00:00Z"},
			{"2", "4", "7", "2", "0", "75", "/placeholder.svg", "true", "2025-01-25T15:00:00Z", "2025-01-25T15:00:00Z", "2025-01-25T16:00:00Z"},
			{"3", "4", "1", "3", "15", "65", "/placeholder.svg", "true", "2025-01-25T15:00:00Z", "2025-01-25T15:00:00Z", "2025-01-25T16:00:00Z"},
		},
		TableUsers: {
			{"id", "email", "password", "name", "role", "team_id", "college", "created_at"},
			{"admin-1", FixtureAdminEmail, mustHash(FixtureAdminPassword), "Admin User", "admin", "", "", "2025-01-01T00:00:00Z"},
			{"player-1", FixturePlayerEmail, mustHash(FixturePlayerPassword), "Rahul Sharma", "player", "1", "MIT College", "2025-01-15T10:00:00Z"},
		},
		TableSettings: {
			{"screenshot_upload_enabled", "manual_entry_enabled", "auto_verify_results"},
			{"TRUE", "TRUE", "FALSE"},
		},
	}
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
