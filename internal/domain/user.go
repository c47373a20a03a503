package domain

// Role is a user's authorization level.
type Role string

const (
	RoleAdmin  Role = "admin"
	RolePlayer Role = "player"
)

// User is an account stored in the Users table. Password holds the bcrypt
// hash, never the plaintext, and is never serialized.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	TeamID    string `json:"team_id,omitempty"`
	College   string `json:"college,omitempty"`
	CreatedAt string `json:"created_at"`
}

// SessionUser is the identity carried inside a session token.
type SessionUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    Role   `json:"role"`
	TeamID  string `json:"teamId,omitempty"`
	College string `json:"college,omitempty"`
}

// SessionUserFromUser derives the token payload from a stored user.
func SessionUserFromUser(u *User) SessionUser {
	return SessionUser{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Role:    u.Role,
		TeamID:  u.TeamID,
		College: u.College,
	}
}
