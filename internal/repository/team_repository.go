package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"gameverse-api/internal/domain"
	"gameverse-api/pkg/sheetstore"
)

// TeamHeaders is the fixed column order of the Teams table.
var TeamHeaders = []string{
	"id", "team_name", "college", "game",
	"captain_name", "captain_email", "captain_phone",
	"player_names", "total_points", "matches_played", "wins", "created_at",
}

type teamRepository struct {
	store sheetstore.Store
}

// NewTeamRepository creates a team repository over the given store.
func NewTeamRepository(store sheetstore.Store) TeamRepository {
	return &teamRepository{store: store}
}

func (r *teamRepository) GetAll(ctx context.Context) ([]domain.Team, error) {
	rows, err := r.store.ReadAll(ctx, sheetstore.TableTeams)
	if err != nil {
		return nil, fmt.Errorf("failed to read teams: %w", err)
	}
	if len(rows) < 2 {
		return []domain.Team{}, nil
	}

	teams := make([]domain.Team, 0, len(rows)-1)
	for _, row := range rows[1:] {
		teams = append(teams, parseTeamRow(row))
	}
	return teams, nil
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	teams, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range teams {
		if teams[i].ID == id {
			return &teams[i], nil
		}
	}
	return nil, nil
}

func (r *teamRepository) GetByGame(ctx context.Context, game domain.Game) ([]domain.Team, error) {
	teams, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Team, 0, len(teams))
	for _, team := range teams {
		if team.Game == game {
			filtered = append(filtered, team)
		}
	}
	return filtered, nil
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	if err := r.store.Append(ctx, sheetstore.TableTeams, [][]string{teamRow(team)}); err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	teams, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range teams {
		if teams[i].ID == team.ID {
			// Data row i lives at sheet row i+2 (1-based plus header).
			return r.store.UpdateRow(ctx, sheetstore.TableTeams, i+2, teamRow(team))
		}
	}
	return fmt.Errorf("team %s not found", team.ID)
}

func (r *teamRepository) UpdateAll(ctx context.Context, teams []domain.Team) error {
	rows := make([][]string, 0, len(teams)+1)
	rows = append(rows, TeamHeaders)
	for i := range teams {
		rows = append(rows, teamRow(&teams[i]))
	}
	if err := r.store.Overwrite(ctx, sheetstore.TableTeams, rows); err != nil {
		return fmt.Errorf("failed to rewrite teams: %w", err)
	}
	return nil
}

func (r *teamRepository) Delete(ctx context.Context, id string) (bool, error) {
	teams, err := r.GetAll(ctx)
	if err != nil {
		return false, err
	}

	remaining := make([]domain.Team, 0, len(teams))
	found := false
	for _, team := range teams {
		if team.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, team)
	}
	if !found {
		return false, nil
	}

	return true, r.UpdateAll(ctx, remaining)
}

func parseTeamRow(row []string) domain.Team {
	team := domain.Team{
		ID:           sheetstore.Cell(row, 0),
		TeamName:     sheetstore.Cell(row, 1),
		College:      sheetstore.Cell(row, 2),
		Game:         domain.Game(sheetstore.Cell(row, 3)),
		CaptainName:  sheetstore.Cell(row, 4),
		CaptainEmail: sheetstore.Cell(row, 5),
		CaptainPhone: sheetstore.Cell(row, 6),
		CreatedAt:    sheetstore.Cell(row, 11),
	}

	if raw := sheetstore.Cell(row, 7); raw != "" {
		// Player names are stored as a JSON array in one cell; a bad cell
		// degrades to an empty roster rather than failing the whole read.
		_ = json.Unmarshal([]byte(raw), &team.PlayerNames)
	}
	if team.PlayerNames == nil {
		team.PlayerNames = []string{}
	}

	team.TotalPoints = parseInt(sheetstore.Cell(row, 8))
	team.MatchesPlayed = parseInt(sheetstore.Cell(row, 9))
	team.Wins = parseInt(sheetstore.Cell(row, 10))

	return team
}

func teamRow(team *domain.Team) []string {
	players, _ := json.Marshal(team.PlayerNames)

	return []string{
		team.ID,
		team.TeamName,
		team.College,
		string(team.Game),
		team.CaptainName,
		team.CaptainEmail,
		team.CaptainPhone,
		string(players),
		strconv.Itoa(team.TotalPoints),
		strconv.Itoa(team.MatchesPlayed),
		strconv.Itoa(team.Wins),
		team.CreatedAt,
	}
}

// parseInt parses a sheet cell as an integer, treating anything unparsable
// as zero.
func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
