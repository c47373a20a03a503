package repository

import (
	"context"
	"fmt"
	"strconv"

	"gameverse-api/internal/domain"
	"gameverse-api/pkg/sheetstore"
)

// MatchHeaders is the fixed column order of the Matches table.
var MatchHeaders = []string{
	"id", "game", "match_number", "match_date", "status", "created_at",
}

type matchRepository struct {
	store sheetstore.Store
}

// NewMatchRepository creates a match repository over the given store.
func NewMatchRepository(store sheetstore.Store) MatchRepository {
	return &matchRepository{store: store}
}

func (r *matchRepository) GetAll(ctx context.Context) ([]domain.Match, error) {
	rows, err := r.store.ReadAll(ctx, sheetstore.TableMatches)
	if err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}
	if len(rows) < 2 {
		return []domain.Match{}, nil
	}

	matches := make([]domain.Match, 0, len(rows)-1)
	for _, row := range rows[1:] {
		matches = append(matches, parseMatchRow(row))
	}
	return matches, nil
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	matches, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range matches {
		if matches[i].ID == id {
			return &matches[i], nil
		}
	}
	return nil, nil
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	if err := r.store.Append(ctx, sheetstore.TableMatches, [][]string{matchRow(match)}); err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

func (r *matchRepository) Update(ctx context.Context, match *domain.Match) error {
	matches, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range matches {
		if matches[i].ID == match.ID {
			return r.store.UpdateRow(ctx, sheetstore.TableMatches, i+2, matchRow(match))
		}
	}
	return fmt.Errorf("match %s not found", match.ID)
}

func (r *matchRepository) Delete(ctx context.Context, id string) (bool, error) {
	matches, err := r.GetAll(ctx)
	if err != nil {
		return false, err
	}

	remaining := make([][]string, 0, len(matches)+1)
	remaining = append(remaining, MatchHeaders)
	found := false
	for i := range matches {
		if matches[i].ID == id {
			found = true
			continue
		}
		remaining = append(remaining, matchRow(&matches[i]))
	}
	if !found {
		return false, nil
	}

	if err := r.store.Overwrite(ctx, sheetstore.TableMatches, remaining); err != nil {
		return false, fmt.Errorf("failed to rewrite matches: %w", err)
	}
	return true, nil
}

func parseMatchRow(row []string) domain.Match {
	return domain.Match{
		ID:          sheetstore.Cell(row, 0),
		Game:        domain.Game(sheetstore.Cell(row, 1)),
		MatchNumber: parseInt(sheetstore.Cell(row, 2)),
		MatchDate:   sheetstore.Cell(row, 3),
		Status:      domain.MatchStatus(sheetstore.Cell(row, 4)),
		CreatedAt:   sheetstore.Cell(row, 5),
	}
}

func matchRow(match *domain.Match) []string {
	return []string{
		match.ID,
		string(match.Game),
		strconv.Itoa(match.MatchNumber),
		match.MatchDate,
		string(match.Status),
		match.CreatedAt,
	}
}
