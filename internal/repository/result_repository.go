package repository

import (
	"context"
	"fmt"
	"strconv"

	"gameverse-api/internal/domain"
	"gameverse-api/pkg/sheetstore"
)

// ResultHeaders is the fixed column order of the MatchResults table.
var ResultHeaders = []string{
	"id", "match_id", "team_id", "placement", "kills", "points",
	"screenshot_url", "verified", "created_at", "updated_at", "verified_at",
}

type resultRepository struct {
	store sheetstore.Store
}

// NewResultRepository creates a result repository over the given store.
func NewResultRepository(store sheetstore.Store) ResultRepository {
	return &resultRepository{store: store}
}

func (r *resultRepository) GetAll(ctx context.Context) ([]domain.MatchResult, error) {
	rows, err := r.store.ReadAll(ctx, sheetstore.TableResults)
	if err != nil {
		return nil, fmt.Errorf("failed to read match results: %w", err)
	}
	if len(rows) < 2 {
		return []domain.MatchResult{}, nil
	}

	results := make([]domain.MatchResult, 0, len(rows)-1)
	for _, row := range rows[1:] {
		results = append(results, parseResultRow(row))
	}
	return results, nil
}

func (r *resultRepository) GetByID(ctx context.Context, id string) (*domain.MatchResult, error) {
	results, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range results {
		if results[i].ID == id {
			return &results[i], nil
		}
	}
	return nil, nil
}

func (r *resultRepository) GetByMatchID(ctx context.Context, matchID string) ([]domain.MatchResult, error) {
	results, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.MatchResult, 0, len(results))
	for _, result := range results {
		if result.MatchID == matchID {
			filtered = append(filtered, result)
		}
	}
	return filtered, nil
}

func (r *resultRepository) GetByTeamID(ctx context.Context, teamID string) ([]domain.MatchResult, error) {
	results, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.MatchResult, 0, len(results))
	for _, result := range results {
		if result.TeamID == teamID {
			filtered = append(filtered, result)
		}
	}
	return filtered, nil
}

func (r *resultRepository) Create(ctx context.Context, result *domain.MatchResult) error {
	if err := r.store.Append(ctx, sheetstore.TableResults, [][]string{resultRow(result)}); err != nil {
		return fmt.Errorf("failed to create result: %w", err)
	}
	return nil
}

func (r *resultRepository) Update(ctx context.Context, result *domain.MatchResult) error {
	results, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range results {
		if results[i].ID == result.ID {
			return r.store.UpdateRow(ctx, sheetstore.TableResults, i+2, resultRow(result))
		}
	}
	return fmt.Errorf("result %s not found", result.ID)
}

func (r *resultRepository) DeleteByMatchID(ctx context.Context, matchID string) (int, error) {
	results, err := r.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	remaining := make([][]string, 0, len(results)+1)
	remaining = append(remaining, ResultHeaders)
	removed := 0
	for i := range results {
		if results[i].MatchID == matchID {
			removed++
			continue
		}
		remaining = append(remaining, resultRow(&results[i]))
	}
	if removed == 0 {
		return 0, nil
	}

	if err := r.store.Overwrite(ctx, sheetstore.TableResults, remaining); err != nil {
		return 0, fmt.Errorf("failed to rewrite results: %w", err)
	}
	return removed, nil
}

func parseResultRow(row []string) domain.MatchResult {
	return domain.MatchResult{
		ID:            sheetstore.Cell(row, 0),
		MatchID:       sheetstore.Cell(row, 1),
		TeamID:        sheetstore.Cell(row, 2),
		Placement:     parseInt(sheetstore.Cell(row, 3)),
		Kills:         parseInt(sheetstore.Cell(row, 4)),
		Points:        parseInt(sheetstore.Cell(row, 5)),
		ScreenshotURL: sheetstore.Cell(row, 6),
		Verified:      sheetstore.Cell(row, 7) == "true",
		CreatedAt:     sheetstore.Cell(row, 8),
		UpdatedAt:     sheetstore.Cell(row, 9),
		VerifiedAt:    sheetstore.Cell(row, 10),
	}
}

func resultRow(result *domain.MatchResult) []string {
	return []string{
		result.ID,
		result.MatchID,
		result.TeamID,
		strconv.Itoa(result.Placement),
		strconv.Itoa(result.Kills),
		strconv.Itoa(result.Points),
		result.ScreenshotURL,
		strconv.FormatBool(result.Verified),
		result.CreatedAt,
		result.UpdatedAt,
		result.VerifiedAt,
	}
}
