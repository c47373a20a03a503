package sheetstore

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"gameverse-api/pkg/logger"
)

// SheetsStore is the Google Sheets backed implementation of Store.
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
	log           *logger.Logger
}

// NewSheetsStore creates a Store backed by a Google Spreadsheet. The
// credentials are a service-account key in JSON form with spreadsheet scope.
func NewSheetsStore(ctx context.Context, spreadsheetID, credentialsJSON string, log *logger.Logger) (*SheetsStore, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(credentialsJSON)),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SheetsStore{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		log:           log,
	}, nil
}

// ReadAll returns every row of the table, header row included.
func (s *SheetsStore) ReadAll(ctx context.Context, table string) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, tableRange(table)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", table, err)
	}

	return fromValueRows(resp.Values), nil
}

// Append adds rows after the last non-empty row of the table.
func (s *SheetsStore) Append(ctx context.Context, table string, rows [][]string) error {
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, tableRange(table), &sheets.ValueRange{Values: toValueRows(rows)}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append to sheet %s: %w", table, err)
	}

	return nil
}

// UpdateRow overwrites a single 1-based row of the table.
func (s *SheetsStore) UpdateRow(ctx context.Context, table string, rowIndex int, row []string) error {
	rng := fmt.Sprintf("%s!A%d:Z%d", table, rowIndex, rowIndex)

	_, err := s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, rng, &sheets.ValueRange{Values: toValueRows([][]string{row})}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update row %d of sheet %s: %w", rowIndex, table, err)
	}

	return nil
}

// Overwrite replaces the whole table. The range is cleared first so that a
// shrinking table does not leave stale trailing rows behind.
func (s *SheetsStore) Overwrite(ctx context.Context, table string, rows [][]string) error {
	_, err := s.svc.Spreadsheets.Values.
		Clear(s.spreadsheetID, tableRange(table), &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear sheet %s: %w", table, err)
	}

	_, err = s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, table+"!A1", &sheets.ValueRange{Values: toValueRows(rows)}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to overwrite sheet %s: %w", table, err)
	}

	return nil
}

func tableRange(table string) string {
	return table + "!A:Z"
}

func toValueRows(rows [][]string) [][]interface{} {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	return values
}

func fromValueRows(values [][]interface{}) [][]string {
	rows := make([][]string, len(values))
	for i, value := range values {
		row := make([]string, len(value))
		for j, cell := range value {
			row[j] = fmt.Sprint(cell)
		}
		rows[i] = row
	}
	return rows
}
