// Package sheetstore provides a tabular data store over named sheet tables.
// The production implementation talks to a Google Spreadsheet; an in-memory
// implementation backs local development and tests when no spreadsheet is
// configured.
//
// Every table is a header row followed by data rows. Row addressing for
// updates is 1-based and includes the header, so data row i (0-based) lives
// at sheet row i+2. There is no locking or versioning layer: concurrent
// writers are last-writer-wins, which matches the low write concurrency this
// application is designed for.
package sheetstore

import "context"

// Table names within the spreadsheet.
const (
	TableTeams    = "Teams"
	TableMatches  = "Matches"
	TableResults  = "MatchResults"
	TableUsers    = "Users"
	TableSettings = "Settings"
)

// Store is the narrow read/append/update/overwrite interface the
// repositories are built on.
type Store interface {
	// ReadAll returns every row of the table, header row included.
	ReadAll(ctx context.Context, table string) ([][]string, error)

	// Append adds rows after the last non-empty row of the table.
	Append(ctx context.Context, table string, rows [][]string) error

	// UpdateRow overwrites a single row. rowIndex is 1-based and counts
	// the header row, i.e. the first data row is rowIndex 2.
	UpdateRow(ctx context.Context, table string, rowIndex int, row []string) error

	// Overwrite replaces the whole table, header row included.
	Overwrite(ctx context.Context, table string, rows [][]string) error
}

// Cell returns column i of a row, or "" when the row is too short. Sheet
// rows are ragged: trailing empty cells are not returned by the API.
func Cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
