package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"gameverse-api/internal/repository"
	"gameverse-api/pkg/logger"
	"gameverse-api/pkg/sheetstore"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	spreadsheetID := os.Getenv("SHEETS_SPREADSHEET_ID")
	credentialsJSON := os.Getenv("SHEETS_CREDENTIALS_JSON")
	if spreadsheetID == "" || credentialsJSON == "" {
		log.Fatal("SHEETS_SPREADSHEET_ID and SHEETS_CREDENTIALS_JSON environment variables are not set")
	}

	// Get command
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run main.go [headers|seed]")
		os.Exit(1)
	}

	command := os.Args[1]

	appLogger, err := logger.New("info", "development")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	ctx := context.Background()
	store, err := sheetstore.NewSheetsStore(ctx, spreadsheetID, credentialsJSON, appLogger)
	if err != nil {
		log.Fatalf("Failed to connect to spreadsheet: %v", err)
	}

	switch command {
	case "headers":
		if err := writeHeaders(ctx, store); err != nil {
			log.Fatalf("Failed to write headers: %v", err)
		}
		fmt.Println("✅ Header rows written successfully")

	case "seed":
		if err := seedData(ctx, store); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
		fmt.Println("✅ Demo data seeded successfully")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

// writeHeaders resets every table to an empty sheet with only its
// header row. Existing rows are discarded.
func writeHeaders(ctx context.Context, store sheetstore.Store) error {
	headers := map[string][]string{
		sheetstore.TableTeams:    repository.TeamHeaders,
		sheetstore.TableMatches:  repository.MatchHeaders,
		sheetstore.TableResults:  repository.ResultHeaders,
		sheetstore.TableUsers:    repository.UserHeaders,
		sheetstore.TableSettings: repository.SettingsHeaders,
	}

	for table, header := range headers {
		if err := store.Overwrite(ctx, table, [][]string{header}); err != nil {
			return fmt.Errorf("write %s header: %w", table, err)
		}
		fmt.Printf("  %s\n", table)
	}
	return nil
}

// seedData overwrites every table with the demo fixture rows, the same
// data the in-memory store starts with.
func seedData(ctx context.Context, store sheetstore.Store) error {
	for table, rows := range sheetstore.Fixtures() {
		if err := store.Overwrite(ctx, table, rows); err != nil {
			return fmt.Errorf("seed %s: %w", table, err)
		}
		fmt.Printf("  %s: %d rows\n", table, len(rows)-1)
	}
	return nil
}
