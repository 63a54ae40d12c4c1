package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"fan-globe/internal/config"
	"fan-globe/internal/models"
	"fan-globe/internal/repository"
	"fan-globe/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	records, err := parseCSV(*file, time.Now())
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d records\n", len(records))

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	kv, closeStore, err := repository.Open(ctx, cfg)
	if err != nil {
		fmt.Printf("Error opening storage: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	store := service.NewSubmissionStore(ctx, kv, nil, zerolog.New(os.Stderr).With().Timestamp().Logger())
	before := store.Len()

	fresh := skipExisting(store.All(), records)
	if skipped := len(records) - len(fresh); skipped > 0 {
		fmt.Printf("Skipping %d records already stored\n", skipped)
	}

	// Insert records
	if err := store.AppendMany(ctx, fresh); err != nil {
		fmt.Printf("Error inserting records: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	if err := verifyImport(ctx, store, before+len(fresh)); err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d records\n", len(fresh))
}

// parseCSV reads a file in the export format. Rows without an id get a new
// one; rows without a timestamp are stamped with now.
func parseCSV(filePath string, now time.Time) ([]models.Submission, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return readCSV(file, now)
}

func readCSV(r io.Reader, now time.Time) ([]models.Submission, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []models.Submission
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		row, err := service.ParseCSVRecord(header, record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if row.ID == "" {
			row.ID = uuid.NewString()
		}
		if row.Timestamp == "" {
			row.Timestamp = models.FormatTimestamp(now)
		}
		records = append(records, row)
	}

	return records, nil
}

// skipExisting drops records whose id is already stored or repeated in the file.
func skipExisting(stored, records []models.Submission) []models.Submission {
	seen := make(map[string]struct{}, len(stored)+len(records))
	for _, s := range stored {
		seen[s.ID] = struct{}{}
	}

	fresh := make([]models.Submission, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		fresh = append(fresh, r)
	}
	return fresh
}

func verifyImport(ctx context.Context, store *service.SubmissionStore, expectedCount int) error {
	store.Reload(ctx)

	if count := store.Len(); count != expectedCount {
		return fmt.Errorf("record count mismatch: expected %d, got %d", expectedCount, count)
	}

	if rows := store.All(); len(rows) > 0 {
		fmt.Printf("Newest pin: %s (%s)\n", rows[0].Place().Label(), rows[0].Zip)
	}
	return nil
}
