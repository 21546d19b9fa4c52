// Command seedhsn loads the GST HSN/SAC workbook into the hsn_codes table.
// Usage: seedhsn -file "GST_HSN Code summary.xlsx"
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"

	"ekthaa/internal/config"
	"ekthaa/internal/hsnmaster"
	"ekthaa/internal/repository/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	_ = godotenv.Load()

	path := flag.String("file", "GST_HSN_Code_summary.xlsx", "HSN/SAC workbook to import")
	dryRun := flag.Bool("dry-run", false, "parse the workbook without writing to the database")
	flag.Parse()

	f, err := excelize.OpenFile(*path)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := hsnmaster.ParseWorkbook(f)
	if err != nil {
		return err
	}
	log.Printf("seedhsn: parsed %d entries from %s", len(entries), *path)
	if *dryRun {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	inserted, err := postgres.NewHSNRepo(db).Upsert(ctx, entries)
	if err != nil {
		return fmt.Errorf("upsert hsn codes: %w", err)
	}
	log.Printf("seedhsn: inserted %d new rows (%d already present)", inserted, len(entries)-inserted)
	return nil
}
