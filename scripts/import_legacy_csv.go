//go:build ignore

// One-off importer for the legacy spreadsheet exports that predate
// trolleypm. Feed it a CSV with the columns
//
//	trolley_id, pm_date, failure_type, failure_note, technician, amount
//
// and it appends maintenance rows with recomputed due dates.
//
// Usage: go run scripts/import_legacy_csv.go -csv legacy.csv [-db path]
package main

import (
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const dateLayout = "2006-01-02"

func main() {
	csvPath := flag.String("csv", "", "Path to the legacy CSV export")
	dbPath := flag.String("db", "", "Path to trolleypm.db (default ~/.trolleypm/trolleypm.db)")
	dryRun := flag.Bool("dry-run", false, "Parse and report without inserting")
	flag.Parse()

	if *csvPath == "" {
		fmt.Fprintln(os.Stderr, "usage: go run scripts/import_legacy_csv.go -csv legacy.csv")
		os.Exit(1)
	}

	if *dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to resolve home directory: %v\n", err)
			os.Exit(1)
		}
		*dbPath = filepath.Join(home, ".trolleypm", "trolleypm.db")
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse CSV: %v\n", err)
		os.Exit(1)
	}
	if len(rows) <= 1 {
		fmt.Println("No data rows found.")
		return
	}

	db, err := sql.Open("sqlite3", *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	imported, skipped := 0, 0
	for i, row := range rows[1:] {
		if len(row) < 2 {
			fmt.Printf("row %d: too few columns, skipping\n", i+2)
			skipped++
			continue
		}

		trolleyID := strings.TrimSpace(row[0])
		pmDate, err := time.Parse(dateLayout, strings.TrimSpace(row[1]))
		if trolleyID == "" || err != nil {
			fmt.Printf("row %d: bad trolley ID or date, skipping\n", i+2)
			skipped++
			continue
		}

		get := func(idx int) string {
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}
		failureType := strings.ToUpper(get(2))
		if failureType == "NA" || failureType == "NONE" {
			failureType = ""
		}
		amount := get(5)
		if amount == "" {
			amount = "NA"
		}

		if *dryRun {
			imported++
			continue
		}

		_, err = db.Exec(
			"INSERT INTO maintenance (trolley_id, pm_date, next_due, failure_type, failure_note, technician, amount, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			trolleyID,
			pmDate.Format(dateLayout),
			pmDate.AddDate(0, 0, 90).Format(dateLayout),
			nullable(failureType),
			nullable(get(3)),
			nullable(get(4)),
			amount,
			time.Now().UTC().Format(time.RFC3339),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "row %d: insert failed: %v\n", i+2, err)
			os.Exit(1)
		}
		imported++
	}

	verb := "Imported"
	if *dryRun {
		verb = "Would import"
	}
	fmt.Printf("%s %d row(s), skipped %d.\n", verb, imported, skipped)
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
