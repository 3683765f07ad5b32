// Command seedcars loads the starter car inventory into the database.
// It reads DATABASE_URL, upserts every row on (make, model, variant)
// and prints a per-row line plus an ok/failed summary. Re-running it
// updates the rows in place.
package main

import (
	"fmt"
	"os"

	"mrgcar/pkg/seed"
	"mrgcar/pkg/store"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "FATAL: DATABASE_URL is required")
		os.Exit(1)
	}
	st, err := store.NewGormStore(dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: connect database: %v\n", err)
		os.Exit(1)
	}

	logf := func(format string, args ...any) {
		fmt.Printf(format+"\n", args...)
	}
	result := seed.New(st, logf).SeedCars()
	fmt.Printf("seeded cars: %s\n", result.Summary())
	if result.OK == 0 {
		os.Exit(1)
	}
}
