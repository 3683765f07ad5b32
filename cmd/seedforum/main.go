// Command seedforum loads the starter forum categories and posts.
// It reads DATABASE_URL; categories are keyed on slug and posts on
// (category, slug), so re-running updates rows instead of duplicating.
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
	result := seed.New(st, logf).SeedForum()
	fmt.Printf("seeded forum: %s\n", result.Summary())
	if result.OK == 0 {
		os.Exit(1)
	}
}
