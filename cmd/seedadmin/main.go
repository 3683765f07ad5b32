// Command seedadmin creates or updates the administrator account.
// It reads DATABASE_URL, ADMIN_EMAIL and ADMIN_PASSWORD; the account is
// keyed on email, so re-running rotates the password without changing
// the account ID.
package main

import (
	"fmt"
	"os"

	"mrgcar/pkg/seed"
	"mrgcar/pkg/store"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	switch {
	case dsn == "":
		fmt.Fprintln(os.Stderr, "FATAL: DATABASE_URL is required")
		os.Exit(1)
	case email == "":
		fmt.Fprintln(os.Stderr, "FATAL: ADMIN_EMAIL is required")
		os.Exit(1)
	case password == "":
		fmt.Fprintln(os.Stderr, "FATAL: ADMIN_PASSWORD is required")
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
	result := seed.New(st, logf).SeedAdmin(email, password)
	fmt.Printf("seeded admin: %s\n", result.Summary())
	if result.OK == 0 {
		os.Exit(1)
	}
}
