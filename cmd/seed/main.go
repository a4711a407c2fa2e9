package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/dcnearshore/taskboard/config"
	"github.com/dcnearshore/taskboard/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@taskboard.local"
	password := "password123"
	name := "Demo User"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s password=%s\n", id, email, password)

	tasks := []struct {
		title       string
		description string
		priority    string
		completed   bool
	}{
		{"Set up project board", "Create the shared board and invite the team", "high", true},
		{"Write API docs", "Document the task endpoints and auth flow", "medium", false},
		{"Review open tickets", "Triage everything older than two weeks", "medium", false},
		{"Fix login timeout", "Sessions expire after 30 minutes, confirm the frontend copes", "high", false},
		{"Order standing desks", "Three desks for the new hires", "low", false},
		{"Archive Q2 reports", "Move finished reports to cold storage", "low", true},
		{"Plan release retro", "Book a room and draft the agenda", "medium", false},
		{"Update dependencies", "Monthly bump of direct dependencies", "low", false},
		{"Refresh onboarding guide", "The database setup section is stale", "medium", false},
		{"Tag v1.4.0", "After the changelog is merged", "high", false},
		{"Clean the demo data", "Old demo tasks confuse new testers", "low", false},
		{"Audit token expiry", "Verify revoked tokens cannot be replayed", "high", true},
	}

	seeded := 0
	for _, t := range tasks {
		res, err := db.Exec(`
			INSERT INTO tasks (title, description, priority, completed)
			SELECT $1, $2, $3, $4
			WHERE NOT EXISTS (SELECT 1 FROM tasks WHERE title = $1)
		`, t.title, t.description, t.priority, t.completed)
		if err != nil {
			log.Fatalf("failed to seed task %q: %v", t.title, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			seeded++
		}
	}
	fmt.Printf("seeded %d tasks\n", seeded)
}
