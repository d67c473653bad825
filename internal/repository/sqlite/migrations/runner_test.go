package migrations_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/msomdec/mathpractice/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// A single connection keeps the in-memory database alive across queries.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("first migration run: %v", err)
	}

	res, err := db.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, name) VALUES (?, ?, ?)",
		"test@example.com", "hash123", "Test User",
	)
	if err != nil {
		t.Fatalf("insert into users: %v", err)
	}
	userID, _ := res.LastInsertId()

	_, err = db.ExecContext(ctx,
		"INSERT INTO progress (user_id, question, topic) VALUES (?, ?, ?)",
		userID, "1+1?", "arithmetic",
	)
	if err != nil {
		t.Fatalf("insert into progress: %v", err)
	}

	var difficulty string
	if err := db.QueryRowContext(ctx, "SELECT difficulty FROM progress").Scan(&difficulty); err != nil {
		t.Fatalf("select difficulty: %v", err)
	}
	if difficulty != "medium" {
		t.Fatalf("expected default difficulty medium, got %q", difficulty)
	}
}

func TestRunMigrationsIdempotent(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("second run (idempotent): %v", err)
	}

	applied, err := migrations.Applied(ctx, db)
	if err != nil {
		t.Fatalf("Applied: %v", err)
	}
	if len(applied) != 2 {
		t.Fatalf("expected 2 migration records, got %d", len(applied))
	}
	if !applied["001_create_users.sql"] || !applied["002_create_progress.sql"] {
		t.Fatalf("unexpected applied set: %v", applied)
	}
}
