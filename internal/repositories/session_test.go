package repositories

import (
	"database/sql"
	"testing"

	"github.com/14-harish/showtracker/internal/models"
	"github.com/14-harish/showtracker/internal/shared"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func TestSessionRepository(t *testing.T) {
	t.Run("Load With No Session", func(t *testing.T) {
		repo := NewSessionRepository(newTestDB(t))

		user, err := repo.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user != nil {
			t.Errorf("expected nil user, got %+v", user)
		}
	})

	t.Run("Save Then Load", func(t *testing.T) {
		repo := NewSessionRepository(newTestDB(t))

		if err := repo.Save(models.User{Username: "harish", Email: "harish@example.com"}); err != nil {
			t.Fatalf("failed to save session: %v", err)
		}

		user, err := repo.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user == nil {
			t.Fatal("expected restored user")
		}
		if user.Username != "harish" || user.Email != "harish@example.com" {
			t.Errorf("unexpected user: %+v", user)
		}
	})

	t.Run("Save Replaces Previous Session", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewSessionRepository(db)

		if err := repo.Save(models.User{Username: "first"}); err != nil {
			t.Fatalf("failed to save session: %v", err)
		}
		if err := repo.Save(models.User{Username: "second"}); err != nil {
			t.Fatalf("failed to save session: %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM session").Scan(&count); err != nil {
			t.Fatalf("failed to count sessions: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 session row, got %d", count)
		}

		user, err := repo.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Username != "second" {
			t.Errorf("expected latest session, got %s", user.Username)
		}
	})

	t.Run("Save Requires Username", func(t *testing.T) {
		repo := NewSessionRepository(newTestDB(t))

		if err := repo.Save(models.User{Email: "nobody@example.com"}); err == nil {
			t.Error("expected error for empty username")
		}
	})

	t.Run("Clear", func(t *testing.T) {
		repo := NewSessionRepository(newTestDB(t))

		if err := repo.Save(models.User{Username: "harish"}); err != nil {
			t.Fatalf("failed to save session: %v", err)
		}
		if err := repo.Clear(); err != nil {
			t.Fatalf("failed to clear session: %v", err)
		}

		user, err := repo.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user != nil {
			t.Errorf("expected nil user after clear, got %+v", user)
		}
	})

	t.Run("Corrupt Row Treated As Logged Out", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewSessionRepository(db)

		if _, err := db.Exec("INSERT INTO session (id, username, email) VALUES ('x', '', '')"); err != nil {
			t.Fatalf("failed to insert bad row: %v", err)
		}

		user, err := repo.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user != nil {
			t.Errorf("expected nil user for corrupt session, got %+v", user)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM session").Scan(&count); err != nil {
			t.Fatalf("failed to count sessions: %v", err)
		}
		if count != 0 {
			t.Error("corrupt session row should be cleared")
		}
	})
}
