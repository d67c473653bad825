package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/mathpractice/internal/domain"
	"github.com/msomdec/mathpractice/internal/repository/sqlite"
)

func TestUserRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		Email:        "Test@Example.com ",
		Name:         "Test User",
		PasswordHash: "hashedpw",
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if user.ID == 0 {
		t.Fatal("expected user ID to be set after create")
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
	if user.Email != "test@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.User{Email: "dup@example.com", Name: "User 1", PasswordHash: "hash1"}); err != nil {
		t.Fatalf("Create user1: %v", err)
	}

	err := repo.Create(ctx, &domain.User{Email: "DUP@example.com", Name: "User 2", PasswordHash: "hash2"})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_Create_FederatedOnly(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Email: "fed@example.com", Name: "Fed", FederatedID: "google-1"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.PasswordHash != "" {
		t.Fatalf("expected empty password hash, got %q", found.PasswordHash)
	}
	if found.FederatedID != "google-1" {
		t.Fatalf("expected federated id google-1, got %q", found.FederatedID)
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 99999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_GetByEmail_CaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Email: "byemail@example.com", Name: "By Email", PasswordHash: "hash"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.GetByEmail(ctx, "ByEmail@Example.COM")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if found.ID != user.ID {
		t.Fatalf("expected id %d, got %d", user.ID, found.ID)
	}
	if found.PasswordHash != "hash" {
		t.Fatalf("expected password hash to round-trip, got %q", found.PasswordHash)
	}
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	_, err := repo.GetByEmail(context.Background(), "nonexistent@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_GetByFederatedIDOrEmail(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	byEmail := &domain.User{Email: "a@example.com", Name: "A", PasswordHash: "hash"}
	byFederated := &domain.User{Email: "b@example.com", Name: "B", FederatedID: "sub-b"}
	for _, u := range []*domain.User{byEmail, byFederated} {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create %s: %v", u.Email, err)
		}
	}

	tests := []struct {
		name        string
		federatedID string
		email       string
		wantID      int64
	}{
		{"email match", "sub-unknown", "a@example.com", byEmail.ID},
		{"federated match", "sub-b", "other@example.com", byFederated.ID},
		{"federated match wins over email", "sub-b", "a@example.com", byFederated.ID},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			found, err := repo.GetByFederatedIDOrEmail(ctx, tc.federatedID, tc.email)
			if err != nil {
				t.Fatalf("GetByFederatedIDOrEmail: %v", err)
			}
			if found.ID != tc.wantID {
				t.Fatalf("expected id %d, got %d", tc.wantID, found.ID)
			}
		})
	}

	_, err := repo.GetByFederatedIDOrEmail(ctx, "nobody", "nobody@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_LinkFederatedID(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Email: "link@example.com", Name: "Link", PasswordHash: "hash"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.LinkFederatedID(ctx, user.ID, "sub-1"); err != nil {
		t.Fatalf("LinkFederatedID: %v", err)
	}
	// A second link must not overwrite the first.
	if err := repo.LinkFederatedID(ctx, user.ID, "sub-2"); err != nil {
		t.Fatalf("LinkFederatedID again: %v", err)
	}

	found, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.FederatedID != "sub-1" {
		t.Fatalf("expected federated id sub-1, got %q", found.FederatedID)
	}
}
