package gormdb

import (
	"context"
	"errors"
	"testing"

	"github.com/printops/backoffice-system/internal/core/domain"
)

func TestAuthRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{
		Email:        "alice@example.com",
		PasswordHash: "hash",
		RoleName:     "sales_manager",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("uuid not assigned")
	}

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	byID, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if byEmail.ID != byID.ID {
		t.Fatalf("lookups disagree: %s vs %s", byEmail.ID, byID.ID)
	}
}

func TestAuthRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthRepository(db)
	ctx := context.Background()

	user := &domain.User{Email: "dup@example.com", PasswordHash: "x", RoleName: "admin"}
	if _, err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := repo.Create(ctx, &domain.User{Email: "dup@example.com", PasswordHash: "y", RoleName: "admin"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthRepository_FindMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthRepository(db)
	ctx := context.Background()

	if _, err := repo.FindByEmail(ctx, "ghost@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.FindByID(ctx, "no-such-id"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
