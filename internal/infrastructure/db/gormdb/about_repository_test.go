package gormdb

import (
	"context"
	"errors"
	"testing"

	"github.com/printops/backoffice-system/internal/core/domain"
)

func strptr(s string) *string { return &s }

func TestAboutRepository_SaveSection_InsertThenUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewAboutRepository(db)
	ctx := context.Background()

	section := &domain.AboutSection{
		SectionKey: "hero",
		Title:      strptr("Who we are"),
	}
	if err := repo.SaveSection(ctx, section); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if section.ID == "" {
		t.Fatal("id not assigned")
	}

	section.Title = strptr("What we print")
	section.Tagline = strptr("Since 2009")
	if err := repo.SaveSection(ctx, section); err != nil {
		t.Fatalf("update: %v", err)
	}

	found, err := repo.FindSection(ctx, "hero")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.ID != section.ID {
		t.Fatalf("update created a new row: %s vs %s", found.ID, section.ID)
	}
	if found.Title == nil || *found.Title != "What we print" {
		t.Fatalf("title not updated: %v", found.Title)
	}
}

func TestAboutRepository_FindMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewAboutRepository(db)

	_, err := repo.FindSection(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}
}

func TestAboutRepository_ReplaceItems(t *testing.T) {
	db := newTestDB(t)
	repo := NewAboutRepository(db)
	ctx := context.Background()

	if err := repo.SaveSection(ctx, &domain.AboutSection{SectionKey: "stats"}); err != nil {
		t.Fatalf("save section: %v", err)
	}

	first := []domain.AboutSectionItem{
		{Title: strptr("Orders shipped"), Value: strptr("12000"), SortOrder: 1},
		{Title: strptr("Clients"), Value: strptr("340"), SortOrder: 0},
	}
	if err := repo.ReplaceItems(ctx, "stats", first); err != nil {
		t.Fatalf("first replace: %v", err)
	}

	items, err := repo.ItemsBySection(ctx, "stats")
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if *items[0].Title != "Clients" {
		t.Fatalf("items not ordered by sort_order: %v", *items[0].Title)
	}

	// Wholesale replacement: the old set is gone.
	second := []domain.AboutSectionItem{
		{Title: strptr("Years in business"), Value: strptr("17"), SortOrder: 0},
	}
	if err := repo.ReplaceItems(ctx, "stats", second); err != nil {
		t.Fatalf("second replace: %v", err)
	}
	items, _ = repo.ItemsBySection(ctx, "stats")
	if len(items) != 1 || *items[0].Title != "Years in business" {
		t.Fatalf("replace did not swap the set: %v", items)
	}

	// Empty replacement clears everything.
	if err := repo.ReplaceItems(ctx, "stats", nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	items, _ = repo.ItemsBySection(ctx, "stats")
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}
