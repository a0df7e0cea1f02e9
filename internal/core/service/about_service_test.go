package service

import (
	"context"
	"errors"
	"testing"

	"github.com/printops/backoffice-system/internal/core/domain"
	"github.com/printops/backoffice-system/internal/core/ports"
)

type stubAboutRepo struct {
	sections map[string]*domain.AboutSection
	items    map[string][]domain.AboutSectionItem
	saves    int
}

func newStubAboutRepo() *stubAboutRepo {
	return &stubAboutRepo{
		sections: make(map[string]*domain.AboutSection),
		items:    make(map[string][]domain.AboutSectionItem),
	}
}

func (r *stubAboutRepo) ListSections(context.Context) ([]domain.AboutSection, error) {
	out := make([]domain.AboutSection, 0, len(r.sections))
	for _, s := range r.sections {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubAboutRepo) FindSection(_ context.Context, key string) (*domain.AboutSection, error) {
	s, ok := r.sections[key]
	if !ok {
		return nil, domain.ErrSectionNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubAboutRepo) ItemsBySection(_ context.Context, key string) ([]domain.AboutSectionItem, error) {
	return append([]domain.AboutSectionItem(nil), r.items[key]...), nil
}

func (r *stubAboutRepo) SaveSection(_ context.Context, section *domain.AboutSection) error {
	r.saves++
	if section.ID == "" {
		section.ID = "sec-" + section.SectionKey
	}
	clone := *section
	r.sections[section.SectionKey] = &clone
	return nil
}

func (r *stubAboutRepo) ReplaceItems(_ context.Context, key string, items []domain.AboutSectionItem) error {
	r.items[key] = append([]domain.AboutSectionItem(nil), items...)
	return nil
}

func TestAboutService_UpsertCreatesThenUpdates(t *testing.T) {
	repo := newStubAboutRepo()
	svc := NewAboutService(repo, discardLogger)
	ctx := context.Background()

	title := "Who we are"
	detail, err := svc.UpsertSection(ctx, "hero", ports.UpsertSectionInput{
		Title: &title,
		Items: []ports.AboutItemInput{{Title: &title, SortOrder: 0}},
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	firstID := detail.Section.ID
	if firstID == "" {
		t.Fatal("section id not assigned")
	}
	if len(detail.Items) != 1 {
		t.Fatalf("items not written: %v", detail.Items)
	}

	// A second upsert for the same key keeps the row identity.
	updated := "What we print"
	detail, err = svc.UpsertSection(ctx, "hero", ports.UpsertSectionInput{Title: &updated})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if detail.Section.ID != firstID {
		t.Fatalf("upsert changed section identity: %s vs %s", detail.Section.ID, firstID)
	}
	if len(detail.Items) != 0 {
		t.Fatalf("items should be replaced wholesale: %v", detail.Items)
	}
}

func TestAboutService_UpsertRejectsBlankKey(t *testing.T) {
	svc := NewAboutService(newStubAboutRepo(), discardLogger)

	_, err := svc.UpsertSection(context.Background(), "   ", ports.UpsertSectionInput{})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAboutService_GetMissingSection(t *testing.T) {
	svc := NewAboutService(newStubAboutRepo(), discardLogger)

	_, err := svc.GetSection(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}
}
