package ports

import (
	"context"

	"github.com/printops/backoffice-system/internal/core/domain"
)

// AboutItemInput is one content item inside a section upsert. Items are
// replaced wholesale with the section; SortOrder fixes the display order.
type AboutItemInput struct {
	Title       *string
	Subtitle    *string
	Description *string
	Value       *string
	Detail      *string
	MediaURL    *string
	Meta        map[string]any
	SortOrder   int
}

// UpsertSectionInput carries the full desired state of a content section.
type UpsertSectionInput struct {
	Tagline        *string
	Title          *string
	Subtitle       *string
	Description    *string
	PrimaryImage   *string
	SecondaryImage *string
	Meta           map[string]any
	Items          []AboutItemInput
}

// AboutSectionDetail bundles a section with its items in sort order.
type AboutSectionDetail struct {
	Section domain.AboutSection
	Items   []domain.AboutSectionItem
}

// AboutService defines the content-panel use-cases.
type AboutService interface {
	ListSections(ctx context.Context) ([]AboutSectionDetail, error)
	GetSection(ctx context.Context, sectionKey string) (*AboutSectionDetail, error)
	UpsertSection(ctx context.Context, sectionKey string, input UpsertSectionInput) (*AboutSectionDetail, error)
}

// AboutRepository defines persistence operations for content sections.
type AboutRepository interface {
	ListSections(ctx context.Context) ([]domain.AboutSection, error)
	FindSection(ctx context.Context, sectionKey string) (*domain.AboutSection, error)
	// ItemsBySection returns the section's items ordered by sort_order.
	ItemsBySection(ctx context.Context, sectionKey string) ([]domain.AboutSectionItem, error)
	// SaveSection inserts or updates a section keyed by section_key.
	SaveSection(ctx context.Context, section *domain.AboutSection) error
	// ReplaceItems swaps the section's item set in one transaction.
	ReplaceItems(ctx context.Context, sectionKey string, items []domain.AboutSectionItem) error
}
