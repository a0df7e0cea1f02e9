package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/printops/backoffice-system/internal/core/domain"
	"github.com/printops/backoffice-system/internal/core/ports"
)

// AboutServiceImpl manages the informational content panels. Sections are
// pure content: the only behaviour is upsert-with-item-replacement.
type AboutServiceImpl struct {
	repo   ports.AboutRepository
	logger zerolog.Logger
}

func NewAboutService(repo ports.AboutRepository, logger zerolog.Logger) *AboutServiceImpl {
	return &AboutServiceImpl{repo: repo, logger: logger}
}

func (s *AboutServiceImpl) ListSections(ctx context.Context) ([]ports.AboutSectionDetail, error) {
	sections, err := s.repo.ListSections(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ports.AboutSectionDetail, 0, len(sections))
	for _, section := range sections {
		items, err := s.repo.ItemsBySection(ctx, section.SectionKey)
		if err != nil {
			return nil, err
		}
		details = append(details, ports.AboutSectionDetail{Section: section, Items: items})
	}
	return details, nil
}

func (s *AboutServiceImpl) GetSection(ctx context.Context, sectionKey string) (*ports.AboutSectionDetail, error) {
	section, err := s.repo.FindSection(ctx, sectionKey)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ItemsBySection(ctx, sectionKey)
	if err != nil {
		return nil, err
	}
	return &ports.AboutSectionDetail{Section: *section, Items: items}, nil
}

// UpsertSection writes the full desired state of a section: the section row
// is inserted or updated, and the item set is replaced wholesale.
func (s *AboutServiceImpl) UpsertSection(ctx context.Context, sectionKey string, input ports.UpsertSectionInput) (*ports.AboutSectionDetail, error) {
	sectionKey = strings.TrimSpace(sectionKey)
	if sectionKey == "" {
		return nil, domain.NewValidationError("section_key", "section key is required")
	}

	section := &domain.AboutSection{
		SectionKey:     sectionKey,
		Tagline:        input.Tagline,
		Title:          input.Title,
		Subtitle:       input.Subtitle,
		Description:    input.Description,
		PrimaryImage:   input.PrimaryImage,
		SecondaryImage: input.SecondaryImage,
		Meta:           input.Meta,
	}
	if existing, err := s.repo.FindSection(ctx, sectionKey); err == nil {
		section.ID = existing.ID
		section.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.SaveSection(ctx, section); err != nil {
		s.logger.Error().Err(err).Str("section", sectionKey).Msg("failed to save section")
		return nil, err
	}

	items := make([]domain.AboutSectionItem, len(input.Items))
	for i, in := range input.Items {
		items[i] = domain.AboutSectionItem{
			SectionKey:  sectionKey,
			Title:       in.Title,
			Subtitle:    in.Subtitle,
			Description: in.Description,
			Value:       in.Value,
			Detail:      in.Detail,
			MediaURL:    in.MediaURL,
			Meta:        in.Meta,
			SortOrder:   in.SortOrder,
		}
	}
	if err := s.repo.ReplaceItems(ctx, sectionKey, items); err != nil {
		s.logger.Error().Err(err).Str("section", sectionKey).Msg("failed to replace section items")
		return nil, err
	}

	s.logger.Info().Str("section", sectionKey).Int("items", len(items)).Msg("section upserted")
	return s.GetSection(ctx, sectionKey)
}
