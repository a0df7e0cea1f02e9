package gormdb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/printops/backoffice-system/internal/core/domain"
)

// AboutRepository persists content sections and their items.
type AboutRepository struct {
	db *gorm.DB
}

func NewAboutRepository(db *gorm.DB) *AboutRepository {
	return &AboutRepository{db: db}
}

func (r *AboutRepository) ListSections(ctx context.Context) ([]domain.AboutSection, error) {
	var sections []domain.AboutSection
	err := r.db.WithContext(ctx).Order("section_key").Find(&sections).Error
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	return sections, nil
}

func (r *AboutRepository) FindSection(ctx context.Context, sectionKey string) (*domain.AboutSection, error) {
	var section domain.AboutSection
	err := r.db.WithContext(ctx).Where("section_key = ?", sectionKey).First(&section).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrSectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find section %s: %w", sectionKey, err)
	}
	return &section, nil
}

func (r *AboutRepository) ItemsBySection(ctx context.Context, sectionKey string) ([]domain.AboutSectionItem, error) {
	var items []domain.AboutSectionItem
	err := r.db.WithContext(ctx).
		Where("section_key = ?", sectionKey).
		Order("sort_order, id").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("items for section %s: %w", sectionKey, err)
	}
	return items, nil
}

// SaveSection inserts or updates the section keyed by section_key.
func (r *AboutRepository) SaveSection(ctx context.Context, section *domain.AboutSection) error {
	if section.ID != "" {
		err := r.db.WithContext(ctx).
			Model(&domain.AboutSection{}).
			Where("id = ?", section.ID).
			Select("tagline", "title", "subtitle", "description", "primary_image", "secondary_image", "meta").
			Updates(section).Error
		if err != nil {
			return fmt.Errorf("update section %s: %w", section.SectionKey, err)
		}
		return nil
	}
	if err := r.db.WithContext(ctx).Create(section).Error; err != nil {
		return fmt.Errorf("create section %s: %w", section.SectionKey, err)
	}
	return nil
}

// ReplaceItems swaps the section's item set in one transaction.
func (r *AboutRepository) ReplaceItems(ctx context.Context, sectionKey string, items []domain.AboutSectionItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_key = ?", sectionKey).Delete(&domain.AboutSectionItem{}).Error; err != nil {
			return fmt.Errorf("clear items for %s: %w", sectionKey, err)
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].SectionKey = sectionKey
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("insert items for %s: %w", sectionKey, err)
		}
		return nil
	})
}
