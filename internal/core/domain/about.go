package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSectionNotFound = errors.New("about section not found")

// AboutSection is a content block keyed by SectionKey. Sections carry no
// behaviour; they exist so informational admin panels can be edited without
// a deploy.
type AboutSection struct {
	ID             string         `json:"id" gorm:"type:uuid;primaryKey"`
	SectionKey     string         `json:"section_key" gorm:"uniqueIndex;size:100;not null"`
	Tagline        *string        `json:"tagline" gorm:"size:255"`
	Title          *string        `json:"title" gorm:"size:255"`
	Subtitle       *string        `json:"subtitle" gorm:"size:255"`
	Description    *string        `json:"description" gorm:"type:text"`
	PrimaryImage   *string        `json:"primary_image" gorm:"size:500"`
	SecondaryImage *string        `json:"secondary_image" gorm:"size:500"`
	Meta           map[string]any `json:"meta" gorm:"serializer:json;type:text"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (AboutSection) TableName() string { return "about_sections" }

func (s *AboutSection) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// AboutSectionItem is one entry inside a section. SectionKey references the
// parent by value, not by constraint; SortOrder determines display order.
type AboutSectionItem struct {
	ID          string         `json:"id" gorm:"type:uuid;primaryKey"`
	SectionKey  string         `json:"section_key" gorm:"size:100;not null;index:idx_about_items_section;index:idx_about_items_section_sort,priority:1"`
	Title       *string        `json:"title" gorm:"size:255"`
	Subtitle    *string        `json:"subtitle" gorm:"size:255"`
	Description *string        `json:"description" gorm:"type:text"`
	Value       *string        `json:"value" gorm:"size:255"`
	Detail      *string        `json:"detail" gorm:"size:255"`
	MediaURL    *string        `json:"media_url" gorm:"size:500"`
	Meta        map[string]any `json:"meta" gorm:"serializer:json;type:text"`
	SortOrder   int            `json:"sort_order" gorm:"not null;default:0;index:idx_about_items_section_sort,priority:2"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (AboutSectionItem) TableName() string { return "about_section_items" }

func (i *AboutSectionItem) BeforeCreate(*gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
