package gormdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/printops/backoffice-system/internal/core/domain"
)

// EnsureSchema brings the database up to the expected schema. Every step is
// guarded by an introspection check so the routine can run on every boot:
// tables are created only when missing, columns and indexes are added only
// when absent, and the permission catalog is seeded key by key. Existing data
// is never rewritten.
func EnsureSchema(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	db = db.WithContext(ctx)
	m := db.Migrator()

	tables := []any{
		&domain.Permission{},
		&domain.Role{},
		&domain.User{},
		&domain.Order{},
		&domain.AboutSection{},
		&domain.AboutSectionItem{},
		&domain.CustomerAddress{},
	}
	for _, model := range tables {
		if m.HasTable(model) {
			continue
		}
		if err := m.CreateTable(model); err != nil {
			return fmt.Errorf("create table %T: %w", model, err)
		}
		log.Info().Str("table", fmt.Sprintf("%T", model)).Msg("table created")
	}

	if err := ensureUserColumns(m, log); err != nil {
		return err
	}
	if err := ensureIndexes(m, log); err != nil {
		return err
	}
	if err := seedPermissions(db, log); err != nil {
		return err
	}

	return nil
}

// ensureUserColumns adds the columns the users table gained after its first
// release. AddColumn is additive: existing rows get NULL, which every one of
// these columns allows.
func ensureUserColumns(m gorm.Migrator, log zerolog.Logger) error {
	columns := []struct {
		name  string
		field string
	}{
		{"username", "Username"},
		{"mobile_number", "MobileNumber"},
		{"address", "Address"},
		{"email_verified_at", "EmailVerifiedAt"},
	}
	for _, col := range columns {
		if m.HasColumn(&domain.User{}, col.name) {
			continue
		}
		if err := m.AddColumn(&domain.User{}, col.field); err != nil {
			return fmt.Errorf("add users.%s: %w", col.name, err)
		}
		log.Info().Str("column", "users."+col.name).Msg("column added")
	}
	return nil
}

func ensureIndexes(m gorm.Migrator, log zerolog.Logger) error {
	indexes := []struct {
		model any
		name  string
	}{
		// The unique username index is created here rather than by AddColumn,
		// which only adds the bare column.
		{&domain.User{}, "idx_users_username"},
		{&domain.AboutSectionItem{}, "idx_about_items_section"},
		{&domain.AboutSectionItem{}, "idx_about_items_section_sort"},
		{&domain.CustomerAddress{}, "idx_customer_addresses_user_default"},
		{&domain.CustomerAddress{}, "idx_customer_addresses_city"},
		{&domain.CustomerAddress{}, "idx_customer_addresses_pincode"},
	}
	for _, idx := range indexes {
		if m.HasIndex(idx.model, idx.name) {
			continue
		}
		if err := m.CreateIndex(idx.model, idx.name); err != nil {
			return fmt.Errorf("create index %s: %w", idx.name, err)
		}
		log.Info().Str("index", idx.name).Msg("index created")
	}
	return nil
}

// seedPermissions inserts any catalog entries not yet present. Labels and
// descriptions of existing entries are left alone so manual edits survive.
func seedPermissions(db *gorm.DB, log zerolog.Logger) error {
	for _, p := range domain.DefaultCatalog() {
		var existing domain.Permission
		err := db.Where("key = ?", p.Key).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("seed permission %s: %w", p.Key, err)
		}
		if err := db.Create(&p).Error; err != nil {
			return fmt.Errorf("seed permission %s: %w", p.Key, err)
		}
		log.Info().Str("permission", p.Key).Msg("permission seeded")
	}
	return nil
}
