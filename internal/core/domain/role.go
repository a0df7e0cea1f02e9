package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// RoleStatus represents whether a role can currently be assigned.
type RoleStatus string

const (
	RoleStatusActive   RoleStatus = "active"
	RoleStatusInactive RoleStatus = "inactive"
)

var ErrRoleNotFound = errors.New("role not found")
var ErrDuplicateRole = errors.New("role already exists")
var ErrUnknownPermission = errors.New("unknown permission key")

// ValidRoleStatus reports whether s is a recognised role status.
func ValidRoleStatus(s RoleStatus) bool {
	return s == RoleStatusActive || s == RoleStatusInactive
}

// Permission is an atomic capability key with display metadata. Permissions
// are sourced from a seeded catalog and are read-only from the admin API.
type Permission struct {
	ID          uint   `json:"-" gorm:"primaryKey"`
	Key         string `json:"key" gorm:"uniqueIndex;size:100;not null"`
	Label       string `json:"label" gorm:"size:150"`
	Description string `json:"description" gorm:"size:500"`
}

func (Permission) TableName() string { return "permissions" }

// Role is a named bundle of permissions. Name is the unique system name
// derived from the display label at creation time and is immutable after.
type Role struct {
	ID          uint         `json:"-" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Label       string       `json:"label" gorm:"size:150;not null"`
	Description string       `json:"description" gorm:"size:500"`
	Status      RoleStatus   `json:"status" gorm:"size:16;not null;default:active"`
	Permissions []Permission `json:"permissions" gorm:"many2many:role_permissions"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (Role) TableName() string { return "roles" }

// PermissionKeys returns the role's permission keys in display order.
func (r *Role) PermissionKeys() []string {
	keys := make([]string, len(r.Permissions))
	for i, p := range r.Permissions {
		keys[i] = p.Key
	}
	return keys
}

var (
	disallowedNameChars = regexp.MustCompile(`[^a-z0-9 _-]`)
	whitespaceRun       = regexp.MustCompile(`\s+`)
	underscoreRun       = regexp.MustCompile(`_+`)
)

// DeriveSystemName converts a human label into the unique system name:
// lowercase, trim, strip anything outside [a-z0-9 _-], collapse whitespace
// runs to a single underscore, collapse repeated underscores, trim leading
// and trailing underscores. A label that reduces to nothing falls back to
// the lowercased raw label so an empty identifier is never produced.
// Deriving an already-derived name returns it unchanged.
func DeriveSystemName(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	s = disallowedNameChars.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, "_")
	s = underscoreRun.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return strings.ToLower(label)
	}
	return s
}
