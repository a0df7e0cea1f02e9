package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAddressNotFound = errors.New("address not found")

// AddressType classifies a customer address.
type AddressType string

const (
	AddressTypeHome   AddressType = "Home"
	AddressTypeOffice AddressType = "Office"
	AddressTypeOther  AddressType = "Other"
)

// ValidAddressType reports whether t is a recognised address type.
func ValidAddressType(t AddressType) bool {
	switch t {
	case AddressTypeHome, AddressTypeOffice, AddressTypeOther:
		return true
	}
	return false
}

// CustomerAddress belongs to a user and is removed with it (cascade). The
// admin API only stores and lists these; no business logic reads them.
type CustomerAddress struct {
	ID            string      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        string      `json:"user_id" gorm:"type:uuid;not null;index:idx_customer_addresses_user_default,priority:1"`
	User          *User       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Label         string      `json:"label" gorm:"size:50;not null;default:Home"`
	RecipientName string      `json:"recipient_name" gorm:"size:150;not null"`
	Phone         string      `json:"phone" gorm:"size:30;not null"`
	Line1         string      `json:"line1" gorm:"size:255;not null"`
	Line2         *string     `json:"line2" gorm:"size:255"`
	Landmark      *string     `json:"landmark" gorm:"size:255"`
	City          string      `json:"city" gorm:"size:100;not null;index:idx_customer_addresses_city"`
	State         string      `json:"state" gorm:"size:100;not null"`
	Pincode       string      `json:"pincode" gorm:"size:20;not null;index:idx_customer_addresses_pincode"`
	Instructions  *string     `json:"instructions" gorm:"size:500"`
	Type          AddressType `json:"type" gorm:"size:16;not null;default:Home"`
	IsDefault     bool        `json:"is_default" gorm:"not null;default:false;index:idx_customer_addresses_user_default,priority:2"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (CustomerAddress) TableName() string { return "customer_addresses" }

func (a *CustomerAddress) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
