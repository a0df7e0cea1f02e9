package domain

import (
	"errors"
	"time"
)

// OrderStatus is a stage in the fixed order pipeline.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusInProgress OrderStatus = "In progress"
	OrderStatusWaiting    OrderStatus = "Waiting on client"
	OrderStatusQA         OrderStatus = "QA"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusArchived   OrderStatus = "Archived"
)

// StatusPipeline lists the statuses in display order. The first entry is the
// default for new orders. Status changes are unrestricted: the listing view
// flips statuses with a single click, so any member is reachable from any
// other.
var StatusPipeline = []OrderStatus{
	OrderStatusPending,
	OrderStatusInProgress,
	OrderStatusWaiting,
	OrderStatusQA,
	OrderStatusCompleted,
	OrderStatusArchived,
}

// OrderPriority ranks the urgency of an order.
type OrderPriority string

const (
	PriorityLow      OrderPriority = "Low"
	PriorityMedium   OrderPriority = "Medium"
	PriorityHigh     OrderPriority = "High"
	PriorityCritical OrderPriority = "Critical"
)

// OrderChannel records where an order originated.
type OrderChannel string

const (
	ChannelBackoffice OrderChannel = "Backoffice"
	ChannelWebsite    OrderChannel = "Website"
	ChannelReferral   OrderChannel = "Referral"
	ChannelPhone      OrderChannel = "Phone"
)

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidStatus = errors.New("invalid order status")

// ValidOrderStatus reports whether s is a member of the pipeline.
func ValidOrderStatus(s OrderStatus) bool {
	for _, p := range StatusPipeline {
		if p == s {
			return true
		}
	}
	return false
}

// ValidPriority reports whether p is a recognised priority.
func ValidPriority(p OrderPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// ValidChannel reports whether c is a recognised channel.
func ValidChannel(c OrderChannel) bool {
	switch c {
	case ChannelBackoffice, ChannelWebsite, ChannelReferral, ChannelPhone:
		return true
	}
	return false
}

// Order is a unit of client work tracked through the status pipeline.
// AssignedTo is nil when the order is unassigned; a present value is always
// trimmed and non-empty (empty input normalises to nil).
type Order struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	ProjectName   string        `json:"project_name" gorm:"size:255;not null"`
	ClientName    string        `json:"client_name" gorm:"size:255;not null"`
	ClientEmail   string        `json:"client_email" gorm:"size:255"`
	ClientPhone   string        `json:"client_phone" gorm:"size:50"`
	Company       string        `json:"company" gorm:"size:255"`
	ServiceLine   string        `json:"service_line" gorm:"size:100"`
	Channel       OrderChannel  `json:"channel" gorm:"size:32;not null;default:Backoffice"`
	Status        OrderStatus   `json:"status" gorm:"size:32;not null;default:Pending;index"`
	Priority      OrderPriority `json:"priority" gorm:"size:16;not null;default:Medium;index"`
	DueDate       string        `json:"due_date" gorm:"size:10"`
	Budget        *float64      `json:"budget"`
	Quantity      int           `json:"quantity" gorm:"not null;default:1"`
	Description   string        `json:"description" gorm:"type:text"`
	InternalNotes string        `json:"internal_notes,omitempty" gorm:"type:text"`
	AssignedTo    *string       `json:"assigned_to" gorm:"size:150"`
	Tags          []string      `json:"tags" gorm:"serializer:json;type:text"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

// Unassigned reports whether the order has no owner.
func (o *Order) Unassigned() bool {
	return o.AssignedTo == nil || *o.AssignedTo == ""
}
