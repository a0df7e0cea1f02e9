package handler

import "time"

// --- Request / Response types ---

// orderRequest is the raw admin-form payload. Numeric fields are strings on
// the wire; the service normalises them (empty budget → null, empty quantity
// → 1, comma-split tags, trimmed assignee).
type orderRequest struct {
	ProjectName   string `json:"project_name"`
	ClientName    string `json:"client_name"`
	ClientEmail   string `json:"client_email"   validate:"omitempty,email"`
	ClientPhone   string `json:"client_phone"`
	Company       string `json:"company"`
	ServiceLine   string `json:"service_line"`
	Channel       string `json:"channel"`
	Status        string `json:"status"`
	Priority      string `json:"priority"`
	DueDate       string `json:"due_date"`
	Budget        string `json:"budget"`
	Quantity      string `json:"quantity"`
	Description   string `json:"description"`
	InternalNotes string `json:"internal_notes"`
	AssignedTo    string `json:"assigned_to"`
	Tags          string `json:"tags"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type orderResponse struct {
	ID            uint      `json:"id"`
	ProjectName   string    `json:"project_name"`
	ClientName    string    `json:"client_name"`
	ClientEmail   string    `json:"client_email"`
	ClientPhone   string    `json:"client_phone"`
	Company       string    `json:"company"`
	ServiceLine   string    `json:"service_line"`
	Channel       string    `json:"channel"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	DueDate       string    `json:"due_date"`
	Budget        *float64  `json:"budget"`
	Quantity      int       `json:"quantity"`
	Description   string    `json:"description"`
	InternalNotes *string   `json:"internal_notes,omitempty"`
	AssignedTo    *string   `json:"assigned_to"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type listOrdersResponse struct {
	Data       []orderResponse         `json:"data"`
	Pagination orderPaginationResponse `json:"pagination"`
}

type orderPaginationResponse struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}
