package handler

import (
	"github.com/printops/backoffice-system/internal/core/domain"
	"github.com/printops/backoffice-system/internal/core/ports"
)

func toOrderInput(req orderRequest) ports.OrderInput {
	return ports.OrderInput{
		ProjectName:   req.ProjectName,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientPhone:   req.ClientPhone,
		Company:       req.Company,
		ServiceLine:   req.ServiceLine,
		Channel:       req.Channel,
		Status:        req.Status,
		Priority:      req.Priority,
		DueDate:       req.DueDate,
		Budget:        req.Budget,
		Quantity:      req.Quantity,
		Description:   req.Description,
		InternalNotes: req.InternalNotes,
		AssignedTo:    req.AssignedTo,
		Tags:          req.Tags,
	}
}

// toOrderResponse maps an order for the wire. Internal notes are restricted
// material: they are omitted entirely unless the caller's token carries the
// notes permission.
func toOrderResponse(o *domain.Order, includeNotes bool) orderResponse {
	resp := orderResponse{
		ID:          o.ID,
		ProjectName: o.ProjectName,
		ClientName:  o.ClientName,
		ClientEmail: o.ClientEmail,
		ClientPhone: o.ClientPhone,
		Company:     o.Company,
		ServiceLine: o.ServiceLine,
		Channel:     string(o.Channel),
		Status:      string(o.Status),
		Priority:    string(o.Priority),
		DueDate:     o.DueDate,
		Budget:      o.Budget,
		Quantity:    o.Quantity,
		Description: o.Description,
		AssignedTo:  o.AssignedTo,
		Tags:        o.Tags,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if includeNotes {
		notes := o.InternalNotes
		resp.InternalNotes = &notes
	}
	return resp
}
