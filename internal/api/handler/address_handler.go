package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/printops/backoffice-system/internal/core/ports"
)

// AddressHandler handles HTTP requests for customer address books.
type AddressHandler struct {
	service ports.AddressService
}

func NewAddressHandler(service ports.AddressService) *AddressHandler {
	return &AddressHandler{service: service}
}

type createAddressRequest struct {
	Label         string  `json:"label"          validate:"max=50"`
	RecipientName string  `json:"recipient_name" validate:"required,max=150"`
	Phone         string  `json:"phone"          validate:"required,max=30"`
	Line1         string  `json:"line1"          validate:"required,max=255"`
	Line2         *string `json:"line2"`
	Landmark      *string `json:"landmark"`
	City          string  `json:"city"           validate:"required,max=100"`
	State         string  `json:"state"          validate:"required,max=100"`
	Pincode       string  `json:"pincode"        validate:"required,max=20"`
	Instructions  *string `json:"instructions"`
	Type          string  `json:"type"           validate:"omitempty,oneof=Home Office Other"`
	IsDefault     bool    `json:"is_default"`
}

// ListForUser handles GET /v1/users/:id/addresses.
//
// @Summary      List a user's addresses
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {array}   domain.CustomerAddress
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id}/addresses [get]
func (h *AddressHandler) ListForUser(c echo.Context) error {
	addresses, err := h.service.ListForUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, addresses)
}

// Create handles POST /v1/users/:id/addresses.
//
// @Summary      Add an address to a user
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "User ID"
// @Param        body  body      createAddressRequest  true  "Address details"
// @Success      201   {object}  domain.CustomerAddress
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/users/{id}/addresses [post]
func (h *AddressHandler) Create(c echo.Context) error {
	var req createAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	address, err := h.service.Create(c.Request().Context(), c.Param("id"), ports.AddressInput{
		Label:         req.Label,
		RecipientName: req.RecipientName,
		Phone:         req.Phone,
		Line1:         req.Line1,
		Line2:         req.Line2,
		Landmark:      req.Landmark,
		City:          req.City,
		State:         req.State,
		Pincode:       req.Pincode,
		Instructions:  req.Instructions,
		Type:          req.Type,
		IsDefault:     req.IsDefault,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, address)
}

// Delete handles DELETE /v1/addresses/:id.
//
// @Summary      Delete an address
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Address ID"
// @Success      204  "No Content"
// @Failure      404  {object}  errorResponse
// @Router       /v1/addresses/{id} [delete]
func (h *AddressHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
