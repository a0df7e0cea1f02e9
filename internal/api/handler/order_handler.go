package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/printops/backoffice-system/internal/core/domain"
	"github.com/printops/backoffice-system/internal/core/ports"
)

// OrderHandler handles HTTP requests for order administration.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// List handles GET /v1/orders.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status      query     string  false  "Filter by status"
// @Param        priority    query     string  false  "Filter by priority"
// @Param        channel     query     string  false  "Filter by channel"
// @Param        unassigned  query     bool    false  "Only orders without an assignee"
// @Param        page        query     int     false  "Page number (1-based)"
// @Param        limit       query     int     false  "Page size (max 100)"
// @Success      200         {object}  listOrdersResponse
// @Failure      401         {object}  errorResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	unassigned, _ := strconv.ParseBool(c.QueryParam("unassigned"))

	result, err := h.service.List(c.Request().Context(), ports.ListOrdersInput{
		Status:     c.QueryParam("status"),
		Priority:   c.QueryParam("priority"),
		Channel:    c.QueryParam("channel"),
		Unassigned: unassigned,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return err
	}

	includeNotes := hasPermission(c, domain.PermOrdersNotes)
	data := make([]orderResponse, len(result.Items))
	for i := range result.Items {
		data[i] = toOrderResponse(&result.Items[i], includeNotes)
	}

	return c.JSON(http.StatusOK, listOrdersResponse{
		Data: data,
		Pagination: orderPaginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Create handles POST /v1/orders.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      orderRequest  true  "Order details"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.Create(c.Request().Context(), toOrderInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toOrderResponse(order, hasPermission(c, domain.PermOrdersNotes)))
}

// Update handles PATCH /v1/orders/:id. The payload carries the full form
// state; omitting status keeps the stored one.
//
// @Summary      Update an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Order ID"
// @Param        body  body      orderRequest  true  "Order details"
// @Success      200   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/orders/{id} [patch]
func (h *OrderHandler) Update(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return err
	}

	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.Update(c.Request().Context(), id, toOrderInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(order, hasPermission(c, domain.PermOrdersNotes)))
}

// UpdateStatus handles PATCH /v1/orders/:id/status — the single-click status
// flip from the listing view. Only the status column is written.
//
// @Summary      Change an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Order ID"
// @Param        body  body      updateOrderStatusRequest  true  "New status"
// @Success      200   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(order, hasPermission(c, domain.PermOrdersNotes)))
}

// Delete handles DELETE /v1/orders/:id.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Order ID"
// @Success      204  "No Content"
// @Failure      404  {object}  errorResponse
// @Router       /v1/orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func orderID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	return uint(id), nil
}
