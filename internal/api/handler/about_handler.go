package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/printops/backoffice-system/internal/core/domain"
	"github.com/printops/backoffice-system/internal/core/ports"
)

// AboutHandler serves the editable content sections rendered on the public
// about page. Reads are open; writes sit behind the content permission.
type AboutHandler struct {
	service ports.AboutService
}

func NewAboutHandler(service ports.AboutService) *AboutHandler {
	return &AboutHandler{service: service}
}

type aboutItemRequest struct {
	Title       *string        `json:"title"`
	Subtitle    *string        `json:"subtitle"`
	Description *string        `json:"description"`
	Value       *string        `json:"value"`
	Detail      *string        `json:"detail"`
	MediaURL    *string        `json:"media_url"`
	Meta        map[string]any `json:"meta"`
	SortOrder   int            `json:"sort_order"`
}

type upsertSectionRequest struct {
	Tagline        *string            `json:"tagline"`
	Title          *string            `json:"title"`
	Subtitle       *string            `json:"subtitle"`
	Description    *string            `json:"description"`
	PrimaryImage   *string            `json:"primary_image"`
	SecondaryImage *string            `json:"secondary_image"`
	Meta           map[string]any     `json:"meta"`
	Items          []aboutItemRequest `json:"items"`
}

type aboutSectionResponse struct {
	Section domain.AboutSection       `json:"section"`
	Items   []domain.AboutSectionItem `json:"items"`
}

// ListSections handles GET /v1/about.
//
// @Summary      List all content sections
// @Tags         about
// @Produce      json
// @Success      200  {array}  aboutSectionResponse
// @Router       /v1/about [get]
func (h *AboutHandler) ListSections(c echo.Context) error {
	sections, err := h.service.ListSections(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]aboutSectionResponse, len(sections))
	for i, s := range sections {
		resp[i] = aboutSectionResponse{Section: s.Section, Items: s.Items}
	}
	return c.JSON(http.StatusOK, resp)
}

// GetSection handles GET /v1/about/:key.
//
// @Summary      Get one content section with its items
// @Tags         about
// @Produce      json
// @Param        key  path      string  true  "Section key"
// @Success      200  {object}  aboutSectionResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/about/{key} [get]
func (h *AboutHandler) GetSection(c echo.Context) error {
	detail, err := h.service.GetSection(c.Request().Context(), c.Param("key"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, aboutSectionResponse{Section: detail.Section, Items: detail.Items})
}

// UpsertSection handles PUT /v1/about/:key. The payload is the full desired
// state of the section; items are replaced wholesale.
//
// @Summary      Create or replace a content section
// @Tags         about
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        key   path      string                true  "Section key"
// @Param        body  body      upsertSectionRequest  true  "Full section state"
// @Success      200   {object}  aboutSectionResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/about/{key} [put]
func (h *AboutHandler) UpsertSection(c echo.Context) error {
	var req upsertSectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	items := make([]ports.AboutItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = ports.AboutItemInput{
			Title:       it.Title,
			Subtitle:    it.Subtitle,
			Description: it.Description,
			Value:       it.Value,
			Detail:      it.Detail,
			MediaURL:    it.MediaURL,
			Meta:        it.Meta,
			SortOrder:   it.SortOrder,
		}
	}

	detail, err := h.service.UpsertSection(c.Request().Context(), c.Param("key"), ports.UpsertSectionInput{
		Tagline:        req.Tagline,
		Title:          req.Title,
		Subtitle:       req.Subtitle,
		Description:    req.Description,
		PrimaryImage:   req.PrimaryImage,
		SecondaryImage: req.SecondaryImage,
		Meta:           req.Meta,
		Items:          items,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, aboutSectionResponse{Section: detail.Section, Items: detail.Items})
}
