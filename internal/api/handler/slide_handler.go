package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
	"github.com/HafizMudassirHusain/AL-Backend/internal/core/ports"
)

// SlideHandler handles the storefront carousel routes.
type SlideHandler struct {
	slideService ports.SlideService
}

func NewSlideHandler(slideService ports.SlideService) *SlideHandler {
	return &SlideHandler{slideService: slideService}
}

type slideRequest struct {
	Text    string `json:"text"    validate:"required"`
	Subtext string `json:"subtext" validate:"required"`
	Image   string `json:"image"`
}

// List returns all slides.
//
// @Summary      List slides
// @Tags         slides
// @Produce      json
// @Success      200  {array}  domain.Slide
// @Router       /api/slides [get]
func (h *SlideHandler) List(c echo.Context) error {
	slides, err := h.slideService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if slides == nil {
		slides = []domain.Slide{}
	}
	return c.JSON(http.StatusOK, slides)
}

// Add creates a slide.
//
// @Summary      Add a slide
// @Tags         slides
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      slideRequest  true  "Slide"
// @Success      201   {object}  domain.Slide
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/slides [post]
func (h *SlideHandler) Add(c echo.Context) error {
	var req slideRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	slide, err := h.slideService.Add(c.Request().Context(), domain.Slide{
		Text:    req.Text,
		Subtext: req.Subtext,
		Image:   req.Image,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, slide)
}

// Update replaces a slide's content.
//
// @Summary      Update a slide
// @Tags         slides
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Slide id"
// @Param        body  body      slideRequest  true  "Slide"
// @Success      200   {object}  domain.Slide
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/slides/{id} [put]
func (h *SlideHandler) Update(c echo.Context) error {
	var req slideRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	slide, err := h.slideService.Update(c.Request().Context(), c.Param("id"), domain.Slide{
		Text:    req.Text,
		Subtext: req.Subtext,
		Image:   req.Image,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, slide)
}

// Delete removes a slide.
//
// @Summary      Delete a slide
// @Tags         slides
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Slide id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/slides/{id} [delete]
func (h *SlideHandler) Delete(c echo.Context) error {
	if err := h.slideService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Slide deleted successfully"})
}
