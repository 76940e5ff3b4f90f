package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
	"github.com/HafizMudassirHusain/AL-Backend/internal/core/ports"
)

// MenuHandler handles the menu catalog routes.
type MenuHandler struct {
	menuService ports.MenuService
}

func NewMenuHandler(menuService ports.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

type addMenuItemRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Category    string  `json:"category"    validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

type menuItemResponse struct {
	Message  string           `json:"message"`
	MenuItem *domain.MenuItem `json:"menuItem"`
}

// Add creates a menu item. Image is a URL into the external object store.
//
// @Summary      Add a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addMenuItemRequest  true  "Menu item"
// @Success      201   {object}  menuItemResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/menu [post]
func (h *MenuHandler) Add(c echo.Context) error {
	var req addMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.menuService.Add(c.Request().Context(), domain.MenuItem{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, menuItemResponse{Message: "Menu item added", MenuItem: item})
}

// List returns the full menu.
//
// @Summary      List menu items
// @Tags         menu
// @Produce      json
// @Success      200  {array}  domain.MenuItem
// @Router       /api/menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.menuService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	return c.JSON(http.StatusOK, items)
}
