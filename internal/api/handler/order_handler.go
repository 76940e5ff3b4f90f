package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HafizMudassirHusain/AL-Backend/internal/api/metrics"
	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
	"github.com/HafizMudassirHusain/AL-Backend/internal/core/ports"
)

// OrderHandler handles order placement and kitchen-side management.
type OrderHandler struct {
	orderService ports.OrderService
}

func NewOrderHandler(orderService ports.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type orderItemRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
}

type placeOrderRequest struct {
	CustomerName string             `json:"customerName" validate:"required"`
	Phone        string             `json:"phone"        validate:"required"`
	Address      string             `json:"address"      validate:"required"`
	Items        []orderItemRequest `json:"items"        validate:"required,min=1,dive"`
	TotalPrice   float64            `json:"totalPrice"   validate:"required,gt=0"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Preparing Delivered Cancelled"`
}

type orderResponse struct {
	Message string        `json:"message"`
	Order   *domain.Order `json:"order,omitempty"`
}

// Place accepts a new order from the storefront. No account required.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      placeOrderRequest  true  "Order details"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  messageResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]domain.OrderItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.OrderItem{Name: it.Name, Quantity: it.Quantity, Price: it.Price}
	}

	_, err := h.orderService.Place(c.Request().Context(), domain.Order{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		Items:        items,
		TotalPrice:   req.TotalPrice,
	})
	if err != nil {
		return err
	}

	metrics.OrdersPlacedTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Order placed successfully!"})
}

// List returns all orders, newest first.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      403  {object}  messageResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orderService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateStatus moves an order to a new status.
//
// @Summary      Update order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        orderId  path      string                    true  "Order id"
// @Param        body     body      updateOrderStatusRequest  true  "New status"
// @Success      200      {object}  orderResponse
// @Failure      400      {object}  messageResponse
// @Failure      403      {object}  messageResponse
// @Failure      404      {object}  messageResponse
// @Router       /api/orders/{orderId}/status [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orderService.UpdateStatus(c.Request().Context(), c.Param("orderId"), req.Status)
	if err != nil {
		return err
	}

	metrics.OrderStatusUpdatesTotal.WithLabelValues(string(order.Status)).Inc()
	return c.JSON(http.StatusOK, orderResponse{Message: "Order status updated", Order: order})
}
