package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/HafizMudassirHusain/AL-Backend/internal/core/domain"
)

type stubMenuService struct {
	addFn  func(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
	listFn func(ctx context.Context) ([]domain.MenuItem, error)
}

func (s *stubMenuService) Add(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	return s.addFn(ctx, item)
}

func (s *stubMenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	return s.listFn(ctx)
}

type stubOrderService struct {
	placeFn        func(ctx context.Context, order domain.Order) (*domain.Order, error)
	listFn         func(ctx context.Context) ([]domain.Order, error)
	updateStatusFn func(ctx context.Context, id, status string) (*domain.Order, error)
}

func (s *stubOrderService) Place(ctx context.Context, order domain.Order) (*domain.Order, error) {
	return s.placeFn(ctx, order)
}

func (s *stubOrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.listFn(ctx)
}

func (s *stubOrderService) UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	return s.updateStatusFn(ctx, id, status)
}

type stubSlideService struct {
	addFn    func(ctx context.Context, slide domain.Slide) (*domain.Slide, error)
	listFn   func(ctx context.Context) ([]domain.Slide, error)
	updateFn func(ctx context.Context, id string, slide domain.Slide) (*domain.Slide, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubSlideService) Add(ctx context.Context, slide domain.Slide) (*domain.Slide, error) {
	return s.addFn(ctx, slide)
}

func (s *stubSlideService) List(ctx context.Context) ([]domain.Slide, error) {
	return s.listFn(ctx)
}

func (s *stubSlideService) Update(ctx context.Context, id string, slide domain.Slide) (*domain.Slide, error) {
	return s.updateFn(ctx, id, slide)
}

func (s *stubSlideService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestMenuHandler_Add_Success(t *testing.T) {
	stub := &stubMenuService{
		addFn: func(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
			if item.Name != "Zinger Burger" || item.Price != 350 {
				t.Fatalf("unexpected item: %+v", item)
			}
			item.ID = "m1"
			return &item, nil
		},
	}
	handler := NewMenuHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/menu",
		`{"name":"Zinger Burger","category":"Burgers","price":350}`)

	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Menu item added" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestMenuHandler_Add_MissingPrice(t *testing.T) {
	stub := &stubMenuService{
		addFn: func(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewMenuHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/menu", `{"name":"Zinger Burger","category":"Burgers"}`)

	err := handler.Add(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 http error, got %v", err)
	}
}

func TestMenuHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubMenuService{
		listFn: func(ctx context.Context) ([]domain.MenuItem, error) {
			return nil, nil
		},
	}
	handler := NewMenuHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/api/menu", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestOrderHandler_Place_Success(t *testing.T) {
	stub := &stubOrderService{
		placeFn: func(ctx context.Context, order domain.Order) (*domain.Order, error) {
			if order.CustomerName != "Ali" || len(order.Items) != 1 || order.TotalPrice != 700 {
				t.Fatalf("unexpected order: %+v", order)
			}
			order.ID = "o1"
			order.Status = domain.OrderPending
			return &order, nil
		},
	}
	handler := NewOrderHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/orders",
		`{"customerName":"Ali","phone":"0300","address":"Street 1","items":[{"name":"Zinger Burger","quantity":2,"price":350}],"totalPrice":700}`)

	if err := handler.Place(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Order placed successfully!" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestOrderHandler_Place_EmptyItems(t *testing.T) {
	stub := &stubOrderService{
		placeFn: func(ctx context.Context, order domain.Order) (*domain.Order, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewOrderHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/orders",
		`{"customerName":"Ali","phone":"0300","address":"Street 1","items":[],"totalPrice":700}`)

	err := handler.Place(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 http error, got %v", err)
	}
}

func TestOrderHandler_UpdateStatus_Success(t *testing.T) {
	stub := &stubOrderService{
		updateStatusFn: func(ctx context.Context, id, status string) (*domain.Order, error) {
			if id != "o1" || status != "Preparing" {
				t.Fatalf("unexpected args: %s %s", id, status)
			}
			return &domain.Order{ID: id, Status: domain.OrderPreparing}, nil
		},
	}
	handler := NewOrderHandler(stub)

	c, rec := newTestContext(http.MethodPut, "/api/orders/o1/status", `{"status":"Preparing"}`)
	c.SetParamNames("orderId")
	c.SetParamValues("o1")

	if err := handler.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	order, ok := resp["order"].(map[string]any)
	if !ok || order["status"] != "Preparing" {
		t.Fatalf("unexpected order payload: %+v", resp["order"])
	}
}

func TestOrderHandler_UpdateStatus_UnknownStatus(t *testing.T) {
	stub := &stubOrderService{
		updateStatusFn: func(ctx context.Context, id, status string) (*domain.Order, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewOrderHandler(stub)

	c, _ := newTestContext(http.MethodPut, "/api/orders/o1/status", `{"status":"Eaten"}`)
	c.SetParamNames("orderId")
	c.SetParamValues("o1")

	err := handler.UpdateStatus(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 http error, got %v", err)
	}
}

func TestOrderHandler_UpdateStatus_NotFound(t *testing.T) {
	stub := &stubOrderService{
		updateStatusFn: func(ctx context.Context, id, status string) (*domain.Order, error) {
			return nil, domain.ErrOrderNotFound
		},
	}
	handler := NewOrderHandler(stub)

	c, _ := newTestContext(http.MethodPut, "/api/orders/missing/status", `{"status":"Delivered"}`)
	c.SetParamNames("orderId")
	c.SetParamValues("missing")

	if err := handler.UpdateStatus(c); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestSlideHandler_Add_Success(t *testing.T) {
	stub := &stubSlideService{
		addFn: func(ctx context.Context, slide domain.Slide) (*domain.Slide, error) {
			slide.ID = "s1"
			return &slide, nil
		},
	}
	handler := NewSlideHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/slides",
		`{"text":"Fresh deals","subtext":"Every friday","image":"https://cdn.example.com/s1.jpg"}`)

	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "s1" || resp["text"] != "Fresh deals" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestSlideHandler_Update_NotFound(t *testing.T) {
	stub := &stubSlideService{
		updateFn: func(ctx context.Context, id string, slide domain.Slide) (*domain.Slide, error) {
			return nil, domain.ErrSlideNotFound
		},
	}
	handler := NewSlideHandler(stub)

	c, _ := newTestContext(http.MethodPut, "/api/slides/missing",
		`{"text":"Fresh deals","subtext":"Every friday"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Update(c); !errors.Is(err, domain.ErrSlideNotFound) {
		t.Fatalf("expected ErrSlideNotFound, got %v", err)
	}
}

func TestSlideHandler_Delete_Success(t *testing.T) {
	stub := &stubSlideService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "s1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	handler := NewSlideHandler(stub)

	c, rec := newTestContext(http.MethodDelete, "/api/slides/s1", "")
	c.SetParamNames("id")
	c.SetParamValues("s1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Slide deleted successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}
