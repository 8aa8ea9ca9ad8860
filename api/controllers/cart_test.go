package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/David-19-dev/abdouperformence-sub000/api/middleware"
	cartsvc "github.com/David-19-dev/abdouperformence-sub000/internal/cart"
	pkgerrors "github.com/David-19-dev/abdouperformence-sub000/pkg/errors"
)

type stubCartService struct {
	cart    cartsvc.Cart
	err     error
	lastAdd cartsvc.LineItem
}

func (s *stubCartService) Get(ctx context.Context, sessionID string) (cartsvc.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartService) AddItem(ctx context.Context, sessionID string, item cartsvc.LineItem) (cartsvc.Cart, error) {
	s.lastAdd = item
	if s.err != nil {
		return cartsvc.Cart{}, s.err
	}
	return cartsvc.Cart{Items: []cartsvc.LineItem{item}}, nil
}

func (s *stubCartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (cartsvc.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartService) RemoveItem(ctx context.Context, sessionID, itemID string) (cartsvc.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartService) Clear(ctx context.Context, sessionID string) error {
	return s.err
}

func withSession(req *http.Request) *http.Request {
	return req.WithContext(middleware.WithSessionID(req.Context(), "sess-1"))
}

func TestGetCartSuccess(t *testing.T) {
	svc := &stubCartService{cart: cartsvc.Cart{Items: []cartsvc.LineItem{
		{ID: "prog-1", Name: "Programme 12 semaines", Price: 15000, Quantity: 2},
	}}}
	handler := GetCart(svc, nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data cartResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Total != 30000 {
		t.Fatalf("unexpected total: %d", envelope.Data.Total)
	}
	if len(envelope.Data.Items) != 1 {
		t.Fatalf("unexpected item count: %d", len(envelope.Data.Items))
	}
}

func TestGetCartEmptyReturnsArray(t *testing.T) {
	handler := GetCart(&stubCartService{}, nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"items":[]`) {
		t.Fatalf("expected empty items array, got %s", resp.Body.String())
	}
}

func TestAddCartItemSuccess(t *testing.T) {
	svc := &stubCartService{}
	handler := AddCartItem(svc, nil)

	body := strings.NewReader(`{"id":"prog-1","name":"Programme","price":15000,"quantity":1}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastAdd.ID != "prog-1" || svc.lastAdd.Quantity != 1 {
		t.Fatalf("unexpected item forwarded: %+v", svc.lastAdd)
	}
}

func TestAddCartItemRejectsMissingFields(t *testing.T) {
	svc := &stubCartService{}
	handler := AddCartItem(svc, nil)

	body := strings.NewReader(`{"price":15000,"quantity":1}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if svc.lastAdd.ID != "" {
		t.Fatalf("service should not have been called")
	}
}

func TestGetCartServiceFailure(t *testing.T) {
	svc := &stubCartService{err: pkgerrors.New(pkgerrors.CodeDependency, "cache down")}
	handler := GetCart(svc, nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}

func TestGetCartNilService(t *testing.T) {
	handler := GetCart(nil, nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}
