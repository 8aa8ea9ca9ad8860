package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	ordersvc "github.com/David-19-dev/abdouperformence-sub000/internal/orders"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/db/models"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/enums"
	pkgerrors "github.com/David-19-dev/abdouperformence-sub000/pkg/errors"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/export"
)

type stubOrderService struct {
	orders     []models.Order
	doc        export.Document
	err        error
	lastFilter ordersvc.Filters
	lastStatus enums.OrderStatus
	lastID     uuid.UUID
}

func (s *stubOrderService) Create(ctx context.Context, input ordersvc.CreateInput) (*models.Order, error) {
	return nil, s.err
}

func (s *stubOrderService) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	s.lastID = id
	if s.err != nil {
		return nil, s.err
	}
	if len(s.orders) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return &s.orders[0], nil
}

func (s *stubOrderService) List(ctx context.Context, f ordersvc.Filters) ([]models.Order, error) {
	s.lastFilter = f
	return s.orders, s.err
}

func (s *stubOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error {
	s.lastID = id
	s.lastStatus = status
	return s.err
}

func (s *stubOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	s.lastID = id
	return s.err
}

func (s *stubOrderService) ExportCSV(ctx context.Context, f ordersvc.Filters) (export.Document, error) {
	s.lastFilter = f
	return s.doc, s.err
}

func TestAdminListOrdersForwardsFilters(t *testing.T) {
	svc := &stubOrderService{orders: []models.Order{{ID: uuid.New()}}}
	handler := AdminListOrders(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/?q=moussa&status=pending&category=supplements&date=this-week", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastFilter.Query != "moussa" {
		t.Fatalf("unexpected query filter: %q", svc.lastFilter.Query)
	}
	if svc.lastFilter.Status == nil || *svc.lastFilter.Status != enums.OrderStatusPending {
		t.Fatalf("status filter not forwarded: %v", svc.lastFilter.Status)
	}
	if svc.lastFilter.Category != "supplements" {
		t.Fatalf("category filter not forwarded: %q", svc.lastFilter.Category)
	}
	if svc.lastFilter.DateBucket == nil || *svc.lastFilter.DateBucket != enums.DateBucketThisWeek {
		t.Fatalf("date filter not forwarded: %v", svc.lastFilter.DateBucket)
	}

	var envelope struct {
		Data []models.Order `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 {
		t.Fatalf("unexpected order count: %d", len(envelope.Data))
	}
}

func TestAdminListOrdersRejectsBadStatus(t *testing.T) {
	handler := AdminListOrders(&stubOrderService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/?status=shipped_to_mars", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	svc := &stubOrderService{}
	handler := AdminUpdateOrderStatus(svc, nil)
	orderID := uuid.New()

	body := strings.NewReader(`{"status":"delivered"}`)
	req := httptest.NewRequest(http.MethodPatch, "/", body)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("orderID", orderID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastID != orderID || svc.lastStatus != enums.OrderStatusDelivered {
		t.Fatalf("unexpected forwarded update: %s %s", svc.lastID, svc.lastStatus)
	}
}

func TestAdminUpdateOrderStatusTerminalConflict(t *testing.T) {
	svc := &stubOrderService{err: pkgerrors.New(pkgerrors.CodeStateConflict, "order is delivered and can no longer change")}
	handler := AdminUpdateOrderStatus(svc, nil)

	body := strings.NewReader(`{"status":"pending"}`)
	req := httptest.NewRequest(http.MethodPatch, "/", body)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("orderID", uuid.NewString())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}
}

func TestAdminExportOrdersSetsDownloadHeaders(t *testing.T) {
	svc := &stubOrderService{doc: export.Document{
		Filename: "orders_2026-03-15.csv",
		Content:  []byte("id,client\nabc,Moussa\n"),
	}}
	handler := AdminExportOrders(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/?status=pending", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/csv") {
		t.Fatalf("unexpected content type: %s", got)
	}
	if got := resp.Header().Get("Content-Disposition"); !strings.Contains(got, "orders_2026-03-15.csv") {
		t.Fatalf("unexpected disposition: %s", got)
	}
	if resp.Body.String() != string(svc.doc.Content) {
		t.Fatalf("body does not match document content")
	}
}
