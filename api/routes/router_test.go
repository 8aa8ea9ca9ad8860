package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	adminsvc "github.com/David-19-dev/abdouperformence-sub000/internal/admins"
	bookingsvc "github.com/David-19-dev/abdouperformence-sub000/internal/bookings"
	cartsvc "github.com/David-19-dev/abdouperformence-sub000/internal/cart"
	checkoutsvc "github.com/David-19-dev/abdouperformence-sub000/internal/checkout"
	gallerysvc "github.com/David-19-dev/abdouperformence-sub000/internal/gallery"
	ordersvc "github.com/David-19-dev/abdouperformence-sub000/internal/orders"
	productsvc "github.com/David-19-dev/abdouperformence-sub000/internal/products"
	pkgauth "github.com/David-19-dev/abdouperformence-sub000/pkg/auth"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/config"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/db/models"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/enums"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/export"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/logger"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

type stubAdminService struct{}

func (stubAdminService) Login(ctx context.Context, email, password string) (*adminsvc.LoginResult, error) {
	panic("unimplemented")
}

func (stubAdminService) Logout(ctx context.Context, accessID string) error {
	return nil
}

type stubCartService struct{}

func (stubCartService) Get(ctx context.Context, sessionID string) (cartsvc.Cart, error) {
	return cartsvc.Cart{}, nil
}

func (stubCartService) AddItem(ctx context.Context, sessionID string, item cartsvc.LineItem) (cartsvc.Cart, error) {
	panic("unimplemented")
}

func (stubCartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (cartsvc.Cart, error) {
	panic("unimplemented")
}

func (stubCartService) RemoveItem(ctx context.Context, sessionID, itemID string) (cartsvc.Cart, error) {
	panic("unimplemented")
}

func (stubCartService) Clear(ctx context.Context, sessionID string) error {
	return nil
}

type stubCheckoutService struct{}

func (stubCheckoutService) Checkout(ctx context.Context, sessionID string, input checkoutsvc.Input) (*models.Order, error) {
	panic("unimplemented")
}

type stubBookingService struct{}

func (stubBookingService) Draft(ctx context.Context, sessionID string) (bookingsvc.Wizard, error) {
	return bookingsvc.NewWizard(), nil
}

func (stubBookingService) UpdateDraft(ctx context.Context, sessionID string, form bookingsvc.Form) (bookingsvc.Wizard, error) {
	panic("unimplemented")
}

func (stubBookingService) Next(ctx context.Context, sessionID string) (bookingsvc.Wizard, bookingsvc.FieldErrors, error) {
	panic("unimplemented")
}

func (stubBookingService) Back(ctx context.Context, sessionID string) (bookingsvc.Wizard, error) {
	panic("unimplemented")
}

func (stubBookingService) Reset(ctx context.Context, sessionID string) (bookingsvc.Wizard, error) {
	panic("unimplemented")
}

func (stubBookingService) Submit(ctx context.Context, sessionID string) (*models.Booking, bookingsvc.FieldErrors, error) {
	panic("unimplemented")
}

func (stubBookingService) List(ctx context.Context, f bookingsvc.Filters) ([]models.Booking, error) {
	return nil, nil
}

func (stubBookingService) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.BookingStatus) error {
	panic("unimplemented")
}

func (stubBookingService) Delete(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubBookingService) ExportCSV(ctx context.Context, f bookingsvc.Filters) (export.Document, error) {
	panic("unimplemented")
}

type stubOrderService struct{}

func (stubOrderService) Create(ctx context.Context, input ordersvc.CreateInput) (*models.Order, error) {
	panic("unimplemented")
}

func (stubOrderService) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	panic("unimplemented")
}

func (stubOrderService) List(ctx context.Context, f ordersvc.Filters) ([]models.Order, error) {
	return nil, nil
}

func (stubOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error {
	panic("unimplemented")
}

func (stubOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubOrderService) ExportCSV(ctx context.Context, f ordersvc.Filters) (export.Document, error) {
	panic("unimplemented")
}

type stubProductService struct{}

func (stubProductService) Create(ctx context.Context, input productsvc.CreateInput) (*models.Product, error) {
	panic("unimplemented")
}

func (stubProductService) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	panic("unimplemented")
}

func (stubProductService) List(ctx context.Context, activeOnly bool) ([]models.Product, error) {
	return nil, nil
}

func (stubProductService) Update(ctx context.Context, id uuid.UUID, input productsvc.UpdateInput) (*models.Product, error) {
	panic("unimplemented")
}

func (stubProductService) Delete(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

type stubGalleryService struct{}

func (stubGalleryService) Create(ctx context.Context, input gallerysvc.CreateInput) (*models.GalleryImage, error) {
	panic("unimplemented")
}

func (stubGalleryService) List(ctx context.Context) ([]models.GalleryImage, error) {
	return nil, nil
}

func (stubGalleryService) Update(ctx context.Context, id uuid.UUID, input gallerysvc.UpdateInput) (*models.GalleryImage, error) {
	panic("unimplemented")
}

func (stubGalleryService) Delete(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:            "secret",
			Issuer:            "issuer",
			ExpirationMinutes: 60,
			SessionTTLMinutes: 120,
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(Deps{
		Config:   cfg,
		Logger:   logg,
		DB:       stubPinger{},
		Cache:    stubPinger{},
		Sessions: stubSessionChecker{},
		Admins:   stubAdminService{},
		Bookings: stubBookingService{},
		Cart:     stubCartService{},
		Checkout: stubCheckoutService{},
		Gallery:  stubGalleryService{},
		Orders:   stubOrderService{},
		Products: stubProductService{},
	})
}

func buildAdminToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg.JWT, time.Now().UTC(), pkgauth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   pkgauth.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestPublicProductsNeedNoSession(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestCartRequiresSessionHeader(t *testing.T) {
	router := newTestRouter(testConfig())

	missing := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, missing)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without session header got %d", resp.Code)
	}

	with := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	with.Header.Set("X-Session-Id", "visitor-42")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, with)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with session header got %d", resp.Code)
	}
}

func TestBookingDraftRequiresSessionHeader(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/booking", nil)
	req.Header.Set("X-Session-Id", "visitor-42")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestAdminGroupRejectsMissingToken(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestAdminGroupAcceptsAdminToken(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer "+buildAdminToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin got %d", resp.Code)
	}
}
