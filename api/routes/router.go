package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/David-19-dev/abdouperformence-sub000/api/controllers"
	"github.com/David-19-dev/abdouperformence-sub000/api/middleware"
	adminsvc "github.com/David-19-dev/abdouperformence-sub000/internal/admins"
	bookingsvc "github.com/David-19-dev/abdouperformence-sub000/internal/bookings"
	cartsvc "github.com/David-19-dev/abdouperformence-sub000/internal/cart"
	checkoutsvc "github.com/David-19-dev/abdouperformence-sub000/internal/checkout"
	gallerysvc "github.com/David-19-dev/abdouperformence-sub000/internal/gallery"
	ordersvc "github.com/David-19-dev/abdouperformence-sub000/internal/orders"
	productsvc "github.com/David-19-dev/abdouperformence-sub000/internal/products"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/auth"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/auth/session"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/config"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Deps bundles everything the router mounts. Fields left nil make the
// matching handlers answer with an internal error instead of panicking.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       pinger
	Cache    pinger
	Sessions session.AccessSessionChecker
	Registry prometheus.Gatherer

	Admins   adminsvc.Service
	Bookings bookingsvc.Service
	Cart     cartsvc.Service
	Checkout checkoutsvc.Service
	Gallery  gallerysvc.Service
	Orders   ordersvc.Service
	Products productsvc.Service
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(d.Logger),
		middleware.RequestID(d.Logger),
		middleware.Logging(d.Logger),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(d.DB, d.Cache, d.Logger))
	})

	if d.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(d.Products, d.Logger))
			r.Get("/{productID}", controllers.GetProduct(d.Products, d.Logger))
		})
		r.Get("/gallery", controllers.ListGallery(d.Gallery, d.Logger))

		// Everything touching per-visitor state needs the session header.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSessionID(d.Logger))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(d.Cart, d.Logger))
				r.Delete("/", controllers.ClearCart(d.Cart, d.Logger))
				r.Post("/items", controllers.AddCartItem(d.Cart, d.Logger))
				r.Patch("/items/{itemID}", controllers.UpdateCartItem(d.Cart, d.Logger))
				r.Delete("/items/{itemID}", controllers.RemoveCartItem(d.Cart, d.Logger))
			})

			r.Post("/checkout", controllers.Checkout(d.Checkout, d.Logger))

			r.Route("/booking", func(r chi.Router) {
				r.Get("/", controllers.GetBookingDraft(d.Bookings, d.Logger))
				r.Put("/", controllers.UpdateBookingDraft(d.Bookings, d.Logger))
				r.Post("/next", controllers.BookingNext(d.Bookings, d.Logger))
				r.Post("/back", controllers.BookingBack(d.Bookings, d.Logger))
				r.Post("/reset", controllers.BookingReset(d.Bookings, d.Logger))
				r.Post("/submit", controllers.BookingSubmit(d.Bookings, d.Logger))
			})
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Post("/auth/login", controllers.AdminLogin(d.Admins, d.Logger))

		r.Group(func(r chi.Router) {
			if d.Config != nil {
				r.Use(middleware.Auth(d.Config.JWT, d.Sessions, d.Logger))
			}
			r.Use(middleware.RequireRole(auth.RoleAdmin, d.Logger))

			r.Post("/auth/logout", controllers.AdminLogout(d.Admins, d.Logger))

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.AdminListOrders(d.Orders, d.Logger))
				r.Get("/export", controllers.AdminExportOrders(d.Orders, d.Logger))
				r.Get("/{orderID}", controllers.AdminGetOrder(d.Orders, d.Logger))
				r.Patch("/{orderID}/status", controllers.AdminUpdateOrderStatus(d.Orders, d.Logger))
				r.Delete("/{orderID}", controllers.AdminDeleteOrder(d.Orders, d.Logger))
			})

			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", controllers.AdminListBookings(d.Bookings, d.Logger))
				r.Get("/export", controllers.AdminExportBookings(d.Bookings, d.Logger))
				r.Patch("/{bookingID}/status", controllers.AdminUpdateBookingStatus(d.Bookings, d.Logger))
				r.Delete("/{bookingID}", controllers.AdminDeleteBooking(d.Bookings, d.Logger))
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.AdminListProducts(d.Products, d.Logger))
				r.Post("/", controllers.CreateProduct(d.Products, d.Logger))
				r.Patch("/{productID}", controllers.UpdateProduct(d.Products, d.Logger))
				r.Delete("/{productID}", controllers.DeleteProduct(d.Products, d.Logger))
			})

			r.Route("/gallery", func(r chi.Router) {
				r.Post("/", controllers.CreateGalleryImage(d.Gallery, d.Logger))
				r.Patch("/{imageID}", controllers.UpdateGalleryImage(d.Gallery, d.Logger))
				r.Delete("/{imageID}", controllers.DeleteGalleryImage(d.Gallery, d.Logger))
			})
		})
	})

	return r
}
