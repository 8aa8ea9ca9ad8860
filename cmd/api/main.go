package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/David-19-dev/abdouperformence-sub000/api/routes"
	"github.com/David-19-dev/abdouperformence-sub000/internal/admins"
	"github.com/David-19-dev/abdouperformence-sub000/internal/bookings"
	"github.com/David-19-dev/abdouperformence-sub000/internal/cart"
	"github.com/David-19-dev/abdouperformence-sub000/internal/checkout"
	"github.com/David-19-dev/abdouperformence-sub000/internal/gallery"
	"github.com/David-19-dev/abdouperformence-sub000/internal/notifications"
	"github.com/David-19-dev/abdouperformence-sub000/internal/orders"
	"github.com/David-19-dev/abdouperformence-sub000/internal/payments"
	"github.com/David-19-dev/abdouperformence-sub000/internal/products"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/auth/session"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/config"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/db"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/logger"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/metrics"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if cfg.FeatureFlags.AutoMigrate {
		if err := dbClient.AutoMigrate(context.Background()); err != nil {
			logg.Error(context.Background(), "failed to migrate schema", err)
			os.Exit(1)
		}
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	commerceMetrics := metrics.NewCommerceMetrics(prometheus.DefaultRegisterer)

	adminService, err := admins.NewService(admins.NewRepository(dbClient.DB()), sessionManager, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create admins service", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(redisClient, cfg.Cart)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(orders.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	notifier, err := notifications.NewLogNotifier(logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create notifier", err)
		os.Exit(1)
	}

	checkoutService, err := checkout.NewService(
		cartService,
		orderService,
		payments.NewStubConfirmer(cfg.Payment.ConfirmDelay),
		notifier,
		commerceMetrics,
		logg,
		cfg.Payment,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	bookingService, err := bookings.NewService(
		redisClient,
		cfg.Booking,
		bookings.NewRepository(dbClient.DB()),
		notifier,
		commerceMetrics,
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create bookings service", err)
		os.Exit(1)
	}

	productService, err := products.NewService(products.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create products service", err)
		os.Exit(1)
	}

	galleryService, err := gallery.NewService(dbClient.DB())
	if err != nil {
		logg.Error(context.Background(), "failed to create gallery service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:   cfg,
			Logger:   logg,
			DB:       dbClient,
			Cache:    redisClient,
			Sessions: sessionManager,
			Registry: prometheus.DefaultGatherer,

			Admins:   adminService,
			Bookings: bookingService,
			Cart:     cartService,
			Checkout: checkoutService,
			Gallery:  galleryService,
			Orders:   orderService,
			Products: productService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
