package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"

	"github.com/David-19-dev/abdouperformence-sub000/pkg/config"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/db"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/db/models"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/logger"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/security"
)

// seed-admin creates or updates a staff account. Existing accounts
// keep their id and get a fresh password hash.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed-admin"})

	_ = godotenv.Load()

	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "", "display name")
	flag.Parse()

	if strings.TrimSpace(*email) == "" || *password == "" {
		logg.Error(ctx, "email and password flags are required", nil)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed-admin",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "error closing database", err)
		}
	}()

	if cfg.FeatureFlags.AutoMigrate {
		if err := dbClient.AutoMigrate(ctx); err != nil {
			logg.Error(ctx, "failed to migrate schema", err)
			os.Exit(1)
		}
	}

	hash, err := security.HashPassword(*password, cfg.Password)
	if err != nil {
		logg.Error(ctx, "failed to hash password", err)
		os.Exit(1)
	}

	account := models.AdminUser{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(*email)),
		PasswordHash: hash,
		DisplayName:  strings.TrimSpace(*name),
	}

	err = dbClient.DB().WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "display_name", "updated_at"}),
	}).Create(&account).Error
	if err != nil {
		logg.Error(ctx, "failed to seed admin account", err)
		os.Exit(1)
	}

	logg.Info(logg.WithField(ctx, "email", account.Email), "admin account seeded")
}
