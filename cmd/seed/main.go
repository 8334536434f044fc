// Command seed loads the ingredient catalog and the default tags, and
// optionally creates an administrator account.
//
//	seed -ingredients data/ingredients.csv -admin-email admin@example.com -admin-password secret123
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"foodgram/internal/app"
	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/domain/ingredient"
	"foodgram/internal/domain/tag"
	"foodgram/internal/domain/user"
	"foodgram/internal/logging"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	ingredientsPath := flag.String("ingredients", "", "CSV or JSON file with name/measurement_unit records")
	adminEmail := flag.String("admin-email", "", "create an admin with this email")
	adminPassword := flag.String("admin-password", "", "password for -admin-email")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logging.Fatal().Err(err).Msg("DB connection failed")
	}
	if err := app.Migrate(db); err != nil {
		logging.Fatal().Err(err).Msg("AutoMigrate failed")
	}

	ctx := context.Background()

	n, err := tag.NewRepository(db).EnsureDefaults(ctx, tag.Defaults())
	if err != nil {
		logging.Fatal().Err(err).Msg("seeding tags failed")
	}
	logging.Info().Int64("inserted", n).Msg("default tags ensured")

	if *ingredientsPath != "" {
		if err := importIngredients(ctx, db, *ingredientsPath); err != nil {
			logging.Fatal().Err(err).Str("path", *ingredientsPath).Msg("ingredient import failed")
		}
	}

	if *adminEmail != "" {
		if err := createAdmin(ctx, db, *adminEmail, *adminPassword); err != nil {
			logging.Fatal().Err(err).Msg("admin creation failed")
		}
	}
}

func importIngredients(ctx context.Context, db *gorm.DB, path string) error {
	format, err := ingredient.FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = ingredient.NewImporter(ingredient.NewRepository(db)).Import(ctx, f, format)
	return err
}

func createAdmin(ctx context.Context, db *gorm.DB, email, password string) error {
	if len(password) < 8 {
		return errors.New("-admin-password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &user.User{
		Email:        email,
		Username:     "admin",
		FirstName:    "Admin",
		LastName:     "Admin",
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
	}
	if err := user.NewRepository(db).Create(ctx, admin); err != nil {
		if errors.Is(err, user.ErrUserExists) {
			logging.Warn().Str("email", email).Msg("admin already exists, skipping")
			return nil
		}
		return err
	}
	logging.Info().Str("email", email).Int64("id", admin.ID).Msg("admin created")
	return nil
}
