package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/okandemir/melodia/internal/app/models"
	appRepos "github.com/okandemir/melodia/internal/app/repositories"
	"github.com/okandemir/melodia/internal/pkg/auth"
)

const defaultAdminEmail = "admin@melodia.local"

// CreateDefaultData makes sure a usable admin account exists so a fresh
// installation can be logged into. Failures are reported but not fatal.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin account...")

	_, err := userRepo.GetUserByEmail(ctx, defaultAdminEmail)
	if err == nil {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return nil
	}
	if !errors.Is(err, appRepos.ErrNotFound) {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return err
	}

	hashedPassword, err := auth.HashPassword("Admin123!")
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		Email:        defaultAdminEmail,
		PasswordHash: hashedPassword,
		FirstName:    "System",
		LastName:     "Administrator",
		RoleType:     appModels.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	adminID, err := userRepo.CreateUser(ctx, admin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	lgr.Info().Int64("adminID", adminID).Msg("Default admin user created successfully")
	return nil
}
