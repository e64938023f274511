package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/repositories"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/config"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/pkg/auth"
)

// CreateDefaultData ensures the configured admin account exists. Staff
// accounts register through the API; the admin is only ever seeded here.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.Admin.Email))
	if email == "" || cfg.Admin.Password == "" {
		lgr.Warn().Msg("Admin credentials not configured, skipping admin seed")
		return nil
	}

	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		lgr.Debug().Str("email", email).Msg("Admin account already present")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Administrator",
		Role:         models.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		// A concurrent boot may have created it between the check and the insert
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	lgr.Info().Str("email", email).Msg("Admin account created")
	return nil
}
