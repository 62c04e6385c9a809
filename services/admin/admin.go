// File: services/admin/admin.go
package admin

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"pitchside/config"
	adminRepo "pitchside/database/repository/admin"
	"pitchside/models"
	"pitchside/utils"
)

// sessionTTL bounds how long an admin token stays valid in the cache.
const sessionTTL = 24 * time.Hour

// AdminService handles back-office authentication.
type AdminService interface {
	Login(ctx context.Context, in models.AdminLoginInput) (token string, err error)
	Logout(ctx context.Context, token string) error
	Seed(ctx context.Context) error
}

// DefaultAdminService is the concrete implementation.
type DefaultAdminService struct {
	Repo adminRepo.AdminRepository
}

// Login verifies credentials and mints a session token. The token hash is
// stored in the auth cache so logout can revoke it server-side.
func (s *DefaultAdminService) Login(ctx context.Context, in models.AdminLoginInput) (string, error) {
	a, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrNotFound) {
			return "", utils.UnauthorizedError("invalid email or password")
		}
		return "", utils.StoreError("failed to look up admin", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)); err != nil {
		return "", utils.UnauthorizedError("invalid email or password")
	}

	token, err := utils.GenerateToken(a.ID, a.Email, sessionTTL)
	if err != nil {
		return "", utils.StoreError("failed to mint session token", err)
	}
	if err := utils.StoreAdminToken(ctx, utils.GetAuthCacheClient(), a.ID, utils.HashToken(token), sessionTTL); err != nil {
		return "", utils.StoreError("failed to persist session token", err)
	}

	zap.L().Info("admin logged in", zap.String("adminID", a.ID))
	return token, nil
}

// Logout revokes the session token in the auth cache. Revoking an unknown
// token is not an error.
func (s *DefaultAdminService) Logout(ctx context.Context, token string) error {
	if err := utils.RevokeAdminToken(ctx, utils.GetAuthCacheClient(), utils.HashToken(token)); err != nil {
		return utils.StoreError("failed to revoke session token", err)
	}
	return nil
}

// Seed creates the bootstrap admin from config when the collection is empty,
// so a fresh deployment is immediately usable.
func (s *DefaultAdminService) Seed(ctx context.Context) error {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return utils.StoreError("failed to count admins", err)
	}
	if n > 0 {
		return nil
	}

	cfg := config.AppConfig
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		zap.L().Warn("no bootstrap admin configured, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return utils.StoreError("failed to hash bootstrap password", err)
	}
	if err := s.Repo.Create(ctx, &models.Admin{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
	}); err != nil {
		return utils.StoreError("failed to create bootstrap admin", err)
	}

	zap.L().Info("bootstrap admin seeded", zap.String("email", cfg.AdminEmail))
	return nil
}
