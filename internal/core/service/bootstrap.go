package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/simbirgo/rental-api/internal/core/domain"
	"github.com/simbirgo/rental-api/internal/core/ports"
)

// DefaultAdminPassword is the well-known initial password of the seeded
// administrator account. Operators must rotate it out-of-band before the
// service is exposed anywhere that matters.
const DefaultAdminPassword = "admin"

// Bootstrap ensures the role vocabulary and the default administrator account
// exist. It runs once at process start and is idempotent: rerunning against
// an initialized store changes nothing.
func Bootstrap(ctx context.Context, repo ports.AccountRepository, logger zerolog.Logger) error {
	for _, role := range []string{domain.RoleUser, domain.RoleAdmin} {
		if err := repo.EnsureRole(ctx, role); err != nil {
			return fmt.Errorf("ensure role %q: %w", role, err)
		}
	}

	existing, err := repo.FindByUsername(ctx, "admin")
	if err == nil {
		// A crash between account creation and role assignment leaves the
		// admin role-less; re-assert the role so reruns converge.
		if err := repo.AssignRole(ctx, existing.ID, domain.RoleAdmin); err != nil {
			return fmt.Errorf("assign admin role: %w", err)
		}
		return nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return fmt.Errorf("look up admin account: %w", err)
	}

	hash, err := hashPassword(DefaultAdminPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	created, err := repo.Create(ctx, &domain.Account{
		Username:     "admin",
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// Lost the race against a concurrent bootstrap; the account exists.
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil
		}
		return fmt.Errorf("create admin account: %w", err)
	}

	if err := repo.AssignRole(ctx, created.ID, domain.RoleAdmin); err != nil {
		return fmt.Errorf("assign admin role: %w", err)
	}

	logger.Warn().Msg("seeded default admin account; rotate its password")
	return nil
}
