package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/simbirgo/rental-api/internal/core/domain"
)

func TestBootstrap_SeedsRolesAndAdmin(t *testing.T) {
	repo := newStubAccountRepo()
	ctx := context.Background()

	if err := Bootstrap(ctx, repo, zerolog.Nop()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	for _, role := range []string{domain.RoleUser, domain.RoleAdmin} {
		if _, ok := repo.roles[role]; !ok {
			t.Fatalf("role %q not provisioned", role)
		}
	}

	admin, err := repo.FindByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("admin account missing: %v", err)
	}
	if admin.FirstRole() != domain.RoleAdmin {
		t.Fatalf("admin role = %q, want %q", admin.FirstRole(), domain.RoleAdmin)
	}

	// The seeded admin signs in with the documented default password and
	// receives a token carrying the admin role claim.
	svc := newTestService(repo)
	signed, err := svc.SignIn(ctx, "admin", DefaultAdminPassword)
	if err != nil {
		t.Fatalf("admin sign-in: %v", err)
	}
	claims, err := testTokens().Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("role claim = %q, want %q", claims.Role, domain.RoleAdmin)
	}
}

// An "admin" account left without its role (interrupted seeding) is repaired
// on the next run instead of being skipped forever.
func TestBootstrap_RepairsRolelessAdmin(t *testing.T) {
	repo := newStubAccountRepo()
	ctx := context.Background()

	hash, err := hashPassword(DefaultAdminPassword)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if _, err := repo.Create(ctx, &domain.Account{Username: "admin", PasswordHash: hash}); err != nil {
		t.Fatalf("seed roleless admin: %v", err)
	}

	if err := Bootstrap(ctx, repo, zerolog.Nop()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	admin, err := repo.FindByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("admin account missing: %v", err)
	}
	if admin.FirstRole() != domain.RoleAdmin {
		t.Fatalf("admin role = %q, want %q", admin.FirstRole(), domain.RoleAdmin)
	}
}

func TestBootstrap_Idempotent(t *testing.T) {
	repo := newStubAccountRepo()
	ctx := context.Background()

	if err := Bootstrap(ctx, repo, zerolog.Nop()); err != nil {
		t.Fatalf("first bootstrap: %v", err)
	}
	before := repo.seq

	if err := Bootstrap(ctx, repo, zerolog.Nop()); err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}
	if repo.seq != before {
		t.Fatalf("second bootstrap created accounts: %d -> %d", before, repo.seq)
	}
}
