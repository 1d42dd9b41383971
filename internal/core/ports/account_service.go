package ports

import (
	"context"

	"github.com/simbirgo/rental-api/internal/core/domain"
)

// UpdateAccountInput carries the full replacement state for an account update.
// A new password is always required; there is no way to keep the old one.
type UpdateAccountInput struct {
	Username string
	Password string
	// IsAdmin is accepted on admin create/update requests but is not applied.
	// Inherited behavior, kept inert on purpose; see DESIGN.md.
	IsAdmin bool
}

// AccountWithRoles pairs an account with its resolved role list for admin views.
type AccountWithRoles struct {
	Account *domain.Account `json:"account"`
	Roles   []string        `json:"roles"`
}

// AccountService defines credential and account lifecycle use cases.
type AccountService interface {
	// SignIn verifies credentials and returns a signed bearer token.
	// Unknown username and wrong password both fail with
	// domain.ErrInvalidCredentials.
	SignIn(ctx context.Context, username, password string) (string, error)
	// SignUp registers a new account with the default "user" role.
	SignUp(ctx context.Context, username, password string) (*domain.Account, error)
	// Me returns the account behind the authenticated subject.
	Me(ctx context.Context, subject string) (*domain.Account, error)
	// SelfUpdate replaces the caller's own username and password. The subject
	// must own the target account; admins get no bypass here.
	SelfUpdate(ctx context.Context, subject string, input UpdateAccountInput) (*domain.Account, error)

	// Admin-gated operations.
	List(ctx context.Context, skip, count int) ([]AccountWithRoles, error)
	GetByID(ctx context.Context, id string) (*AccountWithRoles, error)
	Create(ctx context.Context, input UpdateAccountInput) (*domain.Account, error)
	UpdateByID(ctx context.Context, id string, input UpdateAccountInput) (*domain.Account, error)
	DeleteByID(ctx context.Context, id string) error
}
