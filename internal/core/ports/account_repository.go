package ports

import (
	"context"

	"github.com/simbirgo/rental-api/internal/core/domain"
)

// AccountRepository defines the interface for credential persistence.
//
// Username uniqueness must be enforced by the store itself (a unique index,
// not only an application-level existence check): under concurrent creation
// of the same username exactly one Create succeeds and the loser observes
// domain.ErrUsernameTaken.
type AccountRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	// Update replaces username, password hash and roles. Renaming to a
	// username held by a different account fails with domain.ErrUsernameTaken.
	Update(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
	// List returns accounts ordered by creation, skipping skip rows and
	// returning at most count rows. There is no upper bound on count.
	List(ctx context.Context, skip, count int) ([]*domain.Account, error)
	// EnsureRole creates the named role if it does not exist yet. Idempotent.
	EnsureRole(ctx context.Context, name string) error
	// AssignRole adds the named role to the account's role set.
	AssignRole(ctx context.Context, accountID, role string) error
}
