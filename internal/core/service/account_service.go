package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/simbirgo/rental-api/internal/core/domain"
	"github.com/simbirgo/rental-api/internal/core/ports"
	"github.com/simbirgo/rental-api/internal/core/token"
)

// AccountService implements sign-in/sign-up and account lifecycle operations.
type AccountService struct {
	repo    ports.AccountRepository
	tokens  *token.Manager
	auditor ports.TokenAuditor // optional
	logger  zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, tokens *token.Manager, auditor ports.TokenAuditor, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, tokens: tokens, auditor: auditor, logger: logger}
}

// SignIn verifies the credentials and issues a token embedding the account's
// first stored role. An unknown username and a wrong password are collapsed
// into the same failure so responses cannot be used for username enumeration.
func (s *AccountService) SignIn(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	signed, claims, err := s.tokens.Issue(account.Username, account.FirstRole())
	if err != nil {
		return "", err
	}

	if s.auditor != nil {
		s.auditor.Record(ports.TokenAuditRecord{
			TokenID:   claims.ID,
			Username:  account.Username,
			Role:      claims.Role,
			ExpiresAt: claims.ExpiresAt.Time,
		})
	}

	s.logger.Info().Str("username", account.Username).Msg("sign-in succeeded")

	return signed, nil
}

// SignUp registers a new account with the default "user" role. The store's
// unique index on username arbitrates concurrent duplicate sign-ups.
func (s *AccountService) SignUp(ctx context.Context, username, password string) (*domain.Account, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Account{
		Username:     username,
		PasswordHash: hash,
		Roles:        []string{domain.RoleUser},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Msg("account registered")
	return created, nil
}

// Me returns the account behind the authenticated subject.
func (s *AccountService) Me(ctx context.Context, subject string) (*domain.Account, error) {
	return s.repo.FindByUsername(ctx, subject)
}

// SelfUpdate replaces the caller's own username and password. A rename that
// collides with another account reports ErrAccountNotFound rather than a
// conflict; inherited response shape, kept as-is (see DESIGN.md).
func (s *AccountService) SelfUpdate(ctx context.Context, subject string, input ports.UpdateAccountInput) (*domain.Account, error) {
	account, err := s.repo.FindByUsername(ctx, subject)
	if err != nil {
		return nil, err
	}

	if input.Username != account.Username {
		if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
			return nil, domain.ErrAccountNotFound
		} else if !errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	account.Username = input.Username
	account.PasswordHash = hash
	account.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, account)
}

// List returns a page of accounts with their resolved roles. Admin-gated by
// the router; count is not capped, matching the upstream contract.
func (s *AccountService) List(ctx context.Context, skip, count int) ([]ports.AccountWithRoles, error) {
	if skip < 0 {
		skip = 0
	}
	accounts, err := s.repo.List(ctx, skip, count)
	if err != nil {
		return nil, err
	}

	out := make([]ports.AccountWithRoles, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, ports.AccountWithRoles{Account: a, Roles: a.Roles})
	}
	return out, nil
}

func (s *AccountService) GetByID(ctx context.Context, id string) (*ports.AccountWithRoles, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.AccountWithRoles{Account: account, Roles: account.Roles}, nil
}

// Create provisions an account on behalf of an administrator. The IsAdmin
// field of the input is deliberately not applied: the created account starts
// with no roles, matching upstream behavior (see DESIGN.md).
func (s *AccountService) Create(ctx context.Context, input ports.UpdateAccountInput) (*domain.Account, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Account{
		Username:     input.Username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", input.Username).Msg("account created by admin")
	return created, nil
}

// UpdateByID replaces an account's username and password. Unlike SelfUpdate,
// a rename collision here is reported as a proper conflict.
func (s *AccountService) UpdateByID(ctx context.Context, id string, input ports.UpdateAccountInput) (*domain.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if account.Username != input.Username {
		if other, err := s.repo.FindByUsername(ctx, input.Username); err == nil && other.ID != account.ID {
			return nil, domain.ErrUsernameTaken
		} else if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	account.Username = input.Username
	account.PasswordHash = hash
	account.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, account)
}

// DeleteByID removes an account. Deleting a nonexistent id reports
// ErrAccountNotFound; the operation is not idempotent.
func (s *AccountService) DeleteByID(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("account_id", id).Msg("account deleted")
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
