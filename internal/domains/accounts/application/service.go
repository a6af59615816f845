package application

import (
	"context"
	"errors"
	"strings"
	"time"

	accounttypes "github.com/Apurer/petadopt-api/internal/domains/accounts/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/accounts/domain"
	"github.com/Apurer/petadopt-api/internal/domains/accounts/ports"
)

// DefaultSessionTTL applies when no TTL is configured.
const DefaultSessionTTL = 24 * time.Hour

// Service orchestrates the accounts bounded context use cases.
type Service struct {
	repo        ports.Repository
	sessions    ports.SessionStore
	passwords   ports.PasswordHasher
	tokens      ports.TokenIssuer
	sessionTTL  time.Duration
	staffEmails map[string]struct{}
}

// Option customizes the service.
type Option func(*Service)

// WithSessionTTL sets how long issued tokens stay valid.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// WithStaffEmails grants the staff role to accounts registering with these emails.
func WithStaffEmails(emails ...string) Option {
	return func(s *Service) {
		for _, email := range emails {
			if normalized, err := domain.NormalizeEmail(email); err == nil {
				s.staffEmails[normalized] = struct{}{}
			}
		}
	}
}

// NewService wires the accounts service with its dependencies.
func NewService(repo ports.Repository, sessions ports.SessionStore, passwords ports.PasswordHasher, tokens ports.TokenIssuer, opts ...Option) *Service {
	s := &Service{
		repo:        repo,
		sessions:    sessions,
		passwords:   passwords,
		tokens:      tokens,
		sessionTTL:  DefaultSessionTTL,
		staffEmails: map[string]struct{}{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Register creates an account with a hashed password.
func (s *Service) Register(ctx context.Context, input accounttypes.RegisterInput) (*domain.Account, error) {
	accountType, err := domain.ParseAccountType(input.AccountType)
	if err != nil {
		return nil, mapError(err)
	}
	account, err := domain.NewAccount(input.Email, domain.Profile{
		Name:   input.Name,
		Phone:  input.Phone,
		City:   input.City,
		Region: input.Region,
		Type:   accountType,
	})
	if err != nil {
		return nil, mapError(err)
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, mapError(err)
	}
	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	account.PasswordHash = hash
	if _, ok := s.staffEmails[account.Email]; ok {
		account.Staff = true
	}
	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, mapError(err)
	}
	return created, nil
}

// Login verifies the credentials and opens a session.
func (s *Service) Login(ctx context.Context, input accounttypes.LoginInput) (*accounttypes.LoginResult, error) {
	email, err := domain.NormalizeEmail(input.Email)
	if err != nil || input.Password == "" {
		return nil, ErrAuthentication
	}
	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrAuthentication
		}
		return nil, err
	}
	if !s.passwords.Compare(account.PasswordHash, input.Password) {
		return nil, ErrAuthentication
	}
	token, expiresAt, err := s.tokens.Issue(account.ID, s.sessionTTL)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, domain.Session{Token: token, AccountID: account.ID, ExpiresAt: expiresAt}); err != nil {
		return nil, err
	}
	return &accounttypes.LoginResult{Token: token, ExpiresAt: expiresAt, Account: account}, nil
}

// Logout revokes the session for token. Unknown tokens are ignored.
func (s *Service) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// Authenticate resolves a bearer token to its account. The token must be
// correctly signed and still have an open session.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.Account, error) {
	accountID, err := s.tokens.Parse(token)
	if err != nil {
		return nil, errors.Join(ErrAuthentication, err)
	}
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil, errors.Join(ErrAuthentication, err)
		}
		return nil, err
	}
	if session.AccountID != accountID {
		return nil, ErrAuthentication
	}
	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, errors.Join(ErrAuthentication, err)
		}
		return nil, err
	}
	return account, nil
}

// GetByID loads a single account.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProfile replaces the caller's editable fields.
func (s *Service) UpdateProfile(ctx context.Context, input accounttypes.UpdateProfileInput) (*domain.Account, error) {
	accountType, err := domain.ParseAccountType(input.AccountType)
	if err != nil {
		return nil, mapError(err)
	}
	account, err := s.repo.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	if err := account.UpdateProfile(domain.Profile{
		Name:   input.Name,
		Phone:  input.Phone,
		City:   input.City,
		Region: input.Region,
		Type:   accountType,
	}); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Update(ctx, account)
}

// SetVerified lets staff grant or revoke the verified flag.
func (s *Service) SetVerified(ctx context.Context, input accounttypes.SetVerifiedInput) (*domain.Account, error) {
	if err := s.requireStaff(ctx, input.StaffID); err != nil {
		return nil, err
	}
	account, err := s.repo.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	account.SetVerified(input.Verified)
	return s.repo.Update(ctx, account)
}

// CountAccounts reports how many accounts are registered.
func (s *Service) CountAccounts(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *Service) requireStaff(ctx context.Context, staffID int64) error {
	staff, err := s.repo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ErrForbidden
		}
		return err
	}
	if !staff.Staff {
		return ErrForbidden
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
