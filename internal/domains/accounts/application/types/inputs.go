package types

import (
	"time"

	"github.com/Apurer/petadopt-api/internal/domains/accounts/domain"
)

// RegisterInput creates a new account.
type RegisterInput struct {
	Email       string
	Password    string
	Name        string
	Phone       string
	City        string
	Region      string
	AccountType string
}

// LoginInput exchanges credentials for an access token.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult carries the issued token.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Account   *domain.Account
}

// UpdateProfileInput replaces the caller's editable profile fields.
type UpdateProfileInput struct {
	AccountID   int64
	Name        string
	Phone       string
	City        string
	Region      string
	AccountType string
}

// SetVerifiedInput is a staff decision on an account's trust flag.
type SetVerifiedInput struct {
	StaffID   int64
	AccountID int64
	Verified  bool
}
