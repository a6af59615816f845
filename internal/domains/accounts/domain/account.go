package domain

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/Apurer/petadopt-api/internal/shared/locale"
)

// AccountType distinguishes individual adopters/donors from NGOs.
type AccountType string

const (
	TypeIndividual AccountType = "individual"
	TypeNGO        AccountType = "ngo"
)

// Label returns the pt-BR display name.
func (t AccountType) Label() string {
	if t == TypeNGO {
		return "ONG"
	}
	return "Individual"
}

// ParseAccountType accepts the wire value; empty means individual.
func ParseAccountType(raw string) (AccountType, error) {
	switch AccountType(strings.ToLower(strings.TrimSpace(raw))) {
	case "", TypeIndividual:
		return TypeIndividual, nil
	case TypeNGO:
		return TypeNGO, nil
	default:
		return "", ErrInvalidAccountType
	}
}

const minPasswordLength = 8

var (
	ErrEmptyEmail         = errors.New("email is required")
	ErrInvalidEmail       = errors.New("email is not a valid address")
	ErrEmptyName          = errors.New("name is required")
	ErrInvalidRegion      = errors.New("region must be a Brazilian state code")
	ErrInvalidAccountType = errors.New("account type must be individual or ngo")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// Account is a registered user of the marketplace.
type Account struct {
	ID           int64
	Email        string
	Name         string
	Phone        string
	City         string
	Region       string
	Type         AccountType
	Verified     bool
	Staff        bool
	PasswordHash string
}

// Profile carries the user-editable account fields.
type Profile struct {
	Name   string
	Phone  string
	City   string
	Region string
	Type   AccountType
}

// NewAccount validates the identity fields and applies the profile.
func NewAccount(email string, profile Profile) (*Account, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	a := &Account{Email: normalized}
	if err := a.UpdateProfile(profile); err != nil {
		return nil, err
	}
	return a, nil
}

// NormalizeEmail trims, lower-cases and validates an email address.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ErrEmptyEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(plain string) error {
	if len(plain) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// UpdateProfile replaces the editable fields. An empty region is allowed;
// a non-empty one must be a valid state code.
func (a *Account) UpdateProfile(p Profile) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ErrEmptyName
	}
	region := ""
	if strings.TrimSpace(p.Region) != "" {
		code, ok := locale.NormalizeRegion(p.Region)
		if !ok {
			return ErrInvalidRegion
		}
		region = code
	}
	accountType := p.Type
	if accountType == "" {
		accountType = TypeIndividual
	}
	if accountType != TypeIndividual && accountType != TypeNGO {
		return ErrInvalidAccountType
	}
	a.Name = name
	a.Phone = strings.TrimSpace(p.Phone)
	a.City = strings.TrimSpace(p.City)
	a.Region = region
	a.Type = accountType
	return nil
}

// SetVerified toggles the trust flag granted by staff.
func (a *Account) SetVerified(verified bool) {
	a.Verified = verified
}

// IsVerifiedNGO reports whether listings by this account skip moderation.
func (a *Account) IsVerifiedNGO() bool {
	return a != nil && a.Type == TypeNGO && a.Verified
}

// HasLocation reports whether both city and region are on file.
func (a *Account) HasLocation() bool {
	return a != nil && a.City != "" && a.Region != ""
}

// Session is an issued access token bound to an account.
type Session struct {
	Token     string
	AccountID int64
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer usable at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
