package mapper

import (
	"time"

	accounttypes "github.com/Apurer/petadopt-api/internal/domains/accounts/application/types"
	accountdomain "github.com/Apurer/petadopt-api/internal/domains/accounts/domain"
)

// Account is the HTTP representation of an account. Password hashes never leave the domain.
type Account struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	City        string `json:"city,omitempty"`
	Region      string `json:"region,omitempty"`
	AccountType string `json:"accountType"`
	TypeLabel   string `json:"accountTypeLabel"`
	Verified    bool   `json:"verified"`
	Staff       bool   `json:"staff,omitempty"`
}

// Registration captures the inbound register payload.
type Registration struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
	Region      string `json:"region"`
	AccountType string `json:"accountType"`
}

// Credentials captures the inbound login payload.
type Credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Profile captures the inbound profile update payload.
type Profile struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
	Region      string `json:"region"`
	AccountType string `json:"accountType"`
}

// Verification is the staff payload toggling an account's verified flag.
type Verification struct {
	Verified *bool `json:"verified" binding:"required"`
}

// Session is returned by a successful login.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Account   Account   `json:"account"`
}

// FromDomainAccount converts a domain account into its transport representation.
func FromDomainAccount(account *accountdomain.Account) Account {
	if account == nil {
		return Account{}
	}
	return Account{
		ID:          account.ID,
		Email:       account.Email,
		Name:        account.Name,
		Phone:       account.Phone,
		City:        account.City,
		Region:      account.Region,
		AccountType: string(account.Type),
		TypeLabel:   account.Type.Label(),
		Verified:    account.Verified,
		Staff:       account.Staff,
	}
}

// ToRegisterInput maps the register payload to the application input.
func ToRegisterInput(model Registration) accounttypes.RegisterInput {
	return accounttypes.RegisterInput{
		Email:       model.Email,
		Password:    model.Password,
		Name:        model.Name,
		Phone:       model.Phone,
		City:        model.City,
		Region:      model.Region,
		AccountType: model.AccountType,
	}
}

// ToUpdateProfileInput maps the profile payload for accountID.
func ToUpdateProfileInput(accountID int64, model Profile) accounttypes.UpdateProfileInput {
	return accounttypes.UpdateProfileInput{
		AccountID:   accountID,
		Name:        model.Name,
		Phone:       model.Phone,
		City:        model.City,
		Region:      model.Region,
		AccountType: model.AccountType,
	}
}

// FromLoginResult converts a login result into the session payload.
func FromLoginResult(result *accounttypes.LoginResult) Session {
	if result == nil {
		return Session{}
	}
	return Session{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		Account:   FromDomainAccount(result.Account),
	}
}
