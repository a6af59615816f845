package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Apurer/petadopt-api/internal/domains/accounts/domain"
	"github.com/Apurer/petadopt-api/internal/domains/accounts/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists accounts in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type accountRecord struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Email        string    `gorm:"column:email;size:255;uniqueIndex"`
	Name         string    `gorm:"column:name;size:255"`
	Phone        string    `gorm:"column:phone;size:20"`
	City         string    `gorm:"column:city;size:100"`
	Region       string    `gorm:"column:region;size:2"`
	AccountType  string    `gorm:"column:account_type;type:varchar(16)"`
	Verified     bool      `gorm:"column:verified"`
	Staff        bool      `gorm:"column:staff"`
	PasswordHash string    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (accountRecord) TableName() string { return "accounts" }

// Create inserts a new account; duplicate emails surface as ErrEmailTaken.
func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errors.New("account is nil")
	}
	record := toRecord(account)
	record.ID = 0
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ports.ErrEmailTaken
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Update overwrites the mutable columns. The email never changes.
func (r *Repository) Update(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errors.New("account is nil")
	}
	result := r.db.WithContext(ctx).
		Model(&accountRecord{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"name":         account.Name,
			"phone":        account.Phone,
			"city":         account.City,
			"region":       account.Region,
			"account_type": string(account.Type),
			"verified":     account.Verified,
			"staff":        account.Staff,
			"updated_at":   time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, account.ID)
}

// GetByID fetches an account by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByEmail fetches an account by normalized email.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.first(ctx, "email = ?", email)
}

// Count returns the number of registered accounts.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&accountRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) first(ctx context.Context, query string, arg any) (*domain.Account, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record accountRecord
	if err := r.db.WithContext(ctx).First(&record, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres account repository not configured")
	}
	return nil
}

func toRecord(account *domain.Account) accountRecord {
	return accountRecord{
		ID:           account.ID,
		Email:        account.Email,
		Name:         account.Name,
		Phone:        account.Phone,
		City:         account.City,
		Region:       account.Region,
		AccountType:  string(account.Type),
		Verified:     account.Verified,
		Staff:        account.Staff,
		PasswordHash: account.PasswordHash,
	}
}

func (r accountRecord) toDomain() *domain.Account {
	return &domain.Account{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		Phone:        r.Phone,
		City:         r.City,
		Region:       r.Region,
		Type:         domain.AccountType(r.AccountType),
		Verified:     r.Verified,
		Staff:        r.Staff,
		PasswordHash: r.PasswordHash,
	}
}
