package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/Apurer/petadopt-api/internal/domains/accounts/domain"
	"github.com/Apurer/petadopt-api/internal/domains/accounts/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory account persistence adapter.
type Repository struct {
	mu       sync.RWMutex
	accounts map[int64]*domain.Account
	byEmail  map[string]int64
	nextID   int64
}

func NewRepository() *Repository {
	return &Repository{
		accounts: map[int64]*domain.Account{},
		byEmail:  map[string]int64{},
	}
}

func (r *Repository) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if account == nil {
		return nil, errors.New("account is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byEmail[account.Email]; taken {
		return nil, ports.ErrEmailTaken
	}
	clone := *account
	r.nextID++
	clone.ID = r.nextID
	r.accounts[clone.ID] = &clone
	r.byEmail[clone.Email] = clone.ID
	out := clone
	return &out, nil
}

func (r *Repository) Update(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if account == nil {
		return nil, errors.New("account is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.accounts[account.ID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *account
	clone.Email = existing.Email
	r.accounts[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.accounts[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *account
	return &clone, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	id, ok := r.byEmail[email]
	r.mu.RUnlock()
	if !ok {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *Repository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.accounts)), nil
}
