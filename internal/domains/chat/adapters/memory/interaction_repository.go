package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Apurer/petadopt-api/internal/domains/chat/domain"
	"github.com/Apurer/petadopt-api/internal/domains/chat/ports"
)

var _ ports.InteractionRepository = (*InteractionRepository)(nil)

// InteractionRepository keeps interactions in memory.
type InteractionRepository struct {
	mu           sync.RWMutex
	interactions map[int64]*domain.Interaction
	nextID       int64
	now          func() time.Time
}

func NewInteractionRepository() *InteractionRepository {
	return &InteractionRepository{interactions: map[int64]*domain.Interaction{}, now: time.Now}
}

// WithClock overrides the time source for deterministic testing.
func (r *InteractionRepository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

func (r *InteractionRepository) Create(_ context.Context, interaction *domain.Interaction) (*domain.Interaction, error) {
	if interaction == nil {
		return nil, errors.New("interaction is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	stored := clone(interaction)
	stored.ID = r.nextID
	stored.CreatedAt = r.now().UTC()
	r.interactions[stored.ID] = stored
	return clone(stored), nil
}

func (r *InteractionRepository) GetByID(_ context.Context, id int64) (*domain.Interaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.interactions[id]
	if !ok {
		return nil, ports.ErrInteractionNotFound
	}
	return clone(stored), nil
}

func (r *InteractionRepository) SetFeedback(_ context.Context, id, accountID int64, feedback bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.interactions[id]
	if !ok || stored.AccountID != accountID {
		return ports.ErrInteractionNotFound
	}
	stored.Feedback = &feedback
	return nil
}

func (r *InteractionRepository) ListByAccount(_ context.Context, accountID int64, limit int) ([]*domain.Interaction, error) {
	r.mu.RLock()
	result := make([]*domain.Interaction, 0)
	for _, stored := range r.interactions {
		if stored.AccountID == accountID {
			result = append(result, clone(stored))
		}
	}
	r.mu.RUnlock()
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *InteractionRepository) Stats(_ context.Context) (domain.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := map[domain.Topic]int64{}
	var stats domain.Stats
	var latencySum, latencyCount int64
	for _, stored := range r.interactions {
		stats.Total++
		counts[stored.DetectedTopic]++
		if stored.LatencyMs != nil {
			latencySum += *stored.LatencyMs
			latencyCount++
		}
	}
	for topic, total := range counts {
		stats.Topics = append(stats.Topics, domain.TopicCount{Topic: topic, Total: total})
	}
	sort.Slice(stats.Topics, func(i, j int) bool {
		if stats.Topics[i].Total == stats.Topics[j].Total {
			return stats.Topics[i].Topic < stats.Topics[j].Topic
		}
		return stats.Topics[i].Total > stats.Topics[j].Total
	})
	if latencyCount > 0 {
		avg := float64(latencySum) / float64(latencyCount)
		stats.AverageLatencyMs = &avg
	}
	return stats, nil
}

func clone(i *domain.Interaction) *domain.Interaction {
	c := *i
	if i.LatencyMs != nil {
		v := *i.LatencyMs
		c.LatencyMs = &v
	}
	if i.Feedback != nil {
		v := *i.Feedback
		c.Feedback = &v
	}
	return &c
}
