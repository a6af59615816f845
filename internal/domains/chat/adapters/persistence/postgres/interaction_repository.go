package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Apurer/petadopt-api/internal/domains/chat/domain"
	"github.com/Apurer/petadopt-api/internal/domains/chat/ports"
)

var _ ports.InteractionRepository = (*InteractionRepository)(nil)

type interactionRecord struct {
	ID            int64     `gorm:"primaryKey;autoIncrement;column:id"`
	AccountID     int64     `gorm:"column:account_id"`
	Message       string    `gorm:"column:message"`
	Response      string    `gorm:"column:response"`
	Topic         string    `gorm:"column:topic"`
	DetectedTopic string    `gorm:"column:detected_topic"`
	LatencyMs     *int64    `gorm:"column:latency_ms"`
	Feedback      *bool     `gorm:"column:feedback"`
	SessionID     string    `gorm:"column:session_id"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (interactionRecord) TableName() string { return "chat_interactions" }

type topicCountRow struct {
	DetectedTopic string
	Total         int64
}

// InteractionRepository stores chat interactions in PostgreSQL.
type InteractionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

func (r *InteractionRepository) Create(ctx context.Context, interaction *domain.Interaction) (*domain.Interaction, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if interaction == nil {
		return nil, errors.New("interaction is nil")
	}
	record := interactionRecord{
		AccountID:     interaction.AccountID,
		Message:       interaction.Message,
		Response:      interaction.Response,
		Topic:         string(interaction.Topic),
		DetectedTopic: string(interaction.DetectedTopic),
		LatencyMs:     interaction.LatencyMs,
		Feedback:      interaction.Feedback,
		SessionID:     interaction.SessionID,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return toDomain(record), nil
}

func (r *InteractionRepository) GetByID(ctx context.Context, id int64) (*domain.Interaction, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record interactionRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrInteractionNotFound
		}
		return nil, err
	}
	return toDomain(record), nil
}

// SetFeedback scopes the update to the owner so foreign ids look missing.
func (r *InteractionRepository) SetFeedback(ctx context.Context, id, accountID int64, feedback bool) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&interactionRecord{}).
		Where("id = ? AND account_id = ?", id, accountID).
		Update("feedback", feedback)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrInteractionNotFound
	}
	return nil
}

func (r *InteractionRepository) ListByAccount(ctx context.Context, accountID int64, limit int) ([]*domain.Interaction, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	query := r.db.WithContext(ctx).Where("account_id = ?", accountID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var records []interactionRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	result := make([]*domain.Interaction, 0, len(records))
	for _, record := range records {
		result = append(result, toDomain(record))
	}
	return result, nil
}

func (r *InteractionRepository) Stats(ctx context.Context) (domain.Stats, error) {
	if err := r.ensureDB(); err != nil {
		return domain.Stats{}, err
	}
	var rows []topicCountRow
	err := r.db.WithContext(ctx).Model(&interactionRecord{}).
		Select("detected_topic, COUNT(*) AS total").
		Group("detected_topic").
		Order("total DESC, detected_topic ASC").
		Scan(&rows).Error
	if err != nil {
		return domain.Stats{}, err
	}
	var stats domain.Stats
	for _, row := range rows {
		stats.Total += row.Total
		stats.Topics = append(stats.Topics, domain.TopicCount{Topic: domain.Topic(row.DetectedTopic), Total: row.Total})
	}
	var average *float64
	err = r.db.WithContext(ctx).Model(&interactionRecord{}).
		Where("latency_ms IS NOT NULL").
		Select("AVG(latency_ms)").
		Scan(&average).Error
	if err != nil {
		return domain.Stats{}, err
	}
	stats.AverageLatencyMs = average
	return stats, nil
}

func (r *InteractionRepository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres repository is not initialized")
	}
	return nil
}

func toDomain(record interactionRecord) *domain.Interaction {
	return &domain.Interaction{
		ID:            record.ID,
		AccountID:     record.AccountID,
		Message:       record.Message,
		Response:      record.Response,
		Topic:         domain.Topic(record.Topic),
		DetectedTopic: domain.Topic(record.DetectedTopic),
		LatencyMs:     record.LatencyMs,
		Feedback:      record.Feedback,
		SessionID:     record.SessionID,
		CreatedAt:     record.CreatedAt,
	}
}
