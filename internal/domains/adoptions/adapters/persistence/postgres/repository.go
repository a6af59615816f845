package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Apurer/petadopt-api/internal/domains/adoptions/domain"
	"github.com/Apurer/petadopt-api/internal/domains/adoptions/ports"
)

var _ ports.Repository = (*Repository)(nil)

type applicationRecord struct {
	ID          int64             `gorm:"primaryKey;autoIncrement;column:id"`
	PetID       int64             `gorm:"column:pet_id"`
	ApplicantID int64             `gorm:"column:applicant_id"`
	OwnerID     int64             `gorm:"column:owner_id"`
	Answers     map[string]string `gorm:"column:answers;serializer:json"`
	Status      string            `gorm:"column:status"`
	SentAt      time.Time         `gorm:"column:sent_at"`
	ViewedAt    *time.Time        `gorm:"column:viewed_at"`
	AnsweredAt  *time.Time        `gorm:"column:answered_at"`
	OwnerNotes  string            `gorm:"column:owner_notes"`
	Approved    *bool             `gorm:"column:approved"`
}

func (applicationRecord) TableName() string { return "adoption_applications" }

// Repository persists adoption applications in PostgreSQL. The unique index on
// (pet_id, applicant_id) rejects duplicate applications.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, application *domain.Application) (*domain.Application, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if application == nil {
		return nil, errors.New("application is nil")
	}
	record := toRecord(application)
	record.ID = 0
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ports.ErrAlreadyApplied
		}
		return nil, err
	}
	return toDomain(record), nil
}

func (r *Repository) Update(ctx context.Context, application *domain.Application) (*domain.Application, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if application == nil {
		return nil, errors.New("application is nil")
	}
	record := toRecord(application)
	res := r.db.WithContext(ctx).Model(&applicationRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"status":      record.Status,
			"viewed_at":   record.ViewedAt,
			"answered_at": record.AnsweredAt,
			"owner_notes": record.OwnerNotes,
			"approved":    record.Approved,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, record.ID)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record applicationRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return toDomain(record), nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Application, error) {
	return r.list(ctx, "owner_id = ?", ownerID)
}

func (r *Repository) ListByApplicant(ctx context.Context, applicantID int64) ([]*domain.Application, error) {
	return r.list(ctx, "applicant_id = ?", applicantID)
}

func (r *Repository) list(ctx context.Context, query string, arg int64) ([]*domain.Application, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []applicationRecord
	if err := r.db.WithContext(ctx).Where(query, arg).Order("sent_at DESC, id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	result := make([]*domain.Application, 0, len(records))
	for _, record := range records {
		result = append(result, toDomain(record))
	}
	return result, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres repository is not initialized")
	}
	return nil
}

func toRecord(a *domain.Application) applicationRecord {
	return applicationRecord{
		ID:          a.ID,
		PetID:       a.PetID,
		ApplicantID: a.ApplicantID,
		OwnerID:     a.OwnerID,
		Answers:     a.Answers.Map(),
		Status:      string(a.Status),
		SentAt:      a.SentAt,
		ViewedAt:    a.ViewedAt,
		AnsweredAt:  a.AnsweredAt,
		OwnerNotes:  a.OwnerNotes,
		Approved:    a.Approved,
	}
}

func toDomain(record applicationRecord) *domain.Application {
	return &domain.Application{
		ID:          record.ID,
		PetID:       record.PetID,
		ApplicantID: record.ApplicantID,
		OwnerID:     record.OwnerID,
		Answers:     domain.AnswersFromMap(record.Answers),
		Status:      domain.Status(record.Status),
		SentAt:      record.SentAt,
		ViewedAt:    record.ViewedAt,
		AnsweredAt:  record.AnsweredAt,
		OwnerNotes:  record.OwnerNotes,
		Approved:    record.Approved,
	}
}
