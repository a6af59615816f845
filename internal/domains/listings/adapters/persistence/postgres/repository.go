package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Apurer/petadopt-api/internal/domains/listings/domain"
	"github.com/Apurer/petadopt-api/internal/domains/listings/ports"
	"github.com/Apurer/petadopt-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists listings in PostgreSQL using GORM. Reads join the
// accounts table for the owner summary.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type listingRecord struct {
	ID               int64          `gorm:"primaryKey;autoIncrement;column:id"`
	OwnerID          int64          `gorm:"column:owner_id;index"`
	Name             string         `gorm:"column:name;size:100"`
	Species          string         `gorm:"column:species;type:varchar(16)"`
	Size             string         `gorm:"column:size;type:varchar(16)"`
	Sex              string         `gorm:"column:sex;type:varchar(16)"`
	AgeMonths        int            `gorm:"column:age_months"`
	Description      string         `gorm:"column:description;type:text"`
	History          string         `gorm:"column:history;type:text"`
	HealthInfo       string         `gorm:"column:health_info;type:text"`
	City             string         `gorm:"column:city;size:100"`
	Region           string         `gorm:"column:region;size:2"`
	PhotoURLs        pq.StringArray `gorm:"column:photo_urls;type:text[]"`
	ModerationStatus string         `gorm:"column:moderation_status;type:varchar(16)"`
	AdoptionStatus   string         `gorm:"column:adoption_status;type:varchar(16)"`
	RejectionReason  string         `gorm:"column:rejection_reason;type:text"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
}

func (listingRecord) TableName() string { return "listings" }

// listingRow is a listing joined with its owner's account columns.
type listingRow struct {
	listingRecord `gorm:"embedded"`
	OwnerName     string `gorm:"column:owner_name"`
	OwnerType     string `gorm:"column:owner_type"`
	OwnerVerified bool   `gorm:"column:owner_verified"`
	OwnerStaff    bool   `gorm:"column:owner_staff"`
}

const joinedColumns = "listings.*, accounts.name AS owner_name, accounts.account_type AS owner_type, " +
	"accounts.verified AS owner_verified, accounts.staff AS owner_staff"

// Save inserts a new listing or updates an existing one.
func (r *Repository) Save(ctx context.Context, listing *domain.Listing) (*projection.Projection[*domain.Listing], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, errors.New("listing is nil")
	}
	record := toRecord(listing)
	if record.ID == 0 {
		if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
			return nil, err
		}
		return r.GetByID(ctx, record.ID)
	}
	result := r.db.WithContext(ctx).
		Model(&listingRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"name":              record.Name,
			"species":           record.Species,
			"size":              record.Size,
			"sex":               record.Sex,
			"age_months":        record.AgeMonths,
			"description":       record.Description,
			"history":           record.History,
			"health_info":       record.HealthInfo,
			"city":              record.City,
			"region":            record.Region,
			"photo_urls":        record.PhotoURLs,
			"moderation_status": record.ModerationStatus,
			"adoption_status":   record.AdoptionStatus,
			"rejection_reason":  record.RejectionReason,
			"updated_at":        time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a listing with its owner summary.
func (r *Repository) GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Listing], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var row listingRow
	err := r.joined(ctx).Select(joinedColumns).Where("listings.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return row.toProjection(), nil
}

// Search applies the criteria and returns one page, newest first.
func (r *Repository) Search(ctx context.Context, criteria ports.Criteria) ([]*projection.Projection[*domain.Listing], int64, error) {
	if err := r.ensureDB(); err != nil {
		return nil, 0, err
	}
	var total int64
	if err := applyCriteria(r.joined(ctx), criteria).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query := applyCriteria(r.joined(ctx), criteria).
		Select(joinedColumns).
		Order("listings.created_at DESC").
		Order("listings.id DESC")
	if criteria.Limit > 0 {
		query = query.Limit(criteria.Limit)
	}
	if criteria.Offset > 0 {
		query = query.Offset(criteria.Offset)
	}
	var rows []listingRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	result := make([]*projection.Projection[*domain.Listing], 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toProjection())
	}
	return result, total, nil
}

type summaryRow struct {
	Total     int64
	Pending   int64
	Approved  int64
	Rejected  int64
	Available int64
	InProcess int64
	Adopted   int64
	Listed    int64
}

// Summarize counts listings per status in a single aggregate query.
func (r *Repository) Summarize(ctx context.Context, ownerID int64) (domain.Summary, error) {
	if err := r.ensureDB(); err != nil {
		return domain.Summary{}, err
	}
	query := r.db.WithContext(ctx).Model(&listingRecord{}).Select(
		"COUNT(*) AS total, " +
			"COUNT(*) FILTER (WHERE moderation_status = 'pending') AS pending, " +
			"COUNT(*) FILTER (WHERE moderation_status = 'approved') AS approved, " +
			"COUNT(*) FILTER (WHERE moderation_status = 'rejected') AS rejected, " +
			"COUNT(*) FILTER (WHERE adoption_status = 'available') AS available, " +
			"COUNT(*) FILTER (WHERE adoption_status = 'in_process') AS in_process, " +
			"COUNT(*) FILTER (WHERE adoption_status = 'adopted') AS adopted, " +
			"COUNT(*) FILTER (WHERE moderation_status = 'approved' AND adoption_status = 'available') AS listed",
	)
	if ownerID != 0 {
		query = query.Where("owner_id = ?", ownerID)
	}
	var row summaryRow
	if err := query.Scan(&row).Error; err != nil {
		return domain.Summary{}, err
	}
	return domain.Summary(row), nil
}

func (r *Repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("listings").
		Joins("LEFT JOIN accounts ON accounts.id = listings.owner_id")
}

func applyCriteria(query *gorm.DB, c ports.Criteria) *gorm.DB {
	if c.OwnerID != 0 {
		query = query.Where("listings.owner_id = ?", c.OwnerID)
	}
	if len(c.Moderation) > 0 {
		query = query.Where("listings.moderation_status IN ?", moderationValues(c.Moderation))
	}
	if len(c.Adoption) > 0 {
		query = query.Where("listings.adoption_status IN ?", adoptionValues(c.Adoption))
	}
	if c.Species != "" {
		query = query.Where("listings.species = ?", string(c.Species))
	}
	if c.Size != "" {
		query = query.Where("listings.size = ?", string(c.Size))
	}
	if c.Sex != "" {
		query = query.Where("listings.sex = ?", string(c.Sex))
	}
	if c.MinAgeMonths != nil {
		query = query.Where("listings.age_months >= ?", *c.MinAgeMonths)
	}
	if c.MaxAgeMonths != nil {
		query = query.Where("listings.age_months <= ?", *c.MaxAgeMonths)
	}
	if c.CityContains != "" {
		query = query.Where("LOWER(listings.city) LIKE ?", "%"+escapeLike(strings.ToLower(c.CityContains))+"%")
	}
	if c.Region != "" {
		query = query.Where("listings.region = ?", c.Region)
	}
	if c.VerifiedOwnersOnly {
		query = query.Where("accounts.verified = ?", true)
	}
	return query
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func moderationValues(statuses []domain.ModerationStatus) []string {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}
	return values
}

func adoptionValues(statuses []domain.AdoptionStatus) []string {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}
	return values
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres listing repository not configured")
	}
	return nil
}

func toRecord(l *domain.Listing) listingRecord {
	return listingRecord{
		ID:               l.ID,
		OwnerID:          l.OwnerID,
		Name:             l.Name,
		Species:          string(l.Species),
		Size:             string(l.Size),
		Sex:              string(l.Sex),
		AgeMonths:        l.AgeMonths,
		Description:      l.Description,
		History:          l.History,
		HealthInfo:       l.HealthInfo,
		City:             l.City,
		Region:           l.Region,
		PhotoURLs:        pq.StringArray(append([]string{}, l.PhotoURLs...)),
		ModerationStatus: string(l.Moderation),
		AdoptionStatus:   string(l.Adoption),
		RejectionReason:  l.RejectionReason,
	}
}

func (r listingRow) toProjection() *projection.Projection[*domain.Listing] {
	rec := r.listingRecord
	listing := &domain.Listing{
		ID:              rec.ID,
		OwnerID:         rec.OwnerID,
		Name:            rec.Name,
		Species:         domain.Species(rec.Species),
		Size:            domain.Size(rec.Size),
		Sex:             domain.Sex(rec.Sex),
		AgeMonths:       rec.AgeMonths,
		Description:     rec.Description,
		History:         rec.History,
		HealthInfo:      rec.HealthInfo,
		City:            rec.City,
		Region:          rec.Region,
		PhotoURLs:       append([]string{}, rec.PhotoURLs...),
		Moderation:      domain.ModerationStatus(rec.ModerationStatus),
		Adoption:        domain.AdoptionStatus(rec.AdoptionStatus),
		RejectionReason: rec.RejectionReason,
		Owner: domain.Owner{
			ID:       rec.OwnerID,
			Name:     r.OwnerName,
			NGO:      r.OwnerType == "ngo",
			Verified: r.OwnerVerified,
			Staff:    r.OwnerStaff,
		},
	}
	return projection.New(listing, rec.CreatedAt, rec.UpdatedAt)
}
