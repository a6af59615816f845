package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for every bounded context.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&accountRecord{},
		&sessionRecord{},
		&listingRecord{},
		&listingIdempotencyRecord{},
		&applicationRecord{},
		&interactionRecord{},
	)
}

// Account schema mirrors the accounts Postgres adapter.
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

// Session schema mirrors the accounts session store.
type sessionRecord struct {
	Token     string    `gorm:"primaryKey;column:token;size:512"`
	AccountID int64     `gorm:"column:account_id;index"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (sessionRecord) TableName() string { return "account_sessions" }

// Listing schema mirrors the listings Postgres adapter.
type listingRecord struct {
	ID               int64          `gorm:"primaryKey;autoIncrement;column:id"`
	OwnerID          int64          `gorm:"column:owner_id;index"`
	Name             string         `gorm:"column:name;size:100"`
	Species          string         `gorm:"column:species;type:varchar(16);index:idx_listings_catalog"`
	Size             string         `gorm:"column:size;type:varchar(16);index:idx_listings_catalog"`
	Sex              string         `gorm:"column:sex;type:varchar(16)"`
	AgeMonths        int            `gorm:"column:age_months"`
	Description      string         `gorm:"column:description;type:text"`
	History          string         `gorm:"column:history;type:text"`
	HealthInfo       string         `gorm:"column:health_info;type:text"`
	City             string         `gorm:"column:city;size:100"`
	Region           string         `gorm:"column:region;size:2;index"`
	PhotoURLs        pq.StringArray `gorm:"column:photo_urls;type:text[]"`
	ModerationStatus string         `gorm:"column:moderation_status;type:varchar(16);index:idx_listings_status"`
	AdoptionStatus   string         `gorm:"column:adoption_status;type:varchar(16);index:idx_listings_status"`
	RejectionReason  string         `gorm:"column:rejection_reason;type:text"`
	CreatedAt        time.Time      `gorm:"column:created_at;index"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
}

func (listingRecord) TableName() string { return "listings" }

// Idempotency schema mirrors the listings idempotency store.
type listingIdempotencyRecord struct {
	Key         string    `gorm:"primaryKey;column:key;size:255"`
	RequestHash string    `gorm:"column:request_hash;size:128"`
	ListingID   int64     `gorm:"column:listing_id"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (listingIdempotencyRecord) TableName() string { return "listing_idempotency_keys" }

// Application schema mirrors the adoptions Postgres adapter.
type applicationRecord struct {
	ID          int64             `gorm:"primaryKey;autoIncrement;column:id"`
	PetID       int64             `gorm:"column:pet_id;uniqueIndex:idx_applications_pet_applicant"`
	ApplicantID int64             `gorm:"column:applicant_id;uniqueIndex:idx_applications_pet_applicant"`
	OwnerID     int64             `gorm:"column:owner_id;index"`
	Answers     map[string]string `gorm:"column:answers;serializer:json"`
	Status      string            `gorm:"column:status;type:varchar(16)"`
	SentAt      time.Time         `gorm:"column:sent_at;index"`
	ViewedAt    *time.Time        `gorm:"column:viewed_at"`
	AnsweredAt  *time.Time        `gorm:"column:answered_at"`
	OwnerNotes  string            `gorm:"column:owner_notes;type:text"`
	Approved    *bool             `gorm:"column:approved"`
}

func (applicationRecord) TableName() string { return "adoption_applications" }

// Interaction schema mirrors the chat Postgres adapter.
type interactionRecord struct {
	ID            int64     `gorm:"primaryKey;autoIncrement;column:id"`
	AccountID     int64     `gorm:"column:account_id;index"`
	Message       string    `gorm:"column:message;type:text"`
	Response      string    `gorm:"column:response;type:text"`
	Topic         string    `gorm:"column:topic;type:varchar(32);index"`
	DetectedTopic string    `gorm:"column:detected_topic;type:varchar(32)"`
	LatencyMs     *int64    `gorm:"column:latency_ms"`
	Feedback      *bool     `gorm:"column:feedback"`
	SessionID     string    `gorm:"column:session_id;size:100;index"`
	CreatedAt     time.Time `gorm:"column:created_at;index"`
}

func (interactionRecord) TableName() string { return "chat_interactions" }
