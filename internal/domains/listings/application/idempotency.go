package application

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	listingtypes "github.com/Apurer/petadopt-api/internal/domains/listings/application/types"
)

type normalizedSubmission struct {
	OwnerID     int64    `json:"ownerId"`
	Name        string   `json:"name"`
	Species     string   `json:"species"`
	Size        string   `json:"size"`
	Sex         string   `json:"sex"`
	AgeMonths   int      `json:"ageMonths"`
	Description string   `json:"description"`
	History     string   `json:"history"`
	HealthInfo  string   `json:"healthInfo"`
	City        string   `json:"city"`
	Region      string   `json:"region"`
	PhotoURLs   []string `json:"photoUrls"`
}

// FingerprintSubmission builds a deterministic hash of a submission (excluding the idempotency key).
func FingerprintSubmission(input listingtypes.SubmitInput) (string, error) {
	d := input.Details
	payload, err := json.Marshal(normalizedSubmission{
		OwnerID:     input.OwnerID,
		Name:        d.Name,
		Species:     d.Species,
		Size:        d.Size,
		Sex:         d.Sex,
		AgeMonths:   d.AgeMonths,
		Description: d.Description,
		History:     d.History,
		HealthInfo:  d.HealthInfo,
		City:        d.City,
		Region:      d.Region,
		PhotoURLs:   append([]string{}, d.PhotoURLs...),
	})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
