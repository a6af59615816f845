package workflows

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"

	listingapp "github.com/Apurer/petadopt-api/internal/domains/listings/application"
	listingtypes "github.com/Apurer/petadopt-api/internal/domains/listings/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/listings/ports"
	listingactivities "github.com/Apurer/petadopt-api/internal/platform/temporal/activities/listings"
)

func TestBuildSubmissionWorkflowID(t *testing.T) {
	withKey := buildSubmissionWorkflowID(listingtypes.SubmitInput{OwnerID: 4, IdempotencyKey: " abc "}, "trace")
	again := buildSubmissionWorkflowID(listingtypes.SubmitInput{OwnerID: 4, IdempotencyKey: "abc"}, "other-trace")
	assert.Equal(t, withKey, again)
	assert.True(t, strings.HasPrefix(withKey, "listing-submission-idem-4-"))
	assert.Len(t, strings.TrimPrefix(withKey, "listing-submission-idem-4-"), 16)

	withoutKey := buildSubmissionWorkflowID(listingtypes.SubmitInput{OwnerID: 4}, "trace")
	assert.Equal(t, "listing-submission-4-trace", withoutKey)
}

func TestWorkflowTraceComponent_FallsBackWithoutSpan(t *testing.T) {
	assert.True(t, strings.HasPrefix(workflowTraceComponent(context.Background()), "fallback-"))
}

func TestTranslateWorkflowError(t *testing.T) {
	invalid := temporal.NewNonRetryableApplicationError("name required", listingactivities.ErrTypeInvalidListing, nil)
	assert.ErrorIs(t, translateWorkflowError(invalid), listingapp.ErrInvalidInput)

	conflict := temporal.NewNonRetryableApplicationError("conflict", listingactivities.ErrTypeIdempotencyConflict, nil)
	assert.ErrorIs(t, translateWorkflowError(conflict), ports.ErrIdempotencyConflict)

	plain := errors.New("boom")
	assert.Same(t, plain, translateWorkflowError(plain))
}

func TestInlineListingWorkflows_RequiresService(t *testing.T) {
	var inline *InlineListingWorkflows
	_, err := inline.SubmitListing(context.Background(), listingtypes.SubmitInput{})
	require.Error(t, err)
}
