package listings_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/Apurer/petadopt-api/internal/domains/listings/adapters/memory"
	listingapp "github.com/Apurer/petadopt-api/internal/domains/listings/application"
	listingtypes "github.com/Apurer/petadopt-api/internal/domains/listings/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/listings/domain"
	listingports "github.com/Apurer/petadopt-api/internal/domains/listings/ports"
	listingactivities "github.com/Apurer/petadopt-api/internal/platform/temporal/activities/listings"
)

type staticOwners map[int64]domain.Owner

func (s staticOwners) Owner(_ context.Context, id int64) (domain.Owner, error) {
	owner, ok := s[id]
	if !ok {
		return domain.Owner{}, listingports.ErrOwnerNotFound
	}
	return owner, nil
}

type capturePublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (p *capturePublisher) Publish(_ context.Context, events ...domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func validSubmission(ownerID int64) listingtypes.SubmitInput {
	return listingtypes.SubmitInput{
		OwnerID: ownerID,
		Details: listingtypes.DetailsInput{
			Name:        "Mel",
			Species:     "dog",
			Size:        "small",
			Sex:         "female",
			AgeMonths:   4,
			Description: "Filhote brincalhona",
			City:        "Campinas",
			Region:      "SP",
		},
	}
}

func newActivities(t *testing.T) (*listingactivities.Activities, *memory.Repository, *capturePublisher) {
	t.Helper()
	owners := staticOwners{7: {ID: 7, Name: "Ana"}}
	repo := memory.NewRepository()
	publisher := &capturePublisher{}
	service := listingapp.NewService(repo, owners)
	return listingactivities.NewActivities(service, repo, publisher), repo, publisher
}

func TestPersistListing_StoresWithoutPublishing(t *testing.T) {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestActivityEnvironment()
	activities, repo, publisher := newActivities(t)
	env.RegisterActivity(activities)

	value, err := env.ExecuteActivity(activities.PersistListing, validSubmission(7))
	require.NoError(t, err)
	var saved listingtypes.ListingProjection
	require.NoError(t, value.Get(&saved))
	require.NotNil(t, saved.Entity)
	assert.Equal(t, domain.ModerationPending, saved.Entity.Moderation)

	stored, err := repo.GetByID(context.Background(), saved.Entity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mel", stored.Entity.Name)
	assert.Empty(t, publisher.events)
}

func TestPersistListing_InvalidInputIsNotRetried(t *testing.T) {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestActivityEnvironment()
	activities, _, _ := newActivities(t)
	env.RegisterActivity(activities)

	input := validSubmission(7)
	input.Details.Name = ""
	_, err := env.ExecuteActivity(activities.PersistListing, input)
	require.Error(t, err)

	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, listingactivities.ErrTypeInvalidListing, appErr.Type())
	assert.True(t, appErr.NonRetryable())
}

func TestAnnounceListing_PublishesSubmission(t *testing.T) {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestActivityEnvironment()
	activities, repo, publisher := newActivities(t)
	env.RegisterActivity(activities)

	listing, err := domain.NewListing(domain.Owner{ID: 7, Name: "Ana"}, domain.Details{
		Name:        "Tom",
		Species:     domain.SpeciesCat,
		Size:        domain.SizeMedium,
		Sex:         domain.SexMale,
		AgeMonths:   30,
		Description: "Gato calmo",
		City:        "Campinas",
		Region:      "SP",
	})
	require.NoError(t, err)
	saved, err := repo.Save(context.Background(), listing)
	require.NoError(t, err)

	_, err = env.ExecuteActivity(activities.AnnounceListing, listingactivities.AnnounceInput{ListingID: saved.Entity.ID})
	require.NoError(t, err)

	require.Len(t, publisher.events, 1)
	submitted, ok := publisher.events[0].(domain.ListingSubmitted)
	require.True(t, ok)
	assert.Equal(t, saved.Entity.ID, submitted.ListingID)
	assert.Equal(t, int64(7), submitted.OwnerID)
}
