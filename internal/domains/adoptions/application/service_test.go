package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/petadopt-api/internal/domains/adoptions/adapters/memory"
	"github.com/Apurer/petadopt-api/internal/domains/adoptions/application"
	adoptiontypes "github.com/Apurer/petadopt-api/internal/domains/adoptions/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/adoptions/domain"
	"github.com/Apurer/petadopt-api/internal/domains/adoptions/ports"
)

type fakeCatalog map[int64]domain.Pet

func (f fakeCatalog) Pet(_ context.Context, id int64) (domain.Pet, error) {
	pet, ok := f[id]
	if !ok {
		return domain.Pet{}, ports.ErrPetUnavailable
	}
	return pet, nil
}

type recordingPublisher struct {
	events []domain.Event
}

func (p *recordingPublisher) Publish(_ context.Context, events ...domain.Event) error {
	p.events = append(p.events, events...)
	return nil
}

const (
	ownerID     int64 = 1
	applicantID int64 = 2
	listedPet   int64 = 10
	adoptedPet  int64 = 11
	secondPet   int64 = 12
)

func newTestService(t *testing.T) (*application.Service, *recordingPublisher, *time.Time) {
	t.Helper()
	catalog := fakeCatalog{
		listedPet:  {ID: listedPet, OwnerID: ownerID, Name: "Luna", Listed: true},
		adoptedPet: {ID: adoptedPet, OwnerID: ownerID, Name: "Bob", Listed: false},
		secondPet:  {ID: secondPet, OwnerID: ownerID, Name: "Mel", Listed: true},
	}
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	publisher := &recordingPublisher{}
	svc := application.NewService(memory.NewRepository(), catalog,
		application.WithEventPublisher(publisher),
		application.WithClock(func() time.Time { return now }),
	)
	return svc, publisher, &now
}

func answers() adoptiontypes.AnswersInput {
	return adoptiontypes.AnswersInput{
		Experience:    "Muita",
		Housing:       "Casa",
		OtherPets:     "Sim",
		AvailableTime: "Muito",
		Motivation:    "Tenho quintal grande",
		Referral:      "Amigos",
		ContactPhone:  "(21) 97777-6666",
	}
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	svc, publisher, _ := newTestService(t)

	created, err := svc.Apply(ctx, adoptiontypes.ApplyInput{ApplicantID: applicantID, PetID: listedPet, Answers: answers()})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, ownerID, created.OwnerID)
	assert.Equal(t, domain.StatusSent, created.Status)

	require.Len(t, publisher.events, 1)
	submitted, ok := publisher.events[0].(domain.ApplicationSubmitted)
	require.True(t, ok)
	assert.Equal(t, created.ID, submitted.ApplicationID)

	_, err = svc.Apply(ctx, adoptiontypes.ApplyInput{ApplicantID: applicantID, PetID: listedPet, Answers: answers()})
	assert.ErrorIs(t, err, ports.ErrAlreadyApplied)
	assert.Len(t, publisher.events, 1)
}

func TestApply_Rejections(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	_, err := svc.Apply(ctx, adoptiontypes.ApplyInput{ApplicantID: applicantID, PetID: adoptedPet, Answers: answers()})
	assert.ErrorIs(t, err, ports.ErrPetUnavailable)

	_, err = svc.Apply(ctx, adoptiontypes.ApplyInput{ApplicantID: applicantID, PetID: 999, Answers: answers()})
	assert.ErrorIs(t, err, ports.ErrPetUnavailable)

	_, err = svc.Apply(ctx, adoptiontypes.ApplyInput{ApplicantID: ownerID, PetID: listedPet, Answers: answers()})
	assert.ErrorIs(t, err, application.ErrInvalidInput)

	bad := answers()
	bad.Housing = "Castelo"
	_, err = svc.Apply(ctx, adoptiontypes.ApplyInput{ApplicantID: applicantID, PetID: listedPet, Answers: bad})
	assert.ErrorIs(t, err, application.ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrInvalidHousing)
}

func TestListings_NewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, _, now := newTestService(t)

	first, err := svc.Apply(ctx, adoptiontypes.ApplyInput{ApplicantID: applicantID, PetID: listedPet, Answers: answers()})
	require.NoError(t, err)
	*now = now.Add(time.Hour)
	second, err := svc.Apply(ctx, adoptiontypes.ApplyInput{ApplicantID: applicantID, PetID: secondPet, Answers: answers()})
	require.NoError(t, err)

	received, err := svc.ListReceived(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, received, 2)
	assert.Equal(t, second.ID, received[0].ID)
	assert.Equal(t, first.ID, received[1].ID)

	sent, err := svc.ListSent(ctx, applicantID)
	require.NoError(t, err)
	assert.Len(t, sent, 2)

	none, err := svc.ListReceived(ctx, applicantID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestView_KeepsFirstTimestamp(t *testing.T) {
	ctx := context.Background()
	svc, _, now := newTestService(t)
	created, err := svc.Apply(ctx, adoptiontypes.ApplyInput{ApplicantID: applicantID, PetID: listedPet, Answers: answers()})
	require.NoError(t, err)

	_, err = svc.View(ctx, adoptiontypes.ViewInput{OwnerID: applicantID, ApplicationID: created.ID})
	assert.ErrorIs(t, err, ports.ErrNotFound)

	firstView := *now
	viewed, err := svc.View(ctx, adoptiontypes.ViewInput{OwnerID: ownerID, ApplicationID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusViewed, viewed.Status)

	*now = now.Add(2 * time.Hour)
	again, err := svc.View(ctx, adoptiontypes.ViewInput{OwnerID: ownerID, ApplicationID: created.ID})
	require.NoError(t, err)
	require.NotNil(t, again.ViewedAt)
	assert.Equal(t, firstView, *again.ViewedAt)
}

func TestRespond(t *testing.T) {
	ctx := context.Background()
	svc, publisher, _ := newTestService(t)
	created, err := svc.Apply(ctx, adoptiontypes.ApplyInput{ApplicantID: applicantID, PetID: listedPet, Answers: answers()})
	require.NoError(t, err)

	_, err = svc.Respond(ctx, adoptiontypes.RespondInput{OwnerID: applicantID, ApplicationID: created.ID, Approve: true})
	assert.ErrorIs(t, err, ports.ErrNotFound)

	answered, err := svc.Respond(ctx, adoptiontypes.RespondInput{OwnerID: ownerID, ApplicationID: created.ID, Notes: "Ligo amanhã", Approve: true})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAnswered, answered.Status)
	assert.Equal(t, "Ligo amanhã", answered.OwnerNotes)
	require.NotNil(t, answered.Approved)
	assert.True(t, *answered.Approved)

	require.Len(t, publisher.events, 2)
	assert.Equal(t, "adoptions.application.answered", publisher.events[1].EventName())
}
