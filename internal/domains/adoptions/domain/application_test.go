package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAnswers() Answers {
	return Answers{
		Experience:    "Moderada",
		Housing:       "Casa",
		OtherPets:     "Não",
		AvailableTime: "Muito",
		Motivation:    " Quero companhia ",
		Referral:      "Instagram",
		ContactPhone:  "(11) 99999-9999",
	}
}

func TestNewApplication(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	pet := Pet{ID: 7, OwnerID: 1, Name: "Luna", Listed: true}

	app, err := NewApplication(pet, 2, validAnswers(), now)
	require.NoError(t, err)
	assert.Equal(t, StatusSent, app.Status)
	assert.Equal(t, int64(1), app.OwnerID)
	assert.Equal(t, "Quero companhia", app.Answers.Motivation)
	assert.Equal(t, now, app.SentAt)
	require.Len(t, app.Events(), 1)
	assert.Equal(t, "adoptions.application.submitted", app.Events()[0].EventName())

	_, err = NewApplication(pet, 1, validAnswers(), now)
	assert.ErrorIs(t, err, ErrOwnListing)
}

func TestAnswersValidation(t *testing.T) {
	cases := map[string]struct {
		mutate func(*Answers)
		err    error
	}{
		"experience": {func(a *Answers) { a.Experience = "Alguma" }, ErrInvalidExperience},
		"housing":    {func(a *Answers) { a.Housing = "" }, ErrInvalidHousing},
		"other pets": {func(a *Answers) { a.OtherPets = "Talvez" }, ErrInvalidOtherPets},
		"time":       {func(a *Answers) { a.AvailableTime = "Nenhum" }, ErrInvalidAvailableTime},
		"motivation": {func(a *Answers) { a.Motivation = "  " }, ErrEmptyMotivation},
		"referral":   {func(a *Answers) { a.Referral = "" }, ErrEmptyReferral},
		"phone":      {func(a *Answers) { a.ContactPhone = "+55 (11) 99999-99999-9" }, ErrInvalidContactPhone},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			answers := validAnswers()
			tc.mutate(&answers)
			_, err := answers.Normalize()
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestAnswersMapRoundTrip(t *testing.T) {
	answers, err := validAnswers().Normalize()
	require.NoError(t, err)
	assert.Equal(t, answers, AnswersFromMap(answers.Map()))
}

func TestMarkViewed_KeepsFirstTimestamp(t *testing.T) {
	first := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	app := &Application{Status: StatusSent}

	assert.True(t, app.MarkViewed(first))
	assert.False(t, app.MarkViewed(first.Add(time.Hour)))
	assert.Equal(t, first, *app.ViewedAt)
	assert.Equal(t, StatusViewed, app.Status)
	assert.Equal(t, "Visualizada", app.Status.Label())
}

func TestRespond(t *testing.T) {
	now := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	app := &Application{ID: 4, Status: StatusSent}

	app.Respond(" Vamos conversar ", true, now)
	assert.Equal(t, StatusAnswered, app.Status)
	assert.Equal(t, "Vamos conversar", app.OwnerNotes)
	require.NotNil(t, app.Approved)
	assert.True(t, *app.Approved)
	assert.Equal(t, now, *app.ViewedAt)
	assert.Equal(t, now, *app.AnsweredAt)

	events := app.Events()
	require.Len(t, events, 1)
	answered, ok := events[0].(ApplicationAnswered)
	require.True(t, ok)
	assert.Equal(t, int64(4), answered.ApplicationID)
	assert.True(t, answered.Approved)

	app.MarkViewed(now.Add(time.Hour))
	assert.Equal(t, StatusAnswered, app.Status)
}
