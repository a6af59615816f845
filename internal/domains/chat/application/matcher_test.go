package application_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/petadopt-api/internal/domains/chat/adapters/catalog"
	"github.com/Apurer/petadopt-api/internal/domains/chat/application"
	"github.com/Apurer/petadopt-api/internal/domains/chat/domain"
	listingmemory "github.com/Apurer/petadopt-api/internal/domains/listings/adapters/memory"
	listingdomain "github.com/Apurer/petadopt-api/internal/domains/listings/domain"
)

var (
	verifiedNGO = listingdomain.Owner{ID: 1, Name: "Patas", NGO: true, Verified: true}
	individual  = listingdomain.Owner{ID: 2, Name: "Joana"}
)

type petSeed struct {
	name    string
	owner   listingdomain.Owner
	species listingdomain.Species
	size    listingdomain.Size
	sex     listingdomain.Sex
	age     int
	city    string
	region  string
}

func seedListings(t *testing.T, seeds ...petSeed) *listingmemory.Repository {
	t.Helper()
	repo := listingmemory.NewRepository()
	tick := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.WithClock(func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	})
	for _, seed := range seeds {
		listing, err := listingdomain.NewListing(seed.owner, listingdomain.Details{
			Name:        seed.name,
			Species:     seed.species,
			Size:        seed.size,
			Sex:         seed.sex,
			AgeMonths:   seed.age,
			Description: "Carinhoso",
			City:        seed.city,
			Region:      seed.region,
		})
		require.NoError(t, err)
		_, err = repo.Save(context.Background(), listing)
		require.NoError(t, err)
	}
	return repo
}

func dog(name string, owner listingdomain.Owner, size listingdomain.Size) petSeed {
	return petSeed{name: name, owner: owner, species: listingdomain.SpeciesDog, size: size, sex: listingdomain.SexMale, age: 24, city: "Campinas", region: "SP"}
}

func TestFindMatches_OnlyApprovedAndAvailable(t *testing.T) {
	repo := seedListings(t,
		dog("Rex", verifiedNGO, listingdomain.SizeMedium),
		dog("Bob", verifiedNGO, listingdomain.SizeMedium),
		dog("Pendente", individual, listingdomain.SizeMedium),
		dog("Grandão", verifiedNGO, listingdomain.SizeLarge),
	)
	matcher := application.NewMatcher(catalog.NewListingsCatalog(repo))

	matches, err := matcher.FindMatches(context.Background(), domain.Preferences{Species: domain.SpeciesDog, Size: domain.SizeMedium}, domain.User{ID: 9})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Bob", matches[0].Name)
	assert.Equal(t, "Rex", matches[1].Name)
	for _, m := range matches {
		assert.True(t, m.Approved)
		assert.True(t, m.Available)
		assert.True(t, m.OwnerVerified)
		assert.Equal(t, "Cão", m.SpeciesLabel)
	}
}

func TestFindMatches_TruncatesToSix(t *testing.T) {
	seeds := make([]petSeed, 0, 10)
	for i := 0; i < 10; i++ {
		seeds = append(seeds, dog(fmt.Sprintf("Dog %d", i), verifiedNGO, listingdomain.SizeSmall))
	}
	matcher := application.NewMatcher(catalog.NewListingsCatalog(seedListings(t, seeds...)))

	matches, err := matcher.FindMatches(context.Background(), domain.Preferences{Species: domain.SpeciesDog}, domain.User{})
	require.NoError(t, err)
	assert.Len(t, matches, application.MaxMatches)
	assert.Equal(t, "Dog 9", matches[0].Name)
}

func TestFindMatches_EmptyIsNotAnError(t *testing.T) {
	matcher := application.NewMatcher(catalog.NewListingsCatalog(seedListings(t, dog("Rex", verifiedNGO, listingdomain.SizeMedium))))

	matches, err := matcher.FindMatches(context.Background(), domain.Preferences{Species: domain.SpeciesCat}, domain.User{})
	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestFindMatches_AgeBounds(t *testing.T) {
	puppy := dog("Filhote", verifiedNGO, listingdomain.SizeSmall)
	puppy.age = 4
	senior := dog("Idoso", verifiedNGO, listingdomain.SizeSmall)
	senior.age = 96
	matcher := application.NewMatcher(catalog.NewListingsCatalog(seedListings(t, puppy, senior)))

	young, err := matcher.FindMatches(context.Background(), domain.ExtractPreferences("filhote"), domain.User{})
	require.NoError(t, err)
	require.Len(t, young, 1)
	assert.Equal(t, "Filhote", young[0].Name)

	adult, err := matcher.FindMatches(context.Background(), domain.ExtractPreferences("adulto"), domain.User{})
	require.NoError(t, err)
	require.Len(t, adult, 1)
	assert.Equal(t, "Idoso", adult[0].Name)
}

func TestFindMatches_LocationNarrowing(t *testing.T) {
	local := dog("Local", verifiedNGO, listingdomain.SizeSmall)
	local.city = "Campinas"
	other := dog("Longe", verifiedNGO, listingdomain.SizeSmall)
	other.city = "Recife"
	other.region = "PE"
	matcher := application.NewMatcher(catalog.NewListingsCatalog(seedListings(t, local, other)))
	ctx := context.Background()

	near, err := matcher.FindMatches(ctx, domain.Preferences{}, domain.User{City: "campinas", Region: "SP"})
	require.NoError(t, err)
	require.Len(t, near, 1)
	assert.Equal(t, "Local", near[0].Name)

	nowhere, err := matcher.FindMatches(ctx, domain.Preferences{}, domain.User{City: "Manaus", Region: "AM"})
	require.NoError(t, err)
	assert.Empty(t, nowhere)

	cityOnly, err := matcher.FindMatches(ctx, domain.Preferences{}, domain.User{City: "Manaus"})
	require.NoError(t, err)
	assert.Len(t, cityOnly, 2)

	suggested, err := matcher.Suggest(ctx, domain.User{City: "Recife", Region: "PE"})
	require.NoError(t, err)
	require.Len(t, suggested, 1)
	assert.Equal(t, "Longe", suggested[0].Name)
}
