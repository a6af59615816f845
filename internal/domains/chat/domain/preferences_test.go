package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPreferences_KittenExample(t *testing.T) {
	prefs := ExtractPreferences("filhote fêmea de gato pequeno")

	assert.Equal(t, SpeciesCat, prefs.Species)
	assert.Equal(t, SizeSmall, prefs.Size)
	assert.Equal(t, SexFemale, prefs.Sex)
	require.NotNil(t, prefs.MaxAgeMonths)
	assert.Equal(t, 6, *prefs.MaxAgeMonths)
	assert.Nil(t, prefs.MinAgeMonths)
}

func TestExtractPreferences_Groups(t *testing.T) {
	adult := ExtractPreferences("Cachorro GRANDE macho adulto")
	assert.Equal(t, SpeciesDog, adult.Species)
	assert.Equal(t, SizeLarge, adult.Size)
	assert.Equal(t, SexMale, adult.Sex)
	require.NotNil(t, adult.MinAgeMonths)
	assert.Equal(t, 12, *adult.MinAgeMonths)
	assert.Nil(t, adult.MaxAgeMonths)

	young := ExtractPreferences("gato medio jovem femea")
	assert.Equal(t, SpeciesCat, young.Species)
	assert.Equal(t, SizeMedium, young.Size)
	assert.Equal(t, SexFemale, young.Sex)
	require.NotNil(t, young.MaxAgeMonths)
	assert.Equal(t, 24, *young.MaxAgeMonths)
}

func TestExtractPreferences_DogWinsOverCat(t *testing.T) {
	assert.Equal(t, SpeciesDog, ExtractPreferences("tenho um gato e quero um cão").Species)
}

func TestExtractPreferences_Empty(t *testing.T) {
	prefs := ExtractPreferences("qualquer bichinho serve")
	assert.True(t, prefs.IsEmpty())
}
