package domain

import "strings"

type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

const (
	// PuppyMaxAgeMonths bounds "filhote" and "bebê".
	PuppyMaxAgeMonths = 6
	// YoungMaxAgeMonths bounds "jovem".
	YoungMaxAgeMonths = 24
	// AdultMinAgeMonths bounds "adulto".
	AdultMinAgeMonths = 12
)

// Preferences is a sparse set of search constraints. Zero values and nil
// bounds mean no constraint.
type Preferences struct {
	Species      Species
	Size         Size
	Sex          Sex
	MinAgeMonths *int
	MaxAgeMonths *int
}

// IsEmpty reports whether no constraint was detected.
func (p Preferences) IsEmpty() bool {
	return p.Species == "" && p.Size == "" && p.Sex == "" && p.MinAgeMonths == nil && p.MaxAgeMonths == nil
}

// ExtractPreferences scans message for species, size, sex and age tokens.
// Each group is detected independently; within a group the first listed
// alternative wins.
func ExtractPreferences(message string) Preferences {
	lower := strings.ToLower(message)
	var prefs Preferences

	switch {
	case containsAny(lower, "cachorro", "cão", "dog"):
		prefs.Species = SpeciesDog
	case containsAny(lower, "gato", "cat"):
		prefs.Species = SpeciesCat
	}

	switch {
	case containsAny(lower, "pequeno", "mini"):
		prefs.Size = SizeSmall
	case containsAny(lower, "médio", "medio"):
		prefs.Size = SizeMedium
	case containsAny(lower, "grande"):
		prefs.Size = SizeLarge
	}

	switch {
	case containsAny(lower, "macho", "machinho"):
		prefs.Sex = SexMale
	case containsAny(lower, "fêmea", "femea"):
		prefs.Sex = SexFemale
	}

	switch {
	case containsAny(lower, "filhote", "bebê", "bebe"):
		prefs.MaxAgeMonths = intPtr(PuppyMaxAgeMonths)
	case containsAny(lower, "jovem"):
		prefs.MaxAgeMonths = intPtr(YoungMaxAgeMonths)
	}

	if containsAny(lower, "adulto") {
		prefs.MinAgeMonths = intPtr(AdultMinAgeMonths)
	}
	return prefs
}

func intPtr(v int) *int { return &v }
