package domain

// PetRecord is the read-only view of a listing the assistant can suggest.
type PetRecord struct {
	ID            int64
	Name          string
	Species       Species
	SpeciesLabel  string
	Size          Size
	SizeLabel     string
	Sex           Sex
	AgeMonths     int
	City          string
	Region        string
	Approved      bool
	Available     bool
	OwnerVerified bool
}

// User is the requesting account as seen by the assistant.
type User struct {
	ID     int64
	Name   string
	City   string
	Region string
	Staff  bool
}

// HasLocation reports whether matches should be narrowed to the user's area.
func (u User) HasLocation() bool {
	return u.City != "" && u.Region != ""
}
