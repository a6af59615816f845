package types

// DetailsInput carries the raw wire values of the owner-editable fields.
type DetailsInput struct {
	Name        string
	Species     string
	Size        string
	Sex         string
	AgeMonths   int
	Description string
	History     string
	HealthInfo  string
	City        string
	Region      string
	PhotoURLs   []string
}

// SubmitInput publishes a new listing for OwnerID.
type SubmitInput struct {
	OwnerID        int64
	IdempotencyKey string
	Details        DetailsInput
}

// UpdateInput replaces the details of a listing owned by OwnerID.
type UpdateInput struct {
	OwnerID   int64
	ListingID int64
	Details   DetailsInput
}

// ChangeAdoptionStatusInput moves a listing through the adoption lifecycle.
type ChangeAdoptionStatusInput struct {
	OwnerID   int64
	ListingID int64
	Status    string
}

// ModerateInput is a staff decision on a listing.
type ModerateInput struct {
	StaffID   int64
	ListingID int64
	Approve   bool
	Reason    string
}

// SearchInput filters the public catalog. Empty fields do not constrain.
type SearchInput struct {
	Species      string
	Size         string
	Sex          string
	AgeBracket   string
	City         string
	Region       string
	VerifiedOnly bool
	Page         int
}
