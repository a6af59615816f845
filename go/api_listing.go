package adoptionserver

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	accountdomain "github.com/Apurer/petadopt-api/internal/domains/accounts/domain"
	listinghttpmapper "github.com/Apurer/petadopt-api/internal/domains/listings/adapters/http/mapper"
	listingtypes "github.com/Apurer/petadopt-api/internal/domains/listings/application/types"
	listingdomain "github.com/Apurer/petadopt-api/internal/domains/listings/domain"
	listingports "github.com/Apurer/petadopt-api/internal/domains/listings/ports"
	apierrors "github.com/Apurer/petadopt-api/internal/shared/errors"
)

// IdempotencyKeyHeader lets clients retry listing submissions safely.
const IdempotencyKeyHeader = "Idempotency-Key"

// AccountCounter reports the number of registered accounts for the home page.
type AccountCounter interface {
	CountAccounts(ctx context.Context) (int64, error)
}

// ListingAPI wires HTTP transport with the listings bounded context service and workflows.
type ListingAPI struct {
	service   listingports.Service
	workflows listingports.WorkflowOrchestrator
	accounts  AccountCounter
}

// NewListingAPI creates a ListingAPI backed by the provided service.
func NewListingAPI(service listingports.Service, workflows listingports.WorkflowOrchestrator, accounts AccountCounter) ListingAPI {
	return ListingAPI{service: service, workflows: workflows, accounts: accounts}
}

// Get /v1/listings
// Search the public catalog
func (api *ListingAPI) Search(c *gin.Context) {
	page := 1
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		page = parsed
	}
	verifiedOnly, _ := strconv.ParseBool(c.Query("verified"))
	input := listingtypes.SearchInput{
		Species:      c.Query("species"),
		Size:         c.Query("size"),
		Sex:          c.Query("sex"),
		AgeBracket:   c.Query("age"),
		City:         c.Query("city"),
		Region:       c.Query("region"),
		VerifiedOnly: verifiedOnly,
		Page:         page,
	}
	result, err := api.service.Search(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listinghttpmapper.FromSearchResult(result))
}

// Get /v1/listings/featured
// Home page listings and counters
func (api *ListingAPI) Featured(c *gin.Context) {
	ctx := c.Request.Context()
	featured, err := api.service.Featured(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	home := listinghttpmapper.Home{
		Featured:       listinghttpmapper.FromProjections(featured.Items),
		TotalApproved:  featured.Summary.Approved,
		TotalAvailable: featured.Summary.Listed,
	}
	if api.accounts != nil {
		total, err := api.accounts.CountAccounts(ctx)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		home.TotalAccounts = total
	}
	c.JSON(http.StatusOK, home)
}

// Get /v1/listings/:listingId
// Listing details. Listings not yet approved are only shown to their owner and staff.
func (api *ListingAPI) GetListing(c *gin.Context) {
	id, ok := parseIDParam(c, "listingId")
	if !ok {
		return
	}
	listing, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	viewer, _ := currentAccount(c)
	if !visibleTo(listing.Entity, viewer) {
		respondProblem(c, apierrors.NewNotFoundProblem("listing", id))
		return
	}
	c.JSON(http.StatusOK, listinghttpmapper.FromProjection(listing))
}

// Get /v1/listings/mine
// Owner dashboard
func (api *ListingAPI) Mine(c *gin.Context) {
	account, ok := mustAccount(c)
	if !ok {
		return
	}
	result, err := api.service.ListByOwner(c.Request.Context(), account.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listinghttpmapper.OwnerDashboard{
		Items: listinghttpmapper.FromProjections(result.Items),
		Stats: listinghttpmapper.FromSummary(result.Summary),
	})
}

// Post /v1/listings
// Publish a listing
func (api *ListingAPI) Submit(c *gin.Context) {
	account, ok := mustAccount(c)
	if !ok {
		return
	}
	var payload listinghttpmapper.ListingDetails
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	input := listingtypes.SubmitInput{
		OwnerID:        account.ID,
		IdempotencyKey: strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader)),
		Details:        listinghttpmapper.ToDetailsInput(payload),
	}
	saved, err := api.submit(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, listinghttpmapper.FromProjection(saved))
}

func (api *ListingAPI) submit(ctx context.Context, input listingtypes.SubmitInput) (*listingtypes.ListingProjection, error) {
	if api.workflows != nil {
		return api.workflows.SubmitListing(ctx, input)
	}
	return api.service.Submit(ctx, input)
}

// Put /v1/listings/:listingId
// Edit a listing
func (api *ListingAPI) Update(c *gin.Context) {
	account, ok := mustAccount(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "listingId")
	if !ok {
		return
	}
	var payload listinghttpmapper.ListingDetails
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	updated, err := api.service.Update(c.Request.Context(), listingtypes.UpdateInput{
		OwnerID:   account.ID,
		ListingID: id,
		Details:   listinghttpmapper.ToDetailsInput(payload),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listinghttpmapper.FromProjection(updated))
}

// Post /v1/listings/:listingId/adoption-status
// Move a listing through the adoption lifecycle
func (api *ListingAPI) ChangeAdoptionStatus(c *gin.Context) {
	account, ok := mustAccount(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "listingId")
	if !ok {
		return
	}
	var payload listinghttpmapper.AdoptionStatusChange
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	updated, err := api.service.ChangeAdoptionStatus(c.Request.Context(), listingtypes.ChangeAdoptionStatusInput{
		OwnerID:   account.ID,
		ListingID: id,
		Status:    payload.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listinghttpmapper.FromProjection(updated))
}

func visibleTo(listing *listingdomain.Listing, viewer *accountdomain.Account) bool {
	if listing == nil {
		return false
	}
	if listing.Moderation == listingdomain.ModerationApproved {
		return true
	}
	return viewer != nil && (viewer.Staff || viewer.ID == listing.OwnerID)
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	value := c.Param(name)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail("invalid "+name))
		return 0, false
	}
	return id, true
}
