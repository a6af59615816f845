package adoptionserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	accounthttpmapper "github.com/Apurer/petadopt-api/internal/domains/accounts/adapters/http/mapper"
	accounttypes "github.com/Apurer/petadopt-api/internal/domains/accounts/application/types"
	accountports "github.com/Apurer/petadopt-api/internal/domains/accounts/ports"
	chathttpmapper "github.com/Apurer/petadopt-api/internal/domains/chat/adapters/http/mapper"
	chatports "github.com/Apurer/petadopt-api/internal/domains/chat/ports"
	listinghttpmapper "github.com/Apurer/petadopt-api/internal/domains/listings/adapters/http/mapper"
	listingtypes "github.com/Apurer/petadopt-api/internal/domains/listings/application/types"
	listingports "github.com/Apurer/petadopt-api/internal/domains/listings/ports"
)

// AdminAPI exposes the staff operations.
type AdminAPI struct {
	accounts accountports.Service
	listings listingports.Service
	chat     chatports.Service
}

// NewAdminAPI wires dependencies.
func NewAdminAPI(accounts accountports.Service, listings listingports.Service, chat chatports.Service) AdminAPI {
	return AdminAPI{accounts: accounts, listings: listings, chat: chat}
}

// Post /v1/admin/listings/:listingId/moderation
// Approve or reject a listing
func (api *AdminAPI) ModerateListing(c *gin.Context) {
	staff, ok := mustAccount(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "listingId")
	if !ok {
		return
	}
	var payload listinghttpmapper.ModerationDecision
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	moderated, err := api.listings.Moderate(c.Request.Context(), listingtypes.ModerateInput{
		StaffID:   staff.ID,
		ListingID: id,
		Approve:   *payload.Approve,
		Reason:    payload.Reason,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listinghttpmapper.FromProjection(moderated))
}

// Post /v1/admin/accounts/:accountId/verification
// Grant or revoke the verified flag
func (api *AdminAPI) VerifyAccount(c *gin.Context) {
	staff, ok := mustAccount(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "accountId")
	if !ok {
		return
	}
	var payload accounthttpmapper.Verification
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	account, err := api.accounts.SetVerified(c.Request.Context(), accounttypes.SetVerifiedInput{
		StaffID:   staff.ID,
		AccountID: id,
		Verified:  *payload.Verified,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounthttpmapper.FromDomainAccount(account))
}

// Get /v1/admin/chat/stats
// Assistant usage report
func (api *AdminAPI) ChatStats(c *gin.Context) {
	staff, ok := mustAccount(c)
	if !ok {
		return
	}
	stats, err := api.chat.Stats(c.Request.Context(), staff.ID)
	if err != nil {
		respondChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, chathttpmapper.FromStats(stats))
}
