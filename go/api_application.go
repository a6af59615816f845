package adoptionserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adoptionhttpmapper "github.com/Apurer/petadopt-api/internal/domains/adoptions/adapters/http/mapper"
	adoptiontypes "github.com/Apurer/petadopt-api/internal/domains/adoptions/application/types"
	adoptionports "github.com/Apurer/petadopt-api/internal/domains/adoptions/ports"
)

// ApplicationAPI wires HTTP transport with the adoptions bounded context.
type ApplicationAPI struct {
	service adoptionports.Service
}

// NewApplicationAPI wires dependencies.
func NewApplicationAPI(service adoptionports.Service) ApplicationAPI {
	return ApplicationAPI{service: service}
}

// Post /v1/listings/:listingId/applications
// Apply to adopt a listed pet
func (api *ApplicationAPI) Apply(c *gin.Context) {
	account, ok := mustAccount(c)
	if !ok {
		return
	}
	petID, ok := parseIDParam(c, "listingId")
	if !ok {
		return
	}
	var payload adoptionhttpmapper.Answers
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	application, err := api.service.Apply(c.Request.Context(), adoptionhttpmapper.ToApplyInput(account.ID, petID, payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, adoptionhttpmapper.FromDomainApplication(application))
}

// Get /v1/applications/received
// Applications for the caller's pets
func (api *ApplicationAPI) ListReceived(c *gin.Context) {
	account, ok := mustAccount(c)
	if !ok {
		return
	}
	applications, err := api.service.ListReceived(c.Request.Context(), account.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, adoptionhttpmapper.FromDomainApplications(applications))
}

// Get /v1/applications/sent
// Applications the caller submitted
func (api *ApplicationAPI) ListSent(c *gin.Context) {
	account, ok := mustAccount(c)
	if !ok {
		return
	}
	applications, err := api.service.ListSent(c.Request.Context(), account.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, adoptionhttpmapper.FromDomainApplications(applications))
}

// Get /v1/applications/:applicationId
// Open a received application, marking it viewed
func (api *ApplicationAPI) View(c *gin.Context) {
	account, ok := mustAccount(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "applicationId")
	if !ok {
		return
	}
	application, err := api.service.View(c.Request.Context(), adoptiontypes.ViewInput{OwnerID: account.ID, ApplicationID: id})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, adoptionhttpmapper.FromDomainApplication(application))
}

// Post /v1/applications/:applicationId/response
// Answer a received application
func (api *ApplicationAPI) Respond(c *gin.Context) {
	account, ok := mustAccount(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "applicationId")
	if !ok {
		return
	}
	var payload adoptionhttpmapper.Response
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	application, err := api.service.Respond(c.Request.Context(), adoptiontypes.RespondInput{
		OwnerID:       account.ID,
		ApplicationID: id,
		Notes:         payload.Notes,
		Approve:       payload.Approve,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, adoptionhttpmapper.FromDomainApplication(application))
}
