package adoptionserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	accounthttpmapper "github.com/Apurer/petadopt-api/internal/domains/accounts/adapters/http/mapper"
	accounttypes "github.com/Apurer/petadopt-api/internal/domains/accounts/application/types"
	accountports "github.com/Apurer/petadopt-api/internal/domains/accounts/ports"
)

// AccountAPI wires HTTP transport with the accounts bounded context.
type AccountAPI struct {
	service accountports.Service
}

// NewAccountAPI wires dependencies.
func NewAccountAPI(service accountports.Service) AccountAPI {
	return AccountAPI{service: service}
}

// Post /v1/accounts/register
// Create an account
func (api *AccountAPI) Register(c *gin.Context) {
	var payload accounthttpmapper.Registration
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	account, err := api.service.Register(c.Request.Context(), accounthttpmapper.ToRegisterInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, accounthttpmapper.FromDomainAccount(account))
}

// Post /v1/accounts/login
// Exchange credentials for a bearer token
func (api *AccountAPI) Login(c *gin.Context) {
	var payload accounthttpmapper.Credentials
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	result, err := api.service.Login(c.Request.Context(), accounttypes.LoginInput{Email: payload.Email, Password: payload.Password})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounthttpmapper.FromLoginResult(result))
}

// Post /v1/accounts/logout
// Revoke the current bearer token
func (api *AccountAPI) Logout(c *gin.Context) {
	token, _ := bearerToken(c)
	if err := api.service.Logout(c.Request.Context(), token); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Get /v1/accounts/me
// Current account
func (api *AccountAPI) GetMe(c *gin.Context) {
	account, ok := mustAccount(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, accounthttpmapper.FromDomainAccount(account))
}

// Put /v1/accounts/me
// Update the current account's profile
func (api *AccountAPI) UpdateMe(c *gin.Context) {
	account, ok := mustAccount(c)
	if !ok {
		return
	}
	var payload accounthttpmapper.Profile
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	updated, err := api.service.UpdateProfile(c.Request.Context(), accounthttpmapper.ToUpdateProfileInput(account.ID, payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounthttpmapper.FromDomainAccount(updated))
}
