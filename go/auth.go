package adoptionserver

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	accountdomain "github.com/Apurer/petadopt-api/internal/domains/accounts/domain"
	apierrors "github.com/Apurer/petadopt-api/internal/shared/errors"
)

const accountContextKey = "adoptionserver.account"

// Authenticator resolves a bearer token to the account that owns it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*accountdomain.Account, error)
}

// RequireAccount rejects requests without a valid bearer token.
func RequireAccount(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			respondProblem(c, apierrors.ErrUnauthorized.WithDetail("bearer token required"))
			return
		}
		if !authenticate(c, authenticator, token) {
			return
		}
		c.Next()
	}
}

// OptionalAccount resolves the caller when a token is present. A present but
// invalid token is still rejected.
func OptionalAccount(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if ok && !authenticate(c, authenticator, token) {
			return
		}
		c.Next()
	}
}

// RequireStaff must run after RequireAccount.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := currentAccount(c)
		if !ok || !account.Staff {
			respondProblem(c, apierrors.ErrForbidden.WithDetail("staff role required"))
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, authenticator Authenticator, token string) bool {
	if authenticator == nil {
		respondProblem(c, apierrors.ErrUnauthorized.WithDetail("authentication unavailable"))
		return false
	}
	account, err := authenticator.Authenticate(c.Request.Context(), token)
	if err != nil {
		respondServiceError(c, err)
		return false
	}
	c.Set(accountContextKey, account)
	return true
}

func currentAccount(c *gin.Context) (*accountdomain.Account, bool) {
	value, ok := c.Get(accountContextKey)
	if !ok {
		return nil, false
	}
	account, ok := value.(*accountdomain.Account)
	return account, ok && account != nil
}

// mustAccount is for handlers behind RequireAccount.
func mustAccount(c *gin.Context) (*accountdomain.Account, bool) {
	account, ok := currentAccount(c)
	if !ok {
		respondProblem(c, apierrors.ErrUnauthorized.WithDetail("bearer token required"))
	}
	return account, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
