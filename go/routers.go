package adoptionserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Access is the authentication level a route requires.
type Access int

const (
	// Public routes need no credentials.
	Public Access = iota
	// Viewer routes accept an optional bearer token.
	Viewer
	// Member routes require a valid bearer token.
	Member
	// Staff routes require a staff account.
	Staff
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
	// Access guards the route.
	Access Access
}

// ApiHandleFunctions groups the handlers of every API section.
type ApiHandleFunctions struct {
	AccountAPI     AccountAPI
	AdminAPI       AdminAPI
	ApplicationAPI ApplicationAPI
	ChatAPI        ChatAPI
	ListingAPI     ListingAPI
	Authenticator  Authenticator
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions, middleware ...gin.HandlerFunc) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions, middleware...)
}

// NewRouterWithGinEngine adds the routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions, middleware ...gin.HandlerFunc) *gin.Engine {
	router.Use(middleware...)
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		handlers := append(guards(route.Access, handleFunctions.Authenticator), route.HandlerFunc)
		router.Handle(route.Method, route.Pattern, handlers...)
	}
	return router
}

// DefaultHandleFunc is the default handler for routes without an implementation.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func guards(access Access, authenticator Authenticator) []gin.HandlerFunc {
	switch access {
	case Viewer:
		return []gin.HandlerFunc{OptionalAccount(authenticator)}
	case Member:
		return []gin.HandlerFunc{RequireAccount(authenticator)}
	case Staff:
		return []gin.HandlerFunc{RequireAccount(authenticator), RequireStaff()}
	default:
		return nil
	}
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{"Register", http.MethodPost, "/v1/accounts/register", handleFunctions.AccountAPI.Register, Public},
		{"Login", http.MethodPost, "/v1/accounts/login", handleFunctions.AccountAPI.Login, Public},
		{"Logout", http.MethodPost, "/v1/accounts/logout", handleFunctions.AccountAPI.Logout, Member},
		{"GetMe", http.MethodGet, "/v1/accounts/me", handleFunctions.AccountAPI.GetMe, Member},
		{"UpdateMe", http.MethodPut, "/v1/accounts/me", handleFunctions.AccountAPI.UpdateMe, Member},

		{"SearchListings", http.MethodGet, "/v1/listings", handleFunctions.ListingAPI.Search, Public},
		{"FeaturedListings", http.MethodGet, "/v1/listings/featured", handleFunctions.ListingAPI.Featured, Public},
		{"MyListings", http.MethodGet, "/v1/listings/mine", handleFunctions.ListingAPI.Mine, Member},
		{"GetListing", http.MethodGet, "/v1/listings/:listingId", handleFunctions.ListingAPI.GetListing, Viewer},
		{"SubmitListing", http.MethodPost, "/v1/listings", handleFunctions.ListingAPI.Submit, Member},
		{"UpdateListing", http.MethodPut, "/v1/listings/:listingId", handleFunctions.ListingAPI.Update, Member},
		{"ChangeAdoptionStatus", http.MethodPost, "/v1/listings/:listingId/adoption-status", handleFunctions.ListingAPI.ChangeAdoptionStatus, Member},

		{"Apply", http.MethodPost, "/v1/listings/:listingId/applications", handleFunctions.ApplicationAPI.Apply, Member},
		{"ReceivedApplications", http.MethodGet, "/v1/applications/received", handleFunctions.ApplicationAPI.ListReceived, Member},
		{"SentApplications", http.MethodGet, "/v1/applications/sent", handleFunctions.ApplicationAPI.ListSent, Member},
		{"ViewApplication", http.MethodGet, "/v1/applications/:applicationId", handleFunctions.ApplicationAPI.View, Member},
		{"RespondApplication", http.MethodPost, "/v1/applications/:applicationId/response", handleFunctions.ApplicationAPI.Respond, Member},

		{"SendChatMessage", http.MethodPost, "/v1/chat/messages", handleFunctions.ChatAPI.SendMessage, Member},
		{"SubmitChatFeedback", http.MethodPost, "/v1/chat/feedback", handleFunctions.ChatAPI.SubmitFeedback, Member},
		{"ChatHistory", http.MethodGet, "/v1/chat/history", handleFunctions.ChatAPI.History, Member},
		{"ChatSuggestions", http.MethodGet, "/v1/chat/suggestions", handleFunctions.ChatAPI.Suggestions, Member},

		{"ModerateListing", http.MethodPost, "/v1/admin/listings/:listingId/moderation", handleFunctions.AdminAPI.ModerateListing, Staff},
		{"VerifyAccount", http.MethodPost, "/v1/admin/accounts/:accountId/verification", handleFunctions.AdminAPI.VerifyAccount, Staff},
		{"ChatStats", http.MethodGet, "/v1/admin/chat/stats", handleFunctions.AdminAPI.ChatStats, Staff},
	}
}
