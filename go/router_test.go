package adoptionserver_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	adoptionserver "github.com/Apurer/petadopt-api/go"
	accountmemory "github.com/Apurer/petadopt-api/internal/domains/accounts/adapters/memory"
	accountsapp "github.com/Apurer/petadopt-api/internal/domains/accounts/application"
	adoptionlistings "github.com/Apurer/petadopt-api/internal/domains/adoptions/adapters/listings"
	adoptionmemory "github.com/Apurer/petadopt-api/internal/domains/adoptions/adapters/memory"
	adoptionsapp "github.com/Apurer/petadopt-api/internal/domains/adoptions/application"
	chatcatalog "github.com/Apurer/petadopt-api/internal/domains/chat/adapters/catalog"
	chatdirectory "github.com/Apurer/petadopt-api/internal/domains/chat/adapters/directory"
	chathttpmapper "github.com/Apurer/petadopt-api/internal/domains/chat/adapters/http/mapper"
	chatmemory "github.com/Apurer/petadopt-api/internal/domains/chat/adapters/memory"
	chatapp "github.com/Apurer/petadopt-api/internal/domains/chat/application"
	chatdomain "github.com/Apurer/petadopt-api/internal/domains/chat/domain"
	listingaccounts "github.com/Apurer/petadopt-api/internal/domains/listings/adapters/accounts"
	listingmemory "github.com/Apurer/petadopt-api/internal/domains/listings/adapters/memory"
	listingworkflows "github.com/Apurer/petadopt-api/internal/domains/listings/adapters/workflows"
	listingsapp "github.com/Apurer/petadopt-api/internal/domains/listings/application"
	"github.com/Apurer/petadopt-api/internal/platform/auth"
	apierrors "github.com/Apurer/petadopt-api/internal/shared/errors"
)

const staffEmail = "equipe@amigopet.example"

type testApp struct {
	router *gin.Engine
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewTokens("router-test-secret")
	require.NoError(t, err)
	accountRepo := accountmemory.NewRepository()
	accountService := accountsapp.NewService(
		accountRepo,
		accountmemory.NewSessionStore(),
		auth.NewPasswords(bcrypt.MinCost),
		tokens,
		accountsapp.WithStaffEmails(staffEmail),
	)

	owners := listingaccounts.NewOwnerDirectory(accountRepo)
	listingRepo := listingmemory.NewRepository(listingmemory.WithOwnerDirectory(owners))
	listingService := listingsapp.NewService(listingRepo, owners, listingsapp.WithIdempotencyStore(listingmemory.NewIdempotencyStore()))

	adoptionService := adoptionsapp.NewService(adoptionmemory.NewRepository(), adoptionlistings.NewPetCatalog(listingRepo))
	chatService := chatapp.NewService(
		chatmemory.NewInteractionRepository(),
		chatcatalog.NewListingsCatalog(listingRepo),
		chatdirectory.NewAccountsDirectory(accountRepo),
		chatapp.WithResponder(chatdomain.NewResponder(func(int) int { return 0 })),
	)

	handlers := adoptionserver.ApiHandleFunctions{
		AccountAPI:     adoptionserver.NewAccountAPI(accountService),
		AdminAPI:       adoptionserver.NewAdminAPI(accountService, listingService, chatService),
		ApplicationAPI: adoptionserver.NewApplicationAPI(adoptionService),
		ChatAPI:        adoptionserver.NewChatAPI(chatService),
		ListingAPI:     adoptionserver.NewListingAPI(listingService, listingworkflows.NewInlineListingWorkflows(listingService), accountService),
		Authenticator:  accountService,
	}
	return &testApp{router: adoptionserver.NewRouterWithGinEngine(gin.New(), handlers)}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// signup registers an account and returns its id and bearer token.
func (a *testApp) signup(t *testing.T, email string, extra map[string]any) (int64, string) {
	t.Helper()
	payload := map[string]any{"email": email, "password": "senha-forte", "name": "Conta " + email}
	for k, v := range extra {
		payload[k] = v
	}
	rec := a.do(t, http.MethodPost, "/v1/accounts/register", "", payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var account struct {
		ID int64 `json:"id"`
	}
	decode(t, rec, &account)

	rec = a.do(t, http.MethodPost, "/v1/accounts/login", "", map[string]string{"email": email, "password": "senha-forte"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var session struct {
		Token string `json:"token"`
	}
	decode(t, rec, &session)
	require.NotEmpty(t, session.Token)
	return account.ID, session.Token
}

func (a *testApp) submitListing(t *testing.T, token, name, species string) int64 {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/v1/listings", token, map[string]any{
		"name":        name,
		"species":     species,
		"size":        "small",
		"sex":         "female",
		"ageMonths":   3,
		"description": "Muito carinhosa",
		"city":        "Campinas",
		"region":      "SP",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var listing struct {
		ID int64 `json:"id"`
	}
	decode(t, rec, &listing)
	return listing.ID
}

func (a *testApp) approve(t *testing.T, staffToken string, listingID int64) {
	t.Helper()
	rec := a.do(t, http.MethodPost, fmt.Sprintf("/v1/admin/listings/%d/moderation", listingID), staffToken, map[string]any{"approve": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target), rec.Body.String())
}

func TestAccounts_LoginLogout(t *testing.T) {
	app := newTestApp(t)
	_, token := app.signup(t, "ana@example.com", map[string]any{"city": "Campinas", "region": "sp"})

	rec := app.do(t, http.MethodGet, "/v1/accounts/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me map[string]any
	decode(t, rec, &me)
	assert.Equal(t, "ana@example.com", me["email"])
	assert.Equal(t, "SP", me["region"])

	rec = app.do(t, http.MethodPost, "/v1/accounts/login", "", map[string]string{"email": "ana@example.com", "password": "errada123"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apierrors.ContentTypeProblemJSON, rec.Header().Get("Content-Type"))

	rec = app.do(t, http.MethodPost, "/v1/accounts/register", "", map[string]any{"email": "ana@example.com", "password": "senha-forte", "name": "Outra"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = app.do(t, http.MethodPost, "/v1/accounts/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.do(t, http.MethodGet, "/v1/accounts/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccounts_UpdateProfileValidation(t *testing.T) {
	app := newTestApp(t)
	_, token := app.signup(t, "bia@example.com", nil)

	rec := app.do(t, http.MethodPut, "/v1/accounts/me", token, map[string]any{"name": "Bia", "region": "ZZ"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var problem apierrors.ProblemDetail
	decode(t, rec, &problem)
	assert.Equal(t, apierrors.TypeValidation, problem.Type)

	rec = app.do(t, http.MethodPut, "/v1/accounts/me", token, map[string]any{"name": "Bia", "city": "Recife", "region": "pe"})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListings_ModerationAndVisibility(t *testing.T) {
	app := newTestApp(t)
	_, staffToken := app.signup(t, staffEmail, nil)
	_, ownerToken := app.signup(t, "dono@example.com", nil)
	_, otherToken := app.signup(t, "outro@example.com", nil)

	listingID := app.submitListing(t, ownerToken, "Mingau", "cat")
	path := fmt.Sprintf("/v1/listings/%d", listingID)

	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, path, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, path, otherToken, nil).Code)
	assert.Equal(t, http.StatusOK, app.do(t, http.MethodGet, path, ownerToken, nil).Code)

	rec := app.do(t, http.MethodPost, fmt.Sprintf("/v1/admin/listings/%d/moderation", listingID), otherToken, map[string]any{"approve": true})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	app.approve(t, staffToken, listingID)
	rec = app.do(t, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing map[string]any
	decode(t, rec, &listing)
	assert.Equal(t, "approved", listing["moderationStatus"])
	assert.Equal(t, "3 meses", listing["age"])

	rec = app.do(t, http.MethodGet, "/v1/listings?species=cat&region=SP", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page struct {
		Items []map[string]any `json:"items"`
		Total int64            `json:"total"`
	}
	decode(t, rec, &page)
	assert.Equal(t, int64(1), page.Total)

	rec = app.do(t, http.MethodPut, path, otherToken, map[string]any{
		"name": "Roubado", "species": "cat", "size": "small", "sex": "female",
		"description": "x", "city": "Campinas", "region": "SP",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodGet, "/v1/listings/featured", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var home struct {
		Featured      []map[string]any `json:"featured"`
		TotalAccounts int64            `json:"totalAccounts"`
	}
	decode(t, rec, &home)
	assert.Len(t, home.Featured, 1)
	assert.Equal(t, int64(3), home.TotalAccounts)
}

func TestListings_VerifiedNGOSkipsModeration(t *testing.T) {
	app := newTestApp(t)
	_, staffToken := app.signup(t, staffEmail, nil)
	ngoID, ngoToken := app.signup(t, "ong@example.com", map[string]any{"accountType": "ngo"})

	rec := app.do(t, http.MethodPost, fmt.Sprintf("/v1/admin/accounts/%d/verification", ngoID), staffToken, map[string]any{"verified": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	listingID := app.submitListing(t, ngoToken, "Thor", "dog")
	rec = app.do(t, http.MethodGet, fmt.Sprintf("/v1/listings/%d", listingID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing map[string]any
	decode(t, rec, &listing)
	assert.Equal(t, "approved", listing["moderationStatus"])
}

func TestListings_IdempotentSubmission(t *testing.T) {
	app := newTestApp(t)
	_, token := app.signup(t, "dono@example.com", nil)
	body := map[string]any{
		"name": "Mingau", "species": "cat", "size": "small", "sex": "female",
		"ageMonths": 3, "description": "Dócil", "city": "Campinas", "region": "SP",
	}
	submit := func(payload map[string]any) *httptest.ResponseRecorder {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/v1/listings", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set(adoptionserver.IdempotencyKeyHeader, "envio-1")
		rec := httptest.NewRecorder()
		app.router.ServeHTTP(rec, req)
		return rec
	}

	first := submit(body)
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
	second := submit(body)
	require.Equal(t, http.StatusCreated, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	body["name"] = "Outro"
	assert.Equal(t, http.StatusConflict, submit(body).Code)
}

func TestApplications_Flow(t *testing.T) {
	app := newTestApp(t)
	_, staffToken := app.signup(t, staffEmail, nil)
	_, ownerToken := app.signup(t, "dono@example.com", nil)
	_, applicantToken := app.signup(t, "adotante@example.com", nil)

	listingID := app.submitListing(t, ownerToken, "Mingau", "cat")
	answers := map[string]any{
		"experience": "Pouca", "housing": "Casa", "otherPets": "Não", "availableTime": "Muito",
		"motivation": "Companhia", "referral": "Amigos", "contactPhone": "19999990000",
	}
	applyPath := fmt.Sprintf("/v1/listings/%d/applications", listingID)

	rec := app.do(t, http.MethodPost, applyPath, applicantToken, answers)
	assert.Equal(t, http.StatusNotFound, rec.Code, "pending listings do not accept applications")

	app.approve(t, staffToken, listingID)
	rec = app.do(t, http.MethodPost, applyPath, applicantToken, answers)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var application struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	decode(t, rec, &application)
	assert.Equal(t, "sent", application.Status)

	assert.Equal(t, http.StatusConflict, app.do(t, http.MethodPost, applyPath, applicantToken, answers).Code)
	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, applyPath, ownerToken, answers).Code)

	viewPath := fmt.Sprintf("/v1/applications/%d", application.ID)
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, viewPath, applicantToken, nil).Code)

	rec = app.do(t, http.MethodGet, viewPath, ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var viewed map[string]any
	decode(t, rec, &viewed)
	assert.Equal(t, "viewed", viewed["status"])

	rec = app.do(t, http.MethodPost, viewPath+"/response", ownerToken, map[string]any{"notes": "Vamos conversar", "approve": true})
	require.Equal(t, http.StatusOK, rec.Code)
	var answered map[string]any
	decode(t, rec, &answered)
	assert.Equal(t, "answered", answered["status"])
	assert.Equal(t, true, answered["approved"])

	rec = app.do(t, http.MethodGet, "/v1/applications/sent", applicantToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sent []map[string]any
	decode(t, rec, &sent)
	assert.Len(t, sent, 1)

	rec = app.do(t, http.MethodGet, "/v1/applications/received", ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var received []map[string]any
	decode(t, rec, &received)
	assert.Len(t, received, 1)
}

func TestChat_MessageAndFeedback(t *testing.T) {
	app := newTestApp(t)
	_, staffToken := app.signup(t, staffEmail, nil)
	_, ownerToken := app.signup(t, "dono@example.com", nil)
	_, userToken := app.signup(t, "leitor@example.com", nil)
	app.approve(t, staffToken, app.submitListing(t, ownerToken, "Mingau", "cat"))

	rec := app.do(t, http.MethodPost, "/v1/chat/messages", userToken, map[string]any{"message": "quero um gato pequeno", "sessionId": "sessao-1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var reply chathttpmapper.MessageReply
	decode(t, rec, &reply)
	assert.True(t, reply.Success)
	assert.Contains(t, reply.Response, "**Mingau**")
	assert.Equal(t, "find_pet", reply.Topic)
	assert.Equal(t, "sessao-1", reply.SessionID)
	assert.NotZero(t, reply.InteractionID)

	rec = app.do(t, http.MethodPost, "/v1/chat/messages", userToken, map[string]any{"message": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var failure chathttpmapper.Failure
	decode(t, rec, &failure)
	assert.False(t, failure.Success)
	assert.Equal(t, chathttpmapper.MessageEmpty, failure.Error)

	rec = app.do(t, http.MethodPost, "/v1/chat/messages", userToken, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	decode(t, rec, &failure)
	assert.Equal(t, chathttpmapper.MessageInvalidJSON, failure.Error)

	feedback := map[string]any{"interactionId": reply.InteractionID, "feedback": true}
	rec = app.do(t, http.MethodPost, "/v1/chat/feedback", ownerToken, feedback)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	decode(t, rec, &failure)
	assert.Equal(t, chathttpmapper.MessageNotFound, failure.Error)

	rec = app.do(t, http.MethodPost, "/v1/chat/feedback", userToken, map[string]any{"feedback": true})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	decode(t, rec, &failure)
	assert.Equal(t, chathttpmapper.MessageMissingID, failure.Error)

	rec = app.do(t, http.MethodPost, "/v1/chat/feedback", userToken, feedback)
	require.Equal(t, http.StatusOK, rec.Code)
	var ack chathttpmapper.Ack
	decode(t, rec, &ack)
	assert.True(t, ack.Success)

	rec = app.do(t, http.MethodGet, "/v1/chat/history", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history chathttpmapper.History
	decode(t, rec, &history)
	require.Len(t, history.Items, 1)
	require.NotNil(t, history.Items[0].Feedback)
	assert.True(t, *history.Items[0].Feedback)

	rec = app.do(t, http.MethodGet, "/v1/chat/suggestions", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var suggestions chathttpmapper.Suggestions
	decode(t, rec, &suggestions)
	assert.Len(t, suggestions.Items, 1)
}

func TestChat_RequiresAuthenticationAndStaffForStats(t *testing.T) {
	app := newTestApp(t)
	_, staffToken := app.signup(t, staffEmail, nil)
	_, userToken := app.signup(t, "leitor@example.com", nil)

	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodPost, "/v1/chat/messages", "", map[string]any{"message": "oi"}).Code)
	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodGet, "/v1/chat/history", "not-a-token", nil).Code)

	rec := app.do(t, http.MethodPost, "/v1/chat/messages", userToken, map[string]any{"message": "preciso de vacina"})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusForbidden, app.do(t, http.MethodGet, "/v1/admin/chat/stats", userToken, nil).Code)

	rec = app.do(t, http.MethodGet, "/v1/admin/chat/stats", staffToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats chathttpmapper.Stats
	decode(t, rec, &stats)
	assert.Equal(t, int64(1), stats.Total)
	require.Len(t, stats.Topics, 1)
	assert.Equal(t, "pet_care", stats.Topics[0].Topic)
}
