//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	pacttest "github.com/Apurer/petadopt-api/test/pact"

	adoptionserver "github.com/Apurer/petadopt-api/go"
	accountmemory "github.com/Apurer/petadopt-api/internal/domains/accounts/adapters/memory"
	accountsobs "github.com/Apurer/petadopt-api/internal/domains/accounts/adapters/observability"
	accountsapp "github.com/Apurer/petadopt-api/internal/domains/accounts/application"
	accounttypes "github.com/Apurer/petadopt-api/internal/domains/accounts/application/types"
	accountdomain "github.com/Apurer/petadopt-api/internal/domains/accounts/domain"
	accountports "github.com/Apurer/petadopt-api/internal/domains/accounts/ports"
	adoptionlistings "github.com/Apurer/petadopt-api/internal/domains/adoptions/adapters/listings"
	adoptionmemory "github.com/Apurer/petadopt-api/internal/domains/adoptions/adapters/memory"
	adoptionsapp "github.com/Apurer/petadopt-api/internal/domains/adoptions/application"
	chatcatalog "github.com/Apurer/petadopt-api/internal/domains/chat/adapters/catalog"
	chatdirectory "github.com/Apurer/petadopt-api/internal/domains/chat/adapters/directory"
	chatmemory "github.com/Apurer/petadopt-api/internal/domains/chat/adapters/memory"
	chatobs "github.com/Apurer/petadopt-api/internal/domains/chat/adapters/observability"
	chatapp "github.com/Apurer/petadopt-api/internal/domains/chat/application"
	chattypes "github.com/Apurer/petadopt-api/internal/domains/chat/application/types"
	chatports "github.com/Apurer/petadopt-api/internal/domains/chat/ports"
	listingaccounts "github.com/Apurer/petadopt-api/internal/domains/listings/adapters/accounts"
	listingmemory "github.com/Apurer/petadopt-api/internal/domains/listings/adapters/memory"
	listingworkflows "github.com/Apurer/petadopt-api/internal/domains/listings/adapters/workflows"
	listingsapp "github.com/Apurer/petadopt-api/internal/domains/listings/application"
	"github.com/Apurer/petadopt-api/internal/platform/auth"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdoptionChatProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateAdopterSignedIn: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
		pacttest.StateInteractionExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seedInteraction(t)
			}
			return nil, nil
		},
		pacttest.StateNoInteractions: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.reset(t)
			return nil
		},
	})
	require.NoError(t, err)
}

// fixedTokenAuthenticator resolves the contract's static bearer token to the
// seeded adopter and defers every other token to the real accounts service.
type fixedTokenAuthenticator struct {
	token   string
	account *accountdomain.Account
	next    adoptionserver.Authenticator
}

func (a fixedTokenAuthenticator) Authenticate(ctx context.Context, token string) (*accountdomain.Account, error) {
	if token == a.token {
		return a.account, nil
	}
	return a.next.Authenticate(ctx, token)
}

type contractProviderApp struct {
	server *httptest.Server

	mu      sync.RWMutex
	router  http.Handler
	chat    chatports.Service
	adopter *accountdomain.Account
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()
	app := &contractProviderApp{}
	app.reset(t)
	app.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.mu.RLock()
		router := app.router
		app.mu.RUnlock()
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(app.server.Close)
	return app
}

// reset rebuilds every in-memory store so each provider state starts clean.
func (a *contractProviderApp) reset(t testing.TB) {
	t.Helper()
	tokens, err := auth.NewTokens("pact-provider-secret")
	require.NoError(t, err)

	accountRepo := accountmemory.NewRepository()
	accountService := accountsobs.New(accountsapp.NewService(
		accountRepo,
		accountmemory.NewSessionStore(),
		auth.NewPasswords(bcrypt.MinCost),
		tokens,
	))
	adopter := registerAdopter(t, accountService)

	owners := listingaccounts.NewOwnerDirectory(accountRepo)
	listingRepo := listingmemory.NewRepository(listingmemory.WithOwnerDirectory(owners))
	listingService := listingsapp.NewService(listingRepo, owners, listingsapp.WithIdempotencyStore(listingmemory.NewIdempotencyStore()))
	adoptionService := adoptionsapp.NewService(adoptionmemory.NewRepository(), adoptionlistings.NewPetCatalog(listingRepo))
	chatService := chatobs.New(chatapp.NewService(
		chatmemory.NewInteractionRepository(),
		chatcatalog.NewListingsCatalog(listingRepo),
		chatdirectory.NewAccountsDirectory(accountRepo),
	))

	handlers := adoptionserver.ApiHandleFunctions{
		AccountAPI:     adoptionserver.NewAccountAPI(accountService),
		AdminAPI:       adoptionserver.NewAdminAPI(accountService, listingService, chatService),
		ApplicationAPI: adoptionserver.NewApplicationAPI(adoptionService),
		ChatAPI:        adoptionserver.NewChatAPI(chatService),
		ListingAPI:     adoptionserver.NewListingAPI(listingService, listingworkflows.NewInlineListingWorkflows(listingService), accountService),
		Authenticator: fixedTokenAuthenticator{
			token:   pacttest.AdopterToken,
			account: adopter,
			next:    accountService,
		},
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = adoptionserver.NewRouterWithGinEngine(router, handlers)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.router = router
	a.chat = chatService
	a.adopter = adopter
}

func (a *contractProviderApp) seedInteraction(t testing.TB) {
	t.Helper()
	a.mu.RLock()
	chat, adopter := a.chat, a.adopter
	a.mu.RUnlock()
	result, err := chat.HandleMessage(context.Background(), chattypes.MessageInput{
		AccountID: adopter.ID,
		Message:   "Quero adotar um cachorro",
		SessionID: pacttest.ExampleSessionID,
	})
	require.NoError(t, err)
	require.Equal(t, pacttest.ExistingInteraction, result.InteractionID)
}

func registerAdopter(t testing.TB, accounts accountports.Service) *accountdomain.Account {
	t.Helper()
	account, err := accounts.Register(context.Background(), accounttypes.RegisterInput{
		Email:    pacttest.AdopterEmail,
		Password: pacttest.AdopterPassword,
		Name:     "Adotante Pact",
		City:     "Campinas",
		Region:   "SP",
	})
	require.NoError(t, err)
	return account
}
