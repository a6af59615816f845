package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"golang.org/x/crypto/bcrypt"

	adoptionserver "github.com/Apurer/petadopt-api/go"

	accountsobs "github.com/Apurer/petadopt-api/internal/domains/accounts/adapters/observability"
	accountsapp "github.com/Apurer/petadopt-api/internal/domains/accounts/application"
	adoptionevents "github.com/Apurer/petadopt-api/internal/domains/adoptions/adapters/events"
	adoptionlistings "github.com/Apurer/petadopt-api/internal/domains/adoptions/adapters/listings"
	adoptionsobs "github.com/Apurer/petadopt-api/internal/domains/adoptions/adapters/observability"
	adoptionsapp "github.com/Apurer/petadopt-api/internal/domains/adoptions/application"
	chatcatalog "github.com/Apurer/petadopt-api/internal/domains/chat/adapters/catalog"
	chatdirectory "github.com/Apurer/petadopt-api/internal/domains/chat/adapters/directory"
	chatobs "github.com/Apurer/petadopt-api/internal/domains/chat/adapters/observability"
	chatapp "github.com/Apurer/petadopt-api/internal/domains/chat/application"
	listingevents "github.com/Apurer/petadopt-api/internal/domains/listings/adapters/events"
	listingsobs "github.com/Apurer/petadopt-api/internal/domains/listings/adapters/observability"
	listingworkflows "github.com/Apurer/petadopt-api/internal/domains/listings/adapters/workflows"
	listingsapp "github.com/Apurer/petadopt-api/internal/domains/listings/application"
	listingports "github.com/Apurer/petadopt-api/internal/domains/listings/ports"
	"github.com/Apurer/petadopt-api/internal/platform/auth"
	platformevents "github.com/Apurer/petadopt-api/internal/platform/events"
	platformobservability "github.com/Apurer/petadopt-api/internal/platform/observability"
)

const serviceName = "petadopt-api"

// Run boots the adoption marketplace HTTP API with observability, repositories, and workflows wired.
// It returns when ctx is cancelled or the server fails.
func Run(ctx context.Context, cfg Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Settings{
		ServiceName:  serviceName,
		Environment:  cfg.Environment,
		OTLPEndpoint: cfg.OTLPEndpoint,
		LogLevel:     cfg.LogLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	stores, cleanupStores := BuildStores(ctx, cfg, logger)
	defer cleanupStores()

	bus := platformevents.NewBus(logger)
	defer func() {
		if err := bus.Close(); err != nil {
			logger.Warn("failed to close event bus", slog.String("error", err.Error()))
		}
	}()
	if err := listingevents.NewNotifier(logger).Subscribe(ctx, bus); err != nil {
		return fmt.Errorf("subscribe listing notifier: %w", err)
	}
	if err := adoptionevents.NewNotifier(logger).Subscribe(ctx, bus); err != nil {
		return fmt.Errorf("subscribe adoption notifier: %w", err)
	}

	handlers, cleanupHandlers, err := buildHandlers(cfg, stores, bus, instruments)
	if err != nil {
		return err
	}
	defer cleanupHandlers()

	router := adoptionserver.NewRouter(handlers, otelgin.Middleware(serviceName))
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("adoption API listening", slog.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("adoption API server exited", slog.String("addr", server.Addr), slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down adoption API")
		return server.Shutdown(shutdownCtx)
	}
}

func buildHandlers(cfg Config, stores *Stores, bus *platformevents.Bus, instruments *platformobservability.Instruments) (adoptionserver.ApiHandleFunctions, func(), error) {
	logger := instruments.Logger
	tokens, err := auth.NewTokens(cfg.JWTSecret)
	if err != nil {
		return adoptionserver.ApiHandleFunctions{}, nil, err
	}
	if cfg.JWTSecret == devJWTSecret {
		logger.Warn("JWT_SECRET not set, using the development secret")
	}

	accountService := accountsobs.New(
		accountsapp.NewService(
			stores.Accounts,
			stores.Sessions,
			auth.NewPasswords(bcrypt.DefaultCost),
			tokens,
			accountsapp.WithSessionTTL(cfg.SessionTTL),
			accountsapp.WithStaffEmails(cfg.StaffEmails...),
		),
		accountsobs.WithLogger(logger),
		accountsobs.WithTracer(instruments.Tracer("internal.accounts.application")),
		accountsobs.WithMeter(instruments.Meter("internal.accounts.application")),
	)

	listingService := listingsobs.New(
		listingsapp.NewService(
			stores.Listings,
			stores.Owners,
			listingsapp.WithIdempotencyStore(stores.Idempotency),
			listingsapp.WithEventPublisher(listingevents.NewPublisher(bus, logger)),
		),
		listingsobs.WithLogger(logger),
		listingsobs.WithTracer(instruments.Tracer("internal.listings.application")),
		listingsobs.WithMeter(instruments.Meter("internal.listings.application")),
	)
	var listingWorkflows listingports.WorkflowOrchestrator = listingworkflows.NewInlineListingWorkflows(listingService)
	cleanup := func() {}
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, running listing submission inline", slog.String("error", err.Error()))
	} else {
		cleanup = temporalClient.Close
		listingWorkflows = listingworkflows.NewTemporalListingWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	adoptionService := adoptionsobs.New(
		adoptionsapp.NewService(
			stores.Applications,
			adoptionlistings.NewPetCatalog(stores.Listings),
			adoptionsapp.WithEventPublisher(adoptionevents.NewPublisher(bus, logger)),
		),
		adoptionsobs.WithLogger(logger),
		adoptionsobs.WithTracer(instruments.Tracer("internal.adoptions.application")),
		adoptionsobs.WithMeter(instruments.Meter("internal.adoptions.application")),
	)

	chatService := chatobs.New(
		chatapp.NewService(
			stores.Interactions,
			chatcatalog.NewListingsCatalog(stores.Listings),
			chatdirectory.NewAccountsDirectory(stores.Accounts),
		),
		chatobs.WithLogger(logger),
		chatobs.WithTracer(instruments.Tracer("internal.chat.application")),
		chatobs.WithMeter(instruments.Meter("internal.chat.application")),
	)

	handlers := adoptionserver.ApiHandleFunctions{
		AccountAPI:     adoptionserver.NewAccountAPI(accountService),
		AdminAPI:       adoptionserver.NewAdminAPI(accountService, listingService, chatService),
		ApplicationAPI: adoptionserver.NewApplicationAPI(adoptionService),
		ChatAPI:        adoptionserver.NewChatAPI(chatService),
		ListingAPI:     adoptionserver.NewListingAPI(listingService, listingWorkflows, accountService),
		Authenticator:  accountService,
	}
	return handlers, cleanup, nil
}

// ConnectTemporal dials Temporal with tracing and structured logging.
func ConnectTemporal(cfg Config, instruments *platformobservability.Instruments, component string) (client.Client, error) {
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: instruments.Tracer(component),
	})
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(instruments.Logger),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED")
	}
	return ConnectTemporal(cfg, instruments, "temporal-client")
}
