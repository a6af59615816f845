package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/petadopt-api/internal/app/api"
	listingevents "github.com/Apurer/petadopt-api/internal/domains/listings/adapters/events"
	listingsobs "github.com/Apurer/petadopt-api/internal/domains/listings/adapters/observability"
	listingsapp "github.com/Apurer/petadopt-api/internal/domains/listings/application"
	platformevents "github.com/Apurer/petadopt-api/internal/platform/events"
	platformobservability "github.com/Apurer/petadopt-api/internal/platform/observability"
	listingactivities "github.com/Apurer/petadopt-api/internal/platform/temporal/activities/listings"
	listingworkflows "github.com/Apurer/petadopt-api/internal/platform/temporal/workflows/listings"
)

func main() {
	ctx := context.Background()
	const serviceName = "petadopt-worker"

	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Settings{
		ServiceName:  serviceName,
		Environment:  cfg.Environment,
		OTLPEndpoint: cfg.OTLPEndpoint,
		LogLevel:     cfg.LogLevel,
	})
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	stores, cleanupStores := api.BuildStores(ctx, cfg, logger)
	defer cleanupStores()

	bus := platformevents.NewBus(logger)
	defer func() { _ = bus.Close() }()
	if err := listingevents.NewNotifier(logger).Subscribe(ctx, bus); err != nil {
		logger.Error("failed to subscribe listing notifier", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Announcements are a separate activity, so persistence publishes nothing.
	persistService := listingsobs.New(
		listingsapp.NewService(stores.Listings, stores.Owners, listingsapp.WithIdempotencyStore(stores.Idempotency)),
		listingsobs.WithLogger(logger),
		listingsobs.WithTracer(instruments.Tracer("internal.listings.application")),
		listingsobs.WithMeter(instruments.Meter("internal.listings.application")),
	)
	activities := listingactivities.NewActivities(persistService, stores.Listings, listingevents.NewPublisher(bus, logger))

	temporalClient, err := api.ConnectTemporal(cfg, instruments, "temporal-worker")
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, listingworkflows.ListingSubmissionTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(listingworkflows.ListingSubmissionWorkflow, workflow.RegisterOptions{Name: listingworkflows.ListingSubmissionWorkflowName})
	w.RegisterActivityWithOptions(activities.PersistListing, activity.RegisterOptions{Name: listingactivities.PersistListingActivityName})
	w.RegisterActivityWithOptions(activities.AnnounceListing, activity.RegisterOptions{Name: listingactivities.AnnounceListingActivityName})

	logger.Info("worker listening", slog.String("taskQueue", listingworkflows.ListingSubmissionTaskQueue), slog.String("namespace", cfg.TemporalNamespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
