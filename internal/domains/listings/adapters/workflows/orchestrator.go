package workflows

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	listingapp "github.com/Apurer/petadopt-api/internal/domains/listings/application"
	listingtypes "github.com/Apurer/petadopt-api/internal/domains/listings/application/types"
	"github.com/Apurer/petadopt-api/internal/domains/listings/ports"
	listingactivities "github.com/Apurer/petadopt-api/internal/platform/temporal/activities/listings"
	listingworkflows "github.com/Apurer/petadopt-api/internal/platform/temporal/workflows/listings"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalListingWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineListingWorkflows)(nil)
)

// TemporalListingWorkflows starts listing workflows on a Temporal cluster.
type TemporalListingWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalListingWorkflows wires a Temporal client into the orchestrator.
func NewTemporalListingWorkflows(c client.Client) *TemporalListingWorkflows {
	return &TemporalListingWorkflows{client: c, taskQueue: listingworkflows.ListingSubmissionTaskQueue}
}

// SubmitListing starts the Temporal workflow that persists and announces a listing.
func (o *TemporalListingWorkflows) SubmitListing(ctx context.Context, input listingtypes.SubmitInput) (*listingtypes.ListingProjection, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal listing workflows not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	workflowID := buildSubmissionWorkflowID(input, traceComponent)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		listingworkflows.ListingSubmissionWorkflow,
		listingworkflows.ListingSubmissionWorkflowInput{Command: input, TraceID: traceComponent},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) && strings.TrimSpace(input.IdempotencyKey) != "" {
			existingRun := o.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
			var saved listingtypes.ListingProjection
			if err := existingRun.Get(ctx, &saved); err != nil {
				return nil, translateWorkflowError(err)
			}
			return &saved, nil
		}
		return nil, err
	}
	var saved listingtypes.ListingProjection
	if err := run.Get(ctx, &saved); err != nil {
		return nil, translateWorkflowError(err)
	}
	return &saved, nil
}

// InlineListingWorkflows executes the service directly without Temporal, useful for tests or dev fallbacks.
type InlineListingWorkflows struct {
	service ports.Service
}

// NewInlineListingWorkflows wraps the listings service for synchronous execution.
func NewInlineListingWorkflows(service ports.Service) *InlineListingWorkflows {
	return &InlineListingWorkflows{service: service}
}

// SubmitListing delegates to the application service without durable orchestration.
func (o *InlineListingWorkflows) SubmitListing(ctx context.Context, input listingtypes.SubmitInput) (*listingtypes.ListingProjection, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline listing workflows not configured")
	}
	return o.service.Submit(ctx, input)
}

// translateWorkflowError restores the application sentinels that crossed the
// workflow boundary as typed application errors.
func translateWorkflowError(err error) error {
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) {
		return err
	}
	switch appErr.Type() {
	case listingactivities.ErrTypeInvalidListing:
		return fmt.Errorf("%w: %s", listingapp.ErrInvalidInput, appErr.Message())
	case listingactivities.ErrTypeIdempotencyConflict:
		return ports.ErrIdempotencyConflict
	case listingactivities.ErrTypeOwnerNotFound:
		return ports.ErrOwnerNotFound
	default:
		return err
	}
}

func buildSubmissionWorkflowID(input listingtypes.SubmitInput, traceComponent string) string {
	if key := strings.TrimSpace(input.IdempotencyKey); key != "" {
		return fmt.Sprintf("listing-submission-idem-%d-%s", input.OwnerID, hashIdempotencyKey(key))
	}
	return fmt.Sprintf("listing-submission-%d-%s", input.OwnerID, traceComponent)
}

func hashIdempotencyKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:8])
}

func workflowTraceComponent(ctx context.Context) string {
	if traceID := workflowTraceID(ctx); traceID != "" {
		return traceID
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanFromContext(ctx).SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
