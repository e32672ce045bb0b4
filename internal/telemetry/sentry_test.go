package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_EmptyDSNIsNoOp(t *testing.T) {
	shutdown, err := Init(Config{})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	shutdown()
}

func TestStartSpan_ReturnsUsableSpanWithoutSDK(t *testing.T) {
	// Spans must be safe to create and finish even when the SDK was never
	// initialized, since tracing is optional in every deployment.
	ctx, span := StartSpan(context.Background(), "Pipeline.HandleMessage", SpanAttributes{
		Channel:   "C123",
		UserID:    "U777",
		Operation: "handle_message",
	})
	require.NotNil(t, span)
	require.NotNil(t, ctx)
	span.End()
}

func TestStartSpan_ChildAttachesToParentContext(t *testing.T) {
	parentCtx, parent := StartSpan(context.Background(), "Pipeline.HandleMessage", SpanAttributes{})
	require.NotNil(t, sentry.SpanFromContext(parentCtx))

	childCtx, child := StartSpan(parentCtx, "Pipeline.Classify", SpanAttributes{
		Category:  "주차",
		Operation: "classify",
	})
	require.NotNil(t, child)
	assert.Equal(t, sentry.SpanFromContext(parentCtx).TraceID, sentry.SpanFromContext(childCtx).TraceID)

	child.End()
	parent.End()
}

func TestSpan_ZeroValueIsSafe(t *testing.T) {
	var s Span
	s.End()
	s.SetStatus(sentry.SpanStatusOK)
	s.SetError(errors.New("boom"))
	assert.Equal(t, context.Background(), s.Context())
}
