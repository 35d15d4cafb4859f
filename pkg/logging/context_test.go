package logging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/indusign/indusign/pkg/logging"
)

func TestFromContext_Disabled(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, logging.FromContext(context.Background()).GetLevel())
	//nolint:staticcheck // nil context is handled explicitly
	assert.Equal(t, zerolog.Disabled, logging.FromContext(nil).GetLevel())

	ctx := logging.WithLogger(context.Background(), nil)
	assert.Equal(t, zerolog.Disabled, logging.FromContext(ctx).GetLevel())
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithRequestID(ctx, "req-123")
	ctx = logging.WithRoute(ctx, "/health")
	ctx = logging.WithComponent(ctx, "server")

	logging.FromContext(ctx).Info().Msg("test message")

	assert.Equal(t, "req-123", logging.RequestID(ctx))
	assert.Empty(t, logging.RequestID(context.Background()))
	testLogger.AssertContains(t, `"request_id":"req-123"`)
	testLogger.AssertContains(t, `"route":"/health"`)
	testLogger.AssertContains(t, `"component":"server"`)
	testLogger.AssertContains(t, "test message")
}

func TestWithField(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithField(ctx, "attempt", 3)
	ctx = logging.WithField(ctx, "cause", errors.New("boom"))
	ctx = logging.WithField(ctx, "trusted", true)

	logging.FromContext(ctx).Info().Msg("fields")

	testLogger.AssertContains(t, `"attempt":3`)
	testLogger.AssertContains(t, `"cause":"boom"`)
	testLogger.AssertContains(t, `"trusted":true`)
}
