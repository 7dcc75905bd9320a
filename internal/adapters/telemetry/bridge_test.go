package telemetry_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/mock/gomock"

	"github.com/kylemshaw/ganttify/internal/adapters/telemetry"
	"github.com/kylemshaw/ganttify/internal/core/ports/mocks"
)

func TestBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	bridge := telemetry.NewBridge(mockLogger)

	var got string
	mockLogger.EXPECT().Info(gomock.Any()).Do(func(msg string) { got = msg }).Times(1)

	tp := sdktrace.NewTracerProvider()
	tracer := tp.Tracer("test")
	_, span := tracer.Start(context.Background(), "resolve")
	span.End()

	roSpan, ok := span.(sdktrace.ReadOnlySpan)
	require.True(t, ok)
	bridge.OnEnd(roSpan)

	assert.True(t, strings.HasPrefix(got, "resolve completed in "), got)
}

func TestBridge_OnEndWithError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	bridge := telemetry.NewBridge(mockLogger)

	var got string
	mockLogger.EXPECT().Warn(gomock.Any()).Do(func(msg string) { got = msg }).Times(1)

	tp := sdktrace.NewTracerProvider()
	tracer := tp.Tracer("test")
	_, span := tracer.Start(context.Background(), "resolve")
	span.SetStatus(codes.Error, "cyclic dependency detected")
	span.End()

	roSpan, ok := span.(sdktrace.ReadOnlySpan)
	require.True(t, ok)
	bridge.OnEnd(roSpan)

	assert.True(t, strings.HasPrefix(got, "resolve failed after "), got)
	assert.True(t, strings.HasSuffix(got, ": cyclic dependency detected"), got)
}

func TestBridge_InstalledAsProcessor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)

	bridge := telemetry.NewBridge(mockLogger)
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
	tracer := tp.Tracer("test")

	_, span := tracer.Start(context.Background(), "load")
	span.End()

	require.NoError(t, tp.Shutdown(context.Background()))
}

func TestBridge_ShutdownAndForceFlush(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bridge := telemetry.NewBridge(mocks.NewMockLogger(ctrl))

	assert.NoError(t, bridge.Shutdown(context.Background()))
	assert.NoError(t, bridge.ForceFlush(context.Background()))
}
