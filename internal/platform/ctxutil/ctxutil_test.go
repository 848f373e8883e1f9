// Copyright (c) 2026 Hailey Portfolio. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haileyart/portfolio/internal/platform/ctxutil"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := ctxutil.WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

func TestRequestID_Missing(t *testing.T) {
	assert.Equal(t, "", ctxutil.GetRequestID(context.Background()))
}

func TestLogger_RoundTrip(t *testing.T) {
	logger := slog.Default().With(slog.String("scope", "test"))
	ctx := ctxutil.WithLogger(context.Background(), logger)
	assert.Same(t, logger, ctxutil.GetLogger(ctx))
}

func TestLogger_FallbackToDefault(t *testing.T) {
	logger := ctxutil.GetLogger(context.Background())
	require.NotNil(t, logger)
	assert.Same(t, slog.Default(), logger)
}
