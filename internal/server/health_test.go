package server

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/deppfellow/member-directory/internal/config"
)

func newTestServer() *Server {
	logger := zerolog.Nop()
	return &Server{Config: config.DefaultConfig(), Logger: &logger}
}

func ok(context.Context) error { return nil }

func TestCheckHealthAllHealthy(t *testing.T) {
	report := newTestServer().checkHealth(context.Background(), ok, ok)

	assert.True(t, report.Healthy())
	assert.Equal(t, "healthy", report.Checks["database"].Status)
	assert.Equal(t, "healthy", report.Checks["redis"].Status)
}

func TestCheckHealthDatabaseDown(t *testing.T) {
	down := func(context.Context) error { return errors.New("connection refused") }

	report := newTestServer().checkHealth(context.Background(), down, ok)

	assert.False(t, report.Healthy())
	assert.Equal(t, "connection refused", report.Checks["database"].Error)
}

func TestCheckHealthRedisDownStaysHealthy(t *testing.T) {
	down := func(context.Context) error { return errors.New("no redis") }

	report := newTestServer().checkHealth(context.Background(), ok, down)

	assert.True(t, report.Healthy())
	assert.Equal(t, "unhealthy", report.Checks["redis"].Status)
}

func TestCheckHealthWithoutRedis(t *testing.T) {
	report := newTestServer().checkHealth(context.Background(), ok, nil)

	assert.True(t, report.Healthy())
	_, present := report.Checks["redis"]
	assert.False(t, present)
}
