package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/member-directory/internal/config"
	"github.com/deppfellow/member-directory/internal/repository"
	"github.com/deppfellow/member-directory/internal/server"
)

func TestNewServiceWithoutJobClient(t *testing.T) {
	cfg := config.DefaultConfig()
	srv := &server.Server{Config: cfg, Logger: &nopLogger}
	repos := &repository.Repositories{
		Member:   &mockMemberRepo{},
		Category: &mockLookupRepo{},
		Network:  &mockNetworkRepo{},
		Session:  &mockSessionRepo{},
	}

	services := NewService(srv, repos)

	require.NotNil(t, services.Admin)
	assert.Nil(t, services.Admin.jobs)
	assert.Equal(t, cfg.Auth.SessionWindow, services.Auth.window)
	assert.NotNil(t, services.Member)
	assert.NotNil(t, services.Portfolio)
}
