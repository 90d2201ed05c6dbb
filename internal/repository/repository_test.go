package repository

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/member-directory/internal/database"
)

func newMockRepositories(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	logger := zerolog.Nop()
	return NewRepositoriesWithExecutor(database.NewExecutor(mock, &logger)), mock
}

func strPtr(s string) *string {
	return &s
}
