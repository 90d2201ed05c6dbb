package repository

import (
	"context"

	"github.com/deppfellow/member-directory/internal/database"
	"github.com/deppfellow/member-directory/internal/model"
)

// NetworkRepository is the social network vocabulary. It behaves like
// CategoryRepository; deleting a network also drops the member links to it.
type NetworkRepository interface {
	List(ctx context.Context) ([]model.Network, error)
	Create(ctx context.Context, name string) (int64, error)
	IDByName(ctx context.Context, name string) (int64, error)
	DeleteByName(ctx context.Context, name string) error
}

type networkRepo struct {
	table lookupTable
}

// NewNetworkRepository creates a new network repository.
func NewNetworkRepository(exec *database.Executor) NetworkRepository {
	return &networkRepo{table: lookupTable{
		exec:        exec,
		entity:      "network",
		table:       "network",
		assocTable:  "member_has_network",
		assocColumn: "id_network",
	}}
}

func (r *networkRepo) List(ctx context.Context) ([]model.Network, error) {
	rows, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}

	networks := make([]model.Network, 0, len(rows))
	for _, row := range rows {
		networks = append(networks, row.toNetwork())
	}
	return networks, nil
}

func (r *networkRepo) Create(ctx context.Context, name string) (int64, error) {
	return r.table.create(ctx, name)
}

func (r *networkRepo) IDByName(ctx context.Context, name string) (int64, error) {
	return r.table.idByName(ctx, name)
}

func (r *networkRepo) DeleteByName(ctx context.Context, name string) error {
	return r.table.deleteByName(ctx, name)
}

var _ NetworkRepository = (*networkRepo)(nil)
