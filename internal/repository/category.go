package repository

import (
	"context"

	"github.com/deppfellow/member-directory/internal/database"
	"github.com/deppfellow/member-directory/internal/model"
)

// CategoryRepository manages the category vocabulary members are tagged
// with. Names are unique.
type CategoryRepository interface {
	// List returns every category ordered by name.
	List(ctx context.Context) ([]model.Category, error)

	// Create inserts a category and returns its id. A name already in use
	// is a Conflict.
	Create(ctx context.Context, name string) (int64, error)

	// IDByName resolves a name to its id, or fails with NotFound.
	IDByName(ctx context.Context, name string) (int64, error)

	// DeleteByName removes the category and every member association with
	// it in one transaction. An unknown name is a no-op.
	DeleteByName(ctx context.Context, name string) error
}

type categoryRepo struct {
	table lookupTable
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(exec *database.Executor) CategoryRepository {
	return &categoryRepo{table: lookupTable{
		exec:        exec,
		entity:      "category",
		table:       "category",
		assocTable:  "member_has_category",
		assocColumn: "id_category",
	}}
}

func (r *categoryRepo) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]model.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.toCategory())
	}
	return categories, nil
}

func (r *categoryRepo) Create(ctx context.Context, name string) (int64, error) {
	return r.table.create(ctx, name)
}

func (r *categoryRepo) IDByName(ctx context.Context, name string) (int64, error) {
	return r.table.idByName(ctx, name)
}

func (r *categoryRepo) DeleteByName(ctx context.Context, name string) error {
	return r.table.deleteByName(ctx, name)
}

var _ CategoryRepository = (*categoryRepo)(nil)
