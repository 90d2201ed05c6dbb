package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/member-directory/internal/database"
	"github.com/deppfellow/member-directory/internal/errs"
)

// lookupTable is a named taxonomy table (category, network) with its
// member association table.
//
// Table and column names come from the constructors below, never from
// callers, so building the statements with string concatenation is safe.
type lookupTable struct {
	exec *database.Executor

	entity      string // used in op labels
	table       string
	assocTable  string
	assocColumn string
}

func (t *lookupTable) op(action string) string {
	return t.entity + "." + action
}

func (t *lookupTable) list(ctx context.Context) ([]lookupRow, error) {
	query := `SELECT ` + lookupColumns + ` FROM ` + t.table + ` ORDER BY name`

	var rows []lookupRow
	err := t.exec.Do(ctx, t.op("list"), func(ctx context.Context, tx pgx.Tx) error {
		result, err := tx.Query(ctx, query)
		if err != nil {
			return err
		}

		rows, err = pgx.CollectRows(result, pgx.RowToStructByName[lookupRow])
		return err
	})
	return rows, err
}

// create inserts name and returns the generated id. A duplicate name
// surfaces as errs.Conflict.
func (t *lookupTable) create(ctx context.Context, name string) (int64, error) {
	query := `INSERT INTO ` + t.table + ` (name) VALUES ($1) RETURNING id`

	var id int64
	err := t.exec.Do(ctx, t.op("create"), func(ctx context.Context, tx pgx.Tx) error {
		return tx.QueryRow(ctx, query, name).Scan(&id)
	})
	return id, err
}

// idByName resolves a name. No row surfaces as errs.NotFound.
func (t *lookupTable) idByName(ctx context.Context, name string) (int64, error) {
	query := `SELECT id FROM ` + t.table + ` WHERE name = $1`

	var id int64
	err := t.exec.Do(ctx, t.op("id_by_name"), func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query, name).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.E(t.op("id_by_name"), errs.NotFound, errors.New(t.entity+" "+name+" not found"))
		}
		return err
	})
	return id, err
}

// deleteByName removes the association rows then the row itself in one
// transaction. Deleting an unknown name is a no-op.
func (t *lookupTable) deleteByName(ctx context.Context, name string) error {
	deleteAssoc := `
		DELETE FROM ` + t.assocTable + `
		WHERE ` + t.assocColumn + ` IN (SELECT id FROM ` + t.table + ` WHERE name = $1)`
	deleteRow := `DELETE FROM ` + t.table + ` WHERE name = $1`

	return t.exec.Do(ctx, t.op("delete_by_name"), func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteAssoc, name); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, deleteRow, name)
		return err
	})
}
