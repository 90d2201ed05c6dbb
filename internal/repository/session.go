package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/member-directory/internal/database"
	"github.com/deppfellow/member-directory/internal/model"
)

// SessionRepository stores at most one session per member.
type SessionRepository interface {
	// Register replaces any existing session of the member.
	Register(ctx context.Context, memberID int64, accessToken, refreshToken string, createdAt time.Time) error
	Get(ctx context.Context, memberID int64) (*model.Session, error)
	Delete(ctx context.Context, memberID int64) error
}

type sessionRepo struct {
	exec *database.Executor
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(exec *database.Executor) SessionRepository {
	return &sessionRepo{exec: exec}
}

func (r *sessionRepo) Register(ctx context.Context, memberID int64, accessToken, refreshToken string, createdAt time.Time) error {
	query := `
		INSERT INTO session (id_member, access_token, refresh_token, date_created)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id_member) DO UPDATE
		SET access_token = EXCLUDED.access_token,
		    refresh_token = EXCLUDED.refresh_token,
		    date_created = EXCLUDED.date_created`

	return r.exec.Do(ctx, "session.register", func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query, memberID, accessToken, refreshToken, createdAt)
		return err
	})
}

// Get returns the member's session, or (nil, nil) when none is stored.
func (r *sessionRepo) Get(ctx context.Context, memberID int64) (*model.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM session WHERE id_member = $1`

	var session *model.Session
	err := r.exec.Do(ctx, "session.get", func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, memberID)
		if err != nil {
			return err
		}

		row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[sessionRow])
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		session = row.toModel()
		return nil
	})
	return session, err
}

func (r *sessionRepo) Delete(ctx context.Context, memberID int64) error {
	return r.exec.Do(ctx, "session.delete", func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM session WHERE id_member = $1`, memberID)
		return err
	})
}

var _ SessionRepository = (*sessionRepo)(nil)
