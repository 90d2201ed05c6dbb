package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/member-directory/internal/database"
	"github.com/deppfellow/member-directory/internal/model"
)

// MemberRepository defines the data operations on members and their
// category/network associations.
//
// Writes addressed to an id that does not exist succeed as no-ops; callers
// that need the distinction look the member up first.
type MemberRepository interface {
	ListPublic(ctx context.Context) ([]model.MemberSummary, error)
	ListPublicByCategory(ctx context.Context, categoryName string) ([]model.MemberSummary, error)
	GetByID(ctx context.Context, id int64) (*model.Member, error)
	GetByUsername(ctx context.Context, username string) (*model.Member, error)
	Create(ctx context.Context, profile model.MemberProfile) (int64, error)
	Update(ctx context.Context, id int64, profile model.MemberProfile) error
	Register(ctx context.Context, username string) (int64, error)
	ListAll(ctx context.Context) ([]*model.Member, error)
	Validate(ctx context.Context, id int64) error
	Ban(ctx context.Context, id int64) error
	Unban(ctx context.Context, id int64) error
	IsAdmin(ctx context.Context, id int64) (bool, error)
	SetImage(ctx context.Context, id int64, image []byte) error
	GetImage(ctx context.Context, id int64) ([]byte, error)
	Categories(ctx context.Context, id int64) ([]model.Category, error)
	Networks(ctx context.Context, id int64) ([]model.MemberNetwork, error)

	AddCategories(ctx context.Context, memberID int64, categoryIDs []int64) error
	RemoveCategories(ctx context.Context, memberID int64, categoryIDs []int64) error
	AddNetworks(ctx context.Context, memberID int64, links []model.NetworkLink) error
	RemoveNetworks(ctx context.Context, memberID int64, networkIDs []int64) error
}

type memberRepo struct {
	exec *database.Executor
}

// NewMemberRepository creates a new member repository.
func NewMemberRepository(exec *database.Executor) MemberRepository {
	return &memberRepo{exec: exec}
}

// ListPublic returns every publicly visible member with its category names.
// Members without categories are listed with an empty slice.
func (r *memberRepo) ListPublic(ctx context.Context) ([]model.MemberSummary, error) {
	query := `
		SELECT ` + memberSummaryColumns + `
		FROM member m
		LEFT JOIN member_has_category mhc ON mhc.id_member = m.id
		LEFT JOIN category c ON c.id = mhc.id_category
		WHERE ` + publicMemberFilter + `
		GROUP BY m.id
		ORDER BY m.id`

	var members []model.MemberSummary
	err := r.exec.Do(ctx, "member.list_public", func(ctx context.Context, tx pgx.Tx) error {
		var err error
		members, err = collectSummaries(ctx, tx, query)
		return err
	})
	return members, err
}

// ListPublicByCategory returns the publicly visible members attached to the
// named category. Each summary still lists all of the member's categories.
func (r *memberRepo) ListPublicByCategory(ctx context.Context, categoryName string) ([]model.MemberSummary, error) {
	query := `
		SELECT ` + memberSummaryColumns + `
		FROM member m
		LEFT JOIN member_has_category mhc ON mhc.id_member = m.id
		LEFT JOIN category c ON c.id = mhc.id_category
		WHERE ` + publicMemberFilter + `
		  AND EXISTS (
			SELECT 1 FROM member_has_category f
			JOIN category fc ON fc.id = f.id_category
			WHERE f.id_member = m.id AND fc.name = $1)
		GROUP BY m.id
		ORDER BY m.id`

	var members []model.MemberSummary
	err := r.exec.Do(ctx, "member.list_public_by_category", func(ctx context.Context, tx pgx.Tx) error {
		var err error
		members, err = collectSummaries(ctx, tx, query, categoryName)
		return err
	})
	return members, err
}

func collectSummaries(ctx context.Context, tx pgx.Tx, query string, args ...any) ([]model.MemberSummary, error) {
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	decoded, err := pgx.CollectRows(rows, pgx.RowToStructByName[memberSummaryRow])
	if err != nil {
		return nil, err
	}

	members := make([]model.MemberSummary, 0, len(decoded))
	for _, row := range decoded {
		members = append(members, row.toModel())
	}
	return members, nil
}

// GetByID returns the member with the given id, whatever its moderation
// state. A missing member is reported as (nil, nil).
func (r *memberRepo) GetByID(ctx context.Context, id int64) (*model.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM member m WHERE m.id = $1`
	return r.getOne(ctx, "member.get_by_id", query, id)
}

// GetByUsername returns the member with the given username, or (nil, nil).
func (r *memberRepo) GetByUsername(ctx context.Context, username string) (*model.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM member m WHERE m.username = $1`
	return r.getOne(ctx, "member.get_by_username", query, username)
}

func (r *memberRepo) getOne(ctx context.Context, op, query string, arg any) (*model.Member, error) {
	var member *model.Member
	err := r.exec.Do(ctx, op, func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, arg)
		if err != nil {
			return err
		}

		row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[memberRow])
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		member = row.toModel()
		return nil
	})
	return member, err
}

// Create inserts a member from a full profile and returns the generated id.
// The member starts pending: no validation date, not deleted.
func (r *memberRepo) Create(ctx context.Context, profile model.MemberProfile) (int64, error) {
	query := `
		INSERT INTO member (username, firstname, lastname, description, mail, url_portfolio)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.exec.Do(ctx, "member.create", func(ctx context.Context, tx pgx.Tx) error {
		return tx.QueryRow(ctx, query,
			profile.Username,
			profile.Firstname,
			profile.Lastname,
			profile.Description,
			profile.Mail,
			profile.URLPortfolio,
		).Scan(&id)
	})
	return id, err
}

// Update overwrites the profile fields of member id. The username is not
// changed.
func (r *memberRepo) Update(ctx context.Context, id int64, profile model.MemberProfile) error {
	query := `
		UPDATE member
		SET firstname = $2, lastname = $3, description = $4, mail = $5, url_portfolio = $6
		WHERE id = $1`

	return r.exec.Do(ctx, "member.update", func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query,
			id,
			profile.Firstname,
			profile.Lastname,
			profile.Description,
			profile.Mail,
			profile.URLPortfolio,
		)
		return err
	})
}

// Register inserts a member known only by username and returns its id.
func (r *memberRepo) Register(ctx context.Context, username string) (int64, error) {
	query := `INSERT INTO member (username) VALUES ($1) RETURNING id`

	var id int64
	err := r.exec.Do(ctx, "member.register", func(ctx context.Context, tx pgx.Tx) error {
		return tx.QueryRow(ctx, query, username).Scan(&id)
	})
	return id, err
}

// ListAll returns every member, pending and banned included, for admins.
func (r *memberRepo) ListAll(ctx context.Context) ([]*model.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM member m ORDER BY m.id`

	var members []*model.Member
	err := r.exec.Do(ctx, "member.list_all", func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query)
		if err != nil {
			return err
		}

		decoded, err := pgx.CollectRows(rows, pgx.RowToStructByName[memberRow])
		if err != nil {
			return err
		}

		members = make([]*model.Member, 0, len(decoded))
		for _, row := range decoded {
			members = append(members, row.toModel())
		}
		return nil
	})
	return members, err
}

// Validate sets date_validate to now.
func (r *memberRepo) Validate(ctx context.Context, id int64) error {
	return r.exec1(ctx, "member.validate", `UPDATE member SET date_validate = now() WHERE id = $1`, id)
}

// Ban soft-deletes the member by setting date_deleted to now.
func (r *memberRepo) Ban(ctx context.Context, id int64) error {
	return r.exec1(ctx, "member.ban", `UPDATE member SET date_deleted = now() WHERE id = $1`, id)
}

// Unban clears date_deleted.
func (r *memberRepo) Unban(ctx context.Context, id int64) error {
	return r.exec1(ctx, "member.unban", `UPDATE member SET date_deleted = NULL WHERE id = $1`, id)
}

func (r *memberRepo) exec1(ctx context.Context, op, query string, args ...any) error {
	return r.exec.Do(ctx, op, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query, args...)
		return err
	})
}

// IsAdmin reads the is_admin flag. A missing member is not an admin.
func (r *memberRepo) IsAdmin(ctx context.Context, id int64) (bool, error) {
	query := `SELECT is_admin FROM member WHERE id = $1`

	var isAdmin bool
	err := r.exec.Do(ctx, "member.is_admin", func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query, id).Scan(&isAdmin)
		if errors.Is(err, pgx.ErrNoRows) {
			isAdmin = false
			return nil
		}
		return err
	})
	return isAdmin, err
}

// SetImage stores the portfolio image bytes.
func (r *memberRepo) SetImage(ctx context.Context, id int64, image []byte) error {
	return r.exec1(ctx, "member.set_image", `UPDATE member SET image_portfolio = $2 WHERE id = $1`, id, image)
}

// GetImage returns the stored portfolio image. A missing member or a
// member without image yields (nil, nil).
func (r *memberRepo) GetImage(ctx context.Context, id int64) ([]byte, error) {
	query := `SELECT image_portfolio FROM member WHERE id = $1`

	var image []byte
	err := r.exec.Do(ctx, "member.get_image", func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query, id).Scan(&image)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	})
	return image, err
}

// Categories lists the categories attached to a member.
func (r *memberRepo) Categories(ctx context.Context, id int64) ([]model.Category, error) {
	query := `
		SELECT c.id, c.name
		FROM category c
		JOIN member_has_category mhc ON mhc.id_category = c.id
		WHERE mhc.id_member = $1
		ORDER BY c.name`

	var categories []model.Category
	err := r.exec.Do(ctx, "member.categories", func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, id)
		if err != nil {
			return err
		}

		decoded, err := pgx.CollectRows(rows, pgx.RowToStructByName[lookupRow])
		if err != nil {
			return err
		}

		categories = make([]model.Category, 0, len(decoded))
		for _, row := range decoded {
			categories = append(categories, row.toCategory())
		}
		return nil
	})
	return categories, err
}

// Networks lists the networks attached to a member with their URLs.
func (r *memberRepo) Networks(ctx context.Context, id int64) ([]model.MemberNetwork, error) {
	query := `
		SELECT ` + memberNetworkColumns + `
		FROM network n
		JOIN member_has_network mhn ON mhn.id_network = n.id
		WHERE mhn.id_member = $1
		ORDER BY n.name`

	var networks []model.MemberNetwork
	err := r.exec.Do(ctx, "member.networks", func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, id)
		if err != nil {
			return err
		}

		decoded, err := pgx.CollectRows(rows, pgx.RowToStructByName[memberNetworkRow])
		if err != nil {
			return err
		}

		networks = make([]model.MemberNetwork, 0, len(decoded))
		for _, row := range decoded {
			networks = append(networks, row.toModel())
		}
		return nil
	})
	return networks, err
}

// Compile-time check to ensure memberRepo implements MemberRepository.
var _ MemberRepository = (*memberRepo)(nil)
