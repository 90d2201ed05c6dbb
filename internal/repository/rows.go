package repository

import (
	"time"

	"github.com/deppfellow/member-directory/internal/model"
)

// Row structs are decoded with pgx.RowToStructByName, which fails when the
// selected columns and the db tags differ. Each *Columns constant is the
// exact select list for its row struct.

// publicMemberFilter is the single definition of "publicly visible".
const publicMemberFilter = "m.date_validate IS NOT NULL AND m.date_deleted IS NULL"

const memberColumns = `m.id, m.username, m.firstname, m.lastname, m.description, m.mail,
	m.url_portfolio, m.date_validate, m.date_deleted, m.is_admin`

type memberRow struct {
	ID           int64      `db:"id"`
	Username     string     `db:"username"`
	Firstname    *string    `db:"firstname"`
	Lastname     *string    `db:"lastname"`
	Description  *string    `db:"description"`
	Mail         *string    `db:"mail"`
	URLPortfolio *string    `db:"url_portfolio"`
	DateValidate *time.Time `db:"date_validate"`
	DateDeleted  *time.Time `db:"date_deleted"`
	IsAdmin      bool       `db:"is_admin"`
}

func (r memberRow) toModel() *model.Member {
	return &model.Member{
		ID:           r.ID,
		Username:     r.Username,
		Firstname:    r.Firstname,
		Lastname:     r.Lastname,
		Description:  r.Description,
		Mail:         r.Mail,
		URLPortfolio: r.URLPortfolio,
		DateValidate: r.DateValidate,
		DateDeleted:  r.DateDeleted,
		IsAdmin:      r.IsAdmin,
	}
}

const memberSummaryColumns = `m.id, m.username, m.url_portfolio,
	COALESCE(array_agg(c.name ORDER BY c.name) FILTER (WHERE c.name IS NOT NULL), '{}') AS categories`

type memberSummaryRow struct {
	ID           int64    `db:"id"`
	Username     string   `db:"username"`
	URLPortfolio *string  `db:"url_portfolio"`
	Categories   []string `db:"categories"`
}

func (r memberSummaryRow) toModel() model.MemberSummary {
	categories := r.Categories
	if categories == nil {
		categories = []string{}
	}
	return model.MemberSummary{
		ID:           r.ID,
		Username:     r.Username,
		URLPortfolio: r.URLPortfolio,
		Categories:   categories,
	}
}

const lookupColumns = "id, name"

type lookupRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (r lookupRow) toCategory() model.Category {
	return model.Category{ID: r.ID, Name: r.Name}
}

func (r lookupRow) toNetwork() model.Network {
	return model.Network{ID: r.ID, Name: r.Name}
}

const memberNetworkColumns = "n.id AS id_network, n.name, mhn.url"

type memberNetworkRow struct {
	NetworkID int64  `db:"id_network"`
	Name      string `db:"name"`
	URL       string `db:"url"`
}

func (r memberNetworkRow) toModel() model.MemberNetwork {
	return model.MemberNetwork{NetworkID: r.NetworkID, Name: r.Name, URL: r.URL}
}

const sessionColumns = "id_member, access_token, refresh_token, date_created"

type sessionRow struct {
	MemberID     int64     `db:"id_member"`
	AccessToken  string    `db:"access_token"`
	RefreshToken string    `db:"refresh_token"`
	DateCreated  time.Time `db:"date_created"`
}

func (r sessionRow) toModel() *model.Session {
	return &model.Session{
		MemberID:     r.MemberID,
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		DateCreated:  r.DateCreated,
	}
}
