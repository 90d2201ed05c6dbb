package model

import "time"

// Member is the full profile, including moderation state.
//
// A member is publicly visible only when DateValidate is set and
// DateDeleted is not.
type Member struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Firstname    *string    `json:"firstname"`
	Lastname     *string    `json:"lastname"`
	Description  *string    `json:"description"`
	Mail         *string    `json:"mail"`
	URLPortfolio *string    `json:"url_portfolio"`
	DateValidate *time.Time `json:"date_validate"`
	DateDeleted  *time.Time `json:"date_deleted"`
	IsAdmin      bool       `json:"is_admin"`
}

// IsPublic reports whether the member may appear in public listings.
func (m *Member) IsPublic() bool {
	return m.DateValidate != nil && m.DateDeleted == nil
}

// IsPending reports whether an admin has not validated the member yet.
func (m *Member) IsPending() bool {
	return m.DateValidate == nil
}

// IsBanned reports whether the member is soft-deleted.
func (m *Member) IsBanned() bool {
	return m.DateDeleted != nil
}

// MemberSummary is a row of the public directory.
type MemberSummary struct {
	ID           int64    `json:"id_member"`
	Username     string   `json:"username"`
	URLPortfolio *string  `json:"url_portfolio"`
	Categories   []string `json:"category_name"`
}

// MemberProfile carries the editable profile fields for create and update.
type MemberProfile struct {
	Username     string  `json:"username" validate:"required,max=64,excludesall= /"`
	Firstname    *string `json:"firstname" validate:"omitempty,max=128"`
	Lastname     *string `json:"lastname" validate:"omitempty,max=128"`
	Description  *string `json:"description" validate:"omitempty,max=4000"`
	Mail         *string `json:"mail" validate:"omitempty,email"`
	URLPortfolio *string `json:"url_portfolio" validate:"omitempty,url"`
}
