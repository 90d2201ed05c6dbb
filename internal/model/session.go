package model

import "time"

// Session is the stored login of a member.
type Session struct {
	MemberID     int64     `json:"id_member"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	DateCreated  time.Time `json:"date_created"`
}

// ExpiresAt is the last instant at which the session is still valid.
func (s *Session) ExpiresAt(window time.Duration) time.Time {
	return s.DateCreated.Add(window)
}

// SessionCandidate is what a caller presents for verification.
type SessionCandidate struct {
	MemberID     int64  `json:"user_id" validate:"min=1"`
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}
