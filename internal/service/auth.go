package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/member-directory/internal/model"
	"github.com/deppfellow/member-directory/internal/repository"
	"github.com/deppfellow/member-directory/internal/validation"
)

// AuthService stores sessions and checks presented tokens against them.
type AuthService struct {
	sessions repository.SessionRepository
	members  repository.MemberRepository
	window   time.Duration
	now      func() time.Time
	logger   *zerolog.Logger
}

// AuthOption customises an AuthService.
type AuthOption func(*AuthService)

// WithClock replaces time.Now, for tests that need to cross the window.
func WithClock(now func() time.Time) AuthOption {
	return func(s *AuthService) {
		s.now = now
	}
}

// NewAuthService creates an AuthService whose sessions stay valid for
// window after registration.
func NewAuthService(sessions repository.SessionRepository, members repository.MemberRepository, window time.Duration, logger *zerolog.Logger, opts ...AuthOption) *AuthService {
	s := &AuthService{
		sessions: sessions,
		members:  members,
		window:   window,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterToken records a login. A member has at most one session: a new
// login replaces the previous tokens and restarts the window.
func (s *AuthService) RegisterToken(ctx context.Context, accessToken, refreshToken string, memberID int64) error {
	candidate := model.SessionCandidate{MemberID: memberID, AccessToken: accessToken, RefreshToken: refreshToken}
	if err := validation.Struct("session.register", candidate); err != nil {
		return err
	}

	return s.sessions.Register(ctx, memberID, accessToken, refreshToken, s.now())
}

// VerifySession reports whether candidate matches the stored session of
// its member and the session is still inside the window. The window end
// is inclusive.
//
// A missing session, a token mismatch and an expired session all report
// false with a nil error; only a failing store returns an error.
func (s *AuthService) VerifySession(ctx context.Context, candidate model.SessionCandidate) (bool, error) {
	session, err := s.sessions.Get(ctx, candidate.MemberID)
	if err != nil {
		return false, err
	}
	if session == nil {
		return false, nil
	}

	if !tokenEqual(session.AccessToken, candidate.AccessToken) || !tokenEqual(session.RefreshToken, candidate.RefreshToken) {
		return false, nil
	}

	if s.now().After(session.ExpiresAt(s.window)) {
		return false, nil
	}

	return true, nil
}

func tokenEqual(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}

// DeleteSession logs the member out. Deleting an absent session succeeds.
func (s *AuthService) DeleteSession(ctx context.Context, memberID int64) error {
	return s.sessions.Delete(ctx, memberID)
}

// IsAdmin reports the member's admin flag. Lookup failures are logged and
// treated as not admin.
func (s *AuthService) IsAdmin(ctx context.Context, memberID int64) bool {
	isAdmin, err := s.members.IsAdmin(ctx, memberID)
	if err != nil {
		s.logger.Error().Err(err).Int64("member_id", memberID).Msg("admin lookup failed")
		return false
	}
	return isAdmin
}
