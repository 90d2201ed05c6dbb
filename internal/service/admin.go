package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/member-directory/internal/errs"
	"github.com/deppfellow/member-directory/internal/lib/job"
	"github.com/deppfellow/member-directory/internal/model"
	"github.com/deppfellow/member-directory/internal/repository"
)

// AdminService is the moderation surface. Every call is made on behalf of
// an acting member who must hold the admin flag.
type AdminService struct {
	auth    *AuthService
	members repository.MemberRepository
	jobs    job.Enqueuer
	logger  *zerolog.Logger
}

func NewAdminService(auth *AuthService, members repository.MemberRepository, jobs job.Enqueuer, logger *zerolog.Logger) *AdminService {
	return &AdminService{auth: auth, members: members, jobs: jobs, logger: logger}
}

// ListMembers returns every member, pending and banned included.
func (s *AdminService) ListMembers(ctx context.Context, actorID int64) ([]*model.Member, error) {
	const op = "admin.list_members"
	if err := s.guard(ctx, op, actorID); err != nil {
		return nil, err
	}
	return s.members.ListAll(ctx)
}

// ValidateMember makes a pending member public. The notification email is
// queued only on the first validation and only when the member has a mail
// address.
func (s *AdminService) ValidateMember(ctx context.Context, actorID, memberID int64) error {
	const op = "admin.validate_member"
	if err := s.guard(ctx, op, actorID); err != nil {
		return err
	}

	member, err := s.target(ctx, op, memberID)
	if err != nil {
		return err
	}

	if err := s.members.Validate(ctx, memberID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("member_id", memberID).
		Bool("was_pending", member.IsPending()).
		Bool("banned", member.IsBanned()).
		Msg("member validated")

	if member.IsPending() {
		s.notifyValidated(ctx, member)
	}
	return nil
}

// BanMember hides a member from public listings.
func (s *AdminService) BanMember(ctx context.Context, actorID, memberID int64) error {
	const op = "admin.ban_member"
	if err := s.guard(ctx, op, actorID); err != nil {
		return err
	}
	member, err := s.target(ctx, op, memberID)
	if err != nil {
		return err
	}
	if err := s.members.Ban(ctx, memberID); err != nil {
		return err
	}

	s.logger.Info().Int64("member_id", memberID).Bool("was_banned", member.IsBanned()).Msg("member banned")
	return nil
}

// UnbanMember lifts a ban.
func (s *AdminService) UnbanMember(ctx context.Context, actorID, memberID int64) error {
	const op = "admin.unban_member"
	if err := s.guard(ctx, op, actorID); err != nil {
		return err
	}
	member, err := s.target(ctx, op, memberID)
	if err != nil {
		return err
	}
	if err := s.members.Unban(ctx, memberID); err != nil {
		return err
	}

	s.logger.Info().Int64("member_id", memberID).Bool("was_banned", member.IsBanned()).Msg("member unbanned")
	return nil
}

func (s *AdminService) guard(ctx context.Context, op string, actorID int64) error {
	if !s.auth.IsAdmin(ctx, actorID) {
		return errs.E(op, errs.Forbidden, nil)
	}
	return nil
}

func (s *AdminService) target(ctx context.Context, op string, memberID int64) (*model.Member, error) {
	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, errs.E(op, errs.NotFound, nil)
	}
	return member, nil
}

func (s *AdminService) notifyValidated(ctx context.Context, member *model.Member) {
	if s.jobs == nil || member.Mail == nil || *member.Mail == "" {
		return
	}

	payload := job.MemberValidatedPayload{
		MemberID: member.ID,
		To:       *member.Mail,
		Username: member.Username,
	}
	if member.URLPortfolio != nil {
		payload.ProfileURL = *member.URLPortfolio
	}

	task, err := job.NewMemberValidatedTask(payload)
	if err != nil {
		s.logger.Error().Err(err).Int64("member_id", member.ID).Msg("failed to build member validated task")
		return
	}

	if _, err := s.jobs.EnqueueContext(ctx, task); err != nil {
		s.logger.Error().Err(err).Int64("member_id", member.ID).Msg("failed to enqueue member validated task")
	}
}
