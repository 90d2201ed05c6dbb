// Package service contains the business logic.
//
// It sits between the callers (the CLI, an HTTP layer) and the
// repositories: it validates input, enforces the admin guard and keeps
// the session window.
package service

import (
	"github.com/deppfellow/member-directory/internal/lib/imagetype"
	"github.com/deppfellow/member-directory/internal/lib/job"
	"github.com/deppfellow/member-directory/internal/repository"
	"github.com/deppfellow/member-directory/internal/server"
)

type Services struct {
	Auth      *AuthService
	Admin     *AdminService
	Member    *MemberService
	Portfolio *PortfolioService
}

// NewService builds the services over repos. Notifications are queued only
// when the server has a job client.
func NewService(s *server.Server, repos *repository.Repositories) *Services {
	authService := NewAuthService(repos.Session, repos.Member, s.Config.Auth.SessionWindow, s.Logger)

	var enqueuer job.Enqueuer
	if s.Job != nil {
		enqueuer = s.Job.Client
	}

	return &Services{
		Auth:      authService,
		Admin:     NewAdminService(authService, repos.Member, enqueuer, s.Logger),
		Member:    NewMemberService(repos),
		Portfolio: NewPortfolioService(repos.Member, imagetype.NewClassifier(), s.Logger),
	}
}
