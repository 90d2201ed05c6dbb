package repository

import (
	"github.com/deppfellow/member-directory/internal/database"
	"github.com/deppfellow/member-directory/internal/server"
)

// Repositories is a container for all repository instances.
//
// Every repository shares one Executor, so all of them draw from the same
// fixed-size pool.
type Repositories struct {
	Member   MemberRepository
	Category CategoryRepository
	Network  NetworkRepository
	Session  SessionRepository
}

// NewRepositories constructs the repository container from the server's
// database pool.
func NewRepositories(s *server.Server) *Repositories {
	return NewRepositoriesWithExecutor(s.DB.Executor())
}

// NewRepositoriesWithExecutor builds the container over an explicit executor.
func NewRepositoriesWithExecutor(exec *database.Executor) *Repositories {
	return &Repositories{
		Member:   NewMemberRepository(exec),
		Category: NewCategoryRepository(exec),
		Network:  NewNetworkRepository(exec),
		Session:  NewSessionRepository(exec),
	}
}
