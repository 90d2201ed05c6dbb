package service

import (
	"context"

	"github.com/deppfellow/member-directory/internal/model"
	"github.com/deppfellow/member-directory/internal/repository"
	"github.com/deppfellow/member-directory/internal/validation"
)

// MemberService validates profile input and resolves category and network
// names before handing off to the repositories.
type MemberService struct {
	members    repository.MemberRepository
	categories repository.CategoryRepository
	networks   repository.NetworkRepository
}

func NewMemberService(repos *repository.Repositories) *MemberService {
	return &MemberService{
		members:    repos.Member,
		categories: repos.Category,
		networks:   repos.Network,
	}
}

// Create validates profile and inserts a pending member.
func (s *MemberService) Create(ctx context.Context, profile model.MemberProfile) (int64, error) {
	if err := validation.Struct("member.create", profile); err != nil {
		return 0, err
	}
	return s.members.Create(ctx, profile)
}

// Update validates profile and overwrites everything but the username.
func (s *MemberService) Update(ctx context.Context, id int64, profile model.MemberProfile) error {
	if err := validation.StructExcept("member.update", profile, "Username"); err != nil {
		return err
	}
	return s.members.Update(ctx, id, profile)
}

// Profile returns the member with its categories and networks. A missing
// member returns nil values and no error.
func (s *MemberService) Profile(ctx context.Context, id int64) (*model.Member, []model.Category, []model.MemberNetwork, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil || member == nil {
		return nil, nil, nil, err
	}

	categories, err := s.members.Categories(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}

	networks, err := s.members.Networks(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}

	return member, categories, networks, nil
}

// AttachCategories resolves names to ids and attaches them. An unknown
// name fails the whole call with NotFound before anything is written.
func (s *MemberService) AttachCategories(ctx context.Context, memberID int64, names []string) error {
	ids, err := s.resolve(ctx, s.categories.IDByName, names)
	if err != nil {
		return err
	}
	return s.members.AddCategories(ctx, memberID, ids)
}

// DetachCategories removes the named categories from the member.
func (s *MemberService) DetachCategories(ctx context.Context, memberID int64, names []string) error {
	ids, err := s.resolve(ctx, s.categories.IDByName, names)
	if err != nil {
		return err
	}
	return s.members.RemoveCategories(ctx, memberID, ids)
}

// AttachNetworks resolves network names and upserts their URLs. Names
// given with an empty URL are skipped without a lookup.
func (s *MemberService) AttachNetworks(ctx context.Context, memberID int64, urls map[string]string) error {
	links := make([]model.NetworkLink, 0, len(urls))
	for name, url := range urls {
		if url == "" {
			continue
		}
		id, err := s.networks.IDByName(ctx, name)
		if err != nil {
			return err
		}
		links = append(links, model.NetworkLink{NetworkID: id, URL: url})
	}
	return s.members.AddNetworks(ctx, memberID, links)
}

// DetachNetworks removes the named networks from the member.
func (s *MemberService) DetachNetworks(ctx context.Context, memberID int64, names []string) error {
	ids, err := s.resolve(ctx, s.networks.IDByName, names)
	if err != nil {
		return err
	}
	return s.members.RemoveNetworks(ctx, memberID, ids)
}

func (s *MemberService) resolve(ctx context.Context, lookup func(context.Context, string) (int64, error), names []string) ([]int64, error) {
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		id, err := lookup(ctx, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
