package service

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"

	"github.com/deppfellow/member-directory/internal/model"
)

var nopLogger = zerolog.Nop()

type mockMemberRepo struct {
	mock.Mock
}

func (m *mockMemberRepo) ListPublic(ctx context.Context) ([]model.MemberSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.MemberSummary), args.Error(1)
}

func (m *mockMemberRepo) ListPublicByCategory(ctx context.Context, categoryName string) ([]model.MemberSummary, error) {
	args := m.Called(ctx, categoryName)
	return args.Get(0).([]model.MemberSummary), args.Error(1)
}

func (m *mockMemberRepo) GetByID(ctx context.Context, id int64) (*model.Member, error) {
	args := m.Called(ctx, id)
	member, _ := args.Get(0).(*model.Member)
	return member, args.Error(1)
}

func (m *mockMemberRepo) GetByUsername(ctx context.Context, username string) (*model.Member, error) {
	args := m.Called(ctx, username)
	member, _ := args.Get(0).(*model.Member)
	return member, args.Error(1)
}

func (m *mockMemberRepo) Create(ctx context.Context, profile model.MemberProfile) (int64, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMemberRepo) Update(ctx context.Context, id int64, profile model.MemberProfile) error {
	return m.Called(ctx, id, profile).Error(0)
}

func (m *mockMemberRepo) Register(ctx context.Context, username string) (int64, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMemberRepo) ListAll(ctx context.Context) ([]*model.Member, error) {
	args := m.Called(ctx)
	members, _ := args.Get(0).([]*model.Member)
	return members, args.Error(1)
}

func (m *mockMemberRepo) Validate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMemberRepo) Ban(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMemberRepo) Unban(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMemberRepo) IsAdmin(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockMemberRepo) SetImage(ctx context.Context, id int64, image []byte) error {
	return m.Called(ctx, id, image).Error(0)
}

func (m *mockMemberRepo) GetImage(ctx context.Context, id int64) ([]byte, error) {
	args := m.Called(ctx, id)
	image, _ := args.Get(0).([]byte)
	return image, args.Error(1)
}

func (m *mockMemberRepo) Categories(ctx context.Context, id int64) ([]model.Category, error) {
	args := m.Called(ctx, id)
	categories, _ := args.Get(0).([]model.Category)
	return categories, args.Error(1)
}

func (m *mockMemberRepo) Networks(ctx context.Context, id int64) ([]model.MemberNetwork, error) {
	args := m.Called(ctx, id)
	networks, _ := args.Get(0).([]model.MemberNetwork)
	return networks, args.Error(1)
}

func (m *mockMemberRepo) AddCategories(ctx context.Context, memberID int64, categoryIDs []int64) error {
	return m.Called(ctx, memberID, categoryIDs).Error(0)
}

func (m *mockMemberRepo) RemoveCategories(ctx context.Context, memberID int64, categoryIDs []int64) error {
	return m.Called(ctx, memberID, categoryIDs).Error(0)
}

func (m *mockMemberRepo) AddNetworks(ctx context.Context, memberID int64, links []model.NetworkLink) error {
	return m.Called(ctx, memberID, links).Error(0)
}

func (m *mockMemberRepo) RemoveNetworks(ctx context.Context, memberID int64, networkIDs []int64) error {
	return m.Called(ctx, memberID, networkIDs).Error(0)
}

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) Register(ctx context.Context, memberID int64, accessToken, refreshToken string, createdAt time.Time) error {
	return m.Called(ctx, memberID, accessToken, refreshToken, createdAt).Error(0)
}

func (m *mockSessionRepo) Get(ctx context.Context, memberID int64) (*model.Session, error) {
	args := m.Called(ctx, memberID)
	session, _ := args.Get(0).(*model.Session)
	return session, args.Error(1)
}

func (m *mockSessionRepo) Delete(ctx context.Context, memberID int64) error {
	return m.Called(ctx, memberID).Error(0)
}

type mockLookupRepo struct {
	mock.Mock
}

func (m *mockLookupRepo) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *mockLookupRepo) Create(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLookupRepo) IDByName(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLookupRepo) DeleteByName(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

type mockNetworkRepo struct {
	mockLookupRepo
}

func (m *mockNetworkRepo) List(ctx context.Context) ([]model.Network, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Network), args.Error(1)
}

type mockEnqueuer struct {
	mock.Mock
}

func (m *mockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}
