package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/member-directory/internal/database/dbtest"
	"github.com/deppfellow/member-directory/internal/errs"
	"github.com/deppfellow/member-directory/internal/model"
)

// These tests run the repository SQL against PostgreSQL. They are skipped
// unless MEMBERDIR_TEST_DATABASE_URL is set.

var loginTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newDBRepositories(t *testing.T) (*Repositories, func(query string, args ...any) int) {
	exec, pool := dbtest.NewExecutor(t)
	count := func(query string, args ...any) int {
		return dbtest.Count(t, pool, query, args...)
	}
	return NewRepositoriesWithExecutor(exec), count
}

func usernames(members []model.MemberSummary) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Username)
	}
	return names
}

func TestDBRegisterValidateBanScenario(t *testing.T) {
	repos, _ := newDBRepositories(t)
	ctx := context.Background()

	id, err := repos.Member.Register(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	public, err := repos.Member.ListPublic(ctx)
	require.NoError(t, err)
	assert.Empty(t, public)

	require.NoError(t, repos.Member.Validate(ctx, id))
	public, err = repos.Member.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "alice", public[0].Username)
	assert.Equal(t, []string{}, public[0].Categories)

	require.NoError(t, repos.Member.Ban(ctx, id))
	public, err = repos.Member.ListPublic(ctx)
	require.NoError(t, err)
	assert.NotContains(t, usernames(public), "alice")

	require.NoError(t, repos.Member.Unban(ctx, id))
	public, err = repos.Member.ListPublic(ctx)
	require.NoError(t, err)
	assert.Contains(t, usernames(public), "alice")
}

func TestDBPublicListMatchesModerationState(t *testing.T) {
	repos, _ := newDBRepositories(t)
	ctx := context.Background()

	ids := map[string]int64{}
	for _, name := range []string{"pending", "public", "banned", "banned-pending"} {
		id, err := repos.Member.Register(ctx, name)
		require.NoError(t, err)
		ids[name] = id
	}
	require.NoError(t, repos.Member.Validate(ctx, ids["public"]))
	require.NoError(t, repos.Member.Validate(ctx, ids["banned"]))
	require.NoError(t, repos.Member.Ban(ctx, ids["banned"]))
	require.NoError(t, repos.Member.Ban(ctx, ids["banned-pending"]))

	all, err := repos.Member.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)

	public, err := repos.Member.ListPublic(ctx)
	require.NoError(t, err)

	var want []string
	for _, m := range all {
		if m.IsPublic() {
			want = append(want, m.Username)
		}
	}
	assert.Equal(t, []string{"public"}, want)
	assert.Equal(t, want, usernames(public))
}

func TestDBCreateDuplicateUsernameIsConflict(t *testing.T) {
	repos, _ := newDBRepositories(t)
	ctx := context.Background()

	_, err := repos.Member.Create(ctx, model.MemberProfile{Username: "alice", Mail: strPtr("a@example.com")})
	require.NoError(t, err)

	_, err = repos.Member.Create(ctx, model.MemberProfile{Username: "alice"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrConflict))
	assert.Equal(t, "A Member with this Username already exists", errs.ToHTTP(err).Message)
}

func TestDBAddCategoriesIsIdempotent(t *testing.T) {
	repos, count := newDBRepositories(t)
	ctx := context.Background()

	memberID, err := repos.Member.Register(ctx, "alice")
	require.NoError(t, err)
	design, err := repos.Category.Create(ctx, "design")
	require.NoError(t, err)
	photo, err := repos.Category.Create(ctx, "photo")
	require.NoError(t, err)

	require.NoError(t, repos.Member.AddCategories(ctx, memberID, []int64{design, design}))
	require.NoError(t, repos.Member.AddCategories(ctx, memberID, []int64{design, photo}))

	assert.Equal(t, 1, count(`SELECT count(*) FROM member_has_category WHERE id_member = $1 AND id_category = $2`, memberID, design))
	assert.Equal(t, 2, count(`SELECT count(*) FROM member_has_category WHERE id_member = $1`, memberID))

	require.NoError(t, repos.Member.Validate(ctx, memberID))
	byCategory, err := repos.Member.ListPublicByCategory(ctx, "photo")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, []string{"design", "photo"}, byCategory[0].Categories)

	require.NoError(t, repos.Member.RemoveCategories(ctx, memberID, []int64{photo, 999}))
	categories, err := repos.Member.Categories(ctx, memberID)
	require.NoError(t, err)
	assert.Equal(t, []model.Category{{ID: design, Name: "design"}}, categories)
}

func TestDBAddCategoriesUnknownCategoryWritesNothing(t *testing.T) {
	repos, count := newDBRepositories(t)
	ctx := context.Background()

	memberID, err := repos.Member.Register(ctx, "alice")
	require.NoError(t, err)
	design, err := repos.Category.Create(ctx, "design")
	require.NoError(t, err)

	err = repos.Member.AddCategories(ctx, memberID, []int64{design, 999})

	assert.Equal(t, errs.Conflict, errs.KindOf(err))
	assert.Equal(t, 0, count(`SELECT count(*) FROM member_has_category`))
}

func TestDBAddNetworksOverwritesURL(t *testing.T) {
	repos, count := newDBRepositories(t)
	ctx := context.Background()

	memberID, err := repos.Member.Register(ctx, "alice")
	require.NoError(t, err)
	github, err := repos.Network.Create(ctx, "github")
	require.NoError(t, err)

	require.NoError(t, repos.Member.AddNetworks(ctx, memberID, []model.NetworkLink{{NetworkID: github, URL: "https://github.com/old"}}))
	require.NoError(t, repos.Member.AddNetworks(ctx, memberID, []model.NetworkLink{{NetworkID: github, URL: "https://github.com/new"}}))

	assert.Equal(t, 1, count(`SELECT count(*) FROM member_has_network WHERE id_member = $1`, memberID))
	networks, err := repos.Member.Networks(ctx, memberID)
	require.NoError(t, err)
	require.Len(t, networks, 1)
	assert.Equal(t, "https://github.com/new", networks[0].URL)
}

func TestDBAddNetworksSkipsEmptyURL(t *testing.T) {
	repos, count := newDBRepositories(t)
	ctx := context.Background()

	memberID, err := repos.Member.Register(ctx, "alice")
	require.NoError(t, err)
	x, err := repos.Network.Create(ctx, "x")
	require.NoError(t, err)
	mastodon, err := repos.Network.Create(ctx, "mastodon")
	require.NoError(t, err)

	err = repos.Member.AddNetworks(ctx, memberID, []model.NetworkLink{
		{NetworkID: x, URL: "http://x"},
		{NetworkID: mastodon, URL: ""},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, count(`SELECT count(*) FROM member_has_network`))
	assert.Equal(t, 1, count(`SELECT count(*) FROM member_has_network WHERE id_member = $1 AND id_network = $2 AND url = 'http://x'`, memberID, x))
	assert.Equal(t, 0, count(`SELECT count(*) FROM member_has_network WHERE id_network = $1`, mastodon))
}

func TestDBDeleteCategoryLeavesNoAssociations(t *testing.T) {
	repos, count := newDBRepositories(t)
	ctx := context.Background()

	design, err := repos.Category.Create(ctx, "design")
	require.NoError(t, err)
	for _, name := range []string{"alice", "bob"} {
		id, err := repos.Member.Register(ctx, name)
		require.NoError(t, err)
		require.NoError(t, repos.Member.AddCategories(ctx, id, []int64{design}))
	}

	require.NoError(t, repos.Category.DeleteByName(ctx, "design"))

	assert.Equal(t, 0, count(`SELECT count(*) FROM member_has_category WHERE id_category = $1`, design))
	assert.Equal(t, 0, count(`SELECT count(*) FROM category WHERE id = $1`, design))

	_, err = repos.Category.IDByName(ctx, "design")
	assert.True(t, errors.Is(err, errs.ErrNotFound))
	assert.NoError(t, repos.Category.DeleteByName(ctx, "design"))
}

func TestDBDeleteNetworkLeavesNoLinks(t *testing.T) {
	repos, count := newDBRepositories(t)
	ctx := context.Background()

	memberID, err := repos.Member.Register(ctx, "alice")
	require.NoError(t, err)
	github, err := repos.Network.Create(ctx, "github")
	require.NoError(t, err)
	require.NoError(t, repos.Member.AddNetworks(ctx, memberID, []model.NetworkLink{{NetworkID: github, URL: "https://github.com/a"}}))

	require.NoError(t, repos.Network.DeleteByName(ctx, "github"))

	assert.Equal(t, 0, count(`SELECT count(*) FROM member_has_network`))
	networks, err := repos.Network.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, networks)
}

func TestDBSessionUpsertByMember(t *testing.T) {
	repos, count := newDBRepositories(t)
	ctx := context.Background()

	memberID, err := repos.Member.Register(ctx, "alice")
	require.NoError(t, err)

	first := loginTime
	require.NoError(t, repos.Session.Register(ctx, memberID, "A1", "R1", first))
	require.NoError(t, repos.Session.Register(ctx, memberID, "A2", "R2", first.Add(time.Minute)))

	assert.Equal(t, 1, count(`SELECT count(*) FROM session WHERE id_member = $1`, memberID))
	session, err := repos.Session.Get(ctx, memberID)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "A2", session.AccessToken)
	assert.True(t, session.DateCreated.Equal(first.Add(time.Minute)))

	require.NoError(t, repos.Session.Delete(ctx, memberID))
	session, err = repos.Session.Get(ctx, memberID)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestDBImageAndAdminFlag(t *testing.T) {
	repos, _ := newDBRepositories(t)
	ctx := context.Background()

	memberID, err := repos.Member.Register(ctx, "alice")
	require.NoError(t, err)

	image, err := repos.Member.GetImage(ctx, memberID)
	require.NoError(t, err)
	assert.Nil(t, image)

	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	require.NoError(t, repos.Member.SetImage(ctx, memberID, png))
	image, err = repos.Member.GetImage(ctx, memberID)
	require.NoError(t, err)
	assert.Equal(t, png, image)

	isAdmin, err := repos.Member.IsAdmin(ctx, memberID)
	require.NoError(t, err)
	assert.False(t, isAdmin)

	isAdmin, err = repos.Member.IsAdmin(ctx, 404)
	require.NoError(t, err)
	assert.False(t, isAdmin)
}
