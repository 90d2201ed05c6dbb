package cmd

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/member-directory/internal/errs"
	"github.com/deppfellow/member-directory/internal/sqlerr"
)

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "0", "-1", "alice"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestProfileFromFlagsLeavesUnsetNil(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("firstname", "", "")
	cmd.Flags().String("lastname", "", "")
	cmd.Flags().String("description", "", "")
	cmd.Flags().String("mail", "", "")
	cmd.Flags().String("url", "", "")
	require.NoError(t, cmd.Flags().Set("mail", "a@example.com"))

	profile := profileFromFlags(cmd)

	require.NotNil(t, profile.Mail)
	assert.Equal(t, "a@example.com", *profile.Mail)
	assert.Nil(t, profile.Firstname)
	assert.Nil(t, profile.URLPortfolio)
}

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"migrate"},
		{"member", "categories", "add"},
		{"member", "image", "set"},
		{"category", "delete"},
		{"network", "id"},
		{"session", "verify"},
		{"admin", "validate"},
		{"worker"},
		{"health"},
	} {
		found, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], found.Name())
	}
}

func TestErrorLine(t *testing.T) {
	dup := sqlerr.HandleError("member.create", &pgconn.PgError{
		Code:           "23505",
		TableName:      "member",
		ConstraintName: "unique_member_username",
	})
	assert.Equal(t, "error (MEMBER_ALREADY_EXISTS): A Member with this Username already exists", errorLine(dup))

	missing := errs.E("category.id_by_name", errs.NotFound, nil)
	assert.Equal(t, "error (NOT_FOUND): Not Found", errorLine(missing))

	assert.Equal(t, `error: unknown command "nope"`, errorLine(errors.New(`unknown command "nope"`)))
}
