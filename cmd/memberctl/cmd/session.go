package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deppfellow/member-directory/internal/model"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Register, verify and revoke member sessions",
	Long: `Session commands.

Examples:
  memberctl session register 7 <access> <refresh>
  memberctl session verify 7 <access> <refresh>
  memberctl session delete 7`,
}

var sessionRegisterCmd = &cobra.Command{
	Use:   "register <member-id> <access-token> <refresh-token>",
	Short: "Store a session, replacing any previous one",
	Args:  cobra.ExactArgs(3),
	RunE: withApp(func(ctx context.Context, _ *cobra.Command, a *app, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return a.services.Auth.RegisterToken(ctx, args[1], args[2], id)
	}),
}

var sessionVerifyCmd = &cobra.Command{
	Use:   "verify <member-id> <access-token> <refresh-token>",
	Short: "Check tokens against the stored session",
	Args:  cobra.ExactArgs(3),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		valid, err := a.services.Auth.VerifySession(ctx, model.SessionCandidate{
			MemberID:     id,
			AccessToken:  args[1],
			RefreshToken: args[2],
		})
		if err != nil {
			return err
		}

		if err := printJSON(cmd, map[string]bool{"valid": valid}); err != nil {
			return err
		}
		if !valid {
			return fmt.Errorf("session for member %d is not valid", id)
		}
		return nil
	}),
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete <member-id>",
	Short: "Revoke the member's session",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, _ *cobra.Command, a *app, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return a.services.Auth.DeleteSession(ctx, id)
	}),
}

func init() {
	sessionCmd.AddCommand(sessionRegisterCmd, sessionVerifyCmd, sessionDeleteCmd)
}
