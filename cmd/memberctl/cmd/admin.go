package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Moderate members",
	Long: `Moderation commands. Every command acts on behalf of --as, which
must be an admin member.

Examples:
  memberctl admin list --as 1
  memberctl admin validate 7 --as 1
  memberctl admin ban 7 --as 1
  memberctl admin unban 7 --as 1`,
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every member, pending and banned included",
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		members, err := a.services.Admin.ListMembers(ctx, actor(cmd))
		if err != nil {
			return err
		}
		return printJSON(cmd, members)
	}),
}

func moderationCmd(use, short string, action func(ctx context.Context, a *app, actorID, memberID int64) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <member-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return action(ctx, a, actor(cmd), id)
		}),
	}
}

var (
	adminValidateCmd = moderationCmd("validate", "Publish a pending member", func(ctx context.Context, a *app, actorID, memberID int64) error {
		return a.services.Admin.ValidateMember(ctx, actorID, memberID)
	})
	adminBanCmd = moderationCmd("ban", "Hide a member from public listings", func(ctx context.Context, a *app, actorID, memberID int64) error {
		return a.services.Admin.BanMember(ctx, actorID, memberID)
	})
	adminUnbanCmd = moderationCmd("unban", "Lift a ban", func(ctx context.Context, a *app, actorID, memberID int64) error {
		return a.services.Admin.UnbanMember(ctx, actorID, memberID)
	})
)

func actor(cmd *cobra.Command) int64 {
	id, _ := cmd.Flags().GetInt64("as")
	return id
}

func init() {
	adminCmd.PersistentFlags().Int64("as", 0, "id of the acting admin member")
	_ = adminCmd.MarkPersistentFlagRequired("as")

	adminCmd.AddCommand(adminListCmd, adminValidateCmd, adminBanCmd, adminUnbanCmd)
}
