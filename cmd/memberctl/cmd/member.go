package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deppfellow/member-directory/internal/model"
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Manage member profiles",
	Long: `Member profile commands.

Examples:
  memberctl member list
  memberctl member list --category design
  memberctl member get alice
  memberctl member create alice --mail alice@example.com
  memberctl member categories add 7 design photo
  memberctl member networks add 7 github=https://github.com/alice
  memberctl member image set 7 portrait.png`,
}

var memberListCmd = &cobra.Command{
	Use:   "list",
	Short: "List publicly visible members",
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		category, _ := cmd.Flags().GetString("category")

		var (
			members []model.MemberSummary
			err     error
		)
		if category != "" {
			members, err = a.repos.Member.ListPublicByCategory(ctx, category)
		} else {
			members, err = a.repos.Member.ListPublic(ctx)
		}
		if err != nil {
			return err
		}
		return printJSON(cmd, members)
	}),
}

var memberGetCmd = &cobra.Command{
	Use:   "get <id|username>",
	Short: "Show a member with categories and networks",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			member, lookupErr := a.repos.Member.GetByUsername(ctx, args[0])
			if lookupErr != nil {
				return lookupErr
			}
			if member == nil {
				return fmt.Errorf("member %q not found", args[0])
			}
			id = member.ID
		}

		member, categories, networks, err := a.services.Member.Profile(ctx, id)
		if err != nil {
			return err
		}
		if member == nil {
			return fmt.Errorf("member %d not found", id)
		}

		return printJSON(cmd, map[string]any{
			"member":     member,
			"categories": categories,
			"networks":   networks,
		})
	}),
}

var memberCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Create a pending member",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		profile := profileFromFlags(cmd)
		profile.Username = args[0]

		id, err := a.services.Member.Create(ctx, profile)
		if err != nil {
			return err
		}
		return printJSON(cmd, map[string]int64{"id": id})
	}),
}

var memberUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Overwrite a member profile",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return a.services.Member.Update(ctx, id, profileFromFlags(cmd))
	}),
}

var memberRegisterCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Register a member known only by username",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		id, err := a.repos.Member.Register(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, map[string]int64{"id": id})
	}),
}

var memberCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Attach or detach categories",
}

var memberCategoriesAddCmd = &cobra.Command{
	Use:   "add <id> <category>...",
	Short: "Attach categories by name",
	Args:  cobra.MinimumNArgs(2),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return a.services.Member.AttachCategories(ctx, id, args[1:])
	}),
}

var memberCategoriesRemoveCmd = &cobra.Command{
	Use:   "remove <id> <category>...",
	Short: "Detach categories by name",
	Args:  cobra.MinimumNArgs(2),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return a.services.Member.DetachCategories(ctx, id, args[1:])
	}),
}

var memberNetworksCmd = &cobra.Command{
	Use:   "networks",
	Short: "Attach or detach social networks",
}

var memberNetworksAddCmd = &cobra.Command{
	Use:   "add <id> <network>=<url>...",
	Short: "Attach networks with their profile URLs",
	Args:  cobra.MinimumNArgs(2),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		urls := make(map[string]string, len(args)-1)
		for _, arg := range args[1:] {
			name, url, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("expected <network>=<url>, got %q", arg)
			}
			urls[name] = url
		}
		return a.services.Member.AttachNetworks(ctx, id, urls)
	}),
}

var memberNetworksRemoveCmd = &cobra.Command{
	Use:   "remove <id> <network>...",
	Short: "Detach networks by name",
	Args:  cobra.MinimumNArgs(2),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return a.services.Member.DetachNetworks(ctx, id, args[1:])
	}),
}

var memberImageCmd = &cobra.Command{
	Use:   "image",
	Short: "Upload or download the portfolio image",
}

var memberImageSetCmd = &cobra.Command{
	Use:   "set <id> <file>",
	Short: "Upload a PNG, JPEG or JPEG 2000 image",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		f, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer f.Close()

		format, err := a.services.Portfolio.UploadImage(ctx, id, f)
		if err != nil {
			return err
		}
		return printJSON(cmd, map[string]string{"format": string(format), "mime": format.MIME()})
	}),
}

var memberImageGetCmd = &cobra.Command{
	Use:   "get <id> <file>",
	Short: "Write the stored image to a file",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		data, mime, err := a.services.Portfolio.Image(ctx, id)
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[1], data, 0o644); err != nil {
			return err
		}
		return printJSON(cmd, map[string]any{"mime": mime, "bytes": len(data)})
	}),
}

func init() {
	memberListCmd.Flags().String("category", "", "only members in this category")

	for _, c := range []*cobra.Command{memberCreateCmd, memberUpdateCmd} {
		c.Flags().String("firstname", "", "first name")
		c.Flags().String("lastname", "", "last name")
		c.Flags().String("description", "", "free-text description")
		c.Flags().String("mail", "", "contact email")
		c.Flags().String("url", "", "portfolio URL")
	}

	memberCategoriesCmd.AddCommand(memberCategoriesAddCmd, memberCategoriesRemoveCmd)
	memberNetworksCmd.AddCommand(memberNetworksAddCmd, memberNetworksRemoveCmd)
	memberImageCmd.AddCommand(memberImageSetCmd, memberImageGetCmd)
	memberCmd.AddCommand(memberListCmd, memberGetCmd, memberCreateCmd, memberUpdateCmd, memberRegisterCmd,
		memberCategoriesCmd, memberNetworksCmd, memberImageCmd)
}

// profileFromFlags reads the profile flags of c. Unset flags stay nil.
func profileFromFlags(c *cobra.Command) model.MemberProfile {
	optional := func(name string) *string {
		if !c.Flags().Changed(name) {
			return nil
		}
		v, _ := c.Flags().GetString(name)
		return &v
	}

	return model.MemberProfile{
		Firstname:    optional("firstname"),
		Lastname:     optional("lastname"),
		Description:  optional("description"),
		Mail:         optional("mail"),
		URLPortfolio: optional("url"),
	}
}
