package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// lookupCommands are the shared list/create/delete commands of a taxonomy.
type lookupCommands struct {
	list   func(ctx context.Context, a *app) (any, error)
	create func(ctx context.Context, a *app, name string) (int64, error)
	id     func(ctx context.Context, a *app, name string) (int64, error)
	delete func(ctx context.Context, a *app, name string) error
}

func newLookupCmd(use, short string, ops lookupCommands) *cobra.Command {
	root := &cobra.Command{Use: use, Short: short}

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all " + use + " entries",
			RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
				items, err := ops.list(ctx, a)
				if err != nil {
					return err
				}
				return printJSON(cmd, items)
			}),
		},
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create a " + use,
			Args:  cobra.ExactArgs(1),
			RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
				id, err := ops.create(ctx, a, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd, map[string]int64{"id": id})
			}),
		},
		&cobra.Command{
			Use:   "id <name>",
			Short: "Resolve a " + use + " name to its id",
			Args:  cobra.ExactArgs(1),
			RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
				id, err := ops.id(ctx, a, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd, map[string]int64{"id": id})
			}),
		},
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete a " + use + " and detach it from every member",
			Args:  cobra.ExactArgs(1),
			RunE: withApp(func(ctx context.Context, _ *cobra.Command, a *app, args []string) error {
				return ops.delete(ctx, a, args[0])
			}),
		},
	)

	return root
}

var categoryCmd = newLookupCmd("category", "Manage member categories", lookupCommands{
	list: func(ctx context.Context, a *app) (any, error) {
		return a.repos.Category.List(ctx)
	},
	create: func(ctx context.Context, a *app, name string) (int64, error) {
		return a.repos.Category.Create(ctx, name)
	},
	id: func(ctx context.Context, a *app, name string) (int64, error) {
		return a.repos.Category.IDByName(ctx, name)
	},
	delete: func(ctx context.Context, a *app, name string) error {
		return a.repos.Category.DeleteByName(ctx, name)
	},
})

var networkCmd = newLookupCmd("network", "Manage social networks", lookupCommands{
	list: func(ctx context.Context, a *app) (any, error) {
		return a.repos.Network.List(ctx)
	},
	create: func(ctx context.Context, a *app, name string) (int64, error) {
		return a.repos.Network.Create(ctx, name)
	},
	id: func(ctx context.Context, a *app, name string) (int64, error) {
		return a.repos.Network.IDByName(ctx, name)
	},
	delete: func(ctx context.Context, a *app, name string) error {
		return a.repos.Network.DeleteByName(ctx, name)
	},
})
