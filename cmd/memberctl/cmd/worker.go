package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run the notification job workers until interrupted",
	RunE: withApp(func(_ context.Context, _ *cobra.Command, a *app, _ []string) error {
		return a.server.Job.Run()
	}),
}
