package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check database and Redis connectivity",
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		report := a.server.CheckHealth(ctx)
		if err := printJSON(cmd, report); err != nil {
			return err
		}
		if !report.Healthy() {
			return errors.New("unhealthy")
		}
		return nil
	}),
}
