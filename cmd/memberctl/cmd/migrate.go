package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deppfellow/member-directory/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded schema migrations",
	Long: `Migrate the database to the latest schema version, or to --to.

Examples:
  memberctl migrate
  memberctl migrate --to 1
  memberctl migrate --list`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().Int32("to", -1, "target version (default latest, 0 drops everything)")
	migrateCmd.Flags().Bool("list", false, "list embedded migrations and exit")
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	if list, _ := cmd.Flags().GetBool("list"); list {
		names, err := database.MigrationNames()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	cfg, log, loggerService, err := loadBase()
	if err != nil {
		return err
	}
	defer loggerService.Shutdown()

	target, _ := cmd.Flags().GetInt32("to")
	return database.Migrate(cmd.Context(), log, cfg, target)
}
