// Package cmd implements the memberctl commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/deppfellow/member-directory/internal/config"
	"github.com/deppfellow/member-directory/internal/errs"
	"github.com/deppfellow/member-directory/internal/lib/utils"
	"github.com/deppfellow/member-directory/internal/logger"
	"github.com/deppfellow/member-directory/internal/repository"
	"github.com/deppfellow/member-directory/internal/server"
	"github.com/deppfellow/member-directory/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "memberctl",
	Short: "Operate the member directory",
	Long: `memberctl runs migrations and administers the member directory.

Configuration is read from MEMBERDIR_* environment variables (and .env).

Examples:
  memberctl migrate
  memberctl member list
  memberctl category create design
  memberctl admin validate 7 --as 1
  memberctl worker`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorLine(err))
	}
	return err
}

// errorLine renders err for the terminal. Classified errors show their
// client-safe code and message; anything else is printed as is.
func errorLine(err error) string {
	if errs.KindOf(err) == errs.Unknown {
		return fmt.Sprintf("error: %v", err)
	}
	httpErr := errs.ToHTTP(err)
	return fmt.Sprintf("error (%s): %s", httpErr.Code, httpErr.Message)
}

func init() {
	rootCmd.AddCommand(migrateCmd, memberCmd, categoryCmd, networkCmd, sessionCmd, adminCmd, workerCmd, healthCmd)
}

// app is everything a command needs once configuration is loaded.
type app struct {
	cfg      *config.Config
	log      *zerolog.Logger
	server   *server.Server
	repos    *repository.Repositories
	services *service.Services
}

func loadBase() (*config.Config, *zerolog.Logger, *logger.LoggerService, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to start new relic: %w", err)
	}

	log := logger.NewLogger(cfg.Observability, loggerService)
	return cfg, &log, loggerService, nil
}

// withApp wraps a command body with setup and teardown of the server
// container. The context is cancelled on SIGINT or SIGTERM.
func withApp(run func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg, log, loggerService, err := loadBase()
		if err != nil {
			return err
		}

		srv, err := server.New(cfg, log, loggerService)
		if err != nil {
			loggerService.Shutdown()
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown failed")
			}
		}()

		repos := repository.NewRepositories(srv)
		services := service.NewService(srv, repos)

		return run(ctx, cmd, &app{cfg: cfg, log: log, server: srv, repos: repos, services: services}, args)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	return utils.PrintJSON(cmd.OutOrStdout(), v)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
