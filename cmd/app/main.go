package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"raider-registry-backend/internal/app"
	"raider-registry-backend/internal/common/config"
	"raider-registry-backend/internal/common/logger"
	"raider-registry-backend/internal/platform/postgres"
)

// @title           Raider Registry API
// @version         1.0
// @description     Twitter OAuth handshake, raider registration and leaderboards.

// @BasePath  /api

// @tag.name auth
// @tag.description Twitter OAuth 1.0a handshake

// @tag.name registration
// @tag.description Linking Twitter, Telegram and wallet

// @tag.name admin
// @tag.description Password-gated listing

// @tag.name leaderboard
// @tag.description Static rankings

// @tag.name status
// @tag.description Status check log

const serviceName = "raider-registry-backend"

var rootCmd = &cobra.Command{
	Use:           "raider-registry",
	Short:         "Raider registry HTTP backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger.Info().
			Bool("debug", cfg.Debug).
			Str("environment", cfg.Server.Environment).
			Msg("Starting Raider Registry Backend")

		a, err := app.New(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Run(ctx)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		pg, err := postgres.NewClient(ctx, cfg.Postgres.URL, 2)
		if err != nil {
			return err
		}
		defer pg.Close()

		if err := postgres.Migrate(ctx, pg.Pool()); err != nil {
			return err
		}

		logger.Info().Msg("Migrations applied")
		return nil
	},
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(serviceName, cfg.Debug, !cfg.IsProduction())
	return cfg, nil
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd)

	// без подкоманды запускаем сервер, как и раньше
	rootCmd.RunE = serveCmd.RunE

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
