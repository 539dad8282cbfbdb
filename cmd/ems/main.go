// Command ems manages projects and their assigned employees, either from an
// interactive console or over an HTTP API.
package main

import (
	"context"
	"fmt"
	"os"

	"employee-management/internal/config"
	"employee-management/internal/database"
	"employee-management/internal/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	logLevel string
	version  = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ems",
	Short: "Employee management: projects and their team members",
	Long: `ems keeps a list of projects, each with a manager, a status and the
employees assigned to it.

Without a subcommand it starts the interactive console.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runConsole,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides LOG_LEVEL")
	rootCmd.AddCommand(consoleCmd, serveCmd, migrateCmd)
}

// bootstrap loads configuration, connects and prepares the schema. quiet
// silences gorm's SQL logging.
func bootstrap(ctx context.Context, quiet bool) (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.App.LogLevel = logLevel
	}
	logger.Init(os.Stderr, cfg.App.LogLevel)

	gormCfg := &gorm.Config{}
	if quiet {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}
	db, err := database.Open(cfg.Database, gormCfg)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, nil, err
	}
	if err := database.Seed(ctx, db, cfg); err != nil {
		_ = database.Close(db)
		return nil, nil, err
	}

	log.Debug().Str("driver", cfg.Database.Driver).Str("env", cfg.App.Environment).Msg("database ready")
	return cfg, db, nil
}

func closeDB(db *gorm.DB) {
	if err := database.Close(db); err != nil {
		log.Warn().Err(err).Msg("failed to close database")
	}
}
