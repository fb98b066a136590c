package commands

import (
	"fmt"

	"breaktrack/internal/config"
	"breaktrack/internal/database"
	"breaktrack/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "breaktrack",
	Short: "Employee break tracker",
	Long: `breaktrack records employee breaks, serves the admin and employee web UI,
and builds break reports per date range.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "breaktrack %s (commit %s, built %s)\n", version, commit, date)
	},
}

// env is what every command that touches the database needs.
type env struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
}

func (e *env) close() {
	if sqlDB, err := e.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = e.log.Sync()
}

func setup() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.LogLevel, cfg.IsProduction())

	db, err := database.Open(cfg.DatabaseURL, log)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &env{cfg: cfg, log: log, db: db}, nil
}

func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(versionCmd)
}
