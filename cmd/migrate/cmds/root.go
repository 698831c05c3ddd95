package cmds

import (
	"context"
	"fmt"
	"log/slog"

	sloggorm "github.com/orandin/slog-gorm"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/clubpulse/survey-api/internal/config"
	"github.com/clubpulse/survey-api/internal/logger"
)

var tracer = otel.Tracer("github.com/clubpulse/survey-api/cmd/migrate/cmds")

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the survey-api database schema",
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(downCmd)
}

func openDB() (*gorm.DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.LogLevel.Set(slog.Level(cfg.Logging.App.Level))

	sg := sloggorm.New(
		sloggorm.WithHandler(logger.Handler),
		sloggorm.SetLogLevel(sloggorm.DefaultLogType, slog.Level(cfg.Logging.Gorm.Level)),
	)

	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{Logger: sg})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}
