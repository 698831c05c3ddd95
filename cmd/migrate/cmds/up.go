package cmds

import (
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/codes"

	"github.com/clubpulse/survey-api/internal/migrations"
	"github.com/clubpulse/survey-api/internal/logger"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Migrate the schema to the latest version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, span := tracer.Start(cmd.Context(), "upCmd")
		defer span.End()

		db, err := openDB()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to open database")
			return err
		}

		err = migrations.Up(ctx, db)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to migrate up")
			return err
		}

		logger.Logger.InfoContext(ctx, "schema migrated to latest version")

		span.RecordError(nil)
		span.SetStatus(codes.Ok, "")
		return nil
	},
}
