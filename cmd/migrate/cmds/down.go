package cmds

import (
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/codes"

	"github.com/clubpulse/survey-api/internal/migrations"
	"github.com/clubpulse/survey-api/internal/logger"
)

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll the schema all the way back down",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, span := tracer.Start(cmd.Context(), "downCmd")
		defer span.End()

		db, err := openDB()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to open database")
			return err
		}

		err = migrations.Down(ctx, db)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to migrate down")
			return err
		}

		logger.Logger.InfoContext(ctx, "schema rolled back")

		span.RecordError(nil)
		span.SetStatus(codes.Ok, "")
		return nil
	},
}
