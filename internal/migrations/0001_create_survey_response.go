package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(Up0001, Down0001)
}

func Up0001(ctx context.Context, tx *sql.Tx) error {
	return execStatements(ctx, tx,
		statement{query: `
			CREATE TABLE survey_response (
				id BIGSERIAL PRIMARY KEY,
				event_types JSONB,
				frequency TEXT,
				toilet_importance TEXT,
				seating_importance TEXT,
				fast_entry_importance TEXT,
				security_importance TEXT,
				bar_priorities JSONB,
				ideal_prices JSONB,
				sound_system_quality INTEGER,
				lighting_lasers INTEGER,
				stage_visuals_screens INTEGER,
				smoke_haze_effects INTEGER,
				room_atmosphere INTEGER,
				good_sound_system_features JSONB,
				dj_values JSONB,
				genres_more_of TEXT NOT NULL,
				respectful_crowd INTEGER,
				clean_environment INTEGER,
				temperature_ventilation INTEGER,
				zero_drama_atmosphere INTEGER,
				feeling_safe TEXT,
				average_event_price TEXT,
				premium_event_price TEXT,
				add_ons JSONB,
				clubs_never_get_right TEXT NOT NULL,
				clubs_do_more TEXT NOT NULL,
				loyal_attendee TEXT,
				email TEXT CONSTRAINT uq_survey_response_email UNIQUE,
				created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT current_timestamp,
				updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT current_timestamp
);`})
}

func Down0001(ctx context.Context, tx *sql.Tx) error {
	return execStatements(ctx, tx,
		statement{query: `
DROP TABLE survey_response;`})
}
