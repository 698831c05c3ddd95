// Package store is the single write path for accepted submissions. A create
// is one INSERT, so it is all-or-nothing: either the row is durably written
// and an identifier comes back, or storage is unchanged.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/clubpulse/survey-api/cmd/server/internal/models"
)

const name string = "github.com/clubpulse/survey-api/cmd/server/internal/store"

var tracer = otel.Tracer(name)

// ErrDuplicateEmail reports that the email unique constraint rejected the
// insert. Callers translate it into the duplicate-email response; every other
// storage fault stays a generic error.
var ErrDuplicateEmail = errors.New("a survey response with this email already exists")

const (
	// SQLSTATE class 23 integrity violation, unique flavor
	uniqueViolationCode = "23505"

	// EmailConstraintName is declared in the create-table migration. Conflict
	// detection matches on it structurally instead of scanning driver error
	// text, so unrelated integrity errors are never misreported as duplicate
	// emails.
	EmailConstraintName = "uq_survey_response_email"
)

type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return Store{DB: db}
}

// Create durably records one submission and returns its assigned identifier.
func (s *Store) Create(ctx context.Context, response *models.SurveyResponse) (int64, error) {
	ctx, span := tracer.Start(ctx, "Create")
	defer span.End()

	db := s.DB.WithContext(ctx)

	span.AddEvent("inserting survey response")
	err := db.Create(response).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			pgErr.Code == uniqueViolationCode &&
			pgErr.ConstraintName == EmailConstraintName {
			// ok because the conflict is the client's to resolve
			span.SetStatus(codes.Ok, "duplicate email")
			span.RecordError(err)
			return 0, ErrDuplicateEmail
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to insert survey response")
		return 0, fmt.Errorf("failed to insert survey response: %w", err)
	}

	span.SetAttributes(attribute.Int64("survey_response.id", response.ID))

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "")
	return response.ID, nil
}
