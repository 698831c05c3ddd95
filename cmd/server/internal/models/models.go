package models

import (
	"context"
	"reflect"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const name string = "github.com/clubpulse/survey-api/cmd/server/internal/models"

var tracer = otel.Tracer(name)

// Derived from gorm.Model. The identifier is a BIGSERIAL assigned by the
// store at insert time, so it is unique and monotonically increasing.
type Model struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	ID        int64 `gorm:"primaryKey"`
}

type SurveyAPIModel interface {
	GetID() int64
}

// gets an object by id from the db
func ByID[T SurveyAPIModel](ctx context.Context, db *gorm.DB, id int64) (*T, error) {
	var data T

	ctx, span := tracer.Start(ctx, "ByID")
	defer span.End()

	db = db.WithContext(ctx)

	span.SetAttributes(
		attribute.Int64("id", id),
		attribute.String("type", reflect.TypeOf(data).String()),
	)

	span.AddEvent("getting object by id")
	err := db.First(&data, id).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to get object by id")
		return nil, err
	}

	return &data, nil
}

// Transmutes a pointer into a [datatypes.Null]
func NewNull[T any](d *T) datatypes.Null[T] {
	if d != nil {
		return datatypes.NewNull(*d)
	}

	return datatypes.Null[T]{}
}

// Maps a [datatypes.Null] back into a pointer
func PtrFromNull[T any](d datatypes.Null[T]) *T {
	if !d.Valid {
		return nil
	}

	return &d.V
}

// Dereferences, zero value when nil
func Deref[T any](d *T) T {
	if d != nil {
		return *d
	}

	var zero T
	return zero
}
