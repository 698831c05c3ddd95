package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/clubpulse/survey-api/internal/migrations"
	"github.com/clubpulse/survey-api/cmd/server/internal/models"
	"github.com/clubpulse/survey-api/cmd/server/internal/store"
	"github.com/clubpulse/survey-api/internal/types"
)

func ptr[T any](v T) *T {
	return &v
}

func submission(email *string) types.SurveySubmission {
	return types.SurveySubmission{
		EventTypes:         []string{"club night"},
		BarPriorities:      []string{"speed"},
		IdealPrices:        &types.IdealPrices{},
		GenresMoreOf:       ptr("more techno"),
		AddOns:             []string{"cloakroom"},
		ClubsNeverGetRight: ptr("queues"),
		ClubsDoMore:        ptr("earlier sets"),
		Email:              email,
	}
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16.4-alpine",
		postgres.WithDatabase("surveyapi"),
		postgres.WithUsername("surveyapi"),
		postgres.WithPassword("surveyapi"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	defer func() {
		err = testcontainers.TerminateContainer(postgresContainer)
		assert.NoError(t, err, "failed to terminate container")
	}()
	require.NoError(t, err, "failed to start postgres container")

	dsn, err := postgresContainer.ConnectionString(ctx)
	require.NoError(t, err, "failed to get connection string to container")

	db, err := gorm.Open(gormpostgres.Open(dsn))
	require.NoError(t, err, "failed to connect to the database")

	err = migrations.Up(ctx, db)
	require.NoError(t, err, "failed to migrate db")

	surveyStore := store.NewStore(db)

	t.Run("CreateAssignsIncreasingIDs", func(t *testing.T) {
		first, err := surveyStore.Create(ctx, models.NewSurveyResponse(
			submission(ptr("first@example.com")),
		))
		require.NoError(t, err, "failed to create survey response")

		second, err := surveyStore.Create(ctx, models.NewSurveyResponse(
			submission(ptr("second@example.com")),
		))
		require.NoError(t, err, "failed to create survey response")

		assert.Greater(t, second, first, "identifiers must increase monotonically")
	})

	t.Run("CreatePersistsTheRow", func(t *testing.T) {
		id, err := surveyStore.Create(ctx, models.NewSurveyResponse(
			submission(ptr("persisted@example.com")),
		))
		require.NoError(t, err, "failed to create survey response")

		row, err := models.ByID[models.SurveyResponse](ctx, db, id)
		require.NoError(t, err, "failed to read back survey response")

		email := models.PtrFromNull(row.Email)
		require.NotNil(t, email)
		assert.Equal(t, "persisted@example.com", *email)
		assert.Equal(t, "more techno", row.GenresMoreOf)
		assert.Equal(t, []string{"club night"}, []string(row.EventTypes))
	})

	t.Run("DuplicateEmailConflicts", func(t *testing.T) {
		_, err := surveyStore.Create(ctx, models.NewSurveyResponse(
			submission(ptr("taken@example.com")),
		))
		require.NoError(t, err, "first submission with an email must succeed")

		_, err = surveyStore.Create(ctx, models.NewSurveyResponse(
			submission(ptr("taken@example.com")),
		))
		require.ErrorIs(t, err, store.ErrDuplicateEmail)

		var count int64
		result := db.Model(&models.SurveyResponse{}).
			Where("email = ?", "taken@example.com").
			Count(&count)
		require.NoError(t, result.Error)
		assert.EqualValues(t, 1, count, "conflict must not leave a partial record")
	})

	t.Run("AbsentEmailsNeverConflict", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			_, err := surveyStore.Create(ctx, models.NewSurveyResponse(submission(nil)))
			require.NoError(t, err, "submission %d without an email must succeed", i+1)
		}
	})

	t.Run("ConcurrentDuplicatesExactlyOneWins", func(t *testing.T) {
		results := make(chan error, 2)

		var eg errgroup.Group
		for i := 0; i < 2; i++ {
			eg.Go(func() error {
				_, err := surveyStore.Create(ctx, models.NewSurveyResponse(
					submission(ptr("race@example.com")),
				))
				results <- err
				return nil
			})
		}
		require.NoError(t, eg.Wait())
		close(results)

		var successes, conflicts int
		for err := range results {
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, store.ErrDuplicateEmail):
				conflicts++
			}
		}

		assert.Equal(t, 1, successes, "exactly one concurrent submission may win")
		assert.Equal(t, 1, conflicts, "the loser must see the duplicate-email conflict")
	})
}
