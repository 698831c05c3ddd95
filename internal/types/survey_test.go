package types_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubpulse/survey-api/internal/types"
	"github.com/clubpulse/survey-api/internal/validator"
)

func ptr[T any](v T) *T {
	return &v
}

func validSubmission() types.SurveySubmission {
	return types.SurveySubmission{
		EventTypes:    []string{"club night", "live gig"},
		Frequency:     ptr("monthly"),
		BarPriorities: []string{"speed", "price"},
		IdealPrices: &types.IdealPrices{
			SingleSpiritMixer: ptr(8),
			Pint:              ptr(6),
		},
		SoundSystemQuality:      ptr(4),
		GoodSoundSystemFeatures: []string{"clean bass"},
		DJValues:                []string{"reads the room"},
		GenresMoreOf:            ptr("more techno"),
		RespectfulCrowd:         ptr(5),
		AddOns:                  []string{"cloakroom"},
		ClubsNeverGetRight:      ptr("queues"),
		ClubsDoMore:             ptr("earlier sets"),
		Email:                   ptr("someone@example.com"),
	}
}

func fieldSet(t *testing.T, err error) map[string]string {
	t.Helper()

	require.Error(t, err)
	verr := types.ValidationError(err)
	require.NotNil(t, verr.Fields, "expected per-field validation detail")
	return *verr.Fields
}

func TestSurveySubmissionValidation(t *testing.T) {
	validate := validator.Create()

	t.Run("ValidPayload", func(t *testing.T) {
		sub := validSubmission()
		assert.NoError(t, validate.Validate(sub))
	})

	t.Run("ValidAtExactBounds", func(t *testing.T) {
		sub := validSubmission()
		sub.GenresMoreOf = ptr(strings.Repeat("a", 1000))
		sub.ClubsNeverGetRight = ptr(strings.Repeat("b", 2000))
		sub.ClubsDoMore = ptr(strings.Repeat("c", 2000))
		sub.EventTypes = make([]string, 10)
		sub.AddOns = make([]string, 20)
		sub.IdealPrices.BottleCan = ptr(1000)
		sub.SoundSystemQuality = ptr(5)
		sub.Email = ptr(strings.Repeat("e", 255))

		assert.NoError(t, validate.Validate(sub))
	})

	t.Run("EmptyListsAllowed", func(t *testing.T) {
		sub := validSubmission()
		sub.EventTypes = []string{}
		sub.BarPriorities = []string{}
		sub.GoodSoundSystemFeatures = []string{}
		sub.DJValues = []string{}
		sub.AddOns = []string{}

		assert.NoError(t, validate.Validate(sub))
	})

	t.Run("EmptyFreeTextAllowed", func(t *testing.T) {
		sub := validSubmission()
		sub.GenresMoreOf = ptr("")
		sub.ClubsNeverGetRight = ptr("")
		sub.ClubsDoMore = ptr("")

		assert.NoError(t, validate.Validate(sub))
	})

	t.Run("MissingListFieldsRejected", func(t *testing.T) {
		sub := types.SurveySubmission{
			IdealPrices:        &types.IdealPrices{},
			GenresMoreOf:       ptr("more techno"),
			ClubsNeverGetRight: ptr("queues"),
			ClubsDoMore:        ptr("earlier sets"),
		}

		fields := fieldSet(t, validate.Validate(sub))
		for _, field := range []string{
			"eventTypes",
			"barPriorities",
			"goodSoundSystemFeatures",
			"djValues",
			"addOns",
		} {
			assert.Contains(t, fields, field)
		}
	})

	t.Run("MissingIdealPricesRejected", func(t *testing.T) {
		sub := validSubmission()
		sub.IdealPrices = nil

		fields := fieldSet(t, validate.Validate(sub))
		assert.Contains(t, fields, "idealPrices")
	})

	t.Run("FreeTextTooLong", func(t *testing.T) {
		sub := validSubmission()
		sub.GenresMoreOf = ptr(strings.Repeat("a", 1001))

		fields := fieldSet(t, validate.Validate(sub))
		assert.Contains(t, fields, "genresMoreOf")
		assert.Len(t, fields, 1)
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		sub := validSubmission()
		sub.SoundSystemQuality = ptr(6)
		sub.RespectfulCrowd = ptr(0)

		fields := fieldSet(t, validate.Validate(sub))
		assert.Contains(t, fields, "soundSystemQuality")
		assert.Contains(t, fields, "respectfulCrowd")
	})

	t.Run("ListTooLong", func(t *testing.T) {
		sub := validSubmission()
		sub.EventTypes = make([]string, 11)

		fields := fieldSet(t, validate.Validate(sub))
		assert.Contains(t, fields, "eventTypes")
	})

	t.Run("IdealPriceOutOfRange", func(t *testing.T) {
		sub := validSubmission()
		sub.IdealPrices.Pint = ptr(1001)

		fields := fieldSet(t, validate.Validate(sub))
		assert.Contains(t, fields, "pint")
	})

	t.Run("MissingRequiredFreeText", func(t *testing.T) {
		sub := validSubmission()
		sub.ClubsDoMore = nil

		fields := fieldSet(t, validate.Validate(sub))
		assert.Contains(t, fields, "clubsDoMore")
	})

	t.Run("EmailTooLong", func(t *testing.T) {
		sub := validSubmission()
		sub.Email = ptr(strings.Repeat("e", 256))

		fields := fieldSet(t, validate.Validate(sub))
		assert.Contains(t, fields, "email")
	})

	t.Run("AllViolationsReportedTogether", func(t *testing.T) {
		sub := validSubmission()
		sub.GenresMoreOf = ptr(strings.Repeat("a", 1001))
		sub.EventTypes = make([]string, 11)
		sub.LightingLasers = ptr(9)
		sub.Frequency = ptr(strings.Repeat("f", 51))

		fields := fieldSet(t, validate.Validate(sub))
		assert.Contains(t, fields, "genresMoreOf")
		assert.Contains(t, fields, "eventTypes")
		assert.Contains(t, fields, "lightingLasers")
		assert.Contains(t, fields, "frequency")
	})

	t.Run("RejectionIsIdempotent", func(t *testing.T) {
		sub := validSubmission()
		sub.GenresMoreOf = ptr(strings.Repeat("a", 1001))
		sub.SmokeHazeEffects = ptr(7)

		first := fieldSet(t, validate.Validate(sub))
		second := fieldSet(t, validate.Validate(sub))
		assert.Equal(t, first, second)
	})
}
