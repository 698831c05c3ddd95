package models

import (
	"gorm.io/datatypes"

	"github.com/clubpulse/survey-api/internal/types"
)

// SurveyResponse is one stored survey submission. Rows are immutable after
// creation; there is no update or delete path. Email carries the
// uq_survey_response_email unique constraint so the duplicate guard lives in
// the storage engine, not in application code.
type SurveyResponse struct {
	Model
	EventTypes              datatypes.JSONSlice[string]
	Frequency               datatypes.Null[string]
	ToiletImportance        datatypes.Null[string]
	SeatingImportance       datatypes.Null[string]
	FastEntryImportance     datatypes.Null[string]
	SecurityImportance      datatypes.Null[string]
	BarPriorities           datatypes.JSONSlice[string]
	IdealPrices             datatypes.JSONType[types.IdealPrices]
	SoundSystemQuality      datatypes.Null[int]
	LightingLasers          datatypes.Null[int]
	StageVisualsScreens     datatypes.Null[int]
	SmokeHazeEffects        datatypes.Null[int]
	RoomAtmosphere          datatypes.Null[int]
	GoodSoundSystemFeatures datatypes.JSONSlice[string]
	DJValues                datatypes.JSONSlice[string] `gorm:"column:dj_values"`
	GenresMoreOf            string
	RespectfulCrowd         datatypes.Null[int]
	CleanEnvironment        datatypes.Null[int]
	TemperatureVentilation  datatypes.Null[int]
	ZeroDramaAtmosphere     datatypes.Null[int]
	FeelingSafe             datatypes.Null[string]
	AverageEventPrice       datatypes.Null[string]
	PremiumEventPrice       datatypes.Null[string]
	AddOns                  datatypes.JSONSlice[string]
	ClubsNeverGetRight      string
	ClubsDoMore             string
	LoyalAttendee           datatypes.Null[string]
	Email                   datatypes.Null[string]
}

var _ SurveyAPIModel = (*SurveyResponse)(nil)

func (SurveyResponse) TableName() string {
	return "survey_response"
}

func (s SurveyResponse) GetID() int64 {
	return s.ID
}

// NewSurveyResponse maps a validated wire submission onto its row shape.
func NewSurveyResponse(sub types.SurveySubmission) *SurveyResponse {
	return &SurveyResponse{
		EventTypes:              datatypes.NewJSONSlice(sub.EventTypes),
		Frequency:               NewNull(sub.Frequency),
		ToiletImportance:        NewNull(sub.ToiletImportance),
		SeatingImportance:       NewNull(sub.SeatingImportance),
		FastEntryImportance:     NewNull(sub.FastEntryImportance),
		SecurityImportance:      NewNull(sub.SecurityImportance),
		BarPriorities:           datatypes.NewJSONSlice(sub.BarPriorities),
		IdealPrices:             datatypes.NewJSONType(Deref(sub.IdealPrices)),
		SoundSystemQuality:      NewNull(sub.SoundSystemQuality),
		LightingLasers:          NewNull(sub.LightingLasers),
		StageVisualsScreens:     NewNull(sub.StageVisualsScreens),
		SmokeHazeEffects:        NewNull(sub.SmokeHazeEffects),
		RoomAtmosphere:          NewNull(sub.RoomAtmosphere),
		GoodSoundSystemFeatures: datatypes.NewJSONSlice(sub.GoodSoundSystemFeatures),
		DJValues:                datatypes.NewJSONSlice(sub.DJValues),
		GenresMoreOf:            Deref(sub.GenresMoreOf),
		RespectfulCrowd:         NewNull(sub.RespectfulCrowd),
		CleanEnvironment:        NewNull(sub.CleanEnvironment),
		TemperatureVentilation:  NewNull(sub.TemperatureVentilation),
		ZeroDramaAtmosphere:     NewNull(sub.ZeroDramaAtmosphere),
		FeelingSafe:             NewNull(sub.FeelingSafe),
		AverageEventPrice:       NewNull(sub.AverageEventPrice),
		PremiumEventPrice:       NewNull(sub.PremiumEventPrice),
		AddOns:                  datatypes.NewJSONSlice(sub.AddOns),
		ClubsNeverGetRight:      Deref(sub.ClubsNeverGetRight),
		ClubsDoMore:             Deref(sub.ClubsDoMore),
		LoyalAttendee:           NewNull(sub.LoyalAttendee),
		Email:                   NewNull(sub.Email),
	}
}
