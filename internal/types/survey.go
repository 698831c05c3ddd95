package types

// IdealPrices holds the per-drink price points a respondent considers fair,
// in whole currency units.
type IdealPrices struct {
	SingleSpiritMixer *int `json:"singleSpiritMixer" validate:"omitempty,gte=0,lte=1000"`
	DoubleSpiritMixer *int `json:"doubleSpiritMixer" validate:"omitempty,gte=0,lte=1000"`
	Pint              *int `json:"pint"              validate:"omitempty,gte=0,lte=1000"`
	BottleCan         *int `json:"bottleCan"         validate:"omitempty,gte=0,lte=1000"`
}

// SurveySubmission is the wire shape of one survey response. Field names and
// bounds are the public API contract. Presence and emptiness are distinct:
// the list fields, idealPrices, and the three free-text fields must be
// present in the payload but may be empty ([] or ""). On slices `required`
// fails nil and passes a non-nil empty slice; on the pointer fields it fails
// nil and passes a pointer to the zero value, which keeps that distinction.
type SurveySubmission struct {
	EventTypes              []string     `json:"eventTypes"              validate:"required,max=10"`
	Frequency               *string      `json:"frequency"               validate:"omitempty,max=50"`
	ToiletImportance        *string      `json:"toiletImportance"        validate:"omitempty,max=50"`
	SeatingImportance       *string      `json:"seatingImportance"       validate:"omitempty,max=50"`
	FastEntryImportance     *string      `json:"fastEntryImportance"     validate:"omitempty,max=50"`
	SecurityImportance      *string      `json:"securityImportance"      validate:"omitempty,max=50"`
	BarPriorities           []string     `json:"barPriorities"           validate:"required,max=10"`
	IdealPrices             *IdealPrices `json:"idealPrices"             validate:"required"`
	SoundSystemQuality      *int         `json:"soundSystemQuality"      validate:"omitempty,gte=1,lte=5"`
	LightingLasers          *int         `json:"lightingLasers"          validate:"omitempty,gte=1,lte=5"`
	StageVisualsScreens     *int         `json:"stageVisualsScreens"     validate:"omitempty,gte=1,lte=5"`
	SmokeHazeEffects        *int         `json:"smokeHazeEffects"        validate:"omitempty,gte=1,lte=5"`
	RoomAtmosphere          *int         `json:"roomAtmosphere"          validate:"omitempty,gte=1,lte=5"`
	GoodSoundSystemFeatures []string     `json:"goodSoundSystemFeatures" validate:"required,max=20"`
	DJValues                []string     `json:"djValues"                validate:"required,max=20"`
	GenresMoreOf            *string      `json:"genresMoreOf"            validate:"required,max=1000"`
	RespectfulCrowd         *int         `json:"respectfulCrowd"         validate:"omitempty,gte=1,lte=5"`
	CleanEnvironment        *int         `json:"cleanEnvironment"        validate:"omitempty,gte=1,lte=5"`
	TemperatureVentilation  *int         `json:"temperatureVentilation"  validate:"omitempty,gte=1,lte=5"`
	ZeroDramaAtmosphere     *int         `json:"zeroDramaAtmosphere"     validate:"omitempty,gte=1,lte=5"`
	FeelingSafe             *string      `json:"feelingSafe"             validate:"omitempty,max=50"`
	AverageEventPrice       *string      `json:"averageEventPrice"       validate:"omitempty,max=50"`
	PremiumEventPrice       *string      `json:"premiumEventPrice"       validate:"omitempty,max=50"`
	AddOns                  []string     `json:"addOns"                  validate:"required,max=20"`
	ClubsNeverGetRight      *string      `json:"clubsNeverGetRight"      validate:"required,max=2000"`
	ClubsDoMore             *string      `json:"clubsDoMore"             validate:"required,max=2000"`
	LoyalAttendee           *string      `json:"loyalAttendee"           validate:"omitempty,max=50"`
	Email                   *string      `json:"email"                   validate:"omitempty,max=255"`
}
