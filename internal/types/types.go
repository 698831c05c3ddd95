package types

type SubmitResponse struct {
	Message    string `json:"message"     validate:"required"`
	ResponseID int64  `json:"response_id" validate:"required"`
}

type BannerResponse struct {
	Message   string            `json:"message"   validate:"required"`
	Version   string            `json:"version"   validate:"required"`
	Endpoints map[string]string `json:"endpoints" validate:"required"`
}

type HealthResponse struct {
	Status  string `json:"status"  validate:"required"`
	Service string `json:"service" validate:"required"`
}
