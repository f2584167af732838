package models

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type VariationsResponse struct {
	AssetID    string            `json:"asset_id"`
	URLs       []string          `json:"urls"`
	Variations []VariationResult `json:"variations"`
}

type JobAccepted struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}
