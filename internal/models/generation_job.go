package models

import "time"

type GenerationJob struct {
	ID             string            `json:"id"`
	Status         string            `json:"status"`
	StorageKey     string            `json:"storage_key"`
	Filename       string            `json:"filename"`
	ContentType    string            `json:"content_type"`
	Prompt         string            `json:"prompt"`
	VariationCount int               `json:"variation_count"`
	SizingMode     SizingMode        `json:"sizing_mode"`
	AspectRatio    string            `json:"aspect_ratio,omitempty"`
	Width          int               `json:"width,omitempty"`
	Height         int               `json:"height,omitempty"`
	VarySeed       bool              `json:"vary_seed,omitempty"`
	AssetID        string            `json:"asset_id,omitempty"`
	Variations     []VariationResult `json:"variations,omitempty"`
	Error          string            `json:"error,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// NewGenerationJob copies the request parameters; the image bytes travel separately via storage.
func NewGenerationJob(id, storageKey string, req *GenerationRequest) *GenerationJob {
	now := time.Now()
	return &GenerationJob{
		ID:             id,
		Status:         StatusPending,
		StorageKey:     storageKey,
		Filename:       req.Filename,
		ContentType:    req.ContentType,
		Prompt:         req.Prompt,
		VariationCount: req.VariationCount,
		SizingMode:     req.SizingMode,
		AspectRatio:    req.AspectRatio,
		Width:          req.Width,
		Height:         req.Height,
		VarySeed:       req.VarySeed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (j *GenerationJob) Request(image []byte) *GenerationRequest {
	return &GenerationRequest{
		Image:          image,
		Filename:       j.Filename,
		ContentType:    j.ContentType,
		Prompt:         j.Prompt,
		VariationCount: j.VariationCount,
		SizingMode:     j.SizingMode,
		AspectRatio:    j.AspectRatio,
		Width:          j.Width,
		Height:         j.Height,
		VarySeed:       j.VarySeed,
	}
}

// Apply records the outcome of a generation run on the job.
func (j *GenerationJob) Apply(result GenerationResult) {
	j.UpdatedAt = time.Now()
	if !result.OK() {
		j.Status = StatusFailed
		j.Error = result.Failure.Message
		return
	}
	j.Status = StatusCompleted
	j.AssetID = result.AssetID
	j.Variations = result.Variations
}
