package models

type VariationResult struct {
	Index          int    `json:"index"`
	URL            string `json:"url"`
	Transformation string `json:"transformation"`
}

type FailureKind string

const (
	FailureValidation FailureKind = "validation"
	FailureRemote     FailureKind = "remote"
)

type Failure struct {
	Kind    FailureKind `json:"kind"`
	Message string      `json:"message"`
}

func (f *Failure) Error() string {
	return f.Message
}

// GenerationResult is either a full set of variations or a failure, never both.
type GenerationResult struct {
	AssetID    string            `json:"asset_id,omitempty"`
	Variations []VariationResult `json:"variations,omitempty"`
	Failure    *Failure          `json:"failure,omitempty"`
}

func (r GenerationResult) OK() bool {
	return r.Failure == nil
}

func (r GenerationResult) URLs() []string {
	urls := make([]string, 0, len(r.Variations))
	for _, v := range r.Variations {
		urls = append(urls, v.URL)
	}
	return urls
}
