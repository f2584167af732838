package models

import "strings"

type SizingMode string

const (
	SizingAspectRatio SizingMode = "aspect_ratio"
	SizingCustom      SizingMode = "custom"
)

// AspectRatioOption pairs the label shown in the picker with the value sent to the renderer.
type AspectRatioOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var AspectRatioOptions = []AspectRatioOption{
	{Label: "16:9 (Portrait)", Value: "9:16"},
	{Label: "5:4", Value: "5:4"},
	{Label: "1:1", Value: "1:1"},
}

const (
	DefaultCustomWidth  = 800
	DefaultCustomHeight = 600
)

// ResolveAspectRatio accepts either a picker label or a renderer value.
func ResolveAspectRatio(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, opt := range AspectRatioOptions {
		if s == opt.Label || s == opt.Value {
			return opt.Value, true
		}
	}
	return "", false
}

// ParseSizingMode normalizes form input such as "Aspect Ratio" or "custom".
func ParseSizingMode(s string) (SizingMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "aspect_ratio", "aspect ratio", "aspect-ratio":
		return SizingAspectRatio, true
	case "custom", "custom dimensions", "custom_dimensions":
		return SizingCustom, true
	default:
		return "", false
	}
}

type GenerationRequest struct {
	Image          []byte     `json:"-"`
	Filename       string     `json:"filename,omitempty"`
	ContentType    string     `json:"content_type,omitempty"`
	Prompt         string     `json:"prompt"`
	VariationCount int        `json:"variation_count"`
	SizingMode     SizingMode `json:"sizing_mode"`
	AspectRatio    string     `json:"aspect_ratio,omitempty"`
	Width          int        `json:"width,omitempty"`
	Height         int        `json:"height,omitempty"`
	VarySeed       bool       `json:"vary_seed,omitempty"`
}
