package models

import (
	"sort"
	"strconv"
	"strings"
)

// TransformationSpec is the set of parameters the renderer applies when the URL is fetched.
type TransformationSpec struct {
	Effect      string `json:"effect"`
	AspectRatio string `json:"aspect_ratio,omitempty"`
	Crop        string `json:"crop"`
	Gravity     string `json:"gravity"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// Params returns the populated parameters keyed by their URL abbreviation.
func (s TransformationSpec) Params() map[string]string {
	params := make(map[string]string, 6)
	if s.AspectRatio != "" {
		params["ar"] = s.AspectRatio
	}
	if s.Crop != "" {
		params["c"] = s.Crop
	}
	if s.Effect != "" {
		params["e"] = s.Effect
	}
	if s.Gravity != "" {
		params["g"] = s.Gravity
	}
	if s.Height > 0 {
		params["h"] = strconv.Itoa(s.Height)
	}
	if s.Width > 0 {
		params["w"] = strconv.Itoa(s.Width)
	}
	return params
}

// String renders the parameters as a URL transformation component, e.g.
// "ar_1:1,c_fill,e_gen_background_replace:prompt_sunny_beach,g_auto,h_1500".
func (s TransformationSpec) String() string {
	params := s.Params()
	parts := make([]string, 0, len(params))
	for key, value := range params {
		parts = append(parts, key+"_"+value)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}
