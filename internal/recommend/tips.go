package recommend

import "github.com/reggiebaraza/photospot/internal/weather"

// Tips is shooting advice for a weather category, rendered as the
// "recommendation tips" panel.
type Tips struct {
	Ideal []string `json:"ideal"`
	Avoid []string `json:"avoid"`
	Tips  string   `json:"tips"`
}

var weatherTips = map[weather.Category]Tips{
	weather.CategorySunny: {
		Ideal: []string{"ARCHITECTURE", "PANORAMA", "PARKS", "STREET"},
		Avoid: []string{},
		Tips:  "Perfect for bright, saturated colors. Use golden hour for best results. Consider polarizing filter for clear skies.",
	},
	weather.CategoryRainy: {
		Ideal: []string{"REFLECTIONS", "STREET", "MOODY", "URBAN"},
		Avoid: []string{"PANORAMA"},
		Tips:  "Great for reflections in puddles and wet streets. Overcast light is perfect for even tones. Protect your gear!",
	},
	weather.CategoryCloudy: {
		Ideal: []string{"PORTRAITS", "STREET", "ARCHITECTURE", "ANY"},
		Avoid: []string{},
		Tips:  "Soft, diffused light is perfect for all photography. No harsh shadows. Great for architecture and street photography.",
	},
	weather.CategorySnowy: {
		Ideal: []string{"MINIMALIST", "PARKS", "LANDMARKS"},
		Avoid: []string{},
		Tips:  "Overexpose slightly (+1 EV) to keep snow white. Fresh snow creates beautiful minimalist scenes.",
	},
	weather.CategoryFoggy: {
		Ideal: []string{"ATMOSPHERIC", "MYSTERIOUS", "MOODY"},
		Avoid: []string{"PANORAMA"},
		Tips:  "Creates dreamy, atmospheric photos. Foreground subjects work best. Increase contrast in post-processing.",
	},
}

// TipsFor returns shooting tips for the category, defaulting to the
// cloudy advice when the category has no entry of its own.
func TipsFor(c weather.Category) Tips {
	if t, ok := weatherTips[c]; ok {
		return t
	}
	return weatherTips[weather.CategoryCloudy]
}
