package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reggiebaraza/photospot/internal/weather"
)

func TestCategoryFromText(t *testing.T) {
	tests := []struct {
		text string
		want weather.Category
	}{
		{"Sunny", weather.CategorySunny},
		{"Clear", weather.CategorySunny},
		{"Partly cloudy", weather.CategoryCloudy},
		{"Overcast", weather.CategoryCloudy},
		{"Light rain shower", weather.CategoryRainy},
		{"Patchy light drizzle", weather.CategoryRainy},
		{"Thundery outbreaks possible", weather.CategoryRainy},
		{"Moderate snow", weather.CategorySnowy},
		{"Blizzard", weather.CategorySnowy},
		{"Freezing fog", weather.CategoryFoggy},
		{"Mist", weather.CategoryFoggy},
		{"", weather.CategoryUnknown},
		{"Volcanic ash", weather.CategoryUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryFromText(tt.text), "text %q", tt.text)
	}
}

func TestMapOpenMeteoCategory(t *testing.T) {
	tests := []struct {
		code int
		want weather.Category
	}{
		{0, weather.CategorySunny},
		{2, weather.CategoryCloudy},
		{45, weather.CategoryFoggy},
		{48, weather.CategoryFoggy},
		{55, weather.CategoryRainy},
		{81, weather.CategoryRainy},
		{95, weather.CategoryRainy},
		{73, weather.CategorySnowy},
		{86, weather.CategorySnowy},
		{30, weather.CategoryUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, mapOpenMeteoCategory(tt.code), "code %d", tt.code)
	}
}

func TestMapOpenWeatherCategory(t *testing.T) {
	mk := func(main string) []struct {
		Main string `json:"main"`
	} {
		return []struct {
			Main string `json:"main"`
		}{{Main: main}}
	}

	assert.Equal(t, weather.CategorySunny, mapOpenWeatherCategory(mk("Clear")))
	assert.Equal(t, weather.CategoryCloudy, mapOpenWeatherCategory(mk("Clouds")))
	assert.Equal(t, weather.CategoryRainy, mapOpenWeatherCategory(mk("Drizzle")))
	assert.Equal(t, weather.CategorySnowy, mapOpenWeatherCategory(mk("Snow")))
	assert.Equal(t, weather.CategoryFoggy, mapOpenWeatherCategory(mk("Mist")))
	assert.Equal(t, weather.CategoryUnknown, mapOpenWeatherCategory(nil))
}
