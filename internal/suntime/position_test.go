package suntime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPositionAtSolarNoon(t *testing.T) {
	// Around solar noon on the June solstice in Berlin the sun peaks near
	// 90 - lat + 23.4 ≈ 61 degrees, bearing roughly south.
	berlin := time.FixedZone("CEST", 2*60*60)
	noon := time.Date(2025, time.June, 21, 13, 5, 0, 0, berlin)

	pos := PositionAt(noon, 52.52, 13.405)

	assert.InDelta(t, 61.0, pos.AltitudeDeg, 4.0)
	assert.InDelta(t, 180.0, pos.AzimuthDeg, 20.0)
}

func TestPositionAtNight(t *testing.T) {
	berlin := time.FixedZone("CET", 1*60*60)
	midnight := time.Date(2025, time.January, 10, 0, 30, 0, 0, berlin)

	pos := PositionAt(midnight, 52.52, 13.405)

	assert.Less(t, pos.AltitudeDeg, 0.0)
	assert.GreaterOrEqual(t, pos.AzimuthDeg, 0.0)
	assert.Less(t, pos.AzimuthDeg, 360.0)
}
