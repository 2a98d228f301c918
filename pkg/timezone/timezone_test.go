package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestZonesAtHour(t *testing.T) {
	// 2025-06-02T00:00:00Z: 09:00 in UTC+9 zones, 01:00 in London (BST).
	now := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	zones := ZonesAtHour(now, 9)

	assert.NotEmpty(t, zones)
	assert.Contains(t, zones, "Asia/Seoul")
	assert.Contains(t, zones, "Asia/Tokyo")
	assert.NotContains(t, zones, "Europe/London")
}

func TestZonesAtHour_NoMatch(t *testing.T) {
	now := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, ZonesAtHour(now, 24))
}

func TestLocalDayRange(t *testing.T) {
	now := time.Date(2025, 6, 2, 0, 30, 0, 0, time.UTC)

	start, end, err := LocalDayRange(now, "Asia/Seoul")
	assert.NoError(t, err)

	assert.Equal(t, "2025-06-02T00:00:00+09:00", start.Format(time.RFC3339))
	assert.Equal(t, "2025-06-03T00:00:00+09:00", end.Format(time.RFC3339))
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestLocalDayRange_UnknownZone(t *testing.T) {
	_, _, err := LocalDayRange(time.Now(), "Not/AZone")
	assert.Error(t, err)
}
