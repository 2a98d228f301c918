package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func zoneNames(n int) []string {
	zones := make([]string, n)
	for i := range zones {
		zones[i] = fmt.Sprintf("Zone/Test%03d", i)
	}
	return zones
}

func TestBatchZones(t *testing.T) {
	testCases := []struct {
		name       string
		zones      []string
		wantSizes  []int
		wantBatchN int
	}{
		{
			name:       "empty input yields no batches",
			zones:      nil,
			wantBatchN: 0,
		},
		{
			name:       "single zone",
			zones:      zoneNames(1),
			wantSizes:  []int{1},
			wantBatchN: 1,
		},
		{
			name:       "exactly one full batch",
			zones:      zoneNames(maxZoneBatch),
			wantSizes:  []int{maxZoneBatch},
			wantBatchN: 1,
		},
		{
			name:       "one over the limit spills a remainder batch",
			zones:      zoneNames(maxZoneBatch + 1),
			wantSizes:  []int{maxZoneBatch, 1},
			wantBatchN: 2,
		},
		{
			name:       "exact multiple of the limit",
			zones:      zoneNames(2 * maxZoneBatch),
			wantSizes:  []int{maxZoneBatch, maxZoneBatch},
			wantBatchN: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			batches := batchZones(tc.zones)

			assert.Len(t, batches, tc.wantBatchN)
			for i, batch := range batches {
				assert.Len(t, batch, tc.wantSizes[i])
			}

			var flat []string
			for _, batch := range batches {
				flat = append(flat, batch...)
			}
			if len(tc.zones) == 0 {
				assert.Empty(t, flat)
			} else {
				assert.Equal(t, tc.zones, flat)
			}
		})
	}
}
