package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotGrid(t *testing.T) {
	grid := SlotGrid()

	assert.Len(t, grid, 18)
	assert.Equal(t, "09:00", grid[0])
	assert.Equal(t, "09:30", grid[1])
	assert.Equal(t, "17:30", grid[len(grid)-1])
	assert.NotContains(t, grid, "18:00")
	assert.NotContains(t, grid, "08:30")
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"17:30", 1050, false},
		{"00:00", 0, false},
		// TIME columns read back with seconds
		{"09:00:00", 540, false},
		{"25:00", 0, true},
		{"9am", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		assert.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aDur, bStart, bDur int
		want                       bool
	}{
		{"identical", 600, 60, 600, 60, true},
		{"a inside b", 615, 15, 600, 60, true},
		{"a starts before and extends into b", 570, 60, 600, 60, true},
		{"a starts inside b", 630, 60, 600, 60, true},
		{"back to back, a first", 540, 60, 600, 60, false},
		{"back to back, b first", 660, 60, 600, 60, false},
		{"disjoint", 540, 30, 600, 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overlaps(tt.aStart, tt.aDur, tt.bStart, tt.bDur))
			// overlap is symmetric
			assert.Equal(t, tt.want, overlaps(tt.bStart, tt.bDur, tt.aStart, tt.aDur))
		})
	}
}

func TestWithin(t *testing.T) {
	// [600, 660)
	assert.True(t, within(600, 600, 60))
	assert.True(t, within(630, 600, 60))
	assert.True(t, within(659, 600, 60))
	assert.False(t, within(660, 600, 60))
	assert.False(t, within(599, 600, 60))
}
