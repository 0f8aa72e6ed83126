package reservation

import (
	"fmt"
	"time"
)

// Bookable day: every 30-minute boundary from 09:00 inclusive to 18:00
// exclusive.
const (
	openHour        = 9
	closeHour       = 18
	slotStepMinutes = 30
)

// SlotGrid returns the canonical bookable start times for a day:
// 09:00, 09:30, ..., 17:30.
func SlotGrid() []string {
	slots := make([]string, 0, (closeHour-openHour)*60/slotStepMinutes)
	for hour := openHour; hour < closeHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour), fmt.Sprintf("%02d:30", hour))
	}
	return slots
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// parseClock returns minutes since midnight. Values read back from a TIME
// column may carry seconds, so "15:04:05" is accepted alongside "15:04".
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		t, err = time.Parse("15:04:05", s)
		if err != nil {
			return 0, err
		}
	}
	return t.Hour()*60 + t.Minute(), nil
}

// overlaps reports whether the half-open minute intervals
// [aStart, aStart+aDur) and [bStart, bStart+bDur) intersect.
func overlaps(aStart, aDur, bStart, bDur int) bool {
	return aStart < bStart+bDur && bStart < aStart+aDur
}

// within reports whether instant m lies inside [start, start+dur).
func within(m, start, dur int) bool {
	return m >= start && m < start+dur
}
