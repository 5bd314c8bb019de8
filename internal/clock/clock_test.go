package clock

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	assert.Equal(t, 0, ParseClock(""))
	assert.Equal(t, 0, ParseClock("not a time"))
	assert.Equal(t, 0, ParseClock("00:00"))
	assert.Equal(t, 7*60, ParseClock("07:00"))
	assert.Equal(t, 16*60+40, ParseClock("16:40"))
	assert.Equal(t, 23*60+59, ParseClock("23:59"))
}

func TestParseClockRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			s := fmt.Sprintf("%02d:%02d", h, m)
			assert.Equal(t, s, FormatClock(ParseClock(s)))
		}
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"9:00 AM", 9 * 60},
		{"12:00 AM", 0},
		{"12:00 PM", 12 * 60},
		{"1:00 PM", 13 * 60},
		{"2:15–2:30 PM", 14*60 + 15},
		{"12:00–1:00 PM", 12 * 60},
		{"16:00", 16 * 60},
		{"4:00 PM", 16 * 60},
		{"", 0},
		{"Lunch", 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseLabel(tc.label), "label %q", tc.label)
	}
}

func TestParseLabelRange(t *testing.T) {
	start, end := ParseLabelRange("12:00–1:00 PM")
	assert.Equal(t, 12*60, start)
	assert.Equal(t, 13*60, end)

	start, end = ParseLabelRange("2:15–2:30 PM")
	assert.Equal(t, 14*60+15, start)
	assert.Equal(t, 14*60+30, end)

	start, end = ParseLabelRange("9:00 AM")
	assert.Equal(t, 9*60, start)
	assert.Equal(t, 9*60, end)

	start, end = ParseLabelRange("no time here")
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestFormatDisplay(t *testing.T) {
	assert.Equal(t, "", FormatDisplay(""))
	assert.Equal(t, "12:05 AM", FormatDisplay("00:05"))
	assert.Equal(t, "7:00 AM", FormatDisplay("07:00"))
	assert.Equal(t, "12:00 PM", FormatDisplay("12:00"))
	assert.Equal(t, "1:30 PM", FormatDisplay("13:30"))
	assert.Equal(t, "11:59 PM", FormatDisplay("23:59"))
}

func TestFormatMinutesDisplay(t *testing.T) {
	assert.Equal(t, "4:00 PM", FormatMinutesDisplay(16*60))
	assert.Equal(t, "9:00 PM", FormatMinutesDisplay(21*60))
}

func TestIsWeekend(t *testing.T) {
	saturday := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsWeekend(saturday))
	assert.True(t, IsWeekend(sunday))
	assert.False(t, IsWeekend(monday))
}
