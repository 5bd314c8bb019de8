package clock

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// MinutesPerDay is the number of minutes in a day; valid clock values are 0..MinutesPerDay-1.
const MinutesPerDay = 24 * 60

var (
	leadingTimeRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})`)
	anyTimeRe     = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	periodRe      = regexp.MustCompile(`(?i)(AM|PM)`)
)

// ParseClock converts a 24h "HH:MM" string to minutes since midnight.
// Empty or malformed input returns 0. Callers must treat 0 from a missing
// time as "unscheduled", not as an intentional midnight entry.
func ParseClock(s string) int {
	if s == "" {
		return 0
	}
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0
	}
	return h*60 + m
}

func applyPeriod(h int, period string) int {
	if period == "PM" && h < 12 {
		h += 12
	}
	if period == "AM" && h == 12 {
		h = 0
	}
	return h
}

// ParseLabel converts a free-form schedule time label to minutes since
// midnight. Labels may carry an AM/PM marker and may be dash-separated
// ranges ("12:00–1:00 PM"); only the first time in the label is used.
// Labels with no recognizable time return 0.
func ParseLabel(label string) int {
	period := strings.ToUpper(periodRe.FindString(label))

	if m := leadingTimeRe.FindStringSubmatch(label); m != nil {
		return applyPeriod(atoi(m[1]), period)*60 + atoi(m[2])
	}
	if m := anyTimeRe.FindStringSubmatch(label); m != nil {
		return applyPeriod(atoi(m[1]), period)*60 + atoi(m[2])
	}
	return 0
}

// ParseLabelRange extracts both ends of a dash-separated label. A label
// with a single time returns that time for both ends. The trailing AM/PM
// marker applies to each side, matching labels like "2:15–2:30 PM".
func ParseLabelRange(label string) (start, end int) {
	period := strings.ToUpper(periodRe.FindString(label))

	matches := anyTimeRe.FindAllStringSubmatch(label, 2)
	if len(matches) == 0 {
		return 0, 0
	}
	start = applyPeriod(atoi(matches[0][1]), period)*60 + atoi(matches[0][2])
	if len(matches) == 1 {
		return start, start
	}
	end = applyPeriod(atoi(matches[1][1]), period)*60 + atoi(matches[1][2])
	return start, end
}

// FormatClock converts minutes since midnight to a zero-padded 24h "HH:MM" string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatDisplay formats a 24h "HH:MM" string for display
// (e.g. 16:00 → 4:00 PM). Empty input renders empty.
func FormatDisplay(s string) string {
	if s == "" {
		return ""
	}
	minutes := ParseClock(s)
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("12:%02d AM", m)
	case h < 12:
		return fmt.Sprintf("%d:%02d AM", h, m)
	case h == 12:
		return fmt.Sprintf("12:%02d PM", m)
	default:
		return fmt.Sprintf("%d:%02d PM", h-12, m)
	}
}

// FormatMinutesDisplay formats minutes since midnight as a 12h display string.
func FormatMinutesDisplay(minutes int) string {
	return FormatDisplay(FormatClock(minutes))
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

/*
daybook is a personal wellness journal backend: daily check-in records, a fixed program schedule tracker, meal and time-block logging, and a composed daily timeline with free-time computation.
daybook Copyright (C) 2026 daybook contributors
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
