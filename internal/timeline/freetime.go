package timeline

import (
	"slices"

	"daybook/internal/clock"
)

// Interval is a half-open [Start, End) range in minutes since midnight.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Window is the configured daily free-time range, e.g. 16:00-21:00.
type Window struct {
	Start int
	End   int
}

// DefaultWindow matches the program day: free time runs 4pm-9pm.
var DefaultWindow = Window{Start: 16 * 60, End: 21 * 60}

// FreeSegments returns the open sub-intervals of the window not covered by
// any occupied interval, sorted ascending and pairwise disjoint. Occupied
// intervals are clipped to the window first; overlapping or adjacent ones
// are merged before the gap walk. Zero occupied intervals yield the whole
// window, full coverage yields an empty slice.
func FreeSegments(w Window, occupied []Interval) []Interval {
	clipped := make([]Interval, 0, len(occupied))
	for _, o := range occupied {
		c := Interval{Start: max(o.Start, w.Start), End: min(o.End, w.End)}
		if c.End > c.Start {
			clipped = append(clipped, c)
		}
	}
	slices.SortStableFunc(clipped, func(a, b Interval) int {
		return a.Start - b.Start
	})

	var merged []Interval
	for _, o := range clipped {
		if n := len(merged); n > 0 && o.Start <= merged[n-1].End {
			merged[n-1].End = max(merged[n-1].End, o.End)
		} else {
			merged = append(merged, o)
		}
	}

	segments := []Interval{}
	pos := w.Start
	for _, o := range merged {
		if o.Start > pos {
			segments = append(segments, Interval{Start: pos, End: o.Start})
		}
		pos = max(pos, o.End)
	}
	if pos < w.End {
		segments = append(segments, Interval{Start: pos, End: w.End})
	}
	return segments
}

// FormatSegments renders free segments for display, e.g.
// "4:00 PM-5:30 PM, 6:00 PM-9:00 PM". An empty segment list renders the
// whole window with an "(all scheduled)" suffix.
func FormatSegments(w Window, segments []Interval) string {
	if len(segments) == 0 {
		return clock.FormatMinutesDisplay(w.Start) + "–" + clock.FormatMinutesDisplay(w.End) + " (all scheduled)"
	}
	out := ""
	for i, s := range segments {
		if i > 0 {
			out += ", "
		}
		out += clock.FormatMinutesDisplay(s.Start) + "–" + clock.FormatMinutesDisplay(s.End)
	}
	return out
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
