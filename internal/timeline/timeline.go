package timeline

import (
	"slices"
	"time"

	"daybook/internal/clock"
)

// Fixed anchor times for the parts of the day the program does not schedule.
const (
	TakeMedsSlotID   = "take-meds"
	takeMedsTime     = "07:00"
	wakeupTime       = "08:00"
	bedtimeTime      = "22:00"
	departOptionName = "Depart"

	// A meal without an explicit end time is assumed to last an hour.
	defaultMealDuration = 60
)

// SlotOption is one selectable activity of a fixed program slot.
type SlotOption struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Slot is a fixed program slot for the day, with a free-form time label.
type Slot struct {
	ID        string       `json:"id"`
	TimeLabel string       `json:"time"`
	Options   []SlotOption `json:"options"`
	IsBreak   bool         `json:"isBreak"`
}

// SlotLog is the recorded attendance for a slot on a given date.
type SlotLog struct {
	Attended          bool   `json:"attended"`
	ChosenOptionIndex *int   `json:"chosenOptionIndex,omitempty"`
	Notes             string `json:"notes"`
	RecordedTime      string `json:"recordedTime,omitempty"`
}

// Meal is a logged meal as the timeline sees it.
type Meal struct {
	ID      string `json:"id"`
	Type    string `json:"mealType"`
	Time    string `json:"mealTime"`
	TimeEnd string `json:"mealTimeEnd,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// Interval returns the meal's occupied range; a missing end time defaults
// to one hour after the start.
func (m Meal) Interval() Interval {
	start := clock.ParseClock(m.Time)
	end := start + defaultMealDuration
	if m.TimeEnd != "" {
		end = clock.ParseClock(m.TimeEnd)
	}
	return Interval{Start: start, End: end}
}

// Block is a free-form or calendar-imported activity with a start/end time.
type Block struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Notes     string `json:"notes"`
	TimeStart string `json:"timeStart"`
	TimeEnd   string `json:"timeEnd"`
	Source    string `json:"source,omitempty"`
}

// Interval returns the block's occupied range.
func (b Block) Interval() Interval {
	return Interval{Start: clock.ParseClock(b.TimeStart), End: clock.ParseClock(b.TimeEnd)}
}

// OverlapsWindow reports whether any part of the block falls inside the window.
func (b Block) OverlapsWindow(w Window) bool {
	iv := b.Interval()
	return iv.End > w.Start && iv.Start < w.End
}

// Anchor is a fixed morning/evening entry outside the program template.
type Anchor struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Time  string `json:"time"`
}

// EntryKind tags the source of a timeline entry.
type EntryKind string

const (
	KindSlot   EntryKind = "slot"
	KindMeal   EntryKind = "meal"
	KindBlock  EntryKind = "block"
	KindAnchor EntryKind = "anchor"
)

// Entry is one row of the composed timeline. Exactly one of Slot, Meal,
// Block, Anchor is set, matching Kind.
type Entry struct {
	Kind       EntryKind `json:"kind"`
	Minutes    int       `json:"minutes"`
	EndMinutes int       `json:"endMinutes,omitempty"`
	Display    string    `json:"display"`
	Missed     bool      `json:"missed,omitempty"`

	Slot   *Slot    `json:"slot,omitempty"`
	Log    *SlotLog `json:"log,omitempty"`
	Meal   *Meal    `json:"meal,omitempty"`
	Block  *Block   `json:"block,omitempty"`
	Anchor *Anchor  `json:"anchor,omitempty"`
}

// Input is one day's worth of timeline sources, taken by value. Compose
// never mutates it.
type Input struct {
	Date   time.Time
	Slots  []Slot
	Logs   map[string]SlotLog
	Meals  []Meal
	Blocks []Block
}

// View is the composed, display-ready day.
type View struct {
	Weekend         bool       `json:"weekend"`
	Entries         []Entry    `json:"entries"`
	WindowBlocks    []Block    `json:"windowBlocks"`
	FreeSegments    []Interval `json:"freeSegments"`
	FullyScheduled  bool       `json:"fullyScheduled"`
	FreeTimeDisplay string     `json:"freeTimeDisplay"`
}

// Compose merges the day's fixed program slots, dinner/snack meals,
// time blocks and fixed anchors into one ascending timeline, computes the
// free-time gaps, and flags slots missed after a recorded departure.
// Weekends short-circuit: the weekend view has no program timeline.
func Compose(in Input, w Window) View {
	if clock.IsWeekend(in.Date) {
		return View{Weekend: true, Entries: []Entry{}, WindowBlocks: []Block{}, FreeSegments: []Interval{}}
	}

	departRecorded := departRecordedMinutes(in)

	var entries []Entry

	medsLog := in.Logs[TakeMedsSlotID]
	medsTime := takeMedsTime
	if medsLog.Attended && medsLog.RecordedTime != "" {
		medsTime = medsLog.RecordedTime
	}
	entries = append(entries,
		anchorEntry(TakeMedsSlotID, "Take meds", medsTime),
		anchorEntry("wakeup", "Wakeup", wakeupTime),
	)

	for i := range in.Slots {
		slot := &in.Slots[i]
		log, hasLog := in.Logs[slot.ID]

		minutes := clock.ParseLabel(slot.TimeLabel)
		display := slot.TimeLabel
		if isDepartSlot(*slot) && log.RecordedTime != "" {
			// The recorded departure time replaces the nominal slot time.
			minutes = clock.ParseClock(log.RecordedTime)
			display = clock.FormatDisplay(log.RecordedTime)
		}

		e := Entry{
			Kind:    KindSlot,
			Minutes: minutes,
			Display: display,
			Slot:    slot,
			Missed: departRecorded >= 0 && !isDepartSlot(*slot) &&
				clock.ParseLabel(slot.TimeLabel) >= departRecorded,
		}
		if hasLog {
			l := log
			e.Log = &l
		}
		entries = append(entries, e)
	}

	for i := range in.Meals {
		m := &in.Meals[i]
		if m.Time == "" || (m.Type != "dinner" && m.Type != "snack") {
			continue
		}
		iv := m.Interval()
		entries = append(entries, Entry{
			Kind:       KindMeal,
			Minutes:    iv.Start,
			EndMinutes: iv.End,
			Display:    clock.FormatDisplay(m.Time),
			Meal:       m,
		})
	}

	windowBlocks := []Block{}
	var occupied []Interval
	for i := range in.Blocks {
		b := &in.Blocks[i]
		if b.OverlapsWindow(w) {
			windowBlocks = append(windowBlocks, *b)
			occupied = append(occupied, b.Interval())
			continue
		}
		iv := b.Interval()
		entries = append(entries, Entry{
			Kind:       KindBlock,
			Minutes:    iv.Start,
			EndMinutes: iv.End,
			Display:    clock.FormatDisplay(b.TimeStart) + "–" + clock.FormatDisplay(b.TimeEnd),
			Block:      b,
		})
	}

	entries = append(entries, anchorEntry("bedtime", "Bedtime", bedtimeTime))

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return a.Minutes - b.Minutes
	})

	segments := FreeSegments(w, occupied)
	return View{
		Entries:         entries,
		WindowBlocks:    windowBlocks,
		FreeSegments:    segments,
		FullyScheduled:  len(segments) == 0,
		FreeTimeDisplay: FormatSegments(w, segments),
	}
}

func anchorEntry(id, title, hhmm string) Entry {
	return Entry{
		Kind:    KindAnchor,
		Minutes: clock.ParseClock(hhmm),
		Display: clock.FormatDisplay(hhmm),
		Anchor:  &Anchor{ID: id, Title: title, Time: hhmm},
	}
}

func isDepartSlot(s Slot) bool {
	return len(s.Options) > 0 && s.Options[0].Name == departOptionName
}

// departRecordedMinutes returns the recorded departure time in minutes, or
// -1 when the departure slot has not been marked with an actual time.
func departRecordedMinutes(in Input) int {
	for _, s := range in.Slots {
		if !isDepartSlot(s) {
			continue
		}
		if log, ok := in.Logs[s.ID]; ok && log.Attended && log.RecordedTime != "" {
			return clock.ParseClock(log.RecordedTime)
		}
	}
	return -1
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
