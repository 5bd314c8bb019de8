package program

// Option is one thing a slot can be spent on, with an optional location
type Option struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Slot is one entry of the fixed weekday timetable. Time is a free-form
// label ("9:00 AM", "12:00–1:00 PM"); breaks are lunch and coffee slots.
type Slot struct {
	ID      string   `json:"id"`
	Time    string   `json:"time"`
	Options []Option `json:"options"`
	IsBreak bool     `json:"isBreak"`
}

// SlotLog is the attendance record for one slot on one date
type SlotLog struct {
	SlotID            string `json:"itemId"`
	Attended          bool   `json:"attended"`
	ChosenOptionIndex *int   `json:"chosenOptionIndex"`
	Notes             string `json:"notes"`
	RecordedTime      string `json:"recordedTime"`
}

// DayLog carries the day-level extras next to the per-slot logs
type DayLog struct {
	Date       string `json:"date"`
	Reflection string `json:"reflection"`
	CupsOfTea  int    `json:"cupsOfTea"`
}

// DayView is the response for a date: the weekday's slots plus whatever
// has been logged against them.
type DayView struct {
	Date       string             `json:"date"`
	Slots      []Slot             `json:"slots"`
	Logs       map[string]SlotLog `json:"logs"`
	Reflection string             `json:"reflection"`
	CupsOfTea  int                `json:"cupsOfTea"`
}

type UpsertLogRequest struct {
	Date              string `json:"date" binding:"required"`
	SlotID            string `json:"itemId" binding:"required"`
	Attended          bool   `json:"attended"`
	ChosenOptionIndex *int   `json:"chosenOptionIndex"`
	Notes             string `json:"notes"`
	RecordedTime      string `json:"recordedTime"`
}

type ReflectionRequest struct {
	Date       string `json:"date" binding:"required"`
	Reflection string `json:"reflection"`
}

type TeaRequest struct {
	Date string `json:"date" binding:"required"`
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
