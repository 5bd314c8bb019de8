package day

// Transitions is the small checklist of grounding steps around arrival
type Transitions struct {
	ArrivedEarly       bool `json:"arrivedEarly"`
	SeatPicked         bool `json:"seatPicked"`
	FidgetLoopsReady   bool `json:"fidgetLoopsReady"`
	ResetAtCoffeeBreak bool `json:"resetAtCoffeeBreak"`
}

// FoodWins is the per-meal checklist of small eating wins
type FoodWins struct {
	Calories         bool `json:"calories"`
	Protein          bool `json:"protein"`
	Salt             bool `json:"salt"`
	UsedSafeFood     bool `json:"usedSafeFood"`
	DrinkableOption  bool `json:"drinkableOption"`
	HadAtLeast2Bites bool `json:"hadAtLeast2Bites"`
	AteUntilFull     bool `json:"ateUntilFull"`
}

// Meal is one logged meal or snack. Times are optional "HH:MM" values;
// the end time defaults downstream when only a start is set.
type Meal struct {
	ID            string   `json:"id"`
	MealType      *string  `json:"mealType"`
	MealTime      *string  `json:"mealTime"`
	MealTimeEnd   *string  `json:"mealTimeEnd"`
	ArfidAppetite *int     `json:"arfidAppetite"`
	FoodWins      FoodWins `json:"foodWins"`
	WhatIAte      string   `json:"whatIAte"`
	WhatIDrank    string   `json:"whatIDrank"`
	Caffeinated   bool     `json:"caffeinated"`
}

// Block is a user- or calendar-sourced time block on the day
type Block struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Notes           string `json:"notes"`
	TimeStart       string `json:"timeStart"`
	TimeEnd         string `json:"timeEnd"`
	Source          string `json:"source"`
	CalendarEventID string `json:"calendarEventId,omitempty"`
}

const (
	BlockSourceManual   = "manual"
	BlockSourceCalendar = "calendar"
)

// Entry is one day's full check-in record. Scales are nil until filled
// in; pain/fatigue/anxiety/depression/sensory load/dizziness/appetite
// run 0-10, nightmare intensity 0-5.
type Entry struct {
	ID                    string      `json:"id"`
	Date                  string      `json:"date"`
	Day                   string      `json:"day"`
	Week                  int         `json:"week"`
	ParticipationPlan     *string     `json:"participationPlan"`
	BurnoutStage          *string     `json:"burnoutStage"`
	SensoryLoad           *int        `json:"sensoryLoad"`
	WindowOfTolerance     *string     `json:"windowOfTolerance"`
	Pain                  *int        `json:"pain"`
	Fatigue               *int        `json:"fatigue"`
	Anxiety               *int        `json:"anxiety"`
	Depression            *int        `json:"depression"`
	SleepHours            *float64    `json:"sleepHours"`
	NightmareIntensity    *int        `json:"nightmareIntensity"`
	DreamThemesOrRemember *string     `json:"dreamThemesOrRemember"`
	ArfidAppetite         *int        `json:"arfidAppetite"`
	Dizziness             *int        `json:"dizziness"`
	Transitions           Transitions `json:"transitions"`
	BreakfastAte          *bool       `json:"breakfastAte"`
	DinnerNotes           *string     `json:"dinnerNotes"`
	BedtimeTaperDownTime  *string     `json:"bedtimeTaperDownTime"`
	WeekendWakeupTime     *string     `json:"weekendWakeupTime"`
	WeekendLunchTime      *string     `json:"weekendLunchTime"`
	WeekendDinnerTime     *string     `json:"weekendDinnerTime"`
	Meals                 []Meal      `json:"meals"`
	ScheduleBlocks        []Block     `json:"scheduleBlocks"`
}

// Overview is the trimmed shape for the history list
type Overview struct {
	ID                string      `json:"id"`
	Date              string      `json:"date"`
	Day               string      `json:"day"`
	Week              int         `json:"week"`
	BurnoutStage      *string     `json:"burnoutStage"`
	ParticipationPlan *string     `json:"participationPlan"`
	Pain              *int        `json:"pain"`
	Fatigue           *int        `json:"fatigue"`
	Transitions       Transitions `json:"transitions"`
}

// UpdateEntryRequest carries a partial update: nil fields are untouched
type UpdateEntryRequest struct {
	ParticipationPlan     *string      `json:"participationPlan"`
	BurnoutStage          *string      `json:"burnoutStage"`
	SensoryLoad           *int         `json:"sensoryLoad"`
	WindowOfTolerance     *string      `json:"windowOfTolerance"`
	Pain                  *int         `json:"pain"`
	Fatigue               *int         `json:"fatigue"`
	Anxiety               *int         `json:"anxiety"`
	Depression            *int         `json:"depression"`
	SleepHours            *float64     `json:"sleepHours"`
	NightmareIntensity    *int         `json:"nightmareIntensity"`
	DreamThemesOrRemember *string      `json:"dreamThemesOrRemember"`
	ArfidAppetite         *int         `json:"arfidAppetite"`
	Dizziness             *int         `json:"dizziness"`
	Transitions           *Transitions `json:"transitions"`
	BreakfastAte          *bool        `json:"breakfastAte"`
	DinnerNotes           *string      `json:"dinnerNotes"`
	BedtimeTaperDownTime  *string      `json:"bedtimeTaperDownTime"`
	WeekendWakeupTime     *string      `json:"weekendWakeupTime"`
	WeekendLunchTime      *string      `json:"weekendLunchTime"`
	WeekendDinnerTime     *string      `json:"weekendDinnerTime"`
}

// MealRequest is the body for adding or updating a meal
type MealRequest struct {
	MealType      *string  `json:"mealType"`
	MealTime      *string  `json:"mealTime"`
	MealTimeEnd   *string  `json:"mealTimeEnd"`
	ArfidAppetite *int     `json:"arfidAppetite"`
	FoodWins      FoodWins `json:"foodWins"`
	WhatIAte      string   `json:"whatIAte"`
	WhatIDrank    string   `json:"whatIDrank"`
	Caffeinated   bool     `json:"caffeinated"`
}

// BlockRequest is the body for adding or updating a manual block
type BlockRequest struct {
	Title     string `json:"title" binding:"required"`
	Notes     string `json:"notes"`
	TimeStart string `json:"timeStart" binding:"required"`
	TimeEnd   string `json:"timeEnd" binding:"required"`
}

// SyncRequest is the body for the calendar import endpoint
type SyncRequest struct {
	AccessToken string `json:"accessToken" binding:"required"`
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
