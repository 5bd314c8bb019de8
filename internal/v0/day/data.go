package day

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"daybook/internal/clock"
	"daybook/internal/ids"
)

type Repository struct {
	db *sql.DB
}

// NewRepository creates a new day repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const entryColumns = `id, date, day, week, participation_plan, burnout_stage,
	sensory_load, window_of_tolerance, pain, fatigue, anxiety, depression,
	sleep_hours, nightmare_intensity, dream_themes, arfid_appetite, dizziness,
	arrived_early, seat_picked, fidget_loops_ready, reset_at_coffee_break,
	breakfast_ate, dinner_notes, bedtime_taper_down_time,
	weekend_wakeup_time, weekend_lunch_time, weekend_dinner_time`

// CreateOrGet returns the entry for the date, creating a fresh one when
// none exists yet. Weekday name and week-of-month are derived from the
// date at creation time and fixed afterwards.
func (r *Repository) CreateOrGet(date string) (*Entry, error) {
	existing, err := r.GetByDate(date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	id := ids.New("day")
	_, err = r.db.Exec(
		"INSERT INTO day_entries (id, date, day, week) VALUES (?, ?, ?, ?)",
		id, date, parsed.Weekday().String(), WeekOfMonth(parsed),
	)
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// GetByID returns the full entry or (nil, nil) when it does not exist
func (r *Repository) GetByID(id string) (*Entry, error) {
	row := r.db.QueryRow("SELECT "+entryColumns+" FROM day_entries WHERE id = ?", id)
	return r.scanFullEntry(row)
}

// GetByDate returns the full entry or (nil, nil) when it does not exist
func (r *Repository) GetByDate(date string) (*Entry, error) {
	row := r.db.QueryRow("SELECT "+entryColumns+" FROM day_entries WHERE date = ?", date)
	return r.scanFullEntry(row)
}

func (r *Repository) scanFullEntry(row *sql.Row) (*Entry, error) {
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if e.Meals, err = r.loadMeals(e.ID); err != nil {
		return nil, err
	}
	if e.ScheduleBlocks, err = r.loadBlocks(e.ID); err != nil {
		return nil, err
	}
	return e, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var e Entry
	var plan, stage, tolerance, dreams, dinnerNotes sql.NullString
	var taperDown, weekendWake, weekendLunch, weekendDinner sql.NullString
	var sensory, pain, fatigue, anxiety, depression, nightmare, appetite, dizziness sql.NullInt64
	var sleep sql.NullFloat64
	var breakfast sql.NullBool

	err := row.Scan(
		&e.ID, &e.Date, &e.Day, &e.Week, &plan, &stage,
		&sensory, &tolerance, &pain, &fatigue, &anxiety, &depression,
		&sleep, &nightmare, &dreams, &appetite, &dizziness,
		&e.Transitions.ArrivedEarly, &e.Transitions.SeatPicked,
		&e.Transitions.FidgetLoopsReady, &e.Transitions.ResetAtCoffeeBreak,
		&breakfast, &dinnerNotes, &taperDown,
		&weekendWake, &weekendLunch, &weekendDinner,
	)
	if err != nil {
		return nil, err
	}

	e.ParticipationPlan = nullableString(plan)
	e.BurnoutStage = nullableString(stage)
	e.SensoryLoad = nullableInt(sensory)
	e.WindowOfTolerance = nullableString(tolerance)
	e.Pain = nullableInt(pain)
	e.Fatigue = nullableInt(fatigue)
	e.Anxiety = nullableInt(anxiety)
	e.Depression = nullableInt(depression)
	e.SleepHours = nullableFloat(sleep)
	e.NightmareIntensity = nullableInt(nightmare)
	e.DreamThemesOrRemember = nullableString(dreams)
	e.ArfidAppetite = nullableInt(appetite)
	e.Dizziness = nullableInt(dizziness)
	e.BreakfastAte = nullableBool(breakfast)
	e.DinnerNotes = nullableString(dinnerNotes)
	e.BedtimeTaperDownTime = nullableString(taperDown)
	e.WeekendWakeupTime = nullableString(weekendWake)
	e.WeekendLunchTime = nullableString(weekendLunch)
	e.WeekendDinnerTime = nullableString(weekendDinner)
	return &e, nil
}

// ListOverviews returns the history list, newest date first
func (r *Repository) ListOverviews() ([]Overview, error) {
	overviews := []Overview{}

	rows, err := r.db.Query(`
		SELECT id, date, day, week, burnout_stage, participation_plan,
			pain, fatigue,
			arrived_early, seat_picked, fidget_loops_ready, reset_at_coffee_break
		FROM day_entries ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o Overview
		var stage, plan sql.NullString
		var pain, fatigue sql.NullInt64
		err := rows.Scan(
			&o.ID, &o.Date, &o.Day, &o.Week, &stage, &plan,
			&pain, &fatigue,
			&o.Transitions.ArrivedEarly, &o.Transitions.SeatPicked,
			&o.Transitions.FidgetLoopsReady, &o.Transitions.ResetAtCoffeeBreak,
		)
		if err != nil {
			return nil, err
		}
		o.BurnoutStage = nullableString(stage)
		o.ParticipationPlan = nullableString(plan)
		o.Pain = nullableInt(pain)
		o.Fatigue = nullableInt(fatigue)
		overviews = append(overviews, o)
	}
	return overviews, rows.Err()
}

// ListFull returns every entry with meals and blocks, newest date first
func (r *Repository) ListFull() ([]Entry, error) {
	entries := []Entry{}

	rows, err := r.db.Query("SELECT " + entryColumns + " FROM day_entries ORDER BY date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range entries {
		if entries[i].Meals, err = r.loadMeals(entries[i].ID); err != nil {
			return nil, err
		}
		if entries[i].ScheduleBlocks, err = r.loadBlocks(entries[i].ID); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// UpdateEntry applies a partial update: only non-nil fields change.
// Returns the refreshed entry, or (nil, nil) when the id is unknown.
func (r *Repository) UpdateEntry(id string, req UpdateEntryRequest) (*Entry, error) {
	sets := []string{}
	args := []interface{}{}
	set := func(column string, value interface{}) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if req.ParticipationPlan != nil {
		set("participation_plan", *req.ParticipationPlan)
	}
	if req.BurnoutStage != nil {
		set("burnout_stage", *req.BurnoutStage)
	}
	if req.SensoryLoad != nil {
		set("sensory_load", *req.SensoryLoad)
	}
	if req.WindowOfTolerance != nil {
		set("window_of_tolerance", *req.WindowOfTolerance)
	}
	if req.Pain != nil {
		set("pain", *req.Pain)
	}
	if req.Fatigue != nil {
		set("fatigue", *req.Fatigue)
	}
	if req.Anxiety != nil {
		set("anxiety", *req.Anxiety)
	}
	if req.Depression != nil {
		set("depression", *req.Depression)
	}
	if req.SleepHours != nil {
		set("sleep_hours", *req.SleepHours)
	}
	if req.NightmareIntensity != nil {
		set("nightmare_intensity", *req.NightmareIntensity)
	}
	if req.DreamThemesOrRemember != nil {
		set("dream_themes", *req.DreamThemesOrRemember)
	}
	if req.ArfidAppetite != nil {
		set("arfid_appetite", *req.ArfidAppetite)
	}
	if req.Dizziness != nil {
		set("dizziness", *req.Dizziness)
	}
	if req.Transitions != nil {
		set("arrived_early", req.Transitions.ArrivedEarly)
		set("seat_picked", req.Transitions.SeatPicked)
		set("fidget_loops_ready", req.Transitions.FidgetLoopsReady)
		set("reset_at_coffee_break", req.Transitions.ResetAtCoffeeBreak)
	}
	if req.BreakfastAte != nil {
		set("breakfast_ate", *req.BreakfastAte)
	}
	if req.DinnerNotes != nil {
		set("dinner_notes", *req.DinnerNotes)
	}
	if req.BedtimeTaperDownTime != nil {
		set("bedtime_taper_down_time", *req.BedtimeTaperDownTime)
	}
	if req.WeekendWakeupTime != nil {
		set("weekend_wakeup_time", *req.WeekendWakeupTime)
	}
	if req.WeekendLunchTime != nil {
		set("weekend_lunch_time", *req.WeekendLunchTime)
	}
	if req.WeekendDinnerTime != nil {
		set("weekend_dinner_time", *req.WeekendDinnerTime)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := "UPDATE day_entries SET " + strings.Join(sets, ", ") + " WHERE id = ?"
		if _, err := r.db.Exec(query, args...); err != nil {
			return nil, err
		}
	}
	return r.GetByID(id)
}

// Meals

func (r *Repository) loadMeals(entryID string) ([]Meal, error) {
	meals := []Meal{}

	rows, err := r.db.Query(`
		SELECT id, meal_type, meal_time, meal_time_end, arfid_appetite,
			fw_calories, fw_protein, fw_salt, fw_used_safe_food,
			fw_drinkable_option, fw_had_at_least_2_bites, fw_ate_until_full,
			what_i_ate, what_i_drank, caffeinated
		FROM meals WHERE entry_id = ? ORDER BY rowid`,
		entryID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var m Meal
		var mealType, mealTime, mealTimeEnd sql.NullString
		var appetite sql.NullInt64
		err := rows.Scan(
			&m.ID, &mealType, &mealTime, &mealTimeEnd, &appetite,
			&m.FoodWins.Calories, &m.FoodWins.Protein, &m.FoodWins.Salt,
			&m.FoodWins.UsedSafeFood, &m.FoodWins.DrinkableOption,
			&m.FoodWins.HadAtLeast2Bites, &m.FoodWins.AteUntilFull,
			&m.WhatIAte, &m.WhatIDrank, &m.Caffeinated,
		)
		if err != nil {
			return nil, err
		}
		m.MealType = nullableString(mealType)
		m.MealTime = nullableString(mealTime)
		m.MealTimeEnd = nullableString(mealTimeEnd)
		m.ArfidAppetite = nullableInt(appetite)
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

// AddMeal appends a meal to the entry and returns it with its new id
func (r *Repository) AddMeal(entryID string, req MealRequest) (*Meal, error) {
	m := mealFromRequest(ids.New("meal"), req)
	_, err := r.db.Exec(`
		INSERT INTO meals (id, entry_id, meal_type, meal_time, meal_time_end, arfid_appetite,
			fw_calories, fw_protein, fw_salt, fw_used_safe_food,
			fw_drinkable_option, fw_had_at_least_2_bites, fw_ate_until_full,
			what_i_ate, what_i_drank, caffeinated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, entryID, nullArg(m.MealType), nullArg(m.MealTime), nullArg(m.MealTimeEnd),
		nullIntArg(m.ArfidAppetite),
		m.FoodWins.Calories, m.FoodWins.Protein, m.FoodWins.Salt,
		m.FoodWins.UsedSafeFood, m.FoodWins.DrinkableOption,
		m.FoodWins.HadAtLeast2Bites, m.FoodWins.AteUntilFull,
		m.WhatIAte, m.WhatIDrank, m.Caffeinated,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMeal replaces a meal's fields wholesale
func (r *Repository) UpdateMeal(entryID, mealID string, req MealRequest) (*Meal, error) {
	m := mealFromRequest(mealID, req)
	res, err := r.db.Exec(`
		UPDATE meals SET meal_type = ?, meal_time = ?, meal_time_end = ?, arfid_appetite = ?,
			fw_calories = ?, fw_protein = ?, fw_salt = ?, fw_used_safe_food = ?,
			fw_drinkable_option = ?, fw_had_at_least_2_bites = ?, fw_ate_until_full = ?,
			what_i_ate = ?, what_i_drank = ?, caffeinated = ?
		WHERE id = ? AND entry_id = ?`,
		nullArg(m.MealType), nullArg(m.MealTime), nullArg(m.MealTimeEnd),
		nullIntArg(m.ArfidAppetite),
		m.FoodWins.Calories, m.FoodWins.Protein, m.FoodWins.Salt,
		m.FoodWins.UsedSafeFood, m.FoodWins.DrinkableOption,
		m.FoodWins.HadAtLeast2Bites, m.FoodWins.AteUntilFull,
		m.WhatIAte, m.WhatIDrank, m.Caffeinated,
		mealID, entryID,
	)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return &m, nil
}

func (r *Repository) RemoveMeal(entryID, mealID string) error {
	_, err := r.db.Exec("DELETE FROM meals WHERE id = ? AND entry_id = ?", mealID, entryID)
	return err
}

func mealFromRequest(id string, req MealRequest) Meal {
	appetite := req.ArfidAppetite
	if appetite == nil {
		// New meals start at the middle of the appetite scale
		mid := 5
		appetite = &mid
	}
	return Meal{
		ID:            id,
		MealType:      req.MealType,
		MealTime:      req.MealTime,
		MealTimeEnd:   req.MealTimeEnd,
		ArfidAppetite: appetite,
		FoodWins:      req.FoodWins,
		WhatIAte:      req.WhatIAte,
		WhatIDrank:    req.WhatIDrank,
		Caffeinated:   req.Caffeinated,
	}
}

// Blocks

func (r *Repository) loadBlocks(entryID string) ([]Block, error) {
	blocks := []Block{}

	rows, err := r.db.Query(`
		SELECT id, title, notes, time_start, time_end, source, calendar_event_id
		FROM schedule_blocks WHERE entry_id = ? ORDER BY rowid`,
		entryID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var b Block
		if err := rows.Scan(&b.ID, &b.Title, &b.Notes, &b.TimeStart, &b.TimeEnd, &b.Source, &b.CalendarEventID); err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

// AddBlock appends a block to the entry and returns it with its new id
func (r *Repository) AddBlock(entryID string, b Block) (*Block, error) {
	b.ID = ids.New("blk")
	if b.Source == "" {
		b.Source = BlockSourceManual
	}
	_, err := r.db.Exec(`
		INSERT INTO schedule_blocks (id, entry_id, title, notes, time_start, time_end, source, calendar_event_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, entryID, b.Title, b.Notes, b.TimeStart, b.TimeEnd, b.Source, b.CalendarEventID,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBlock replaces a block's editable fields; source and calendar
// linkage are fixed at creation.
func (r *Repository) UpdateBlock(entryID, blockID string, req BlockRequest) (*Block, error) {
	res, err := r.db.Exec(`
		UPDATE schedule_blocks SET title = ?, notes = ?, time_start = ?, time_end = ?
		WHERE id = ? AND entry_id = ?`,
		req.Title, req.Notes, req.TimeStart, req.TimeEnd, blockID, entryID,
	)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	var b Block
	err = r.db.QueryRow(`
		SELECT id, title, notes, time_start, time_end, source, calendar_event_id
		FROM schedule_blocks WHERE id = ?`, blockID,
	).Scan(&b.ID, &b.Title, &b.Notes, &b.TimeStart, &b.TimeEnd, &b.Source, &b.CalendarEventID)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) RemoveBlock(entryID, blockID string) error {
	_, err := r.db.Exec("DELETE FROM schedule_blocks WHERE id = ? AND entry_id = ?", blockID, entryID)
	return err
}

// CalendarEventIDs returns the set of imported calendar event ids for
// the entry, used to de-duplicate imports.
func (r *Repository) CalendarEventIDs(entryID string) (map[string]bool, error) {
	known := map[string]bool{}

	rows, err := r.db.Query(
		"SELECT calendar_event_id FROM schedule_blocks WHERE entry_id = ? AND calendar_event_id != ''",
		entryID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		known[id] = true
	}
	return known, rows.Err()
}

// Helpers

// WeekOfMonth buckets a date into weeks 1..6 by day of month
func WeekOfMonth(t time.Time) int {
	week := (t.Day()+5)/7 + 1
	if week < 1 {
		week = 1
	}
	if week > 6 {
		week = 6
	}
	return week
}

// SortMealsByTime orders meals by time taken; meals without a time sort last
func SortMealsByTime(meals []Meal) []Meal {
	sorted := make([]Meal, len(meals))
	copy(sorted, meals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return mealMinutes(sorted[i]) < mealMinutes(sorted[j])
	})
	return sorted
}

func mealMinutes(m Meal) int {
	if m.MealTime == nil || *m.MealTime == "" {
		return clock.MinutesPerDay
	}
	return clock.ParseClock(*m.MealTime)
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func nullableBool(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	return &v.Bool
}

func nullArg(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullIntArg(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
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
