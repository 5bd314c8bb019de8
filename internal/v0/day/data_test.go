package day

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE day_entries (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL UNIQUE,
			day TEXT NOT NULL,
			week INTEGER NOT NULL,
			participation_plan TEXT,
			burnout_stage TEXT,
			sensory_load INTEGER,
			window_of_tolerance TEXT,
			pain INTEGER,
			fatigue INTEGER,
			anxiety INTEGER,
			depression INTEGER,
			sleep_hours REAL,
			nightmare_intensity INTEGER,
			dream_themes TEXT,
			arfid_appetite INTEGER,
			dizziness INTEGER,
			arrived_early INTEGER NOT NULL DEFAULT 0,
			seat_picked INTEGER NOT NULL DEFAULT 0,
			fidget_loops_ready INTEGER NOT NULL DEFAULT 0,
			reset_at_coffee_break INTEGER NOT NULL DEFAULT 0,
			breakfast_ate INTEGER,
			dinner_notes TEXT,
			bedtime_taper_down_time TEXT,
			weekend_wakeup_time TEXT,
			weekend_lunch_time TEXT,
			weekend_dinner_time TEXT
		);
		CREATE TABLE meals (
			id TEXT PRIMARY KEY,
			entry_id TEXT NOT NULL REFERENCES day_entries(id) ON DELETE CASCADE,
			meal_type TEXT,
			meal_time TEXT,
			meal_time_end TEXT,
			arfid_appetite INTEGER,
			fw_calories INTEGER NOT NULL DEFAULT 0,
			fw_protein INTEGER NOT NULL DEFAULT 0,
			fw_salt INTEGER NOT NULL DEFAULT 0,
			fw_used_safe_food INTEGER NOT NULL DEFAULT 0,
			fw_drinkable_option INTEGER NOT NULL DEFAULT 0,
			fw_had_at_least_2_bites INTEGER NOT NULL DEFAULT 0,
			fw_ate_until_full INTEGER NOT NULL DEFAULT 0,
			what_i_ate TEXT NOT NULL DEFAULT '',
			what_i_drank TEXT NOT NULL DEFAULT '',
			caffeinated INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE schedule_blocks (
			id TEXT PRIMARY KEY,
			entry_id TEXT NOT NULL REFERENCES day_entries(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			time_start TEXT NOT NULL,
			time_end TEXT NOT NULL,
			source TEXT NOT NULL DEFAULT 'manual',
			calendar_event_id TEXT NOT NULL DEFAULT ''
		);
	`)
	require.NoError(t, err)
	return NewRepository(db)
}

func TestCreateOrGet(t *testing.T) {
	r := newTestRepository(t)

	// 2026-03-02 is a Monday
	entry, err := r.CreateOrGet("2026-03-02")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "2026-03-02", entry.Date)
	assert.Equal(t, "Monday", entry.Day)
	assert.Equal(t, 2, entry.Week)
	assert.Nil(t, entry.Pain)
	assert.NotNil(t, entry.Meals)
	assert.Empty(t, entry.Meals)
	assert.Empty(t, entry.ScheduleBlocks)

	again, err := r.CreateOrGet("2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, entry.ID, again.ID)
}

func TestCreateOrGetRejectsBadDate(t *testing.T) {
	r := newTestRepository(t)
	_, err := r.CreateOrGet("March 2nd")
	require.Error(t, err)
}

func TestWeekOfMonth(t *testing.T) {
	cases := []struct {
		date string
		week int
	}{
		{"2026-03-01", 1},
		{"2026-03-07", 2},
		{"2026-03-08", 2},
		{"2026-03-14", 3},
		{"2026-03-15", 3},
		{"2026-03-31", 6},
	}
	for _, tc := range cases {
		parsed, err := time.Parse("2006-01-02", tc.date)
		require.NoError(t, err)
		assert.Equal(t, tc.week, WeekOfMonth(parsed), tc.date)
	}
}

func TestUpdateEntryPartial(t *testing.T) {
	r := newTestRepository(t)
	entry, err := r.CreateOrGet("2026-03-02")
	require.NoError(t, err)

	pain := 6
	plan := "Medium"
	updated, err := r.UpdateEntry(entry.ID, UpdateEntryRequest{Pain: &pain, ParticipationPlan: &plan})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.Pain)
	assert.Equal(t, 6, *updated.Pain)
	require.NotNil(t, updated.ParticipationPlan)
	assert.Equal(t, "Medium", *updated.ParticipationPlan)
	assert.Nil(t, updated.Fatigue)

	// A later update leaves earlier fields alone
	fatigue := 4
	transitions := Transitions{ArrivedEarly: true, SeatPicked: true}
	updated, err = r.UpdateEntry(entry.ID, UpdateEntryRequest{Fatigue: &fatigue, Transitions: &transitions})
	require.NoError(t, err)
	require.NotNil(t, updated.Pain)
	assert.Equal(t, 6, *updated.Pain)
	require.NotNil(t, updated.Fatigue)
	assert.Equal(t, 4, *updated.Fatigue)
	assert.True(t, updated.Transitions.ArrivedEarly)
	assert.True(t, updated.Transitions.SeatPicked)
	assert.False(t, updated.Transitions.FidgetLoopsReady)
}

func TestUpdateEntryUnknownID(t *testing.T) {
	r := newTestRepository(t)
	pain := 3
	entry, err := r.UpdateEntry("day_missing", UpdateEntryRequest{Pain: &pain})
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestListOverviewsNewestFirst(t *testing.T) {
	r := newTestRepository(t)
	_, err := r.CreateOrGet("2026-03-02")
	require.NoError(t, err)
	_, err = r.CreateOrGet("2026-03-04")
	require.NoError(t, err)
	_, err = r.CreateOrGet("2026-03-03")
	require.NoError(t, err)

	overviews, err := r.ListOverviews()
	require.NoError(t, err)
	require.Len(t, overviews, 3)
	assert.Equal(t, "2026-03-04", overviews[0].Date)
	assert.Equal(t, "2026-03-03", overviews[1].Date)
	assert.Equal(t, "2026-03-02", overviews[2].Date)
}

func TestMealLifecycle(t *testing.T) {
	r := newTestRepository(t)
	entry, err := r.CreateOrGet("2026-03-02")
	require.NoError(t, err)

	mealType := "dinner"
	mealTime := "18:00"
	meal, err := r.AddMeal(entry.ID, MealRequest{
		MealType: &mealType,
		MealTime: &mealTime,
		WhatIAte: "pasta",
		FoodWins: FoodWins{Calories: true, HadAtLeast2Bites: true},
	})
	require.NoError(t, err)
	require.NotNil(t, meal.ArfidAppetite)
	assert.Equal(t, 5, *meal.ArfidAppetite)

	loaded, err := r.GetByID(entry.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Meals, 1)
	assert.Equal(t, "pasta", loaded.Meals[0].WhatIAte)
	assert.True(t, loaded.Meals[0].FoodWins.Calories)
	assert.Nil(t, loaded.Meals[0].MealTimeEnd)

	appetite := 7
	updated, err := r.UpdateMeal(entry.ID, meal.ID, MealRequest{
		MealType:      &mealType,
		MealTime:      &mealTime,
		ArfidAppetite: &appetite,
		WhatIAte:      "pasta and bread",
		Caffeinated:   true,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 7, *updated.ArfidAppetite)

	missing, err := r.UpdateMeal(entry.ID, "meal_missing", MealRequest{})
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, r.RemoveMeal(entry.ID, meal.ID))
	loaded, err = r.GetByID(entry.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Meals)
}

func TestBlockLifecycle(t *testing.T) {
	r := newTestRepository(t)
	entry, err := r.CreateOrGet("2026-03-02")
	require.NoError(t, err)

	block, err := r.AddBlock(entry.ID, Block{Title: "Physio", TimeStart: "17:00", TimeEnd: "18:00"})
	require.NoError(t, err)
	assert.Equal(t, BlockSourceManual, block.Source)

	updated, err := r.UpdateBlock(entry.ID, block.ID, BlockRequest{
		Title: "Physio", Notes: "bring referral", TimeStart: "17:30", TimeEnd: "18:30",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "17:30", updated.TimeStart)
	assert.Equal(t, "bring referral", updated.Notes)
	assert.Equal(t, BlockSourceManual, updated.Source)

	require.NoError(t, r.RemoveBlock(entry.ID, block.ID))
	loaded, err := r.GetByID(entry.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.ScheduleBlocks)
}

func TestCalendarEventIDs(t *testing.T) {
	r := newTestRepository(t)
	entry, err := r.CreateOrGet("2026-03-02")
	require.NoError(t, err)

	_, err = r.AddBlock(entry.ID, Block{Title: "Dentist", TimeStart: "16:00", TimeEnd: "17:00", Source: BlockSourceCalendar, CalendarEventID: "evt-1"})
	require.NoError(t, err)
	_, err = r.AddBlock(entry.ID, Block{Title: "Walk", TimeStart: "18:00", TimeEnd: "19:00"})
	require.NoError(t, err)

	known, err := r.CalendarEventIDs(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"evt-1": true}, known)
}

func TestSortMealsByTime(t *testing.T) {
	breakfast := "breakfast"
	dinner := "dinner"
	early := "08:00"
	late := "18:30"
	meals := []Meal{
		{ID: "a", MealType: &dinner, MealTime: &late},
		{ID: "b", MealType: &breakfast},
		{ID: "c", MealTime: &early},
	}

	sorted := SortMealsByTime(meals)
	assert.Equal(t, "c", sorted[0].ID)
	assert.Equal(t, "a", sorted[1].ID)
	assert.Equal(t, "b", sorted[2].ID)

	// Input untouched
	assert.Equal(t, "a", meals[0].ID)
}
