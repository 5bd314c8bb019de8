package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	weekday = time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC) // Monday
	weekend = time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC) // Saturday
)

func mondaySlots() []Slot {
	return []Slot{
		{ID: "m1", TimeLabel: "9:00 AM", Options: []SlotOption{{Name: "Horticulture", Location: "Greenhouse"}}},
		{ID: "m2", TimeLabel: "10:00 AM", Options: []SlotOption{{Name: "Understanding Trauma", Location: "Room #206"}, {Name: "Yoga", Location: "MPR"}}},
		{ID: "m4", TimeLabel: "12:00–1:00 PM", Options: []SlotOption{{Name: "Lunch"}}, IsBreak: true},
		{ID: "m7", TimeLabel: "2:30 PM", Options: []SlotOption{{Name: "Healthy Relationships", Location: "Room #205"}}},
		{ID: "m8", TimeLabel: "4:00 PM", Options: []SlotOption{{Name: "Depart"}}},
	}
}

func entryIDs(entries []Entry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		switch e.Kind {
		case KindSlot:
			ids = append(ids, e.Slot.ID)
		case KindMeal:
			ids = append(ids, e.Meal.ID)
		case KindBlock:
			ids = append(ids, e.Block.ID)
		case KindAnchor:
			ids = append(ids, e.Anchor.ID)
		}
	}
	return ids
}

func TestComposeWeekend(t *testing.T) {
	view := Compose(Input{Date: weekend, Slots: mondaySlots()}, DefaultWindow)
	assert.True(t, view.Weekend)
	assert.Empty(t, view.Entries)
	assert.Empty(t, view.FreeSegments)
}

func TestComposeOrdersByTime(t *testing.T) {
	in := Input{
		Date:  weekday,
		Slots: mondaySlots(),
		Meals: []Meal{
			{ID: "meal-1", Type: "dinner", Time: "18:30"},
			{ID: "meal-2", Type: "breakfast", Time: "08:30"}, // breakfast is anchored elsewhere
			{ID: "meal-3", Type: "snack"},                    // no time set
		},
		Blocks: []Block{
			{ID: "blk-1", Title: "Dentist", TimeStart: "11:30", TimeEnd: "12:00"},
		},
	}
	view := Compose(in, DefaultWindow)

	require.False(t, view.Weekend)
	assert.Equal(t,
		[]string{"take-meds", "wakeup", "m1", "m2", "blk-1", "m4", "m7", "m8", "meal-1", "bedtime"},
		entryIDs(view.Entries),
	)
	for i := 1; i < len(view.Entries); i++ {
		assert.GreaterOrEqual(t, view.Entries[i].Minutes, view.Entries[i-1].Minutes)
	}
}

func TestComposeTakeMedsRecordedTime(t *testing.T) {
	in := Input{
		Date: weekday,
		Logs: map[string]SlotLog{
			TakeMedsSlotID: {Attended: true, RecordedTime: "07:45"},
		},
	}
	view := Compose(in, DefaultWindow)

	require.Equal(t, KindAnchor, view.Entries[0].Kind)
	assert.Equal(t, "07:45", view.Entries[0].Anchor.Time)
	assert.Equal(t, 7*60+45, view.Entries[0].Minutes)
}

func TestComposeDepartRecordedTimeReplacesNominal(t *testing.T) {
	in := Input{
		Date:  weekday,
		Slots: mondaySlots(),
		Logs: map[string]SlotLog{
			"m8": {Attended: true, RecordedTime: "12:30"},
		},
	}
	view := Compose(in, DefaultWindow)

	// Departure at 12:30 sorts before the 2:30 PM slot.
	assert.Equal(t,
		[]string{"take-meds", "wakeup", "m1", "m2", "m4", "m8", "m7", "bedtime"},
		entryIDs(view.Entries),
	)

	for _, e := range view.Entries {
		if e.Kind != KindSlot {
			continue
		}
		switch e.Slot.ID {
		case "m8":
			assert.Equal(t, 12*60+30, e.Minutes)
			assert.False(t, e.Missed, "the departure slot itself is never missed")
		case "m7":
			assert.True(t, e.Missed, "2:30 PM slot is at/after the 12:30 departure")
		default:
			assert.False(t, e.Missed, "slot %s nominally before departure", e.Slot.ID)
		}
	}
}

func TestComposeMissedBoundary(t *testing.T) {
	in := Input{
		Date: weekday,
		Slots: []Slot{
			{ID: "a", TimeLabel: "2:30 PM", Options: []SlotOption{{Name: "Group"}}},
			{ID: "b", TimeLabel: "3:30 PM", Options: []SlotOption{{Name: "Later Group"}}},
			{ID: "d", TimeLabel: "4:00 PM", Options: []SlotOption{{Name: "Depart"}}},
		},
		Logs: map[string]SlotLog{
			"d": {Attended: true, RecordedTime: "15:30"},
		},
	}
	view := Compose(in, DefaultWindow)

	missed := map[string]bool{}
	for _, e := range view.Entries {
		if e.Kind == KindSlot {
			missed[e.Slot.ID] = e.Missed
		}
	}
	assert.False(t, missed["a"], "14:30 is before the 15:30 departure")
	assert.True(t, missed["b"], "15:30 nominal is at the recorded departure")
	assert.False(t, missed["d"])
}

func TestComposeNoMissedWithoutRecordedDeparture(t *testing.T) {
	in := Input{
		Date:  weekday,
		Slots: mondaySlots(),
		Logs: map[string]SlotLog{
			"m8": {Attended: true}, // attended but no recorded time
		},
	}
	view := Compose(in, DefaultWindow)
	for _, e := range view.Entries {
		assert.False(t, e.Missed)
	}
}

func TestComposeWindowBlocksCarvedOut(t *testing.T) {
	in := Input{
		Date: weekday,
		Blocks: []Block{
			{ID: "blk-out", Title: "Morning errand", TimeStart: "10:00", TimeEnd: "11:00"},
			{ID: "blk-in", Title: "Walk", TimeStart: "16:40", TimeEnd: "17:00"},
			{ID: "blk-edge", Title: "Late dinner out", TimeStart: "20:30", TimeEnd: "21:30"},
		},
	}
	view := Compose(in, DefaultWindow)

	ids := entryIDs(view.Entries)
	assert.Contains(t, ids, "blk-out")
	assert.NotContains(t, ids, "blk-in")
	assert.NotContains(t, ids, "blk-edge")

	require.Len(t, view.WindowBlocks, 2)
	assert.Equal(t, "blk-in", view.WindowBlocks[0].ID)
	assert.Equal(t, "blk-edge", view.WindowBlocks[1].ID)

	assert.Equal(t, []Interval{
		{Start: 960, End: 1000},
		{Start: 1020, End: 1230},
	}, view.FreeSegments)
	assert.False(t, view.FullyScheduled)
}

func TestComposeFullyScheduled(t *testing.T) {
	in := Input{
		Date: weekday,
		Blocks: []Block{
			{ID: "blk", Title: "All evening", TimeStart: "15:00", TimeEnd: "22:00"},
		},
	}
	view := Compose(in, DefaultWindow)
	assert.True(t, view.FullyScheduled)
	assert.Empty(t, view.FreeSegments)
	assert.Equal(t, "4:00 PM–9:00 PM (all scheduled)", view.FreeTimeDisplay)
}

func TestComposeStableOnTies(t *testing.T) {
	in := Input{
		Date: weekday,
		Meals: []Meal{
			{ID: "meal-a", Type: "snack", Time: "10:00"},
			{ID: "meal-b", Type: "snack", Time: "10:00"},
		},
	}
	view := Compose(in, DefaultWindow)
	ids := entryIDs(view.Entries)
	assert.Equal(t, []string{"take-meds", "wakeup", "meal-a", "meal-b", "bedtime"}, ids)
}

func TestMealIntervalDefaultsToOneHour(t *testing.T) {
	m := Meal{Time: "18:30"}
	assert.Equal(t, Interval{Start: 1110, End: 1170}, m.Interval())

	m.TimeEnd = "19:00"
	assert.Equal(t, Interval{Start: 1110, End: 1140}, m.Interval())
}
