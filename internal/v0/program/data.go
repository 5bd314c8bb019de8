package program

import (
	"database/sql"
	"time"
)

type Repository struct {
	db *sql.DB
}

// NewRepository creates a new program repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetSlotsForWeekday returns the timetable template for a weekday in
// seeded order. Weekends have no slots and return an empty list.
func (r *Repository) GetSlotsForWeekday(weekday time.Weekday) ([]Slot, error) {
	slots := []Slot{}

	rows, err := r.db.Query(`
		SELECT id, time_label, is_break FROM program_slots
		WHERE weekday = ? ORDER BY position`,
		int(weekday),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s Slot
		if err := rows.Scan(&s.ID, &s.Time, &s.IsBreak); err != nil {
			return nil, err
		}
		s.Options = []Option{}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range slots {
		opts, err := r.getSlotOptions(slots[i].ID)
		if err != nil {
			return nil, err
		}
		slots[i].Options = opts
	}
	return slots, nil
}

func (r *Repository) getSlotOptions(slotID string) ([]Option, error) {
	options := []Option{}

	rows, err := r.db.Query(`
		SELECT name, location FROM program_slot_options
		WHERE slot_id = ? ORDER BY position`,
		slotID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o Option
		if err := rows.Scan(&o.Name, &o.Location); err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return options, rows.Err()
}

// GetLogs returns the date's attendance logs keyed by slot id
func (r *Repository) GetLogs(date string) (map[string]SlotLog, error) {
	logs := map[string]SlotLog{}

	rows, err := r.db.Query(`
		SELECT slot_id, attended, chosen_option_index, notes, recorded_time
		FROM slot_logs WHERE date = ?`,
		date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var l SlotLog
		var chosen sql.NullInt64
		if err := rows.Scan(&l.SlotID, &l.Attended, &chosen, &l.Notes, &l.RecordedTime); err != nil {
			return nil, err
		}
		if chosen.Valid {
			idx := int(chosen.Int64)
			l.ChosenOptionIndex = &idx
		}
		logs[l.SlotID] = l
	}
	return logs, rows.Err()
}

// UpsertLog writes the attendance record for one slot on one date,
// replacing any previous record for the same slot.
func (r *Repository) UpsertLog(date string, l SlotLog) error {
	var chosen interface{}
	if l.ChosenOptionIndex != nil {
		chosen = *l.ChosenOptionIndex
	}
	_, err := r.db.Exec(`
		INSERT INTO slot_logs (date, slot_id, attended, chosen_option_index, notes, recorded_time)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(date, slot_id) DO UPDATE SET
			attended = excluded.attended,
			chosen_option_index = excluded.chosen_option_index,
			notes = excluded.notes,
			recorded_time = excluded.recorded_time`,
		date, l.SlotID, l.Attended, chosen, l.Notes, l.RecordedTime,
	)
	return err
}

// GetDayLog returns the day-level record, defaulting to an empty one
// when nothing has been saved for the date yet.
func (r *Repository) GetDayLog(date string) (DayLog, error) {
	l := DayLog{Date: date}
	err := r.db.QueryRow(
		"SELECT reflection, cups_of_tea FROM day_logs WHERE date = ?", date,
	).Scan(&l.Reflection, &l.CupsOfTea)
	if err == sql.ErrNoRows {
		return l, nil
	}
	return l, err
}

// SaveReflection sets the date's reflection text, preserving the tea count
func (r *Repository) SaveReflection(date, reflection string) error {
	_, err := r.db.Exec(`
		INSERT INTO day_logs (date, reflection, cups_of_tea) VALUES (?, ?, 0)
		ON CONFLICT(date) DO UPDATE SET reflection = excluded.reflection`,
		date, reflection,
	)
	return err
}

// IncrementTea bumps the date's tea counter and returns the new count
func (r *Repository) IncrementTea(date string) (int, error) {
	_, err := r.db.Exec(`
		INSERT INTO day_logs (date, reflection, cups_of_tea) VALUES (?, '', 1)
		ON CONFLICT(date) DO UPDATE SET cups_of_tea = cups_of_tea + 1`,
		date,
	)
	if err != nil {
		return 0, err
	}
	return r.teaCount(date)
}

// DecrementTea lowers the date's tea counter, never below zero
func (r *Repository) DecrementTea(date string) (int, error) {
	_, err := r.db.Exec(`
		INSERT INTO day_logs (date, reflection, cups_of_tea) VALUES (?, '', 0)
		ON CONFLICT(date) DO UPDATE SET cups_of_tea = MAX(0, cups_of_tea - 1)`,
		date,
	)
	if err != nil {
		return 0, err
	}
	return r.teaCount(date)
}

func (r *Repository) teaCount(date string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT cups_of_tea FROM day_logs WHERE date = ?", date).Scan(&count)
	return count, err
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
