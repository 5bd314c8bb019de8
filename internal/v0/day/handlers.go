package day

import (
	"log"
	"net/http"
	"time"

	"daybook/internal/calendar"
	"daybook/internal/timeline"
	"daybook/internal/v0/common"
	"daybook/internal/v0/program"

	"github.com/gin-gonic/gin"
)

// Handler initialization that holds the Repository database connection so we can save the data
type Handler struct {
	repo        *Repository
	programRepo *program.Repository
	calendars   *calendar.Service
	window      timeline.Window
}

func NewHandler(repo *Repository, programRepo *program.Repository, calendars *calendar.Service, window timeline.Window) *Handler {
	return &Handler{repo: repo, programRepo: programRepo, calendars: calendars, window: window}
}

type todayRequest struct {
	Date string `json:"date"`
}

// PostToday returns the entry for the date (default: today), creating it
// on first touch.
func (h *Handler) PostToday(c *gin.Context) {
	var req todayRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
			return
		}
	}
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	entry, err := h.repo.CreateOrGet(date)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(entry))
}

// GetEntries lists the journal history, newest first. ?date=YYYY-MM-DD
// returns the single entry for that date; ?full=true returns complete
// entries with meals and blocks instead of overviews.
func (h *Handler) GetEntries(c *gin.Context) {
	if dateParameter := c.Query("date"); dateParameter != "" {
		if _, err := time.Parse("2006-01-02", dateParameter); err != nil {
			c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid date format. Please use YYYY-MM-DD"}))
			return
		}
		entry, err := h.repo.GetByDate(dateParameter)
		h.respondEntry(c, entry, err)
		return
	}

	if c.Query("full") == "true" {
		entries, err := h.repo.ListFull()
		if err != nil {
			c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
			return
		}
		for i := range entries {
			entries[i].Meals = SortMealsByTime(entries[i].Meals)
		}
		c.JSON(http.StatusOK, common.CreateSuccessResponse(entries))
		return
	}

	overviews, err := h.repo.ListOverviews()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(overviews))
}

func (h *Handler) GetEntry(c *gin.Context) {
	entry, err := h.repo.GetByID(c.Param("id"))
	h.respondEntry(c, entry, err)
}

func (h *Handler) respondEntry(c *gin.Context, entry *Entry, err error) {
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, common.CreateErrorResponse([]string{"entry not found"}))
		return
	}
	entry.Meals = SortMealsByTime(entry.Meals)
	c.JSON(http.StatusOK, common.CreateSuccessResponse(entry))
}

// PatchEntry applies a partial update; omitted fields stay as they are
func (h *Handler) PatchEntry(c *gin.Context) {
	var req UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	entry, err := h.repo.UpdateEntry(c.Param("id"), req)
	h.respondEntry(c, entry, err)
}

// Meals

func (h *Handler) PostMeal(c *gin.Context) {
	entry, ok := h.requireEntry(c)
	if !ok {
		return
	}
	var req MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	meal, err := h.repo.AddMeal(entry.ID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	c.JSON(http.StatusCreated, common.CreateSuccessResponse(meal))
}

func (h *Handler) PutMeal(c *gin.Context) {
	var req MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	meal, err := h.repo.UpdateMeal(c.Param("id"), c.Param("mealId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	if meal == nil {
		c.JSON(http.StatusNotFound, common.CreateErrorResponse([]string{"meal not found"}))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(meal))
}

func (h *Handler) DeleteMeal(c *gin.Context) {
	if err := h.repo.RemoveMeal(c.Param("id"), c.Param("mealId")); err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

// Blocks

func (h *Handler) PostBlock(c *gin.Context) {
	entry, ok := h.requireEntry(c)
	if !ok {
		return
	}
	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	block, err := h.repo.AddBlock(entry.ID, Block{
		Title:     req.Title,
		Notes:     req.Notes,
		TimeStart: req.TimeStart,
		TimeEnd:   req.TimeEnd,
		Source:    BlockSourceManual,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	c.JSON(http.StatusCreated, common.CreateSuccessResponse(block))
}

func (h *Handler) PutBlock(c *gin.Context) {
	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	block, err := h.repo.UpdateBlock(c.Param("id"), c.Param("blockId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	if block == nil {
		c.JSON(http.StatusNotFound, common.CreateErrorResponse([]string{"block not found"}))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(block))
}

func (h *Handler) DeleteBlock(c *gin.Context) {
	if err := h.repo.RemoveBlock(c.Param("id"), c.Param("blockId")); err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

// GetTimeline composes the entry's day view: program slots with their
// logs, meals, blocks and anchors merged into one ordered timeline plus
// the free-time picture.
func (h *Handler) GetTimeline(c *gin.Context) {
	entry, ok := h.requireEntry(c)
	if !ok {
		return
	}
	date, err := time.Parse("2006-01-02", entry.Date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	slots, err := h.programRepo.GetSlotsForWeekday(date.Weekday())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	logs, err := h.programRepo.GetLogs(entry.Date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
		return
	}

	view := timeline.Compose(timeline.Input{
		Date:   date,
		Slots:  timelineSlots(slots),
		Logs:   timelineLogs(logs),
		Meals:  timelineMeals(entry.Meals),
		Blocks: timelineBlocks(entry.ScheduleBlocks),
	}, h.window)
	c.JSON(http.StatusOK, common.CreateSuccessResponse(view))
}

// PostCalendarSync imports the entry date's calendar events as blocks.
// Events already imported (same calendar event id) are skipped; an
// upstream failure changes nothing.
func (h *Handler) PostCalendarSync(c *gin.Context) {
	entry, ok := h.requireEntry(c)
	if !ok {
		return
	}
	var req SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}

	events, err := h.calendars.FetchDayEvents(c.Request.Context(), req.AccessToken, entry.Date)
	if err != nil {
		c.JSON(http.StatusBadGateway, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	known, err := h.repo.CalendarEventIDs(entry.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
		return
	}

	imported := []Block{}
	for _, event := range events {
		if known[event.ID] {
			continue
		}
		block, err := h.repo.AddBlock(entry.ID, Block{
			Title:           event.Title,
			TimeStart:       event.TimeStart,
			TimeEnd:         event.TimeEnd,
			Source:          BlockSourceCalendar,
			CalendarEventID: event.ID,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
			return
		}
		imported = append(imported, *block)
	}
	log.Printf("calendar sync for %s: %d events, %d imported", entry.Date, len(events), len(imported))
	c.JSON(http.StatusOK, common.CreateSuccessResponse(gin.H{
		"imported": imported,
		"skipped":  len(events) - len(imported),
	}))
}

func (h *Handler) requireEntry(c *gin.Context) (*Entry, bool) {
	entry, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
		return nil, false
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, common.CreateErrorResponse([]string{"entry not found"}))
		return nil, false
	}
	return entry, true
}

// Mapping to the timeline package's source shapes

func timelineSlots(slots []program.Slot) []timeline.Slot {
	out := make([]timeline.Slot, len(slots))
	for i, s := range slots {
		options := make([]timeline.SlotOption, len(s.Options))
		for j, o := range s.Options {
			options[j] = timeline.SlotOption{Name: o.Name, Location: o.Location}
		}
		out[i] = timeline.Slot{ID: s.ID, TimeLabel: s.Time, Options: options, IsBreak: s.IsBreak}
	}
	return out
}

func timelineLogs(logs map[string]program.SlotLog) map[string]timeline.SlotLog {
	out := make(map[string]timeline.SlotLog, len(logs))
	for id, l := range logs {
		out[id] = timeline.SlotLog{
			Attended:          l.Attended,
			ChosenOptionIndex: l.ChosenOptionIndex,
			Notes:             l.Notes,
			RecordedTime:      l.RecordedTime,
		}
	}
	return out
}

func timelineMeals(meals []Meal) []timeline.Meal {
	out := make([]timeline.Meal, len(meals))
	for i, m := range meals {
		out[i] = timeline.Meal{
			ID:      m.ID,
			Type:    stringValue(m.MealType),
			Time:    stringValue(m.MealTime),
			TimeEnd: stringValue(m.MealTimeEnd),
			Summary: m.WhatIAte,
		}
	}
	return out
}

func timelineBlocks(blocks []Block) []timeline.Block {
	out := make([]timeline.Block, len(blocks))
	for i, b := range blocks {
		out[i] = timeline.Block{
			ID:        b.ID,
			Title:     b.Title,
			Notes:     b.Notes,
			TimeStart: b.TimeStart,
			TimeEnd:   b.TimeEnd,
			Source:    b.Source,
		}
	}
	return out
}

func stringValue(v *string) string {
	if v == nil {
		return ""
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
