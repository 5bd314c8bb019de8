package program

import (
	"net/http"
	"time"

	"daybook/internal/v0/common"

	"github.com/gin-gonic/gin"
)

// Handler initialization that holds the Repository database connection so we can save the data
type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// GetDay returns the timetable for a date together with its logs
func (h *Handler) GetDay(c *gin.Context) {
	dateParameter := c.Query("date")
	parsedTime, err := time.Parse("2006-01-02", dateParameter)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{"Invalid date format. Please use YYYY-MM-DD"}))
		return
	}

	slots, err := h.repo.GetSlotsForWeekday(parsedTime.Weekday())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	logs, err := h.repo.GetLogs(dateParameter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	dayLog, err := h.repo.GetDayLog(dateParameter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
		return
	}

	view := DayView{
		Date:       dateParameter,
		Slots:      slots,
		Logs:       logs,
		Reflection: dayLog.Reflection,
		CupsOfTea:  dayLog.CupsOfTea,
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(view))
}

func (h *Handler) PutLog(c *gin.Context) {
	var req UpsertLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	l := SlotLog{
		SlotID:            req.SlotID,
		Attended:          req.Attended,
		ChosenOptionIndex: req.ChosenOptionIndex,
		Notes:             req.Notes,
		RecordedTime:      req.RecordedTime,
	}
	if err := h.repo.UpsertLog(req.Date, l); err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

func (h *Handler) PutReflection(c *gin.Context) {
	var req ReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	if err := h.repo.SaveReflection(req.Date, req.Reflection); err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(nil))
}

func (h *Handler) PostTeaIncrement(c *gin.Context) {
	h.adjustTea(c, h.repo.IncrementTea)
}

func (h *Handler) PostTeaDecrement(c *gin.Context) {
	h.adjustTea(c, h.repo.DecrementTea)
}

func (h *Handler) adjustTea(c *gin.Context, adjust func(string) (int, error)) {
	var req TeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	count, err := adjust(req.Date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(gin.H{"cupsOfTea": count}))
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
