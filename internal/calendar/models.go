package calendar

// Event is the trimmed view of an external calendar event the journal
// cares about: an id for de-duplication, a title, and day-local times.
type Event struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	TimeStart string `json:"timeStart"`
	TimeEnd   string `json:"timeEnd"`
}

// EventsRequest is the request body for the events proxy endpoint
type EventsRequest struct {
	AccessToken string `json:"accessToken" binding:"required"`
	Date        string `json:"date" binding:"required"`
}

// ExchangeRequest is the request body for the code exchange endpoint
type ExchangeRequest struct {
	Code string `json:"code" binding:"required"`
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
