package calendar

import (
	"net/http"

	"daybook/internal/v0/common"

	"github.com/gin-gonic/gin"
)

// Handler initialization that holds the calendar service so we can reach the provider
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PostEvents proxies a day's events from the external calendar. The access
// token comes from the client and is never persisted.
func (h *Handler) PostEvents(c *gin.Context) {
	var req EventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	events, err := h.service.FetchDayEvents(c.Request.Context(), req.AccessToken, req.Date)
	if err != nil {
		c.JSON(http.StatusBadGateway, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(events))
}

func (h *Handler) GetAuthURL(c *gin.Context) {
	url, err := h.service.GetAuthURL(c.Query("state"))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(gin.H{"url": url}))
}

func (h *Handler) PostExchange(c *gin.Context) {
	var req ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	token, err := h.service.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		c.JSON(http.StatusBadGateway, common.CreateErrorResponse([]string{err.Error()}))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse(gin.H{
		"accessToken":  token.AccessToken,
		"refreshToken": token.RefreshToken,
		"expiry":       token.Expiry,
	}))
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
