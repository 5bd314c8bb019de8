package day

import (
	"daybook/internal/auth"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, authMiddleware *auth.Middleware) {
	days := rg.Group("/days")
	{
		days.GET("", h.GetEntries)
		days.GET("/:id", h.GetEntry)
		days.GET("/:id/timeline", h.GetTimeline)

		writes := days.Group("")
		writes.Use(authMiddleware.RequireToken())
		{
			writes.POST("/today", h.PostToday)
			writes.PATCH("/:id", h.PatchEntry)

			writes.POST("/:id/meals", h.PostMeal)
			writes.PUT("/:id/meals/:mealId", h.PutMeal)
			writes.DELETE("/:id/meals/:mealId", h.DeleteMeal)

			writes.POST("/:id/blocks", h.PostBlock)
			writes.PUT("/:id/blocks/:blockId", h.PutBlock)
			writes.DELETE("/:id/blocks/:blockId", h.DeleteBlock)

			writes.POST("/:id/calendar-sync", h.PostCalendarSync)
		}
	}
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
