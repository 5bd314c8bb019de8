package program

import (
	"daybook/internal/auth"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, authMiddleware *auth.Middleware) {
	program := rg.Group("/program")
	{
		program.GET("/day", h.GetDay)

		writes := program.Group("")
		writes.Use(authMiddleware.RequireToken())
		{
			writes.PUT("/logs", h.PutLog)
			writes.PUT("/reflection", h.PutReflection)
			writes.POST("/tea/increment", h.PostTeaIncrement)
			writes.POST("/tea/decrement", h.PostTeaDecrement)
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
