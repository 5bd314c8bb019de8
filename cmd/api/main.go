package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"daybook/internal/auth"
	"daybook/internal/calendar"
	"daybook/internal/clock"
	"daybook/internal/common"
	"daybook/internal/env"
	"daybook/internal/timeline"
	"daybook/internal/v0/day"
	"daybook/internal/v0/program"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Journal database
	db, err := sql.Open("sqlite3", env.GetEnv(env.EnvDatabasePath, "./internal/databases/daybook.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Enable WAL mode (better concurrent performance)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		log.Printf("Warning: Failed to enable WAL mode: %v", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		log.Printf("Warning: Failed to enable foreign keys: %v", err)
	}

	// Free-time window
	window := timeline.Window{
		Start: clock.ParseClock(env.GetEnv(env.EnvFreeTimeStart, "16:00")),
		End:   clock.ParseClock(env.GetEnv(env.EnvFreeTimeEnd, "21:00")),
	}

	// Calendar service
	calendarService := calendar.NewService(
		calendar.ProviderConfig{
			ClientID:     env.GetEnv(env.EnvGoogleClientID, ""),
			ClientSecret: env.GetEnv(env.EnvGoogleClientSecret, ""),
		},
		env.GetEnv(env.EnvAuthCallbackBaseURL, "http://localhost:9340"),
		env.GetEnv(env.EnvCalendarID, "primary"),
	)
	calendarHandler := calendar.NewHandler(calendarService)

	// Repositories and handlers
	programRepo := program.NewRepository(db)
	programHandler := program.NewHandler(programRepo)
	dayRepo := day.NewRepository(db)
	dayHandler := day.NewHandler(dayRepo, programRepo, calendarService, window)

	authMiddleware := auth.NewMiddleware(env.GetEnv(env.EnvAPIToken, ""))

	router := gin.Default()

	// Global routes
	global := router.Group("/api")
	common.RegisterRoutes(global)

	// Calendar proxy routes
	calendar.RegisterRoutes(global, calendarHandler)

	// v0 API routes
	v0Group := router.Group("/api/v0")
	{
		day.RegisterRoutes(v0Group, dayHandler, authMiddleware)
		program.RegisterRoutes(v0Group, programHandler, authMiddleware)
	}

	// Graceful shutdown handling
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")
		os.Exit(0)
	}()

	err = router.Run(fmt.Sprintf(":%d", env.GetInt(env.EnvPort, 9340)))
	if err != nil {
		log.Fatal(err)
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
