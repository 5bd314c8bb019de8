package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const defaultAPIBaseURL = "https://www.googleapis.com/calendar/v3"

// ProviderConfig holds the credentials for the Google OAuth provider
type ProviderConfig struct {
	ClientID     string
	ClientSecret string
}

// Service fetches a day's events from the Google Calendar API on behalf
// of a user-supplied access token. The journal never stores the token.
type Service struct {
	oauth      *oauth2.Config
	calendarID string
	baseURL    string
	client     *http.Client
}

// NewService creates a calendar service. The OAuth config is nil when no
// client credentials are configured; event fetching still works since the
// browser supplies its own access token.
func NewService(cfg ProviderConfig, callbackBaseURL, calendarID string) *Service {
	s := &Service{
		calendarID: calendarID,
		baseURL:    defaultAPIBaseURL,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
	if cfg.ClientID != "" && cfg.ClientSecret != "" {
		s.oauth = &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  callbackBaseURL + "/api/calendar/callback",
			Scopes: []string{
				"https://www.googleapis.com/auth/calendar.readonly",
			},
			Endpoint: google.Endpoint,
		}
	}
	return s
}

// SetBaseURL points the service at a different API host. Used to stub
// the provider in tests; an empty value keeps the default.
func (s *Service) SetBaseURL(baseURL string) {
	if baseURL != "" {
		s.baseURL = baseURL
	}
}

// GetAuthURL returns the OAuth authorization URL for the calendar scope
func (s *Service) GetAuthURL(state string) (string, error) {
	if s.oauth == nil {
		return "", fmt.Errorf("google OAuth not configured")
	}
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

// ExchangeCode exchanges an authorization code for tokens
func (s *Service) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	if s.oauth == nil {
		return nil, fmt.Errorf("google OAuth not configured")
	}
	return s.oauth.Exchange(ctx, code)
}

// googleEventTime is one end of a Google Calendar event: timed events
// carry dateTime, all-day events carry date.
type googleEventTime struct {
	DateTime string `json:"dateTime"`
	Date     string `json:"date"`
}

type googleEvent struct {
	ID      string           `json:"id"`
	Summary string           `json:"summary"`
	Status  string           `json:"status"`
	Start   *googleEventTime `json:"start"`
	End     *googleEventTime `json:"end"`
}

type googleEventList struct {
	Items []googleEvent `json:"items"`
}

// FetchDayEvents returns the date's events, excluding cancelled events and
// events missing both a timed and an all-day start. Upstream errors are
// returned with the raw response text so the caller can surface them.
func (s *Service) FetchDayEvents(ctx context.Context, accessToken, date string) ([]Event, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	timeMin := day.Format(time.RFC3339)
	timeMax := day.Add(24*time.Hour - time.Second).Format(time.RFC3339)

	u := fmt.Sprintf("%s/calendars/%s/events", s.baseURL, url.PathEscape(s.calendarID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("timeMin", timeMin)
	q.Set("timeMax", timeMax)
	q.Set("singleEvents", "true")
	q.Set("orderBy", "startTime")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("calendar API error (%d): %s", resp.StatusCode, string(body))
	}

	var list googleEventList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, err
	}

	events := []Event{}
	for _, item := range list.Items {
		if item.Status == "cancelled" {
			continue
		}
		timeStart, ok := eventClock(item.Start)
		if !ok {
			continue
		}
		timeEnd, ok := eventClock(item.End)
		if !ok {
			continue
		}
		title := item.Summary
		if title == "" {
			title = "(No title)"
		}
		events = append(events, Event{
			ID:        item.ID,
			Title:     title,
			TimeStart: timeStart,
			TimeEnd:   timeEnd,
		})
	}
	return events, nil
}

// eventClock converts one end of an event to a day-local "HH:MM" value.
// All-day events resolve to midnight.
func eventClock(t *googleEventTime) (string, bool) {
	if t == nil {
		return "", false
	}
	if t.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, t.DateTime)
		if err != nil {
			return "", false
		}
		return parsed.Format("15:04"), true
	}
	if t.Date != "" {
		if _, err := time.Parse("2006-01-02", t.Date); err != nil {
			return "", false
		}
		return "00:00", true
	}
	return "", false
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
