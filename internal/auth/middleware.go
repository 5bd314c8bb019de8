package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const HeaderAuthorization = "Authorization"

// Middleware guards write endpoints with a single static API token. The
// journal is a single-user deployment; there are no accounts or sessions.
type Middleware struct {
	tokenHash [sha256.Size]byte
	enabled   bool
}

// NewMiddleware creates a middleware for the configured token. An empty
// token disables the guard entirely (local, trusted deployments).
func NewMiddleware(token string) *Middleware {
	m := &Middleware{}
	if token != "" {
		m.tokenHash = sha256.Sum256([]byte(token))
		m.enabled = true
	}
	return m
}

// RequireToken returns a middleware that validates the bearer token
func (m *Middleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		// 1. Extract Authorization header
		authHeader := c.GetHeader(HeaderAuthorization)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing authorization header",
			})
			return
		}

		// 2. Parse Bearer token
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid authorization header format",
			})
			return
		}

		// 3. Constant-time compare against the configured token
		got := sha256.Sum256([]byte(parts[1]))
		if subtle.ConstantTimeCompare(got[:], m.tokenHash[:]) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid token",
			})
			return
		}

		c.Next()
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
