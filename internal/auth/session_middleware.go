// Copyright (C) 2025 the conformo authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package auth

import (
	"strings"

	"github.com/conformo/conformo/internal/database/models"
	"github.com/labstack/echo/v4"
)

type patVerifier interface {
	ReadByToken(token string) (models.PAT, error)
}

func extractBearer(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		// fallback for clients which cannot set the Authorization header
		return c.Request().Header.Get("X-Api-Key")
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return token
}

// SessionMiddleware resolves the bearer token to a session. Requests without
// a valid token still pass through with NoSession - route level middleware
// decides whether anonymous access is acceptable.
func SessionMiddleware(patRepository patVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearer(c)
			if token == "" {
				c.Set("session", NoSession)
				return next(c)
			}

			pat, err := patRepository.ReadByToken(token)
			if err != nil {
				c.Set("session", NoSession)
				return next(c)
			}

			c.Set("session", NewSession(pat.UserID.String(), pat.ScopeList()))
			return next(c)
		}
	}
}
