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

package core

import (
	"slices"

	"github.com/conformo/conformo/internal/accesscontrol"
	"github.com/labstack/echo/v4"
)

func AccessControlMiddleware(obj accesscontrol.Object, act accesscontrol.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// get the rbac
			rbac := GetRBAC(c)

			// get the user
			user := GetSession(c).GetUserID()

			allowed, err := rbac.IsAllowed(user, obj, act)
			if err != nil {
				return echo.NewHTTPError(500, "could not determine if the user has access")
			}

			// check if the user has the required role
			if !allowed {
				return echo.NewHTTPError(403, "forbidden")
			}

			return next(c)
		}
	}
}

// NeededScope rejects tokens which were not issued with all of the listed
// scopes. Session cookies are never scoped, so this only bites PATs.
func NeededScope(scopes []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := GetSession(c)
			for _, scope := range scopes {
				if !slices.Contains(session.GetScopes(), scope) {
					return echo.NewHTTPError(403, "token is missing the required scope: "+scope)
				}
			}
			return next(c)
		}
	}
}

// LoggedInMiddleware blocks anonymous requests. The session middleware lets
// them pass with an empty session so public routes keep working.
func LoggedInMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := GetSession(c)
			if session.GetUserID() == "" {
				return echo.NewHTTPError(401, "could not get session")
			}
			return next(c)
		}
	}
}
