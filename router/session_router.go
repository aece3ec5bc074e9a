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

package router

import (
	"github.com/conformo/conformo/internal/auth"
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/core/profile"
	"github.com/conformo/conformo/internal/core/tenant"
	"github.com/conformo/conformo/internal/database/repositories"
	"github.com/labstack/echo/v4"
)

type SessionRouter struct {
	*echo.Group
}

// NewSessionRouter attaches the session middleware. Everything registered
// below carries a session, possibly the empty one.
func NewSessionRouter(
	apiV1Router APIV1Router,
	patRepository *repositories.PATRepository,
	profileController *profile.HTTPController,
	tenantController *tenant.HTTPController,
) SessionRouter {
	sessionRouter := apiV1Router.Group.Group("", auth.SessionMiddleware(patRepository))

	sessionRouter.GET("/whoami/", profileController.CurrentUser, core.LoggedInMiddleware())

	sessionRouter.POST("/tenants/", tenantController.Create, core.LoggedInMiddleware(), core.NeededScope([]string{"manage"}))
	sessionRouter.GET("/tenants/", tenantController.List, core.LoggedInMiddleware())

	return SessionRouter{Group: sessionRouter}
}
