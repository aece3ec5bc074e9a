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
	"github.com/conformo/conformo/cmd/conformo/api"
	"github.com/conformo/conformo/internal/core/profile"
	"github.com/labstack/echo/v4"
)

type APIV1Router struct {
	*echo.Group
}

func health(c echo.Context) error {
	return c.String(200, "ok")
}

func NewAPIV1Router(srv api.Server, profileController *profile.HTTPController) APIV1Router {
	apiV1Router := srv.Echo.Group("/api/v1")
	apiV1Router.GET("/health/", health)
	apiV1Router.POST("/auth/login/", profileController.Login)
	return APIV1Router{Group: apiV1Router}
}
