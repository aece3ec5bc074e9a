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
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/core/pat"
	"github.com/labstack/echo/v4"
)

type PatRouter struct {
	*echo.Group
}

func NewPatRouter(sessionRouter SessionRouter, patController *pat.HTTPController) PatRouter {
	patRouter := sessionRouter.Group.Group("/pats", core.LoggedInMiddleware())
	patRouter.POST("/", patController.Create, core.NeededScope([]string{"manage"}))
	patRouter.GET("/", patController.List)
	patRouter.DELETE("/:tokenID/", patController.Delete, core.NeededScope([]string{"manage"}))
	return PatRouter{Group: patRouter}
}
