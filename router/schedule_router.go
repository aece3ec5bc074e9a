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
	"github.com/conformo/conformo/internal/accesscontrol"
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/core/schedule"
	"github.com/labstack/echo/v4"
)

type ScheduleRouter struct {
	*echo.Group
}

func NewScheduleRouter(tenantRouter TenantRouter, scheduleController *schedule.HTTPController) ScheduleRouter {
	registerCRUD(tenantRouter.Group, "initiatives", "initiativeID", scheduleController, accesscontrol.ObjectInitiative)
	tenantRouter.GET("/initiatives/:initiativeID/schedule/", scheduleController.ListActivities, core.AccessControlMiddleware(accesscontrol.ObjectInitiative, accesscontrol.ActionRead))
	tenantRouter.POST("/initiatives/:initiativeID/schedule/", scheduleController.CreateActivity, core.AccessControlMiddleware(accesscontrol.ObjectInitiative, accesscontrol.ActionCreate))
	tenantRouter.PATCH("/initiatives/:initiativeID/schedule/:activityID/", scheduleController.PatchActivity, core.AccessControlMiddleware(accesscontrol.ObjectInitiative, accesscontrol.ActionUpdate))
	tenantRouter.DELETE("/initiatives/:initiativeID/schedule/:activityID/", scheduleController.DeleteActivity, core.AccessControlMiddleware(accesscontrol.ObjectInitiative, accesscontrol.ActionDelete))
	return ScheduleRouter{Group: tenantRouter.Group}
}
