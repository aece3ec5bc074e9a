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
	"github.com/conformo/conformo/internal/core/actionplan"
	"github.com/labstack/echo/v4"
)

type ActionPlanRouter struct {
	*echo.Group
}

func NewActionPlanRouter(tenantRouter TenantRouter, actionPlanController *actionplan.HTTPController) ActionPlanRouter {
	registerCRUD(tenantRouter.Group, "action-plan-categories", "categoryID", actionPlanController.Categories, accesscontrol.ObjectActionPlan)
	tenantRouter.GET("/action-plans/", actionPlanController.ListPlans, core.AccessControlMiddleware(accesscontrol.ObjectActionPlan, accesscontrol.ActionRead))
	tenantRouter.POST("/action-plans/", actionPlanController.Plans.Create, core.AccessControlMiddleware(accesscontrol.ObjectActionPlan, accesscontrol.ActionCreate))
	tenantRouter.GET("/action-plans/:planID/", actionPlanController.ReadPlan, core.AccessControlMiddleware(accesscontrol.ObjectActionPlan, accesscontrol.ActionRead))
	tenantRouter.PATCH("/action-plans/:planID/", actionPlanController.Plans.Patch, core.AccessControlMiddleware(accesscontrol.ObjectActionPlan, accesscontrol.ActionUpdate))
	tenantRouter.DELETE("/action-plans/:planID/", actionPlanController.Plans.Delete, core.AccessControlMiddleware(accesscontrol.ObjectActionPlan, accesscontrol.ActionDelete))
	tenantRouter.POST("/action-plans/:planID/activities/", actionPlanController.CreateActivity, core.AccessControlMiddleware(accesscontrol.ObjectActionPlan, accesscontrol.ActionUpdate))
	tenantRouter.PATCH("/action-plans/:planID/activities/:activityID/", actionPlanController.PatchActivity, core.AccessControlMiddleware(accesscontrol.ObjectActionPlan, accesscontrol.ActionUpdate))
	tenantRouter.DELETE("/action-plans/:planID/activities/:activityID/", actionPlanController.DeleteActivity, core.AccessControlMiddleware(accesscontrol.ObjectActionPlan, accesscontrol.ActionUpdate))
	return ActionPlanRouter{Group: tenantRouter.Group}
}
