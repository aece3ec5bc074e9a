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

// Package actionplan implements GUT prioritized action plans, their
// categories and the activities rolling up into the plan completion.
package actionplan

import (
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/core/crud"
	"github.com/conformo/conformo/internal/database"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/database/repositories"
	"github.com/conformo/conformo/internal/utils"
	"github.com/labstack/echo/v4"
)

type HTTPController struct {
	Categories *crud.Controller[models.ActionPlanCategory, categoryCreateRequest, categoryPatchRequest]
	Plans      *crud.Controller[models.ActionPlan, planCreateRequest, planPatchRequest]

	planRepository     *repositories.ActionPlanRepository
	activityRepository *repositories.ActionPlanActivityRepository
	service            *Service
}

func NewHTTPController(db core.DB) *HTTPController {
	planRepository := repositories.NewActionPlanRepository(db)
	activityRepository := repositories.NewActionPlanActivityRepository(db)

	return &HTTPController{
		Categories: crud.NewController[models.ActionPlanCategory, categoryCreateRequest, categoryPatchRequest](
			repositories.NewTenantScopedRepository[models.ActionPlanCategory](db, "name ASC", "name"), "categoryID"),
		Plans:              crud.NewController[models.ActionPlan, planCreateRequest, planPatchRequest](planRepository.TenantScopedRepository, "planID"),
		planRepository:     planRepository,
		activityRepository: activityRepository,
		service:            NewService(planRepository, activityRepository),
	}
}

// ListPlans adds the derived GUT score to every row.
func (ctl *HTTPController) ListPlans(c core.Context) error {
	tenant := core.GetTenant(c)

	paged, err := ctl.planRepository.ListPaged(
		tenant.GetID(),
		core.GetPageInfo(c),
		c.QueryParam("search"),
		core.GetFilterQuery(c),
		core.GetSortQuery(c),
	)
	if err != nil {
		return echo.NewHTTPError(500, "could not list action plans").WithInternal(err)
	}

	return c.JSON(200, core.NewPaged(paged.PageInfo, paged.Total, utils.Map(paged.Data, toPlanDTO)))
}

func (ctl *HTTPController) ReadPlan(c core.Context) error {
	planID, err := core.GetUUIDParam(c, "planID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)
	plan, err := ctl.planRepository.ReadWithActivities(tenant.GetID(), planID)
	if err != nil {
		return echo.NewHTTPError(404, "action plan not found").WithInternal(err)
	}

	return c.JSON(200, toPlanDTO(plan))
}

func (ctl *HTTPController) CreateActivity(c core.Context) error {
	planID, err := core.GetUUIDParam(c, "planID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	var req activityCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)

	// the plan must exist inside the tenant
	if _, err := ctl.planRepository.ReadByTenant(tenant.GetID(), planID); err != nil {
		return echo.NewHTTPError(404, "action plan not found").WithInternal(err)
	}

	activity := req.toModel(tenant.GetID(), planID)
	if err := ctl.service.CreateActivity(tenant.GetID(), &activity); err != nil {
		if database.IsForeignKeyError(err) {
			return echo.NewHTTPError(400, "action plan does not exist").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create activity").WithInternal(err)
	}

	return c.JSON(201, activity)
}

func (ctl *HTTPController) PatchActivity(c core.Context) error {
	activityID, err := core.GetUUIDParam(c, "activityID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	var req activityPatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)
	activity, err := ctl.activityRepository.ReadByTenant(tenant.GetID(), activityID)
	if err != nil {
		return echo.NewHTTPError(404, "activity not found").WithInternal(err)
	}

	if !req.applyToModel(&activity) {
		return c.JSON(200, activity)
	}

	if err := ctl.service.UpdateActivity(tenant.GetID(), &activity); err != nil {
		return echo.NewHTTPError(500, "could not update activity").WithInternal(err)
	}

	return c.JSON(200, activity)
}

func (ctl *HTTPController) DeleteActivity(c core.Context) error {
	activityID, err := core.GetUUIDParam(c, "activityID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)
	activity, err := ctl.activityRepository.ReadByTenant(tenant.GetID(), activityID)
	if err != nil {
		return echo.NewHTTPError(404, "activity not found").WithInternal(err)
	}

	if err := ctl.service.DeleteActivity(tenant.GetID(), activity); err != nil {
		return echo.NewHTTPError(500, "could not delete activity").WithInternal(err)
	}

	return c.NoContent(200)
}
