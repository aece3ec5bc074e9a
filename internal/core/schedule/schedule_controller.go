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

// Package schedule tracks strategic initiatives and the schedule activities
// nested under them.
package schedule

import (
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/core/crud"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/database/repositories"
	"github.com/labstack/echo/v4"
)

type HTTPController struct {
	*crud.Controller[models.StrategicInitiative, initiativeCreateRequest, initiativePatchRequest]

	initiativeRepository *repositories.TenantScopedRepository[models.StrategicInitiative]
	activityRepository   *repositories.ScheduleActivityRepository
}

func NewHTTPController(db core.DB) *HTTPController {
	initiativeRepository := repositories.NewTenantScopedRepository[models.StrategicInitiative](db, "title ASC", "title", "owner")
	return &HTTPController{
		Controller: crud.NewController[models.StrategicInitiative, initiativeCreateRequest, initiativePatchRequest](
			initiativeRepository, "initiativeID"),
		initiativeRepository: initiativeRepository,
		activityRepository:   repositories.NewScheduleActivityRepository(db),
	}
}

func (ctl *HTTPController) ListActivities(c core.Context) error {
	initiativeID, err := core.GetUUIDParam(c, "initiativeID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)
	activities, err := ctl.activityRepository.ListByInitiative(tenant.GetID(), initiativeID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list schedule activities").WithInternal(err)
	}

	return c.JSON(200, activities)
}

func (ctl *HTTPController) CreateActivity(c core.Context) error {
	initiativeID, err := core.GetUUIDParam(c, "initiativeID")
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
	if _, err := ctl.initiativeRepository.ReadByTenant(tenant.GetID(), initiativeID); err != nil {
		return echo.NewHTTPError(404, "initiative not found").WithInternal(err)
	}

	activity := req.toModel(tenant.GetID(), initiativeID)
	if err := ctl.activityRepository.Create(nil, &activity); err != nil {
		return echo.NewHTTPError(500, "could not create schedule activity").WithInternal(err)
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
		return echo.NewHTTPError(404, "schedule activity not found").WithInternal(err)
	}

	if req.applyToModel(&activity) {
		if err := ctl.activityRepository.Save(nil, &activity); err != nil {
			return echo.NewHTTPError(500, "could not update schedule activity").WithInternal(err)
		}
	}

	return c.JSON(200, activity)
}

func (ctl *HTTPController) DeleteActivity(c core.Context) error {
	activityID, err := core.GetUUIDParam(c, "activityID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)
	if err := ctl.activityRepository.DeleteByTenant(nil, tenant.GetID(), activityID); err != nil {
		return echo.NewHTTPError(500, "could not delete schedule activity").WithInternal(err)
	}

	return c.NoContent(200)
}
