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

package incident

import (
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/core/crud"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/database/repositories"
	"github.com/labstack/echo/v4"
)

type HTTPController struct {
	*crud.Controller[models.SecurityIncident, createRequest, patchRequest]
	metricsService *MetricsService
}

func NewHTTPController(db core.DB, metricsService *MetricsService) *HTTPController {
	return &HTTPController{
		Controller: crud.NewController[models.SecurityIncident, createRequest, patchRequest](
			repositories.NewTenantScopedRepository[models.SecurityIncident](db, "created_at DESC", "title", "reported_by", "assigned_to"), "incidentID"),
		metricsService: metricsService,
	}
}

func (ctl *HTTPController) Metrics(c core.Context) error {
	tenant := core.GetTenant(c)

	metrics, err := ctl.metricsService.Collect(tenant.GetID())
	if err != nil {
		return echo.NewHTTPError(500, "could not calculate incident metrics").WithInternal(err)
	}

	return c.JSON(200, metrics)
}
