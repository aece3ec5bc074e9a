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

package statistics

import (
	"strconv"
	"time"

	"github.com/conformo/conformo/internal/core"
	"github.com/labstack/echo/v4"
)

type HTTPController struct {
	service *Service
}

func NewHTTPController(service *Service) *HTTPController {
	return &HTTPController{service: service}
}

func (ctl *HTTPController) Dashboard(c core.Context) error {
	tenant := core.GetTenant(c)

	dashboard, err := ctl.service.Dashboard(tenant.GetID())
	if err != nil {
		return echo.NewHTTPError(500, "could not collect dashboard stats").WithInternal(err)
	}

	return c.JSON(200, dashboard)
}

// Trend returns the stored snapshots of the last N days (default 30, capped
// at 365).
func (ctl *HTTPController) Trend(c core.Context) error {
	tenant := core.GetTenant(c)

	days := 30
	if d, err := strconv.Atoi(c.QueryParam("days")); err == nil && d > 0 {
		days = min(d, 365)
	}

	snapshots, err := ctl.service.Trend(tenant.GetID(), time.Now().AddDate(0, 0, -days))
	if err != nil {
		return echo.NewHTTPError(500, "could not read stat snapshots").WithInternal(err)
	}

	return c.JSON(200, snapshots)
}
