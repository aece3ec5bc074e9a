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

package compliance

import (
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/core/crud"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/database/repositories"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type statsRepository interface {
	Total(model repositories.Tabler, tenantID uuid.UUID) (int64, error)
	CountByStatus(model repositories.Tabler, tenantID uuid.UUID) (map[string]int64, error)
	CountByColumn(model repositories.Tabler, tenantID uuid.UUID, column string) (map[string]int64, error)
}

type HTTPController struct {
	*crud.Controller[models.ComplianceRecord, createRequest, patchRequest]
	statsRepository statsRepository
}

func NewHTTPController(db core.DB, statsRepository statsRepository) *HTTPController {
	return &HTTPController{
		Controller: crud.NewController[models.ComplianceRecord, createRequest, patchRequest](
			repositories.NewTenantScopedRepository[models.ComplianceRecord](db, "framework ASC, control_id ASC", "framework", "control_id", "description"), "recordID"),
		statsRepository: statsRepository,
	}
}

// Metrics reports the compliance posture per framework and status.
func (ctl *HTTPController) Metrics(c core.Context) error {
	tenant := core.GetTenant(c)

	total, err := ctl.statsRepository.Total(&models.ComplianceRecord{}, tenant.GetID())
	if err != nil {
		return echo.NewHTTPError(500, "could not calculate compliance metrics").WithInternal(err)
	}

	byStatus, err := ctl.statsRepository.CountByStatus(&models.ComplianceRecord{}, tenant.GetID())
	if err != nil {
		return echo.NewHTTPError(500, "could not calculate compliance metrics").WithInternal(err)
	}

	byFramework, err := ctl.statsRepository.CountByColumn(&models.ComplianceRecord{}, tenant.GetID(), "framework")
	if err != nil {
		return echo.NewHTTPError(500, "could not calculate compliance metrics").WithInternal(err)
	}

	compliancePercent := 0.0
	if total > 0 {
		compliancePercent = float64(byStatus[string(models.ComplianceStatusCompliant)]) / float64(total) * 100
	}

	return c.JSON(200, map[string]any{
		"total":             total,
		"byStatus":          byStatus,
		"byFramework":       byFramework,
		"compliancePercent": compliancePercent,
	})
}
