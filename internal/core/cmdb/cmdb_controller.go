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

package cmdb

import (
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/core/crud"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/database/repositories"
	"github.com/conformo/conformo/internal/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type statsRepository interface {
	Total(model repositories.Tabler, tenantID uuid.UUID) (int64, error)
	CountWhere(model repositories.Tabler, tenantID uuid.UUID, query string, args ...any) (int64, error)
	CountByColumn(model repositories.Tabler, tenantID uuid.UUID, column string) (map[string]int64, error)
}

type HTTPController struct {
	*crud.Controller[models.CMDBAsset, createRequest, patchRequest]
	assetRepository *repositories.TenantScopedRepository[models.CMDBAsset]
	statsRepository statsRepository
}

func NewHTTPController(db core.DB, statsRepository statsRepository) *HTTPController {
	assetRepository := repositories.NewTenantScopedRepository[models.CMDBAsset](db, "name ASC", "name", "ip_address", "owning_team")
	return &HTTPController{
		Controller:      crud.NewController[models.CMDBAsset, createRequest, patchRequest](assetRepository, "assetID"),
		assetRepository: assetRepository,
		statsRepository: statsRepository,
	}
}

// List overrides the plain collection listing to include the derived risk
// level per asset.
func (ctl *HTTPController) List(c core.Context) error {
	tenant := core.GetTenant(c)

	paged, err := ctl.assetRepository.ListPaged(
		tenant.GetID(),
		core.GetPageInfo(c),
		c.QueryParam("search"),
		core.GetFilterQuery(c),
		core.GetSortQuery(c),
	)
	if err != nil {
		return echo.NewHTTPError(500, "could not list assets").WithInternal(err)
	}

	return c.JSON(200, core.NewPaged(paged.PageInfo, paged.Total, utils.Map(paged.Data, toDTO)))
}

func (ctl *HTTPController) Read(c core.Context) error {
	assetID, err := core.GetUUIDParam(c, "assetID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)
	asset, err := ctl.assetRepository.ReadByTenant(tenant.GetID(), assetID)
	if err != nil {
		return echo.NewHTTPError(404, "asset not found").WithInternal(err)
	}

	return c.JSON(200, toDTO(asset))
}

// Metrics reports the asset population and its exposure.
func (ctl *HTTPController) Metrics(c core.Context) error {
	tenant := core.GetTenant(c)

	total, err := ctl.statsRepository.Total(&models.CMDBAsset{}, tenant.GetID())
	if err != nil {
		return echo.NewHTTPError(500, "could not calculate asset metrics").WithInternal(err)
	}

	internetFacing, err := ctl.statsRepository.CountWhere(&models.CMDBAsset{}, tenant.GetID(), "internet_facing = true")
	if err != nil {
		return echo.NewHTTPError(500, "could not calculate asset metrics").WithInternal(err)
	}

	vulnerable, err := ctl.statsRepository.CountWhere(&models.CMDBAsset{}, tenant.GetID(), "vulnerability_count > 0")
	if err != nil {
		return echo.NewHTTPError(500, "could not calculate asset metrics").WithInternal(err)
	}

	byType, err := ctl.statsRepository.CountByColumn(&models.CMDBAsset{}, tenant.GetID(), "asset_type")
	if err != nil {
		return echo.NewHTTPError(500, "could not calculate asset metrics").WithInternal(err)
	}

	byStatus, err := ctl.statsRepository.CountByColumn(&models.CMDBAsset{}, tenant.GetID(), "status")
	if err != nil {
		return echo.NewHTTPError(500, "could not calculate asset metrics").WithInternal(err)
	}

	return c.JSON(200, map[string]any{
		"total":          total,
		"internetFacing": internetFacing,
		"vulnerable":     vulnerable,
		"byType":         byType,
		"byStatus":       byStatus,
	})
}
