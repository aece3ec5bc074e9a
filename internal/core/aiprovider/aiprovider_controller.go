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

// Package aiprovider manages the tenant's AI provider registry and prompt
// templates. Credentials are stored server side and never returned in full.
package aiprovider

import (
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/core/crud"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/database/repositories"
	"github.com/conformo/conformo/internal/utils"
	"github.com/labstack/echo/v4"
)

type HTTPController struct {
	*crud.Controller[models.AIProvider, providerCreateRequest, providerPatchRequest]
	Templates *crud.Controller[models.AIPromptTemplate, templateCreateRequest, templatePatchRequest]

	providerRepository *repositories.AIProviderRepository
}

func NewHTTPController(db core.DB) *HTTPController {
	providerRepository := repositories.NewAIProviderRepository(db)
	return &HTTPController{
		Controller: crud.NewController[models.AIProvider, providerCreateRequest, providerPatchRequest](
			providerRepository.TenantScopedRepository, "providerID"),
		Templates: crud.NewController[models.AIPromptTemplate, templateCreateRequest, templatePatchRequest](
			repositories.NewTenantScopedRepository[models.AIPromptTemplate](db, "name ASC", "name"), "templateID"),
		providerRepository: providerRepository,
	}
}

// List overrides the plain collection listing so each provider carries the
// obfuscated form of its key.
func (ctl *HTTPController) List(c core.Context) error {
	tenant := core.GetTenant(c)

	paged, err := ctl.providerRepository.ListPaged(
		tenant.GetID(),
		core.GetPageInfo(c),
		c.QueryParam("search"),
		core.GetFilterQuery(c),
		core.GetSortQuery(c),
	)
	if err != nil {
		return echo.NewHTTPError(500, "could not list providers").WithInternal(err)
	}

	return c.JSON(200, core.NewPaged(paged.PageInfo, paged.Total, utils.Map(paged.Data, toDTO)))
}

func (ctl *HTTPController) Read(c core.Context) error {
	providerID, err := core.GetUUIDParam(c, "providerID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)
	provider, err := ctl.providerRepository.ReadByTenant(tenant.GetID(), providerID)
	if err != nil {
		return echo.NewHTTPError(404, "provider not found").WithInternal(err)
	}

	return c.JSON(200, toDTO(provider))
}

// SetPrimary promotes one provider to primary and demotes every other
// provider of the tenant in the same statement.
func (ctl *HTTPController) SetPrimary(c core.Context) error {
	providerID, err := core.GetUUIDParam(c, "providerID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)
	if _, err := ctl.providerRepository.ReadByTenant(tenant.GetID(), providerID); err != nil {
		return echo.NewHTTPError(404, "provider not found").WithInternal(err)
	}

	if err := ctl.providerRepository.MakePrimary(nil, tenant.GetID(), providerID); err != nil {
		return echo.NewHTTPError(500, "could not update primary provider").WithInternal(err)
	}

	primary, err := ctl.providerRepository.ReadPrimary(tenant.GetID())
	if err != nil {
		return echo.NewHTTPError(500, "could not read primary provider").WithInternal(err)
	}

	return c.JSON(200, toDTO(primary))
}
