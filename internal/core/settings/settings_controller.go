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

package settings

import (
	"encoding/json"
	"errors"

	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/database/repositories"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type settingsRepository interface {
	Read(tenantID uuid.UUID) (models.SecuritySettings, error)
	Create(s *models.SecuritySettings) error
	UpdateVersioned(s *models.SecuritySettings, expectedVersion int) error
}

type HTTPController struct {
	settingsRepository settingsRepository
}

func NewHTTPController(settingsRepository settingsRepository) *HTTPController {
	return &HTTPController{settingsRepository: settingsRepository}
}

type settingsDTO struct {
	Version int            `json:"version"`
	Config  SecurityConfig `json:"config"`
}

// readOrInit returns the tenant's settings record, creating the initial
// version on first access so every tenant has a row to version against.
func (ctl *HTTPController) readOrInit(tenantID uuid.UUID) (models.SecuritySettings, error) {
	record, err := ctl.settingsRepository.Read(tenantID)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return record, err
	}

	record = models.SecuritySettings{TenantID: tenantID, Version: 1}
	if err := ctl.settingsRepository.Create(&record); err != nil {
		// lost the init race, somebody else created it
		if existing, readErr := ctl.settingsRepository.Read(tenantID); readErr == nil {
			return existing, nil
		}
		return record, err
	}
	return record, nil
}

func (ctl *HTTPController) Read(c core.Context) error {
	tenant := core.GetTenant(c)

	record, err := ctl.readOrInit(tenant.GetID())
	if err != nil {
		return echo.NewHTTPError(500, "could not read security settings").WithInternal(err)
	}

	config, err := MergeConfig(record.Config)
	if err != nil {
		return echo.NewHTTPError(500, "could not read security settings").WithInternal(err)
	}

	return c.JSON(200, settingsDTO{Version: record.Version, Config: config})
}

type updateRequest struct {
	ExpectedVersion int            `json:"expectedVersion" validate:"required,min=1"`
	Config          SecurityConfig `json:"config"`
}

// Update replaces the config, guarded by the version the caller read. A
// concurrent writer bumps the version first and the late request gets a 409
// instead of silently clobbering the other admin's change.
func (ctl *HTTPController) Update(c core.Context) error {
	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)

	record, err := ctl.readOrInit(tenant.GetID())
	if err != nil {
		return echo.NewHTTPError(500, "could not read security settings").WithInternal(err)
	}

	raw, err := json.Marshal(req.Config)
	if err != nil {
		return echo.NewHTTPError(400, "invalid security config").WithInternal(err)
	}
	record.Config = datatypes.JSON(raw)

	if err := ctl.settingsRepository.UpdateVersioned(&record, req.ExpectedVersion); err != nil {
		if errors.Is(err, repositories.ErrStaleSettings) {
			return echo.NewHTTPError(409, "settings were modified concurrently, reload and retry")
		}
		return echo.NewHTTPError(500, "could not update security settings").WithInternal(err)
	}

	return c.JSON(200, settingsDTO{Version: record.Version, Config: req.Config})
}

func (ctl *HTTPController) SecurityScore(c core.Context) error {
	tenant := core.GetTenant(c)

	record, err := ctl.readOrInit(tenant.GetID())
	if err != nil {
		return echo.NewHTTPError(500, "could not read security settings").WithInternal(err)
	}

	config, err := MergeConfig(record.Config)
	if err != nil {
		return echo.NewHTTPError(500, "could not read security settings").WithInternal(err)
	}

	return c.JSON(200, ComputeScore(config))
}
