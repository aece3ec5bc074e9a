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

// Package audit provides audit reports, working paper templates and the
// working papers attached to a report.
package audit

import (
	"encoding/json"

	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/core/crud"
	"github.com/conformo/conformo/internal/database"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/database/repositories"
	"github.com/labstack/echo/v4"
)

type HTTPController struct {
	Reports   *crud.Controller[models.AuditReport, reportCreateRequest, reportPatchRequest]
	Templates *crud.Controller[models.WorkingPaperTemplate, templateCreateRequest, templatePatchRequest]

	reportRepository   *repositories.TenantScopedRepository[models.AuditReport]
	templateRepository *repositories.TenantScopedRepository[models.WorkingPaperTemplate]
	paperRepository    *repositories.WorkingPaperRepository
}

func NewHTTPController(db core.DB) *HTTPController {
	reportRepository := repositories.NewTenantScopedRepository[models.AuditReport](db, "created_at DESC", "title", "scope")
	templateRepository := repositories.NewTenantScopedRepository[models.WorkingPaperTemplate](db, "name ASC", "name", "description")

	return &HTTPController{
		Reports:            crud.NewController[models.AuditReport, reportCreateRequest, reportPatchRequest](reportRepository, "reportID"),
		Templates:          crud.NewController[models.WorkingPaperTemplate, templateCreateRequest, templatePatchRequest](templateRepository, "templateID"),
		reportRepository:   reportRepository,
		templateRepository: templateRepository,
		paperRepository:    repositories.NewWorkingPaperRepository(db),
	}
}

func (ctl *HTTPController) ListPapers(c core.Context) error {
	reportID, err := core.GetUUIDParam(c, "reportID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)
	papers, err := ctl.paperRepository.ListByReport(tenant.GetID(), reportID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list working papers").WithInternal(err)
	}

	return c.JSON(200, papers)
}

// CreatePaper attaches a working paper to a report. When the request names a
// template, the template checklist becomes the initial paper content.
func (ctl *HTTPController) CreatePaper(c core.Context) error {
	reportID, err := core.GetUUIDParam(c, "reportID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	var req paperCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)

	// the report must exist inside the tenant
	if _, err := ctl.reportRepository.ReadByTenant(tenant.GetID(), reportID); err != nil {
		return echo.NewHTTPError(404, "audit report not found").WithInternal(err)
	}

	paper := req.toModel(tenant.GetID(), reportID)

	if req.TemplateID != nil {
		template, err := ctl.templateRepository.ReadByTenant(tenant.GetID(), *req.TemplateID)
		if err != nil {
			return echo.NewHTTPError(404, "working paper template not found").WithInternal(err)
		}

		var checklist []string
		// best effort, a malformed checklist just yields an empty one
		_ = json.Unmarshal(template.Checklist, &checklist)

		items := make([]map[string]any, len(checklist))
		for i, item := range checklist {
			items[i] = map[string]any{"item": item, "done": false}
		}

		content, err := database.JSONFromValue(map[string]any{"checklist": items})
		if err != nil {
			return echo.NewHTTPError(500, "could not build paper content").WithInternal(err)
		}
		paper.Content = content
	}

	if err := ctl.paperRepository.Create(nil, &paper); err != nil {
		return echo.NewHTTPError(500, "could not create working paper").WithInternal(err)
	}

	return c.JSON(201, paper)
}

func (ctl *HTTPController) PatchPaper(c core.Context) error {
	paperID, err := core.GetUUIDParam(c, "paperID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	var req paperPatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)
	paper, err := ctl.paperRepository.ReadByTenant(tenant.GetID(), paperID)
	if err != nil {
		return echo.NewHTTPError(404, "working paper not found").WithInternal(err)
	}

	if !req.applyToModel(&paper) {
		return c.JSON(200, paper)
	}

	if err := ctl.paperRepository.Save(nil, &paper); err != nil {
		return echo.NewHTTPError(500, "could not update working paper").WithInternal(err)
	}

	return c.JSON(200, paper)
}

func (ctl *HTTPController) DeletePaper(c core.Context) error {
	paperID, err := core.GetUUIDParam(c, "paperID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)
	if err := ctl.paperRepository.DeleteByTenant(nil, tenant.GetID(), paperID); err != nil {
		return echo.NewHTTPError(500, "could not delete working paper").WithInternal(err)
	}

	return c.NoContent(200)
}
