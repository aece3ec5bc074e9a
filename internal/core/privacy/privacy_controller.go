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

// Package privacy covers the LGPD working set: legal bases, the data
// inventory, consents, data subject requests, privacy incidents and
// processing activities, plus the aggregated metrics over all of them.
package privacy

import (
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/core/crud"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/database/repositories"
	"github.com/labstack/echo/v4"
)

type HTTPController struct {
	LegalBases           *crud.Controller[models.LegalBasis, legalBasisCreateRequest, legalBasisPatchRequest]
	Inventory            *crud.Controller[models.DataInventoryItem, inventoryCreateRequest, inventoryPatchRequest]
	Consents             *crud.Controller[models.Consent, consentCreateRequest, consentPatchRequest]
	DataSubjectRequests  *crud.Controller[models.DataSubjectRequest, dsrCreateRequest, dsrPatchRequest]
	Incidents            *crud.Controller[models.PrivacyIncident, privacyIncidentCreateRequest, privacyIncidentPatchRequest]
	ProcessingActivities *crud.Controller[models.ProcessingActivity, processingActivityCreateRequest, processingActivityPatchRequest]

	metricsService *MetricsService
}

func NewHTTPController(db core.DB, metricsService *MetricsService) *HTTPController {
	return &HTTPController{
		LegalBases: crud.NewController[models.LegalBasis, legalBasisCreateRequest, legalBasisPatchRequest](
			repositories.NewTenantScopedRepository[models.LegalBasis](db, "name ASC", "name", "legal_ground"), "legalBasisID"),
		Inventory: crud.NewController[models.DataInventoryItem, inventoryCreateRequest, inventoryPatchRequest](
			repositories.NewTenantScopedRepository[models.DataInventoryItem](db, "system_name ASC", "system_name", "data_category"), "itemID"),
		Consents: crud.NewController[models.Consent, consentCreateRequest, consentPatchRequest](
			repositories.NewTenantScopedRepository[models.Consent](db, "created_at DESC", "subject_email", "purpose"), "consentID"),
		DataSubjectRequests: crud.NewController[models.DataSubjectRequest, dsrCreateRequest, dsrPatchRequest](
			repositories.NewTenantScopedRepository[models.DataSubjectRequest](db, "due_date ASC", "requester_email"), "requestID"),
		Incidents: crud.NewController[models.PrivacyIncident, privacyIncidentCreateRequest, privacyIncidentPatchRequest](
			repositories.NewTenantScopedRepository[models.PrivacyIncident](db, "created_at DESC", "title", "description"), "incidentID"),
		ProcessingActivities: crud.NewController[models.ProcessingActivity, processingActivityCreateRequest, processingActivityPatchRequest](
			repositories.NewTenantScopedRepository[models.ProcessingActivity](db, "name ASC", "name", "purpose"), "activityID"),
		metricsService: metricsService,
	}
}

func (p *HTTPController) Metrics(c core.Context) error {
	tenant := core.GetTenant(c)

	metrics, err := p.metricsService.Collect(tenant.GetID())
	if err != nil {
		return echo.NewHTTPError(500, "could not calculate privacy metrics").WithInternal(err)
	}

	return c.JSON(200, metrics)
}
