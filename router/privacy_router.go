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

package router

import (
	"github.com/conformo/conformo/internal/accesscontrol"
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/core/privacy"
	"github.com/labstack/echo/v4"
)

type PrivacyRouter struct {
	*echo.Group
}

func NewPrivacyRouter(tenantRouter TenantRouter, privacyController *privacy.HTTPController) PrivacyRouter {
	privacyRouter := tenantRouter.Group.Group("/privacy")
	registerCRUD(privacyRouter, "legal-bases", "legalBasisID", privacyController.LegalBases, accesscontrol.ObjectPrivacy)
	registerCRUD(privacyRouter, "data-inventory", "itemID", privacyController.Inventory, accesscontrol.ObjectPrivacy)
	registerCRUD(privacyRouter, "consents", "consentID", privacyController.Consents, accesscontrol.ObjectPrivacy)
	registerCRUD(privacyRouter, "subject-requests", "requestID", privacyController.DataSubjectRequests, accesscontrol.ObjectPrivacy)
	registerCRUD(privacyRouter, "incidents", "incidentID", privacyController.Incidents, accesscontrol.ObjectPrivacy)
	registerCRUD(privacyRouter, "processing-activities", "activityID", privacyController.ProcessingActivities, accesscontrol.ObjectPrivacy)
	privacyRouter.GET("/metrics/", privacyController.Metrics, core.AccessControlMiddleware(accesscontrol.ObjectPrivacy, accesscontrol.ActionRead))
	return PrivacyRouter{Group: privacyRouter}
}
