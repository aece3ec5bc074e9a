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
	"github.com/conformo/conformo/internal/core/assessment"
	"github.com/labstack/echo/v4"
)

type AssessmentRouter struct {
	*echo.Group
}

func NewAssessmentRouter(tenantRouter TenantRouter, assessmentController *assessment.HTTPController) AssessmentRouter {
	registerCRUD(tenantRouter.Group, "assessment-domains", "domainID", assessmentController.Domains, accesscontrol.ObjectAssessment)
	registerCRUD(tenantRouter.Group, "assessment-controls", "controlID", assessmentController.Controls, accesscontrol.ObjectAssessment)
	registerCRUD(tenantRouter.Group, "assessment-questions", "questionID", assessmentController.Questions, accesscontrol.ObjectAssessment)
	registerCRUD(tenantRouter.Group, "assessments", "assessmentID", assessmentController.Assessments, accesscontrol.ObjectAssessment)
	tenantRouter.GET("/assessments/:assessmentID/responses/", assessmentController.ListResponses, core.AccessControlMiddleware(accesscontrol.ObjectAssessment, accesscontrol.ActionRead))
	tenantRouter.POST("/assessments/:assessmentID/responses/", assessmentController.Answer, core.AccessControlMiddleware(accesscontrol.ObjectAssessment, accesscontrol.ActionUpdate))
	tenantRouter.GET("/assessments/:assessmentID/metrics/", assessmentController.Progress, core.AccessControlMiddleware(accesscontrol.ObjectAssessment, accesscontrol.ActionRead))
	return AssessmentRouter{Group: tenantRouter.Group}
}
