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
	"github.com/conformo/conformo/internal/core/audit"
	"github.com/labstack/echo/v4"
)

type AuditRouter struct {
	*echo.Group
}

func NewAuditRouter(tenantRouter TenantRouter, auditController *audit.HTTPController) AuditRouter {
	registerCRUD(tenantRouter.Group, "audits", "reportID", auditController.Reports, accesscontrol.ObjectAudit)
	registerCRUD(tenantRouter.Group, "audit-templates", "templateID", auditController.Templates, accesscontrol.ObjectAudit)
	tenantRouter.GET("/audits/:reportID/working-papers/", auditController.ListPapers, core.AccessControlMiddleware(accesscontrol.ObjectAudit, accesscontrol.ActionRead))
	tenantRouter.POST("/audits/:reportID/working-papers/", auditController.CreatePaper, core.AccessControlMiddleware(accesscontrol.ObjectAudit, accesscontrol.ActionCreate))
	tenantRouter.PATCH("/working-papers/:paperID/", auditController.PatchPaper, core.AccessControlMiddleware(accesscontrol.ObjectAudit, accesscontrol.ActionUpdate))
	tenantRouter.DELETE("/working-papers/:paperID/", auditController.DeletePaper, core.AccessControlMiddleware(accesscontrol.ObjectAudit, accesscontrol.ActionDelete))
	return AuditRouter{Group: tenantRouter.Group}
}
