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
	"github.com/conformo/conformo/internal/core/compliance"
	"github.com/labstack/echo/v4"
)

type ComplianceRouter struct {
	*echo.Group
}

func NewComplianceRouter(tenantRouter TenantRouter, complianceController *compliance.HTTPController) ComplianceRouter {
	complianceRouter := tenantRouter.Group.Group("/compliance")
	registerCRUD(complianceRouter, "records", "recordID", complianceController, accesscontrol.ObjectCompliance)
	complianceRouter.GET("/metrics/", complianceController.Metrics, core.AccessControlMiddleware(accesscontrol.ObjectCompliance, accesscontrol.ActionRead))
	return ComplianceRouter{Group: complianceRouter}
}
