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
	"github.com/conformo/conformo/internal/core/vendor"
	"github.com/labstack/echo/v4"
)

type VendorRouter struct {
	*echo.Group
}

func NewVendorRouter(tenantRouter TenantRouter, vendorController *vendor.HTTPController) VendorRouter {
	registerCRUD(tenantRouter.Group, "vendors", "vendorID", vendorController, accesscontrol.ObjectVendor)
	tenantRouter.GET("/vendors/:vendorID/communications/", vendorController.ListCommunications, core.AccessControlMiddleware(accesscontrol.ObjectVendor, accesscontrol.ActionRead))
	tenantRouter.POST("/vendors/:vendorID/communications/", vendorController.CreateCommunication, core.AccessControlMiddleware(accesscontrol.ObjectVendor, accesscontrol.ActionCreate))
	tenantRouter.PATCH("/vendors/:vendorID/communications/:communicationID/", vendorController.PatchCommunication, core.AccessControlMiddleware(accesscontrol.ObjectVendor, accesscontrol.ActionUpdate))
	tenantRouter.DELETE("/vendors/:vendorID/communications/:communicationID/", vendorController.DeleteCommunication, core.AccessControlMiddleware(accesscontrol.ObjectVendor, accesscontrol.ActionDelete))
	tenantRouter.GET("/vendors/:vendorID/risk-actions/", vendorController.ListRiskActions, core.AccessControlMiddleware(accesscontrol.ObjectVendor, accesscontrol.ActionRead))
	tenantRouter.POST("/vendors/:vendorID/risk-actions/", vendorController.CreateRiskAction, core.AccessControlMiddleware(accesscontrol.ObjectVendor, accesscontrol.ActionCreate))
	tenantRouter.PATCH("/vendors/:vendorID/risk-actions/:actionID/", vendorController.PatchRiskAction, core.AccessControlMiddleware(accesscontrol.ObjectVendor, accesscontrol.ActionUpdate))
	tenantRouter.DELETE("/vendors/:vendorID/risk-actions/:actionID/", vendorController.DeleteRiskAction, core.AccessControlMiddleware(accesscontrol.ObjectVendor, accesscontrol.ActionDelete))
	return VendorRouter{Group: tenantRouter.Group}
}
