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
	"github.com/conformo/conformo/internal/core/aiprovider"
	"github.com/labstack/echo/v4"
)

type AIProviderRouter struct {
	*echo.Group
}

func NewAIProviderRouter(tenantRouter TenantRouter, aiProviderController *aiprovider.HTTPController) AIProviderRouter {
	aiRouter := tenantRouter.Group.Group("/ai")
	registerCRUD(aiRouter, "providers", "providerID", aiProviderController, accesscontrol.ObjectAIProvider)
	registerCRUD(aiRouter, "prompt-templates", "templateID", aiProviderController.Templates, accesscontrol.ObjectAIProvider)
	aiRouter.POST("/providers/:providerID/primary/", aiProviderController.SetPrimary, core.AccessControlMiddleware(accesscontrol.ObjectAIProvider, accesscontrol.ActionUpdate))
	return AIProviderRouter{Group: aiRouter}
}
