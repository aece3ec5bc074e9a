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
	"net/http"
	"slices"

	"github.com/conformo/conformo/internal/accesscontrol"
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/core/profile"
	"github.com/conformo/conformo/internal/core/statistics"
	"github.com/conformo/conformo/internal/core/tenant"
	"github.com/conformo/conformo/internal/database/repositories"
	"github.com/labstack/echo/v4"
)

type TenantRouter struct {
	*echo.Group
}

// scopeByMethod limits what a reports-scoped token may do: reads pass with
// either scope, writes need the manage scope.
func scopeByMethod() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scopes := core.GetSession(c).GetScopes()
			if c.Request().Method == http.MethodGet {
				if slices.Contains(scopes, "manage") || slices.Contains(scopes, "reports") {
					return next(c)
				}
				return echo.NewHTTPError(403, "token is missing a scope granting read access")
			}
			if !slices.Contains(scopes, "manage") {
				return echo.NewHTTPError(403, "token is missing the required scope: manage")
			}
			return next(c)
		}
	}
}

func NewTenantRouter(
	sessionRouter SessionRouter,
	rbacProvider accesscontrol.RBACProvider,
	tenantRepository *repositories.TenantRepository,
	tenantController *tenant.HTTPController,
	profileController *profile.HTTPController,
	statisticsController *statistics.HTTPController,
) TenantRouter {
	tenantRouter := sessionRouter.Group.Group("/tenants/:tenant",
		core.LoggedInMiddleware(),
		tenant.MultiTenantMiddleware(rbacProvider, tenantRepository),
		scopeByMethod(),
	)

	tenantRouter.GET("/", tenantController.Read, core.AccessControlMiddleware(accesscontrol.ObjectTenant, accesscontrol.ActionRead))
	tenantRouter.PATCH("/", tenantController.Patch, core.AccessControlMiddleware(accesscontrol.ObjectTenant, accesscontrol.ActionUpdate))
	tenantRouter.DELETE("/", tenantController.Delete, core.AccessControlMiddleware(accesscontrol.ObjectTenant, accesscontrol.ActionDelete))

	tenantRouter.GET("/members/", tenantController.Members, core.AccessControlMiddleware(accesscontrol.ObjectTenant, accesscontrol.ActionRead))
	tenantRouter.PUT("/members/role/", tenantController.ChangeRole, core.AccessControlMiddleware(accesscontrol.ObjectProfile, accesscontrol.ActionUpdate))
	tenantRouter.DELETE("/members/:userID/", tenantController.RemoveMember, core.AccessControlMiddleware(accesscontrol.ObjectProfile, accesscontrol.ActionDelete))

	tenantRouter.GET("/profiles/", profileController.List, core.AccessControlMiddleware(accesscontrol.ObjectProfile, accesscontrol.ActionRead))
	tenantRouter.POST("/profiles/", profileController.Create, core.AccessControlMiddleware(accesscontrol.ObjectProfile, accesscontrol.ActionCreate))
	tenantRouter.PATCH("/profiles/:profileID/", profileController.Patch, core.AccessControlMiddleware(accesscontrol.ObjectProfile, accesscontrol.ActionUpdate))
	tenantRouter.DELETE("/profiles/:profileID/", profileController.Delete, core.AccessControlMiddleware(accesscontrol.ObjectProfile, accesscontrol.ActionDelete))

	tenantRouter.GET("/dashboard/", statisticsController.Dashboard, core.AccessControlMiddleware(accesscontrol.ObjectTenant, accesscontrol.ActionRead))
	tenantRouter.GET("/dashboard/trend/", statisticsController.Trend, core.AccessControlMiddleware(accesscontrol.ObjectTenant, accesscontrol.ActionRead))

	return TenantRouter{Group: tenantRouter}
}
