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

package tenant

import (
	"log/slog"

	"github.com/conformo/conformo/internal/accesscontrol"
	"github.com/conformo/conformo/internal/core"
	"github.com/labstack/echo/v4"
)

// MultiTenantMiddleware resolves the :tenant slug, verifies the caller holds
// a role inside that tenant and stores the tenant and its rbac in the request
// context. Every tenant scoped route sits behind this.
func MultiTenantMiddleware(rbacProvider accesscontrol.RBACProvider, tenantRepository repository) core.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c core.Context) error {
			slug, err := core.GetTenantSlug(c)
			if err != nil {
				slog.Error("no tenant provided")
				return echo.NewHTTPError(400, "no tenant provided")
			}

			tenant, err := tenantRepository.ReadBySlug(slug)
			if err != nil {
				slog.Error("tenant not found", "slug", slug)
				return echo.NewHTTPError(404, "tenant not found")
			}

			domainRBAC := rbacProvider.GetDomainRBAC(tenant.ID.String())

			session := core.GetSession(c)
			if !domainRBAC.HasAccess(session.GetUserID()) {
				slog.Error("access denied", "tenant", slug, "userID", session.GetUserID())
				return echo.NewHTTPError(403, "access denied")
			}

			core.SetTenant(c, tenant)
			core.SetRBAC(c, domainRBAC)

			return next(c)
		}
	}
}
