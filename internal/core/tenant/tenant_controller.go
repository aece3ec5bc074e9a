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
	"github.com/conformo/conformo/internal/accesscontrol"
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/database"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/utils"
	"github.com/google/uuid"

	"github.com/labstack/echo/v4"
)

type repository interface {
	Create(tx core.DB, t *models.Tenant) error
	Save(tx core.DB, t *models.Tenant) error
	Delete(tx core.DB, id uuid.UUID) error
	Read(id uuid.UUID) (models.Tenant, error)
	ReadBySlug(slug string) (models.Tenant, error)
	List(ids []uuid.UUID) ([]models.Tenant, error)
}

type profileRepository interface {
	ListByIDs(tenantID uuid.UUID, ids []uuid.UUID) ([]models.Profile, error)
}

type HTTPController struct {
	tenantRepository  repository
	profileRepository profileRepository
	rbacProvider      accesscontrol.RBACProvider
}

func NewHTTPController(repository repository, profileRepository profileRepository, rbacProvider accesscontrol.RBACProvider) *HTTPController {
	return &HTTPController{
		tenantRepository:  repository,
		profileRepository: profileRepository,
		rbacProvider:      rbacProvider,
	}
}

func (t *HTTPController) Create(c core.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := req.toModel()

	err := t.tenantRepository.Create(nil, &tenant)
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "tenant with that name already exists").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create tenant").WithInternal(err)
	}

	if err = t.bootstrapTenant(c, tenant); err != nil {
		return echo.NewHTTPError(500, "could not bootstrap tenant").WithInternal(err)
	}

	return c.JSON(200, tenant)
}

// bootstrapTenant builds the role hierarchy and grants the creating user the
// owner role.
func (t *HTTPController) bootstrapTenant(c core.Context, tenant models.Tenant) error {
	rbac := t.rbacProvider.GetDomainRBAC(tenant.ID.String())
	userID := core.GetSession(c).GetUserID()

	if err := BootstrapRBAC(rbac, userID); err != nil {
		return err
	}

	core.SetRBAC(c, rbac)
	return nil
}

// BootstrapRBAC builds the role hierarchy of a fresh tenant and grants the
// given user the owner role. The seeder uses it too.
func BootstrapRBAC(rbac accesscontrol.AccessControl, ownerUserID string) error {
	if err := rbac.GrantRole(ownerUserID, accesscontrol.RoleOwner); err != nil {
		return err
	}
	if err := rbac.InheritRole(accesscontrol.RoleOwner, accesscontrol.RoleAdmin); err != nil { // an owner is an admin
		return err
	}
	if err := rbac.InheritRole(accesscontrol.RoleAdmin, accesscontrol.RoleMember); err != nil { // an admin is a member
		return err
	}

	if err := rbac.AllowRole(accesscontrol.RoleOwner, accesscontrol.ObjectTenant, []accesscontrol.Action{
		accesscontrol.ActionDelete,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(accesscontrol.RoleAdmin, accesscontrol.ObjectTenant, []accesscontrol.Action{
		accesscontrol.ActionUpdate,
	}); err != nil {
		return err
	}

	// admins manage every module, members read them. writes on the working
	// collections are a member permission, tenant administration is not.
	writeObjects := []accesscontrol.Object{
		accesscontrol.ObjectProfile,
		accesscontrol.ObjectPrivacy,
		accesscontrol.ObjectCompliance,
		accesscontrol.ObjectIncident,
		accesscontrol.ObjectAudit,
		accesscontrol.ObjectActionPlan,
		accesscontrol.ObjectAssessment,
		accesscontrol.ObjectVendor,
		accesscontrol.ObjectAsset,
		accesscontrol.ObjectAIProvider,
		accesscontrol.ObjectSettings,
		accesscontrol.ObjectInitiative,
	}

	for _, obj := range writeObjects {
		if err := rbac.AllowRole(accesscontrol.RoleAdmin, obj, []accesscontrol.Action{
			accesscontrol.ActionCreate,
			accesscontrol.ActionUpdate,
			accesscontrol.ActionDelete,
		}); err != nil {
			return err
		}
		if err := rbac.AllowRole(accesscontrol.RoleMember, obj, []accesscontrol.Action{
			accesscontrol.ActionRead,
		}); err != nil {
			return err
		}
	}

	return rbac.AllowRole(accesscontrol.RoleMember, accesscontrol.ObjectTenant, []accesscontrol.Action{
		accesscontrol.ActionRead,
	})
}

func (t *HTTPController) Read(c core.Context) error {
	tenant := core.GetTenant(c)
	return c.JSON(200, tenant)
}

func (t *HTTPController) List(c core.Context) error {
	userID := core.GetSession(c).GetUserID()

	domains, err := t.rbacProvider.DomainsOfUser(userID)
	if err != nil {
		return echo.NewHTTPError(500, "could not get domains of user").WithInternal(err)
	}

	tenantIDs := make([]uuid.UUID, 0, len(domains))
	for _, domain := range domains {
		id, err := uuid.Parse(domain)
		if err != nil {
			continue
		}
		tenantIDs = append(tenantIDs, id)
	}

	tenants, err := t.tenantRepository.List(tenantIDs)
	if err != nil {
		return echo.NewHTTPError(500, "could not read tenants").WithInternal(err)
	}

	return c.JSON(200, tenants)
}

func (t *HTTPController) Patch(c core.Context) error {
	var req patchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)
	if !req.applyToModel(&tenant) {
		return c.JSON(200, tenant)
	}

	if err := t.tenantRepository.Save(nil, &tenant); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "tenant with that name already exists").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not update tenant").WithInternal(err)
	}

	return c.JSON(200, tenant)
}

func (t *HTTPController) Delete(c core.Context) error {
	tenantID := core.GetTenant(c).GetID()

	err := t.tenantRepository.Delete(nil, tenantID)
	if err != nil {
		return echo.NewHTTPError(500, "could not delete tenant").WithInternal(err)
	}

	return c.NoContent(200)
}

func (t *HTTPController) Members(c core.Context) error {
	tenant := core.GetTenant(c)
	rbac := core.GetRBAC(c)

	userIDs, err := rbac.GetAllMembersOfTenant()
	if err != nil {
		return echo.NewHTTPError(500, "could not list members").WithInternal(err)
	}

	ids := make([]uuid.UUID, 0, len(userIDs))
	for _, raw := range userIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	profiles, err := t.profileRepository.ListByIDs(tenant.GetID(), ids)
	if err != nil {
		return echo.NewHTTPError(500, "could not read member profiles").WithInternal(err)
	}

	members := utils.Map(profiles, func(p models.Profile) memberDTO {
		roles := rbac.GetAllRoles(p.ID.String())
		role := ""
		if len(roles) > 0 {
			role = roles[0]
		}
		return memberDTO{Profile: p, Role: role}
	})

	return c.JSON(200, members)
}

func (t *HTTPController) ChangeRole(c core.Context) error {
	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	rbac := core.GetRBAC(c)

	// drop the old role assignments before granting the new one
	for _, role := range rbac.GetAllRoles(req.UserID) {
		if err := rbac.RevokeRole(req.UserID, role); err != nil {
			return echo.NewHTTPError(500, "could not revoke role").WithInternal(err)
		}
	}

	if err := rbac.GrantRole(req.UserID, req.Role); err != nil {
		return echo.NewHTTPError(500, "could not grant role").WithInternal(err)
	}

	return c.NoContent(200)
}

func (t *HTTPController) RemoveMember(c core.Context) error {
	userID, err := core.GetUUIDParam(c, "userID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	if userID.String() == core.GetSession(c).GetUserID() {
		return echo.NewHTTPError(400, "cannot remove yourself from the tenant")
	}

	rbac := core.GetRBAC(c)
	for _, role := range rbac.GetAllRoles(userID.String()) {
		if err := rbac.RevokeRole(userID.String(), role); err != nil {
			return echo.NewHTTPError(500, "could not remove member").WithInternal(err)
		}
	}

	return c.NoContent(200)
}
