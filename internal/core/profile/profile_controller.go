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

package profile

import (
	"github.com/conformo/conformo/internal/accesscontrol"
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/database"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

type repository interface {
	Create(tx core.DB, p *models.Profile) error
	Save(tx core.DB, p *models.Profile) error
	ReadByEmail(tenantID uuid.UUID, email string) (models.Profile, error)
	ReadByID(id uuid.UUID) (models.Profile, error)
	ReadByTenant(tenantID, id uuid.UUID) (models.Profile, error)
	AllByTenant(tenantID uuid.UUID) ([]models.Profile, error)
	DeleteByTenant(tx core.DB, tenantID, id uuid.UUID) error
}

type tenantRepository interface {
	ReadBySlug(slug string) (models.Tenant, error)
}

type patRepository interface {
	Create(tx core.DB, p *models.PAT) error
}

type HTTPController struct {
	profileRepository repository
	tenantRepository  tenantRepository
	patRepository     patRepository
	rbacProvider      accesscontrol.RBACProvider
}

func NewHTTPController(profileRepository repository, tenantRepository tenantRepository, patRepository patRepository, rbacProvider accesscontrol.RBACProvider) *HTTPController {
	return &HTTPController{
		profileRepository: profileRepository,
		tenantRepository:  tenantRepository,
		patRepository:     patRepository,
		rbacProvider:      rbacProvider,
	}
}

// Login exchanges tenant slug, email and password for a fresh access token.
// It intentionally answers 401 for unknown tenant, unknown email and wrong
// password alike.
func (p *HTTPController) Login(c core.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant, err := p.tenantRepository.ReadBySlug(core.SanitizeParam(req.TenantSlug))
	if err != nil {
		return echo.NewHTTPError(401, "invalid credentials").WithInternal(err)
	}

	profile, err := p.profileRepository.ReadByEmail(tenant.ID, req.Email)
	if err != nil {
		return echo.NewHTTPError(401, "invalid credentials").WithInternal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(401, "invalid credentials").WithInternal(err)
	}

	pat, token := models.NewPAT(profile.ID, "login", []string{"manage"})
	if err := p.patRepository.Create(nil, &pat); err != nil {
		return echo.NewHTTPError(500, "could not create access token").WithInternal(err)
	}

	return c.JSON(200, loginResponse{
		Token:   token,
		Profile: profile,
	})
}

func (p *HTTPController) CurrentUser(c core.Context) error {
	userID, err := uuid.Parse(core.GetSession(c).GetUserID())
	if err != nil {
		return echo.NewHTTPError(401, "could not get session").WithInternal(err)
	}

	profile, err := p.profileRepository.ReadByID(userID)
	if err != nil {
		return echo.NewHTTPError(404, "profile not found").WithInternal(err)
	}

	return c.JSON(200, profile)
}

func (p *HTTPController) List(c core.Context) error {
	tenant := core.GetTenant(c)

	profiles, err := p.profileRepository.AllByTenant(tenant.GetID())
	if err != nil {
		return echo.NewHTTPError(500, "could not list profiles").WithInternal(err)
	}

	return c.JSON(200, profiles)
}

// Create registers a new user inside the tenant and grants the requested
// role, defaulting to member.
func (p *HTTPController) Create(c core.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)

	profile, err := req.toModel(tenant.GetID())
	if err != nil {
		return echo.NewHTTPError(500, "could not hash password").WithInternal(err)
	}

	if err := p.profileRepository.Create(nil, &profile); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "a profile with that email already exists").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create profile").WithInternal(err)
	}

	role := req.Role
	if role == "" {
		role = accesscontrol.RoleMember
	}

	rbac := core.GetRBAC(c)
	if err := rbac.GrantRole(profile.ID.String(), role); err != nil {
		return echo.NewHTTPError(500, "could not grant role").WithInternal(err)
	}

	return c.JSON(201, profile)
}

func (p *HTTPController) Patch(c core.Context) error {
	profileID, err := core.GetUUIDParam(c, "profileID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	var req patchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)
	profile, err := p.profileRepository.ReadByTenant(tenant.GetID(), profileID)
	if err != nil {
		return echo.NewHTTPError(404, "profile not found").WithInternal(err)
	}

	updated, err := req.applyToModel(&profile)
	if err != nil {
		return echo.NewHTTPError(500, "could not hash password").WithInternal(err)
	}
	if !updated {
		return c.JSON(200, profile)
	}

	if err := p.profileRepository.Save(nil, &profile); err != nil {
		return echo.NewHTTPError(500, "could not update profile").WithInternal(err)
	}

	return c.JSON(200, profile)
}

func (p *HTTPController) Delete(c core.Context) error {
	profileID, err := core.GetUUIDParam(c, "profileID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	if profileID.String() == core.GetSession(c).GetUserID() {
		return echo.NewHTTPError(400, "cannot delete your own profile")
	}

	tenant := core.GetTenant(c)
	if err := p.profileRepository.DeleteByTenant(nil, tenant.GetID(), profileID); err != nil {
		return echo.NewHTTPError(500, "could not delete profile").WithInternal(err)
	}

	// revoke the rbac assignments as well, otherwise the user id keeps
	// showing up in the member list
	rbac := core.GetRBAC(c)
	for _, role := range rbac.GetAllRoles(profileID.String()) {
		if err := rbac.RevokeRole(profileID.String(), role); err != nil {
			return echo.NewHTTPError(500, "could not revoke role").WithInternal(err)
		}
	}

	return c.NoContent(200)
}
