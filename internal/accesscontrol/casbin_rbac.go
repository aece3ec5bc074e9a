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
package accesscontrol

import (
	"log"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

var _ AccessControl = &CasbinRBAC{}
var casbinEnforcer *casbin.Enforcer

// rbacModel is the casbin RBAC-with-domains model. The domain is the tenant id,
// so every policy and role assignment is scoped to a single tenant.
const rbacModel = `
[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub, r.dom) && r.dom == p.dom && r.obj == p.obj && r.act == p.act
`

type CasbinRBAC struct {
	domain   string // scopes this to a specific domain - or tenant
	enforcer *casbin.Enforcer
}

type CasbinRBACProvider struct {
	enforcer *casbin.Enforcer
}

func (c CasbinRBACProvider) GetDomainRBAC(domain string) AccessControl {
	return &CasbinRBAC{
		domain:   domain,
		enforcer: c.enforcer,
	}
}

func (c *CasbinRBAC) HasAccess(user string) bool {
	roles := c.enforcer.GetRolesForUserInDomain("user::"+user, "domain::"+c.domain)
	return len(roles) > 0
}

func (c *CasbinRBAC) GetAllRoles(user string) []string {
	roles := c.enforcer.GetRolesForUserInDomain("user::"+user, "domain::"+c.domain)
	for i, r := range roles {
		roles[i] = strings.TrimPrefix(r, "role::")
	}
	return roles
}

func (c *CasbinRBAC) GrantRole(user, role string) error {
	_, err := c.enforcer.AddRoleForUserInDomain("user::"+user, "role::"+role, "domain::"+c.domain)
	return err
}

func (c *CasbinRBAC) InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions string) error {
	_, err := c.enforcer.AddRoleForUserInDomain("role::"+roleWhichGetsPermissions, "role::"+roleWhichProvidesPermissions, "domain::"+c.domain)
	return err
}

func (c *CasbinRBAC) RevokeRole(user, role string) error {
	_, err := c.enforcer.DeleteRoleForUserInDomain("user::"+user, "role::"+role, "domain::"+c.domain)
	return err
}

func (c *CasbinRBAC) AllowRole(role string, object Object, action []Action) error {
	policies := make([][]string, len(action))
	for i, ac := range action {
		policies[i] = []string{"role::" + role, "domain::" + c.domain, "obj::" + string(object), "act::" + string(ac)}
	}

	_, err := c.enforcer.AddPolicies(policies)
	return err
}

func (c *CasbinRBAC) IsAllowed(user string, object Object, action Action) (bool, error) {
	permissions, err := c.enforcer.GetImplicitPermissionsForUser("user::"+user, "domain::"+c.domain)
	if err != nil {
		return false, err
	}

	// check for the permissions
	for _, p := range permissions {
		if p[2] == "obj::"+string(object) && p[3] == "act::"+string(action) {
			return true, nil
		}
	}
	return false, nil
}

// GetAllMembersOfTenant returns the user ids of everybody holding a role in
// the tenant domain.
func (c *CasbinRBAC) GetAllMembersOfTenant() ([]string, error) {
	users, err := c.enforcer.GetAllUsersByDomain("domain::" + c.domain)
	if err != nil {
		return nil, err
	}

	members := make([]string, 0, len(users))
	for _, u := range users {
		if strings.HasPrefix(u, "user::") {
			members = append(members, strings.TrimPrefix(u, "user::"))
		}
	}
	return members, nil
}

func (c CasbinRBACProvider) DomainsOfUser(user string) ([]string, error) {
	domains, err := c.enforcer.GetDomainsForUser("user::" + user)
	if err != nil {
		return nil, err
	}
	// slice the "domain::" prefix
	for i, d := range domains {
		domains[i] = d[8:]
	}
	return domains, nil
}

// the provider can be used to create domain specific RBAC instances
func NewCasbinRBACProvider(db *gorm.DB) (CasbinRBACProvider, error) {
	enforcer, err := buildEnforcer(db)
	if err != nil {
		return CasbinRBACProvider{}, err
	}
	return CasbinRBACProvider{
		enforcer: enforcer,
	}, nil
}

func buildEnforcer(db *gorm.DB) (*casbin.Enforcer, error) {
	if casbinEnforcer != nil {
		return casbinEnforcer, nil
	}
	// the adapter stores policies in the "casbin_rule" table and creates it if
	// it does not exist yet
	a, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m, a)
	if err != nil {
		return nil, err
	}

	e.EnableLog(false)

	// Load the policy from DB.
	if err = e.LoadPolicy(); err != nil {
		log.Println("LoadPolicy failed, err: ", err)
	}

	casbinEnforcer = e

	return e, nil
}
