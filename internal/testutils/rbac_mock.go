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

package testutils

import (
	"slices"

	"github.com/conformo/conformo/internal/accesscontrol"
)

// RBACMock is an in-memory AccessControl for tests. It resolves role
// inheritance the same way the casbin grouping policy does, just without a
// database behind it.
type RBACMock struct {
	roles    map[string][]string
	inherits map[string][]string
	rules    map[string][]string
}

func NewRBACMock() *RBACMock {
	return &RBACMock{
		roles:    map[string][]string{},
		inherits: map[string][]string{},
		rules:    map[string][]string{},
	}
}

func (r *RBACMock) HasAccess(subject string) bool {
	return len(r.roles[subject]) > 0
}

func (r *RBACMock) GrantRole(subject, role string) error {
	r.roles[subject] = append(r.roles[subject], role)
	return nil
}

func (r *RBACMock) RevokeRole(subject, role string) error {
	roles := r.roles[subject]
	for i, v := range roles {
		if v == role {
			r.roles[subject] = append(roles[:i], roles[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *RBACMock) InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions string) error {
	r.inherits[roleWhichGetsPermissions] = append(r.inherits[roleWhichGetsPermissions], roleWhichProvidesPermissions)
	return nil
}

func (r *RBACMock) AllowRole(role string, object accesscontrol.Object, actions []accesscontrol.Action) error {
	for _, action := range actions {
		r.rules[role] = append(r.rules[role], string(object)+"|"+string(action))
	}
	return nil
}

// expandRoles walks the inheritance chain starting from the directly granted
// roles.
func (r *RBACMock) expandRoles(roles []string) []string {
	seen := map[string]bool{}
	queue := slices.Clone(roles)
	for len(queue) > 0 {
		role := queue[0]
		queue = queue[1:]
		if seen[role] {
			continue
		}
		seen[role] = true
		queue = append(queue, r.inherits[role]...)
	}

	expanded := make([]string, 0, len(seen))
	for role := range seen {
		expanded = append(expanded, role)
	}
	slices.Sort(expanded)
	return expanded
}

func (r *RBACMock) GetAllRoles(subject string) []string {
	return r.expandRoles(r.roles[subject])
}

func (r *RBACMock) IsAllowed(subject string, object accesscontrol.Object, action accesscontrol.Action) (bool, error) {
	rule := string(object) + "|" + string(action)
	for _, role := range r.expandRoles(r.roles[subject]) {
		if slices.Contains(r.rules[role], rule) {
			return true, nil
		}
	}
	return false, nil
}

func (r *RBACMock) GetAllMembersOfTenant() ([]string, error) {
	members := make([]string, 0, len(r.roles))
	for subject := range r.roles {
		members = append(members, subject)
	}
	slices.Sort(members)
	return members, nil
}

// RBACProviderMock hands out one RBACMock per domain, so a test can grant
// roles and later assert on the very same instance.
type RBACProviderMock struct {
	domains map[string]*RBACMock
}

func NewRBACProviderMock() *RBACProviderMock {
	return &RBACProviderMock{domains: map[string]*RBACMock{}}
}

func (p *RBACProviderMock) GetDomainRBAC(domain string) accesscontrol.AccessControl {
	if _, ok := p.domains[domain]; !ok {
		p.domains[domain] = NewRBACMock()
	}
	return p.domains[domain]
}

func (p *RBACProviderMock) DomainsOfUser(user string) ([]string, error) {
	var domains []string
	for domain, rbac := range p.domains {
		if rbac.HasAccess(user) {
			domains = append(domains, domain)
		}
	}
	slices.Sort(domains)
	return domains, nil
}
