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

const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Object string

const (
	ObjectTenant     Object = "tenant"
	ObjectProfile    Object = "profile"
	ObjectPrivacy    Object = "privacy"
	ObjectCompliance Object = "compliance"
	ObjectIncident   Object = "incident"
	ObjectAudit      Object = "audit"
	ObjectActionPlan Object = "action-plan"
	ObjectAssessment Object = "assessment"
	ObjectVendor     Object = "vendor"
	ObjectAsset      Object = "asset"
	ObjectAIProvider Object = "ai-provider"
	ObjectSettings   Object = "settings"
	ObjectInitiative Object = "initiative"
)

type AccessControl interface {
	HasAccess(subject string) bool
	GetAllRoles(subject string) []string

	InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions string) error

	GrantRole(subject, role string) error
	RevokeRole(subject, role string) error

	AllowRole(role string, object Object, action []Action) error
	IsAllowed(subject string, object Object, action Action) (bool, error)

	GetAllMembersOfTenant() ([]string, error)
}

type RBACProvider interface {
	GetDomainRBAC(domain string) AccessControl
	DomainsOfUser(user string) ([]string, error)
}
