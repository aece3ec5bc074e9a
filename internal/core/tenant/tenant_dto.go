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
	"github.com/conformo/conformo/internal/database/models"
	"github.com/gosimple/slug"
)

type createRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	Industry     *string `json:"industry"`
	Country      *string `json:"country"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,email"`
}

func (c createRequest) toModel() models.Tenant {
	return models.Tenant{
		Name:         c.Name,
		Slug:         slug.Make(c.Name),
		Description:  c.Description,
		Industry:     c.Industry,
		Country:      c.Country,
		ContactEmail: c.ContactEmail,
	}
}

type patchRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Industry     *string `json:"industry"`
	Country      *string `json:"country"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,email"`
}

func (p patchRequest) applyToModel(tenant *models.Tenant) bool {
	updated := false

	if p.Name != nil {
		updated = true
		tenant.Name = *p.Name
		tenant.Slug = slug.Make(*p.Name)
	}

	if p.Description != nil {
		updated = true
		tenant.Description = *p.Description
	}

	if p.Industry != nil {
		updated = true
		tenant.Industry = p.Industry
	}

	if p.Country != nil {
		updated = true
		tenant.Country = p.Country
	}

	if p.ContactEmail != nil {
		updated = true
		tenant.ContactEmail = p.ContactEmail
	}

	return updated
}

type changeRoleRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	Role   string `json:"role" validate:"required,oneof=member admin owner"`
}

type memberDTO struct {
	models.Profile
	Role string `json:"role"`
}
