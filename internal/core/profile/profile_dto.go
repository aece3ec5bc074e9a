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
	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	TenantSlug string `json:"tenantSlug" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token   string         `json:"token"`
	Profile models.Profile `json:"profile"`
}

type createRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required"`
	JobTitle string `json:"jobTitle"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=member admin"`
}

func (c createRequest) toModel(tenantID uuid.UUID) (models.Profile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Profile{}, err
	}

	return models.Profile{
		TenantID:     tenantID,
		Email:        c.Email,
		FullName:     c.FullName,
		JobTitle:     c.JobTitle,
		PasswordHash: string(hash),
	}, nil
}

type patchRequest struct {
	FullName *string `json:"fullName"`
	JobTitle *string `json:"jobTitle"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

func (p patchRequest) applyToModel(profile *models.Profile) (bool, error) {
	updated := false

	if p.FullName != nil {
		updated = true
		profile.FullName = *p.FullName
	}

	if p.JobTitle != nil {
		updated = true
		profile.JobTitle = *p.JobTitle
	}

	if p.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*p.Password), bcrypt.DefaultCost)
		if err != nil {
			return updated, err
		}
		updated = true
		profile.PasswordHash = string(hash)
	}

	return updated, nil
}
