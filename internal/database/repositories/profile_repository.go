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

package repositories

import (
	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	*TenantScopedRepository[models.Profile]
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		TenantScopedRepository: NewTenantScopedRepository[models.Profile](db, "full_name ASC", "full_name", "email"),
		db:                     db,
	}
}

func (g *ProfileRepository) ReadByEmail(tenantID uuid.UUID, email string) (models.Profile, error) {
	var p models.Profile
	err := g.db.Where("tenant_id = ? AND email = ?", tenantID, email).First(&p).Error
	return p, err
}

func (g *ProfileRepository) ReadByID(id uuid.UUID) (models.Profile, error) {
	var p models.Profile
	err := g.db.First(&p, "id = ?", id).Error
	return p, err
}

func (g *ProfileRepository) ListByIDs(tenantID uuid.UUID, ids []uuid.UUID) ([]models.Profile, error) {
	var ps []models.Profile
	err := g.db.Where("tenant_id = ? AND id IN ?", tenantID, ids).Order("full_name ASC").Find(&ps).Error
	return ps, err
}
