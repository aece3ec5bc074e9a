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

type TenantRepository struct {
	*GormRepository[uuid.UUID, models.Tenant]
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{
		GormRepository: newGormRepository[uuid.UUID, models.Tenant](db),
		db:             db,
	}
}

func (g *TenantRepository) ReadBySlug(slug string) (models.Tenant, error) {
	var t models.Tenant
	err := g.db.Where("slug = ?", slug).First(&t).Error
	return t, err
}

func (g *TenantRepository) List(ids []uuid.UUID) ([]models.Tenant, error) {
	var ts []models.Tenant
	err := g.db.Where("id IN ?", ids).Order("name ASC").Find(&ts).Error
	return ts, err
}
