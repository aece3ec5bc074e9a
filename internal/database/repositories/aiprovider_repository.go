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

type AIProviderRepository struct {
	*TenantScopedRepository[models.AIProvider]
	db *gorm.DB
}

func NewAIProviderRepository(db *gorm.DB) *AIProviderRepository {
	return &AIProviderRepository{
		TenantScopedRepository: NewTenantScopedRepository[models.AIProvider](db, "priority ASC, name ASC", "name"),
		db:                     db,
	}
}

// MakePrimary flags exactly one provider as primary. A single conditional
// update flips the flag for the whole tenant at once - there is no instant at
// which zero or two providers are primary.
func (g *AIProviderRepository) MakePrimary(tx *gorm.DB, tenantID, providerID uuid.UUID) error {
	return g.GetDB(tx).Model(&models.AIProvider{}).
		Where("tenant_id = ?", tenantID).
		Updates(map[string]any{
			"is_primary": gorm.Expr("id = ?", providerID),
			"is_active":  gorm.Expr("is_active OR id = ?", providerID),
		}).Error
}

func (g *AIProviderRepository) ReadPrimary(tenantID uuid.UUID) (models.AIProvider, error) {
	var p models.AIProvider
	err := g.db.Where("tenant_id = ? AND is_primary", tenantID).First(&p).Error
	return p, err
}
