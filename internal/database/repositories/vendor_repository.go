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

type VendorCommunicationRepository struct {
	*TenantScopedRepository[models.VendorCommunication]
	db *gorm.DB
}

func NewVendorCommunicationRepository(db *gorm.DB) *VendorCommunicationRepository {
	return &VendorCommunicationRepository{
		TenantScopedRepository: NewTenantScopedRepository[models.VendorCommunication](db, "created_at DESC", "subject", "message"),
		db:                     db,
	}
}

func (g *VendorCommunicationRepository) ListByVendor(tenantID, vendorID uuid.UUID) ([]models.VendorCommunication, error) {
	var communications []models.VendorCommunication
	err := g.db.Where("tenant_id = ? AND vendor_id = ?", tenantID, vendorID).
		Order("created_at DESC").Find(&communications).Error
	return communications, err
}

type VendorRiskActionRepository struct {
	*TenantScopedRepository[models.VendorRiskAction]
	db *gorm.DB
}

func NewVendorRiskActionRepository(db *gorm.DB) *VendorRiskActionRepository {
	return &VendorRiskActionRepository{
		TenantScopedRepository: NewTenantScopedRepository[models.VendorRiskAction](db, "due_date ASC NULLS LAST, created_at ASC", "title", "responsible"),
		db:                     db,
	}
}

func (g *VendorRiskActionRepository) ListByVendor(tenantID, vendorID uuid.UUID) ([]models.VendorRiskAction, error) {
	var actions []models.VendorRiskAction
	err := g.db.Where("tenant_id = ? AND vendor_id = ?", tenantID, vendorID).
		Order("due_date ASC NULLS LAST, created_at ASC").Find(&actions).Error
	return actions, err
}
