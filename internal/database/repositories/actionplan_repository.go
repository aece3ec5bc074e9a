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

type ActionPlanRepository struct {
	*TenantScopedRepository[models.ActionPlan]
	db *gorm.DB
}

func NewActionPlanRepository(db *gorm.DB) *ActionPlanRepository {
	return &ActionPlanRepository{
		TenantScopedRepository: NewTenantScopedRepository[models.ActionPlan](db, "created_at DESC", "title", "description"),
		db:                     db,
	}
}

func (g *ActionPlanRepository) ReadWithActivities(tenantID, id uuid.UUID) (models.ActionPlan, error) {
	var plan models.ActionPlan
	err := g.db.Preload("Activities").Where("tenant_id = ?", tenantID).First(&plan, "id = ?", id).Error
	return plan, err
}

type ActionPlanActivityRepository struct {
	*TenantScopedRepository[models.ActionPlanActivity]
	db *gorm.DB
}

func NewActionPlanActivityRepository(db *gorm.DB) *ActionPlanActivityRepository {
	return &ActionPlanActivityRepository{
		TenantScopedRepository: NewTenantScopedRepository[models.ActionPlanActivity](db, "deadline ASC NULLS LAST, created_at ASC", "title", "responsible"),
		db:                     db,
	}
}

func (g *ActionPlanActivityRepository) ListByPlan(tx *gorm.DB, planID uuid.UUID) ([]models.ActionPlanActivity, error) {
	var activities []models.ActionPlanActivity
	err := g.GetDB(tx).Where("action_plan_id = ?", planID).Order("created_at ASC").Find(&activities).Error
	return activities, err
}
