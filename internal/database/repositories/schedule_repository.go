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

type ScheduleActivityRepository struct {
	*TenantScopedRepository[models.ScheduleActivity]
	db *gorm.DB
}

func NewScheduleActivityRepository(db *gorm.DB) *ScheduleActivityRepository {
	return &ScheduleActivityRepository{
		TenantScopedRepository: NewTenantScopedRepository[models.ScheduleActivity](db, "period_start ASC NULLS LAST, title ASC", "title"),
		db:                     db,
	}
}

func (g *ScheduleActivityRepository) ListByInitiative(tenantID, initiativeID uuid.UUID) ([]models.ScheduleActivity, error) {
	var activities []models.ScheduleActivity
	err := g.db.
		Where("tenant_id = ? AND initiative_id = ?", tenantID, initiativeID).
		Order("period_start ASC NULLS LAST, title ASC").
		Find(&activities).Error
	return activities, err
}
