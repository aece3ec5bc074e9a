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

type WorkingPaperRepository struct {
	*TenantScopedRepository[models.WorkingPaper]
	db *gorm.DB
}

func NewWorkingPaperRepository(db *gorm.DB) *WorkingPaperRepository {
	return &WorkingPaperRepository{
		TenantScopedRepository: NewTenantScopedRepository[models.WorkingPaper](db, "created_at ASC", "title", "reviewer"),
		db:                     db,
	}
}

func (g *WorkingPaperRepository) ListByReport(tenantID, reportID uuid.UUID) ([]models.WorkingPaper, error) {
	var papers []models.WorkingPaper
	err := g.db.Where("tenant_id = ? AND audit_report_id = ?", tenantID, reportID).
		Order("created_at ASC").Find(&papers).Error
	return papers, err
}
