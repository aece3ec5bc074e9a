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
	"gorm.io/gorm/clause"
)

type AssessmentRepository struct {
	*TenantScopedRepository[models.Assessment]
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{
		TenantScopedRepository: NewTenantScopedRepository[models.Assessment](db, "created_at DESC", "title", "framework"),
		db:                     db,
	}
}

type AssessmentQuestionRepository struct {
	*TenantScopedRepository[models.AssessmentQuestion]
	db *gorm.DB
}

func NewAssessmentQuestionRepository(db *gorm.DB) *AssessmentQuestionRepository {
	return &AssessmentQuestionRepository{
		TenantScopedRepository: NewTenantScopedRepository[models.AssessmentQuestion](db, "created_at ASC", "text"),
		db:                     db,
	}
}

// CountForFramework counts the questions belonging to a framework. Questions
// without a control are framework agnostic and always count.
func (g *AssessmentQuestionRepository) CountForFramework(tenantID uuid.UUID, framework string) (int64, error) {
	var count int64
	err := g.db.Model(&models.AssessmentQuestion{}).
		Joins("LEFT JOIN assessment_controls ON assessment_questions.control_id = assessment_controls.id").
		Joins("LEFT JOIN assessment_domains ON assessment_controls.domain_id = assessment_domains.id").
		Where("assessment_questions.tenant_id = ?", tenantID).
		Where("assessment_questions.control_id IS NULL OR assessment_domains.framework = ?", framework).
		Count(&count).Error
	return count, err
}

type AssessmentResponseRepository struct {
	*TenantScopedRepository[models.AssessmentResponse]
	db *gorm.DB
}

func NewAssessmentResponseRepository(db *gorm.DB) *AssessmentResponseRepository {
	return &AssessmentResponseRepository{
		TenantScopedRepository: NewTenantScopedRepository[models.AssessmentResponse](db, "created_at ASC"),
		db:                     db,
	}
}

// UpsertResponse writes a single answer. Answering the same question twice
// replaces the previous answer instead of inserting a second row.
func (g *AssessmentResponseRepository) UpsertResponse(tx *gorm.DB, response *models.AssessmentResponse) error {
	return g.GetDB(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "assessment_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answer", "answered_by", "updated_at"}),
	}).Create(response).Error
}

func (g *AssessmentResponseRepository) ListByAssessment(assessmentID uuid.UUID) ([]models.AssessmentResponse, error) {
	var responses []models.AssessmentResponse
	err := g.db.Where("assessment_id = ?", assessmentID).Find(&responses).Error
	return responses, err
}
