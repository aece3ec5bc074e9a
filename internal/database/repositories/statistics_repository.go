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
	"time"

	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatisticsRepository is the single query source for every dashboard
// aggregate. All module metrics endpoints read through it, so two screens
// showing the "same" number can never drift apart.
type StatisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

type groupCount struct {
	Key   string
	Count int64
}

func (g *StatisticsRepository) countGrouped(model Tabler, tenantID uuid.UUID, column string) (map[string]int64, error) {
	var rows []groupCount
	err := g.db.Model(model).
		Select(column+" AS key, COUNT(*) AS count").
		Where("tenant_id = ?", tenantID).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make(map[string]int64, len(rows))
	for _, r := range rows {
		res[r.Key] = r.Count
	}
	return res, nil
}

func (g *StatisticsRepository) count(model Tabler, tenantID uuid.UUID, query string, args ...any) (int64, error) {
	var count int64
	q := g.db.Model(model).Where("tenant_id = ?", tenantID)
	if query != "" {
		q = q.Where(query, args...)
	}
	err := q.Count(&count).Error
	return count, err
}

func (g *StatisticsRepository) Total(model Tabler, tenantID uuid.UUID) (int64, error) {
	return g.count(model, tenantID, "")
}

func (g *StatisticsRepository) CountWhere(model Tabler, tenantID uuid.UUID, query string, args ...any) (int64, error) {
	return g.count(model, tenantID, query, args...)
}

func (g *StatisticsRepository) CountByStatus(model Tabler, tenantID uuid.UUID) (map[string]int64, error) {
	return g.countGrouped(model, tenantID, "status")
}

func (g *StatisticsRepository) CountBySeverity(model Tabler, tenantID uuid.UUID) (map[string]int64, error) {
	return g.countGrouped(model, tenantID, "severity")
}

func (g *StatisticsRepository) CountByColumn(model Tabler, tenantID uuid.UUID, column string) (map[string]int64, error) {
	return g.countGrouped(model, tenantID, column)
}

// AverageScaleAnswer computes the mean numeric value over all scale answers of
// an assessment.
func (g *StatisticsRepository) AverageScaleAnswer(assessmentID uuid.UUID) (float64, error) {
	var avg *float64
	err := g.db.Model(&models.AssessmentResponse{}).
		Select("AVG((answer->>'value')::numeric)").
		Where("assessment_id = ? AND answer->>'kind' = 'scale'", assessmentID).
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (g *SnapshotRepository) Create(snapshot *models.StatSnapshot) error {
	return g.db.Create(snapshot).Error
}

func (g *SnapshotRepository) ListSince(tenantID uuid.UUID, since time.Time) ([]models.StatSnapshot, error) {
	var snapshots []models.StatSnapshot
	err := g.db.Where("tenant_id = ? AND captured_at >= ?", tenantID, since).
		Order("captured_at ASC").Find(&snapshots).Error
	return snapshots, err
}
