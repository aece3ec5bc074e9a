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

package incident

import (
	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/database/repositories"
	"github.com/google/uuid"
)

type statsRepository interface {
	Total(model repositories.Tabler, tenantID uuid.UUID) (int64, error)
	CountWhere(model repositories.Tabler, tenantID uuid.UUID, query string, args ...any) (int64, error)
	CountByStatus(model repositories.Tabler, tenantID uuid.UUID) (map[string]int64, error)
	CountBySeverity(model repositories.Tabler, tenantID uuid.UUID) (map[string]int64, error)
	CountByColumn(model repositories.Tabler, tenantID uuid.UUID, column string) (map[string]int64, error)
}

type Metrics struct {
	Total      int64            `json:"total"`
	Open       int64            `json:"open"`
	Critical   int64            `json:"critical"`
	BySeverity map[string]int64 `json:"bySeverity"`
	ByStatus   map[string]int64 `json:"byStatus"`
	ByType     map[string]int64 `json:"byType"`
}

type MetricsService struct {
	statsRepository statsRepository
}

func NewMetricsService(statsRepository statsRepository) *MetricsService {
	return &MetricsService{statsRepository: statsRepository}
}

// Collect aggregates the incident counters in the database. An incident is
// open as long as it is neither resolved nor closed.
func (s *MetricsService) Collect(tenantID uuid.UUID) (Metrics, error) {
	var metrics Metrics
	var err error

	if metrics.Total, err = s.statsRepository.Total(&models.SecurityIncident{}, tenantID); err != nil {
		return metrics, err
	}
	if metrics.Open, err = s.statsRepository.CountWhere(&models.SecurityIncident{}, tenantID, "status NOT IN ?", []models.IncidentStatus{models.IncidentStatusResolved, models.IncidentStatusClosed}); err != nil {
		return metrics, err
	}
	if metrics.Critical, err = s.statsRepository.CountWhere(&models.SecurityIncident{}, tenantID, "severity = ?", models.SeverityCritical); err != nil {
		return metrics, err
	}
	if metrics.BySeverity, err = s.statsRepository.CountBySeverity(&models.SecurityIncident{}, tenantID); err != nil {
		return metrics, err
	}
	if metrics.ByStatus, err = s.statsRepository.CountByStatus(&models.SecurityIncident{}, tenantID); err != nil {
		return metrics, err
	}
	if metrics.ByType, err = s.statsRepository.CountByColumn(&models.SecurityIncident{}, tenantID, "incident_type"); err != nil {
		return metrics, err
	}

	return metrics, nil
}
