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

package privacy

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
}

// Metrics is the aggregate the privacy dashboard renders. All numbers are
// computed in the database, never by iterating rows in the handler.
type Metrics struct {
	InventoryTotal        int64            `json:"inventoryTotal"`
	SensitiveDataCount    int64            `json:"sensitiveDataCount"`
	ActiveLegalBases      int64            `json:"activeLegalBases"`
	ConsentsByStatus      map[string]int64 `json:"consentsByStatus"`
	RequestsTotal         int64            `json:"requestsTotal"`
	RequestsPending       int64            `json:"requestsPending"`
	RequestsOverdue       int64            `json:"requestsOverdue"`
	OpenIncidents         int64            `json:"openIncidents"`
	IncidentsBySeverity   map[string]int64 `json:"incidentsBySeverity"`
	ProcessingActivities  int64            `json:"processingActivities"`
	InternationalTransfer int64            `json:"internationalTransfer"`
}

type MetricsService struct {
	statsRepository statsRepository
}

func NewMetricsService(statsRepository statsRepository) *MetricsService {
	return &MetricsService{statsRepository: statsRepository}
}

func (s *MetricsService) Collect(tenantID uuid.UUID) (Metrics, error) {
	var metrics Metrics
	var err error

	if metrics.InventoryTotal, err = s.statsRepository.Total(&models.DataInventoryItem{}, tenantID); err != nil {
		return metrics, err
	}
	if metrics.SensitiveDataCount, err = s.statsRepository.CountWhere(&models.DataInventoryItem{}, tenantID, "sensitivity = ?", models.DataSensitivitySensitive); err != nil {
		return metrics, err
	}
	if metrics.ActiveLegalBases, err = s.statsRepository.CountWhere(&models.LegalBasis{}, tenantID, "status = ?", models.LegalBasisStatusActive); err != nil {
		return metrics, err
	}
	if metrics.ConsentsByStatus, err = s.statsRepository.CountByStatus(&models.Consent{}, tenantID); err != nil {
		return metrics, err
	}
	if metrics.RequestsTotal, err = s.statsRepository.Total(&models.DataSubjectRequest{}, tenantID); err != nil {
		return metrics, err
	}
	if metrics.RequestsPending, err = s.statsRepository.CountWhere(&models.DataSubjectRequest{}, tenantID, "status IN ?", []models.DSRStatus{models.DSRStatusReceived, models.DSRStatusInProgress}); err != nil {
		return metrics, err
	}
	if metrics.RequestsOverdue, err = s.statsRepository.CountWhere(&models.DataSubjectRequest{}, tenantID, "status IN ? AND due_date < now()", []models.DSRStatus{models.DSRStatusReceived, models.DSRStatusInProgress}); err != nil {
		return metrics, err
	}
	if metrics.OpenIncidents, err = s.statsRepository.CountWhere(&models.PrivacyIncident{}, tenantID, "status != ?", models.PrivacyIncidentStatusClosed); err != nil {
		return metrics, err
	}
	if metrics.IncidentsBySeverity, err = s.statsRepository.CountBySeverity(&models.PrivacyIncident{}, tenantID); err != nil {
		return metrics, err
	}
	if metrics.ProcessingActivities, err = s.statsRepository.Total(&models.ProcessingActivity{}, tenantID); err != nil {
		return metrics, err
	}
	if metrics.InternationalTransfer, err = s.statsRepository.CountWhere(&models.ProcessingActivity{}, tenantID, "international_transfer = true"); err != nil {
		return metrics, err
	}

	return metrics, nil
}
