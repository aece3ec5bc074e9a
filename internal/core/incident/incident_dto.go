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
	"time"

	"github.com/conformo/conformo/internal/database"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
)

type createRequest struct {
	Title           string     `json:"title" validate:"required"`
	IncidentType    string     `json:"incidentType" validate:"omitempty,oneof=malware phishing data_breach unauthorized_access denial_of_service other"`
	Severity        string     `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	AffectedSystems []string   `json:"affectedSystems"`
	DetectedAt      *time.Time `json:"detectedAt"`
	ReportedBy      string     `json:"reportedBy"`
	AssignedTo      string     `json:"assignedTo"`
}

func (r createRequest) ToModel(tenantID uuid.UUID) models.SecurityIncident {
	incidentType := models.IncidentType(r.IncidentType)
	if incidentType == "" {
		incidentType = models.IncidentTypeOther
	}
	severity := models.Severity(r.Severity)
	if severity == "" {
		severity = models.SeverityLow
	}

	systems, _ := database.JSONFromValue(r.AffectedSystems)

	return models.SecurityIncident{
		TenantModel:     models.TenantModel{TenantID: tenantID},
		Title:           r.Title,
		IncidentType:    incidentType,
		Severity:        severity,
		Status:          models.IncidentStatusOpen,
		AffectedSystems: systems,
		DetectedAt:      r.DetectedAt,
		ReportedBy:      r.ReportedBy,
		AssignedTo:      r.AssignedTo,
	}
}

type patchRequest struct {
	Title           *string    `json:"title"`
	IncidentType    *string    `json:"incidentType" validate:"omitempty,oneof=malware phishing data_breach unauthorized_access denial_of_service other"`
	Severity        *string    `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	Status          *string    `json:"status" validate:"omitempty,oneof=open investigating contained resolved closed"`
	AffectedSystems *[]string  `json:"affectedSystems"`
	DetectedAt      *time.Time `json:"detectedAt"`
	ReportedBy      *string    `json:"reportedBy"`
	AssignedTo      *string    `json:"assignedTo"`
}

func (r patchRequest) ApplyToModel(m *models.SecurityIncident) bool {
	updated := false
	if r.Title != nil {
		updated = true
		m.Title = *r.Title
	}
	if r.IncidentType != nil {
		updated = true
		m.IncidentType = models.IncidentType(*r.IncidentType)
	}
	if r.Severity != nil {
		updated = true
		m.Severity = models.Severity(*r.Severity)
	}
	if r.Status != nil {
		updated = true
		m.Status = models.IncidentStatus(*r.Status)
		if m.Status == models.IncidentStatusResolved && m.ResolvedAt == nil {
			now := time.Now()
			m.ResolvedAt = &now
		}
	}
	if r.AffectedSystems != nil {
		updated = true
		systems, _ := database.JSONFromValue(*r.AffectedSystems)
		m.AffectedSystems = systems
	}
	if r.DetectedAt != nil {
		updated = true
		m.DetectedAt = r.DetectedAt
	}
	if r.ReportedBy != nil {
		updated = true
		m.ReportedBy = *r.ReportedBy
	}
	if r.AssignedTo != nil {
		updated = true
		m.AssignedTo = *r.AssignedTo
	}
	return updated
}
