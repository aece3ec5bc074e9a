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

package compliance

import (
	"time"

	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
)

type createRequest struct {
	Framework          string     `json:"framework" validate:"required"`
	ControlID          string     `json:"controlId" validate:"required"`
	Description        string     `json:"description"`
	Status             string     `json:"status" validate:"omitempty,oneof=compliant non_compliant partially_compliant not_assessed"`
	EvidenceURL        string     `json:"evidenceUrl" validate:"omitempty,url"`
	LastAssessmentDate *time.Time `json:"lastAssessmentDate"`
	NextAssessmentDate *time.Time `json:"nextAssessmentDate"`
	Responsible        string     `json:"responsible"`
}

func (r createRequest) ToModel(tenantID uuid.UUID) models.ComplianceRecord {
	status := models.ComplianceStatus(r.Status)
	if status == "" {
		status = models.ComplianceStatusNotAssessed
	}
	return models.ComplianceRecord{
		TenantModel:        models.TenantModel{TenantID: tenantID},
		Framework:          r.Framework,
		ControlID:          r.ControlID,
		Description:        r.Description,
		Status:             status,
		EvidenceURL:        r.EvidenceURL,
		LastAssessmentDate: r.LastAssessmentDate,
		NextAssessmentDate: r.NextAssessmentDate,
		Responsible:        r.Responsible,
	}
}

type patchRequest struct {
	Framework          *string    `json:"framework"`
	ControlID          *string    `json:"controlId"`
	Description        *string    `json:"description"`
	Status             *string    `json:"status" validate:"omitempty,oneof=compliant non_compliant partially_compliant not_assessed"`
	EvidenceURL        *string    `json:"evidenceUrl" validate:"omitempty,url"`
	LastAssessmentDate *time.Time `json:"lastAssessmentDate"`
	NextAssessmentDate *time.Time `json:"nextAssessmentDate"`
	Responsible        *string    `json:"responsible"`
}

func (r patchRequest) ApplyToModel(m *models.ComplianceRecord) bool {
	updated := false
	if r.Framework != nil {
		updated = true
		m.Framework = *r.Framework
	}
	if r.ControlID != nil {
		updated = true
		m.ControlID = *r.ControlID
	}
	if r.Description != nil {
		updated = true
		m.Description = *r.Description
	}
	if r.Status != nil {
		updated = true
		m.Status = models.ComplianceStatus(*r.Status)
		// a status change counts as an assessment
		now := time.Now()
		m.LastAssessmentDate = &now
	}
	if r.EvidenceURL != nil {
		updated = true
		m.EvidenceURL = *r.EvidenceURL
	}
	if r.LastAssessmentDate != nil {
		updated = true
		m.LastAssessmentDate = r.LastAssessmentDate
	}
	if r.NextAssessmentDate != nil {
		updated = true
		m.NextAssessmentDate = r.NextAssessmentDate
	}
	if r.Responsible != nil {
		updated = true
		m.Responsible = *r.Responsible
	}
	return updated
}
