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
	"time"

	"github.com/conformo/conformo/internal/database"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
)

// --- legal bases ---

type legalBasisCreateRequest struct {
	Name        string     `json:"name" validate:"required"`
	LegalGround string     `json:"legalGround" validate:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status" validate:"omitempty,oneof=active under_review retired"`
	ReviewDate  *time.Time `json:"reviewDate"`
}

func (r legalBasisCreateRequest) ToModel(tenantID uuid.UUID) models.LegalBasis {
	status := models.LegalBasisStatus(r.Status)
	if status == "" {
		status = models.LegalBasisStatusActive
	}
	return models.LegalBasis{
		TenantModel: models.TenantModel{TenantID: tenantID},
		Name:        r.Name,
		LegalGround: r.LegalGround,
		Description: r.Description,
		Status:      status,
		ReviewDate:  r.ReviewDate,
	}
}

type legalBasisPatchRequest struct {
	Name        *string    `json:"name"`
	LegalGround *string    `json:"legalGround"`
	Description *string    `json:"description"`
	Status      *string    `json:"status" validate:"omitempty,oneof=active under_review retired"`
	ReviewDate  *time.Time `json:"reviewDate"`
}

func (r legalBasisPatchRequest) ApplyToModel(m *models.LegalBasis) bool {
	updated := false
	if r.Name != nil {
		updated = true
		m.Name = *r.Name
	}
	if r.LegalGround != nil {
		updated = true
		m.LegalGround = *r.LegalGround
	}
	if r.Description != nil {
		updated = true
		m.Description = *r.Description
	}
	if r.Status != nil {
		updated = true
		m.Status = models.LegalBasisStatus(*r.Status)
	}
	if r.ReviewDate != nil {
		updated = true
		m.ReviewDate = r.ReviewDate
	}
	return updated
}

// --- data inventory ---

type inventoryCreateRequest struct {
	SystemName      string `json:"systemName" validate:"required"`
	DataCategory    string `json:"dataCategory" validate:"required"`
	Sensitivity     string `json:"sensitivity" validate:"omitempty,oneof=public internal confidential sensitive"`
	DataOrigin      string `json:"dataOrigin"`
	RetentionPeriod string `json:"retentionPeriod"`
	Responsible     string `json:"responsible"`
}

func (r inventoryCreateRequest) ToModel(tenantID uuid.UUID) models.DataInventoryItem {
	sensitivity := models.DataSensitivity(r.Sensitivity)
	if sensitivity == "" {
		sensitivity = models.DataSensitivityInternal
	}
	return models.DataInventoryItem{
		TenantModel:     models.TenantModel{TenantID: tenantID},
		SystemName:      r.SystemName,
		DataCategory:    r.DataCategory,
		Sensitivity:     sensitivity,
		DataOrigin:      r.DataOrigin,
		RetentionPeriod: r.RetentionPeriod,
		Responsible:     r.Responsible,
	}
}

type inventoryPatchRequest struct {
	SystemName      *string `json:"systemName"`
	DataCategory    *string `json:"dataCategory"`
	Sensitivity     *string `json:"sensitivity" validate:"omitempty,oneof=public internal confidential sensitive"`
	DataOrigin      *string `json:"dataOrigin"`
	RetentionPeriod *string `json:"retentionPeriod"`
	Responsible     *string `json:"responsible"`
}

func (r inventoryPatchRequest) ApplyToModel(m *models.DataInventoryItem) bool {
	updated := false
	if r.SystemName != nil {
		updated = true
		m.SystemName = *r.SystemName
	}
	if r.DataCategory != nil {
		updated = true
		m.DataCategory = *r.DataCategory
	}
	if r.Sensitivity != nil {
		updated = true
		m.Sensitivity = models.DataSensitivity(*r.Sensitivity)
	}
	if r.DataOrigin != nil {
		updated = true
		m.DataOrigin = *r.DataOrigin
	}
	if r.RetentionPeriod != nil {
		updated = true
		m.RetentionPeriod = *r.RetentionPeriod
	}
	if r.Responsible != nil {
		updated = true
		m.Responsible = *r.Responsible
	}
	return updated
}

// --- consents ---

type consentCreateRequest struct {
	LegalBasisID *uuid.UUID `json:"legalBasisId"`
	SubjectEmail string     `json:"subjectEmail" validate:"required,email"`
	Purpose      string     `json:"purpose" validate:"required"`
	GrantedAt    *time.Time `json:"grantedAt"`
}

func (r consentCreateRequest) ToModel(tenantID uuid.UUID) models.Consent {
	grantedAt := r.GrantedAt
	if grantedAt == nil {
		now := time.Now()
		grantedAt = &now
	}
	return models.Consent{
		TenantModel:  models.TenantModel{TenantID: tenantID},
		LegalBasisID: r.LegalBasisID,
		SubjectEmail: r.SubjectEmail,
		Purpose:      r.Purpose,
		Status:       models.ConsentStatusGranted,
		GrantedAt:    grantedAt,
	}
}

type consentPatchRequest struct {
	Purpose *string `json:"purpose"`
	Status  *string `json:"status" validate:"omitempty,oneof=granted revoked expired"`
}

func (r consentPatchRequest) ApplyToModel(m *models.Consent) bool {
	updated := false
	if r.Purpose != nil {
		updated = true
		m.Purpose = *r.Purpose
	}
	if r.Status != nil {
		updated = true
		m.Status = models.ConsentStatus(*r.Status)
		// revocations get a timestamp exactly once
		if m.Status == models.ConsentStatusRevoked && m.RevokedAt == nil {
			now := time.Now()
			m.RevokedAt = &now
		}
	}
	return updated
}

// --- data subject requests ---

// dsrResponseDays is the legal answer window for a data subject request.
const dsrResponseDays = 15

type dsrCreateRequest struct {
	RequesterEmail string     `json:"requesterEmail" validate:"required,email"`
	RequestType    string     `json:"requestType" validate:"required,oneof=access rectification deletion portability objection"`
	Description    string     `json:"description"`
	DueDate        *time.Time `json:"dueDate"`
}

func (r dsrCreateRequest) ToModel(tenantID uuid.UUID) models.DataSubjectRequest {
	dueDate := time.Now().AddDate(0, 0, dsrResponseDays)
	if r.DueDate != nil {
		dueDate = *r.DueDate
	}
	return models.DataSubjectRequest{
		TenantModel:    models.TenantModel{TenantID: tenantID},
		RequesterEmail: r.RequesterEmail,
		RequestType:    models.DSRType(r.RequestType),
		Status:         models.DSRStatusReceived,
		Description:    r.Description,
		DueDate:        dueDate,
	}
}

type dsrPatchRequest struct {
	Status      *string    `json:"status" validate:"omitempty,oneof=received in_progress completed rejected"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

func (r dsrPatchRequest) ApplyToModel(m *models.DataSubjectRequest) bool {
	updated := false
	if r.Status != nil {
		updated = true
		m.Status = models.DSRStatus(*r.Status)
		if m.Status == models.DSRStatusCompleted && m.CompletedAt == nil {
			now := time.Now()
			m.CompletedAt = &now
		}
	}
	if r.Description != nil {
		updated = true
		m.Description = *r.Description
	}
	if r.DueDate != nil {
		updated = true
		m.DueDate = *r.DueDate
	}
	return updated
}

// --- privacy incidents ---

type privacyIncidentCreateRequest struct {
	Title             string     `json:"title" validate:"required"`
	Description       string     `json:"description"`
	Severity          string     `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	OccurredAt        *time.Time `json:"occurredAt"`
	DPONotified       bool       `json:"dpoNotified"`
	AuthorityNotified bool       `json:"authorityNotified"`
}

func (r privacyIncidentCreateRequest) ToModel(tenantID uuid.UUID) models.PrivacyIncident {
	severity := models.Severity(r.Severity)
	if severity == "" {
		severity = models.SeverityLow
	}
	return models.PrivacyIncident{
		TenantModel:       models.TenantModel{TenantID: tenantID},
		Title:             r.Title,
		Description:       r.Description,
		Severity:          severity,
		Status:            models.PrivacyIncidentStatusOpen,
		OccurredAt:        r.OccurredAt,
		DPONotified:       r.DPONotified,
		AuthorityNotified: r.AuthorityNotified,
	}
}

type privacyIncidentPatchRequest struct {
	Title             *string    `json:"title"`
	Description       *string    `json:"description"`
	Severity          *string    `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	Status            *string    `json:"status" validate:"omitempty,oneof=open investigating contained closed"`
	OccurredAt        *time.Time `json:"occurredAt"`
	DPONotified       *bool      `json:"dpoNotified"`
	AuthorityNotified *bool      `json:"authorityNotified"`
}

func (r privacyIncidentPatchRequest) ApplyToModel(m *models.PrivacyIncident) bool {
	updated := false
	if r.Title != nil {
		updated = true
		m.Title = *r.Title
	}
	if r.Description != nil {
		updated = true
		m.Description = *r.Description
	}
	if r.Severity != nil {
		updated = true
		m.Severity = models.Severity(*r.Severity)
	}
	if r.Status != nil {
		updated = true
		m.Status = models.PrivacyIncidentStatus(*r.Status)
		if m.Status == models.PrivacyIncidentStatusContained && m.ContainedAt == nil {
			now := time.Now()
			m.ContainedAt = &now
		}
	}
	if r.OccurredAt != nil {
		updated = true
		m.OccurredAt = r.OccurredAt
	}
	if r.DPONotified != nil {
		updated = true
		m.DPONotified = *r.DPONotified
	}
	if r.AuthorityNotified != nil {
		updated = true
		m.AuthorityNotified = *r.AuthorityNotified
	}
	return updated
}

// --- processing activities ---

type processingActivityCreateRequest struct {
	LegalBasisID          *uuid.UUID `json:"legalBasisId"`
	Name                  string     `json:"name" validate:"required"`
	Purpose               string     `json:"purpose"`
	DataCategories        []string   `json:"dataCategories"`
	InternationalTransfer bool       `json:"internationalTransfer"`
	RetentionPeriod       string     `json:"retentionPeriod"`
}

func (r processingActivityCreateRequest) ToModel(tenantID uuid.UUID) models.ProcessingActivity {
	categories, _ := database.JSONFromValue(r.DataCategories)
	return models.ProcessingActivity{
		TenantModel:           models.TenantModel{TenantID: tenantID},
		LegalBasisID:          r.LegalBasisID,
		Name:                  r.Name,
		Purpose:               r.Purpose,
		DataCategories:        categories,
		InternationalTransfer: r.InternationalTransfer,
		RetentionPeriod:       r.RetentionPeriod,
	}
}

type processingActivityPatchRequest struct {
	LegalBasisID          *uuid.UUID `json:"legalBasisId"`
	Name                  *string    `json:"name"`
	Purpose               *string    `json:"purpose"`
	DataCategories        *[]string  `json:"dataCategories"`
	InternationalTransfer *bool      `json:"internationalTransfer"`
	RetentionPeriod       *string    `json:"retentionPeriod"`
}

func (r processingActivityPatchRequest) ApplyToModel(m *models.ProcessingActivity) bool {
	updated := false
	if r.LegalBasisID != nil {
		updated = true
		m.LegalBasisID = r.LegalBasisID
	}
	if r.Name != nil {
		updated = true
		m.Name = *r.Name
	}
	if r.Purpose != nil {
		updated = true
		m.Purpose = *r.Purpose
	}
	if r.DataCategories != nil {
		updated = true
		categories, _ := database.JSONFromValue(*r.DataCategories)
		m.DataCategories = categories
	}
	if r.InternationalTransfer != nil {
		updated = true
		m.InternationalTransfer = *r.InternationalTransfer
	}
	if r.RetentionPeriod != nil {
		updated = true
		m.RetentionPeriod = *r.RetentionPeriod
	}
	return updated
}
