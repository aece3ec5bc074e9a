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

package audit

import (
	"time"

	"github.com/conformo/conformo/internal/database"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
)

// --- audit reports ---

type reportCreateRequest struct {
	Title           string     `json:"title" validate:"required"`
	AuditType       string     `json:"auditType" validate:"omitempty,oneof=internal external regulatory supplier"`
	Scope           string     `json:"scope"`
	Findings        string     `json:"findings"`
	Recommendations string     `json:"recommendations"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
}

func (r reportCreateRequest) ToModel(tenantID uuid.UUID) models.AuditReport {
	auditType := models.AuditType(r.AuditType)
	if auditType == "" {
		auditType = models.AuditTypeInternal
	}
	return models.AuditReport{
		TenantModel:     models.TenantModel{TenantID: tenantID},
		Title:           r.Title,
		AuditType:       auditType,
		Status:          models.AuditStatusPlanned,
		Scope:           r.Scope,
		Findings:        r.Findings,
		Recommendations: r.Recommendations,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
	}
}

type reportPatchRequest struct {
	Title           *string    `json:"title"`
	AuditType       *string    `json:"auditType" validate:"omitempty,oneof=internal external regulatory supplier"`
	Status          *string    `json:"status" validate:"omitempty,oneof=planned in_progress completed cancelled"`
	Scope           *string    `json:"scope"`
	Findings        *string    `json:"findings"`
	Recommendations *string    `json:"recommendations"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
}

func (r reportPatchRequest) ApplyToModel(m *models.AuditReport) bool {
	updated := false
	if r.Title != nil {
		updated = true
		m.Title = *r.Title
	}
	if r.AuditType != nil {
		updated = true
		m.AuditType = models.AuditType(*r.AuditType)
	}
	if r.Status != nil {
		updated = true
		m.Status = models.AuditStatus(*r.Status)
	}
	if r.Scope != nil {
		updated = true
		m.Scope = *r.Scope
	}
	if r.Findings != nil {
		updated = true
		m.Findings = *r.Findings
	}
	if r.Recommendations != nil {
		updated = true
		m.Recommendations = *r.Recommendations
	}
	if r.StartDate != nil {
		updated = true
		m.StartDate = r.StartDate
	}
	if r.EndDate != nil {
		updated = true
		m.EndDate = r.EndDate
	}
	return updated
}

// --- working paper templates ---

type templateCreateRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Checklist   []string `json:"checklist"`
}

func (r templateCreateRequest) ToModel(tenantID uuid.UUID) models.WorkingPaperTemplate {
	checklist, _ := database.JSONFromValue(r.Checklist)
	return models.WorkingPaperTemplate{
		TenantModel: models.TenantModel{TenantID: tenantID},
		Name:        r.Name,
		Description: r.Description,
		Checklist:   checklist,
	}
}

type templatePatchRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Checklist   *[]string `json:"checklist"`
}

func (r templatePatchRequest) ApplyToModel(m *models.WorkingPaperTemplate) bool {
	updated := false
	if r.Name != nil {
		updated = true
		m.Name = *r.Name
	}
	if r.Description != nil {
		updated = true
		m.Description = *r.Description
	}
	if r.Checklist != nil {
		updated = true
		checklist, _ := database.JSONFromValue(*r.Checklist)
		m.Checklist = checklist
	}
	return updated
}

// --- working papers ---

type paperCreateRequest struct {
	TemplateID *uuid.UUID     `json:"templateId"`
	Title      string         `json:"title" validate:"required"`
	Content    map[string]any `json:"content"`
	Reviewer   string         `json:"reviewer"`
}

func (r paperCreateRequest) toModel(tenantID, reportID uuid.UUID) models.WorkingPaper {
	content, _ := database.JSONFromValue(r.Content)
	return models.WorkingPaper{
		TenantModel:   models.TenantModel{TenantID: tenantID},
		AuditReportID: reportID,
		TemplateID:    r.TemplateID,
		Title:         r.Title,
		Status:        models.WorkingPaperStatusDraft,
		Content:       content,
		Reviewer:      r.Reviewer,
	}
}

type paperPatchRequest struct {
	Title    *string         `json:"title"`
	Status   *string         `json:"status" validate:"omitempty,oneof=draft in_review approved"`
	Content  *map[string]any `json:"content"`
	Reviewer *string         `json:"reviewer"`
}

func (r paperPatchRequest) applyToModel(m *models.WorkingPaper) bool {
	updated := false
	if r.Title != nil {
		updated = true
		m.Title = *r.Title
	}
	if r.Status != nil {
		updated = true
		m.Status = models.WorkingPaperStatus(*r.Status)
	}
	if r.Content != nil {
		updated = true
		content, _ := database.JSONFromValue(*r.Content)
		m.Content = content
	}
	if r.Reviewer != nil {
		updated = true
		m.Reviewer = *r.Reviewer
	}
	return updated
}
