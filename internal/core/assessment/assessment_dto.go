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

package assessment

import (
	"time"

	"github.com/conformo/conformo/internal/database"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
)

// --- domains ---

type domainCreateRequest struct {
	Framework string `json:"framework" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Weight    int    `json:"weight" validate:"omitempty,min=1"`
}

func (r domainCreateRequest) ToModel(tenantID uuid.UUID) models.AssessmentDomain {
	weight := r.Weight
	if weight == 0 {
		weight = 1
	}
	return models.AssessmentDomain{
		TenantModel: models.TenantModel{TenantID: tenantID},
		Framework:   r.Framework,
		Name:        r.Name,
		Weight:      weight,
	}
}

type domainPatchRequest struct {
	Framework *string `json:"framework"`
	Name      *string `json:"name"`
	Weight    *int    `json:"weight" validate:"omitempty,min=1"`
}

func (r domainPatchRequest) ApplyToModel(m *models.AssessmentDomain) bool {
	updated := false
	if r.Framework != nil {
		updated = true
		m.Framework = *r.Framework
	}
	if r.Name != nil {
		updated = true
		m.Name = *r.Name
	}
	if r.Weight != nil {
		updated = true
		m.Weight = *r.Weight
	}
	return updated
}

// --- controls ---

type controlCreateRequest struct {
	DomainID    uuid.UUID `json:"domainId" validate:"required"`
	Code        string    `json:"code" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
}

func (r controlCreateRequest) ToModel(tenantID uuid.UUID) models.AssessmentControl {
	return models.AssessmentControl{
		TenantModel: models.TenantModel{TenantID: tenantID},
		DomainID:    r.DomainID,
		Code:        r.Code,
		Name:        r.Name,
		Description: r.Description,
	}
}

type controlPatchRequest struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r controlPatchRequest) ApplyToModel(m *models.AssessmentControl) bool {
	updated := false
	if r.Code != nil {
		updated = true
		m.Code = *r.Code
	}
	if r.Name != nil {
		updated = true
		m.Name = *r.Name
	}
	if r.Description != nil {
		updated = true
		m.Description = *r.Description
	}
	return updated
}

// --- assessments ---

type assessmentCreateRequest struct {
	Framework string `json:"framework" validate:"required"`
	Title     string `json:"title" validate:"required"`
}

func (r assessmentCreateRequest) ToModel(tenantID uuid.UUID) models.Assessment {
	return models.Assessment{
		TenantModel: models.TenantModel{TenantID: tenantID},
		Framework:   r.Framework,
		Title:       r.Title,
		Status:      models.AssessmentStatusDraft,
	}
}

type assessmentPatchRequest struct {
	Title  *string `json:"title"`
	Status *string `json:"status" validate:"omitempty,oneof=draft in_progress completed"`
}

func (r assessmentPatchRequest) ApplyToModel(m *models.Assessment) bool {
	updated := false
	if r.Title != nil {
		updated = true
		m.Title = *r.Title
	}
	if r.Status != nil {
		updated = true
		m.Status = models.AssessmentStatus(*r.Status)
		now := time.Now()
		if m.Status == models.AssessmentStatusInProgress && m.StartedAt == nil {
			m.StartedAt = &now
		}
		if m.Status == models.AssessmentStatusCompleted && m.CompletedAt == nil {
			m.CompletedAt = &now
		}
	}
	return updated
}

// --- questions ---

type questionCreateRequest struct {
	ControlID *uuid.UUID `json:"controlId"`
	Text      string     `json:"text" validate:"required"`
	Kind      string     `json:"answerKind" validate:"required,oneof=scale bool multiple_choice text numeric date"`
	Options   []string   `json:"options" validate:"required_if=Kind multiple_choice"`
	Weight    int        `json:"weight" validate:"omitempty,min=1"`
}

func (r questionCreateRequest) ToModel(tenantID uuid.UUID) models.AssessmentQuestion {
	weight := r.Weight
	if weight == 0 {
		weight = 1
	}
	options, _ := database.JSONFromValue(r.Options)
	return models.AssessmentQuestion{
		TenantModel: models.TenantModel{TenantID: tenantID},
		ControlID:   r.ControlID,
		Text:        r.Text,
		Kind:        models.AnswerKind(r.Kind),
		Options:     options,
		Weight:      weight,
	}
}

type questionPatchRequest struct {
	Text    *string   `json:"text"`
	Options *[]string `json:"options"`
	Weight  *int      `json:"weight" validate:"omitempty,min=1"`
}

func (r questionPatchRequest) ApplyToModel(m *models.AssessmentQuestion) bool {
	updated := false
	if r.Text != nil {
		updated = true
		m.Text = *r.Text
	}
	if r.Options != nil {
		updated = true
		options, _ := database.JSONFromValue(*r.Options)
		m.Options = options
	}
	if r.Weight != nil {
		updated = true
		m.Weight = *r.Weight
	}
	return updated
}

// --- responses ---

type answerRequest struct {
	QuestionID uuid.UUID `json:"questionId" validate:"required"`
	Answer     Answer    `json:"answer" validate:"required"`
}
