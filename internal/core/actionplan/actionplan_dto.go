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

package actionplan

import (
	"time"

	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/utils"
	"github.com/google/uuid"
)

// --- categories ---

type categoryCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (r categoryCreateRequest) ToModel(tenantID uuid.UUID) models.ActionPlanCategory {
	return models.ActionPlanCategory{
		TenantModel: models.TenantModel{TenantID: tenantID},
		Name:        r.Name,
		Description: r.Description,
	}
}

type categoryPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r categoryPatchRequest) ApplyToModel(m *models.ActionPlanCategory) bool {
	updated := false
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

// --- plans ---

type planCreateRequest struct {
	CategoryID     *uuid.UUID `json:"categoryId"`
	Title          string     `json:"title" validate:"required"`
	Description    string     `json:"description"`
	GutGravity     int        `json:"gutGravity" validate:"required,min=1,max=5"`
	GutUrgency     int        `json:"gutUrgency" validate:"required,min=1,max=5"`
	GutTendency    int        `json:"gutTendency" validate:"required,min=1,max=5"`
	BudgetPlanned  float64    `json:"budgetPlanned" validate:"gte=0"`
	BudgetRealized float64    `json:"budgetRealized" validate:"gte=0"`
	DueDate        *time.Time `json:"dueDate"`
}

func (r planCreateRequest) ToModel(tenantID uuid.UUID) models.ActionPlan {
	return models.ActionPlan{
		TenantModel:    models.TenantModel{TenantID: tenantID},
		CategoryID:     r.CategoryID,
		Title:          r.Title,
		Description:    r.Description,
		Status:         models.ActionPlanStatusOpen,
		GutGravity:     r.GutGravity,
		GutUrgency:     r.GutUrgency,
		GutTendency:    r.GutTendency,
		BudgetPlanned:  r.BudgetPlanned,
		BudgetRealized: r.BudgetRealized,
		DueDate:        r.DueDate,
	}
}

type planPatchRequest struct {
	CategoryID     *uuid.UUID `json:"categoryId"`
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Status         *string    `json:"status" validate:"omitempty,oneof=open in_progress done cancelled"`
	GutGravity     *int       `json:"gutGravity" validate:"omitempty,min=1,max=5"`
	GutUrgency     *int       `json:"gutUrgency" validate:"omitempty,min=1,max=5"`
	GutTendency    *int       `json:"gutTendency" validate:"omitempty,min=1,max=5"`
	BudgetPlanned  *float64   `json:"budgetPlanned" validate:"omitempty,gte=0"`
	BudgetRealized *float64   `json:"budgetRealized" validate:"omitempty,gte=0"`
	DueDate        *time.Time `json:"dueDate"`
}

func (r planPatchRequest) ApplyToModel(m *models.ActionPlan) bool {
	updated := false
	if r.CategoryID != nil {
		updated = true
		m.CategoryID = r.CategoryID
	}
	if r.Title != nil {
		updated = true
		m.Title = *r.Title
	}
	if r.Description != nil {
		updated = true
		m.Description = *r.Description
	}
	if r.Status != nil {
		updated = true
		m.Status = models.ActionPlanStatus(*r.Status)
	}
	if r.GutGravity != nil {
		updated = true
		m.GutGravity = *r.GutGravity
	}
	if r.GutUrgency != nil {
		updated = true
		m.GutUrgency = *r.GutUrgency
	}
	if r.GutTendency != nil {
		updated = true
		m.GutTendency = *r.GutTendency
	}
	if r.BudgetPlanned != nil {
		updated = true
		m.BudgetPlanned = *r.BudgetPlanned
	}
	if r.BudgetRealized != nil {
		updated = true
		m.BudgetRealized = *r.BudgetRealized
	}
	if r.DueDate != nil {
		updated = true
		m.DueDate = r.DueDate
	}
	return updated
}

// planDTO decorates a plan with its derived GUT score.
type planDTO struct {
	models.ActionPlan
	GutScore int `json:"gutScore"`
}

func toPlanDTO(plan models.ActionPlan) planDTO {
	return planDTO{ActionPlan: plan, GutScore: plan.GutScore()}
}

// --- activities ---

type activityCreateRequest struct {
	Title             string     `json:"title" validate:"required"`
	Responsible       string     `json:"responsible"`
	Deadline          *time.Time `json:"deadline"`
	Status            string     `json:"status" validate:"omitempty,oneof=pending in_progress completed blocked"`
	CompletionPercent int        `json:"completionPercent" validate:"min=0,max=100"`
	CostEstimated     *float64   `json:"costEstimated" validate:"omitempty,gte=0"`
	CostActual        *float64   `json:"costActual" validate:"omitempty,gte=0"`
	HoursEstimated    *float64   `json:"hoursEstimated" validate:"omitempty,gte=0"`
	HoursActual       *float64   `json:"hoursActual" validate:"omitempty,gte=0"`
}

func (r activityCreateRequest) toModel(tenantID, planID uuid.UUID) models.ActionPlanActivity {
	status := models.ActivityStatus(r.Status)
	if status == "" {
		status = models.ActivityStatusPending
	}

	completion := utils.ClampPercent(r.CompletionPercent)
	if status == models.ActivityStatusCompleted {
		completion = 100
	}

	return models.ActionPlanActivity{
		TenantModel:       models.TenantModel{TenantID: tenantID},
		ActionPlanID:      planID,
		Title:             r.Title,
		Responsible:       r.Responsible,
		Deadline:          r.Deadline,
		Status:            status,
		CompletionPercent: completion,
		CostEstimated:     r.CostEstimated,
		CostActual:        r.CostActual,
		HoursEstimated:    r.HoursEstimated,
		HoursActual:       r.HoursActual,
	}
}

type activityPatchRequest struct {
	Title             *string    `json:"title"`
	Responsible       *string    `json:"responsible"`
	Deadline          *time.Time `json:"deadline"`
	Status            *string    `json:"status" validate:"omitempty,oneof=pending in_progress completed blocked"`
	CompletionPercent *int       `json:"completionPercent" validate:"omitempty,min=0,max=100"`
	CostEstimated     *float64   `json:"costEstimated" validate:"omitempty,gte=0"`
	CostActual        *float64   `json:"costActual" validate:"omitempty,gte=0"`
	HoursEstimated    *float64   `json:"hoursEstimated" validate:"omitempty,gte=0"`
	HoursActual       *float64   `json:"hoursActual" validate:"omitempty,gte=0"`
}

func (r activityPatchRequest) applyToModel(m *models.ActionPlanActivity) bool {
	updated := false
	if r.Title != nil {
		updated = true
		m.Title = *r.Title
	}
	if r.Responsible != nil {
		updated = true
		m.Responsible = *r.Responsible
	}
	if r.Deadline != nil {
		updated = true
		m.Deadline = r.Deadline
	}
	if r.Status != nil {
		updated = true
		m.Status = models.ActivityStatus(*r.Status)
	}
	if r.CompletionPercent != nil {
		updated = true
		m.CompletionPercent = utils.ClampPercent(*r.CompletionPercent)
	}
	// a completed activity is always at 100 percent
	if m.Status == models.ActivityStatusCompleted {
		m.CompletionPercent = 100
	}
	if r.CostEstimated != nil {
		updated = true
		m.CostEstimated = r.CostEstimated
	}
	if r.CostActual != nil {
		updated = true
		m.CostActual = r.CostActual
	}
	if r.HoursEstimated != nil {
		updated = true
		m.HoursEstimated = r.HoursEstimated
	}
	if r.HoursActual != nil {
		updated = true
		m.HoursActual = r.HoursActual
	}
	return updated
}
