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

package schedule

import (
	"time"

	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/utils"
	"github.com/google/uuid"
)

type initiativeCreateRequest struct {
	Title       string     `json:"title" validate:"required"`
	Owner       string     `json:"owner"`
	Status      string     `json:"status" validate:"omitempty,oneof=planned active on_hold concluded"`
	StartsOn    *time.Time `json:"startsOn"`
	EndsOn      *time.Time `json:"endsOn"`
	Description string     `json:"description"`
}

func (r initiativeCreateRequest) ToModel(tenantID uuid.UUID) models.StrategicInitiative {
	initiative := models.StrategicInitiative{
		Title:       r.Title,
		Owner:       r.Owner,
		Status:      models.InitiativeStatus(r.Status),
		StartsOn:    r.StartsOn,
		EndsOn:      r.EndsOn,
		Description: r.Description,
	}
	initiative.TenantID = tenantID
	if initiative.Status == "" {
		initiative.Status = models.InitiativeStatusPlanned
	}
	return initiative
}

type initiativePatchRequest struct {
	Title       *string    `json:"title"`
	Owner       *string    `json:"owner"`
	Status      *string    `json:"status" validate:"omitempty,oneof=planned active on_hold concluded"`
	StartsOn    *time.Time `json:"startsOn"`
	EndsOn      *time.Time `json:"endsOn"`
	Description *string    `json:"description"`
}

func (r initiativePatchRequest) ApplyToModel(initiative *models.StrategicInitiative) bool {
	updated := false
	if r.Title != nil && *r.Title != initiative.Title {
		updated = true
		initiative.Title = *r.Title
	}
	if r.Owner != nil && *r.Owner != initiative.Owner {
		updated = true
		initiative.Owner = *r.Owner
	}
	if r.Status != nil && models.InitiativeStatus(*r.Status) != initiative.Status {
		updated = true
		initiative.Status = models.InitiativeStatus(*r.Status)
	}
	if r.StartsOn != nil {
		updated = true
		initiative.StartsOn = r.StartsOn
	}
	if r.EndsOn != nil {
		updated = true
		initiative.EndsOn = r.EndsOn
	}
	if r.Description != nil && *r.Description != initiative.Description {
		updated = true
		initiative.Description = *r.Description
	}
	return updated
}

type activityCreateRequest struct {
	Title             string     `json:"title" validate:"required"`
	PeriodStart       *time.Time `json:"periodStart"`
	PeriodEnd         *time.Time `json:"periodEnd"`
	Status            string     `json:"status" validate:"omitempty,oneof=pending in_progress completed blocked"`
	CompletionPercent int        `json:"completionPercent" validate:"min=0,max=100"`
}

func (r activityCreateRequest) toModel(tenantID, initiativeID uuid.UUID) models.ScheduleActivity {
	activity := models.ScheduleActivity{
		InitiativeID:      initiativeID,
		Title:             r.Title,
		PeriodStart:       r.PeriodStart,
		PeriodEnd:         r.PeriodEnd,
		Status:            models.ActivityStatus(r.Status),
		CompletionPercent: utils.ClampPercent(r.CompletionPercent),
	}
	activity.TenantID = tenantID
	if activity.Status == "" {
		activity.Status = models.ActivityStatusPending
	}
	if activity.Status == models.ActivityStatusCompleted {
		activity.CompletionPercent = 100
	}
	return activity
}

type activityPatchRequest struct {
	Title             *string    `json:"title"`
	PeriodStart       *time.Time `json:"periodStart"`
	PeriodEnd         *time.Time `json:"periodEnd"`
	Status            *string    `json:"status" validate:"omitempty,oneof=pending in_progress completed blocked"`
	CompletionPercent *int       `json:"completionPercent" validate:"omitempty,min=0,max=100"`
}

func (r activityPatchRequest) applyToModel(activity *models.ScheduleActivity) bool {
	updated := false
	if r.Title != nil && *r.Title != activity.Title {
		updated = true
		activity.Title = *r.Title
	}
	if r.PeriodStart != nil {
		updated = true
		activity.PeriodStart = r.PeriodStart
	}
	if r.PeriodEnd != nil {
		updated = true
		activity.PeriodEnd = r.PeriodEnd
	}
	if r.Status != nil && models.ActivityStatus(*r.Status) != activity.Status {
		updated = true
		activity.Status = models.ActivityStatus(*r.Status)
	}
	if r.CompletionPercent != nil && utils.ClampPercent(*r.CompletionPercent) != activity.CompletionPercent {
		updated = true
		activity.CompletionPercent = utils.ClampPercent(*r.CompletionPercent)
	}
	// a completed activity is a finished activity, whatever the percent said
	if activity.Status == models.ActivityStatusCompleted && activity.CompletionPercent != 100 {
		updated = true
		activity.CompletionPercent = 100
	}
	return updated
}
