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
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/utils"
	"github.com/google/uuid"
)

type planRepository interface {
	Transaction(fn func(tx core.DB) error) error
	ReadByTenant(tenantID, id uuid.UUID) (models.ActionPlan, error)
	ReadWithActivities(tenantID, id uuid.UUID) (models.ActionPlan, error)
	Save(tx core.DB, plan *models.ActionPlan) error
}

type activityRepository interface {
	Create(tx core.DB, activity *models.ActionPlanActivity) error
	Save(tx core.DB, activity *models.ActionPlanActivity) error
	ReadByTenant(tenantID, id uuid.UUID) (models.ActionPlanActivity, error)
	DeleteByTenant(tx core.DB, tenantID, id uuid.UUID) error
	ListByPlan(tx core.DB, planID uuid.UUID) ([]models.ActionPlanActivity, error)
}

// Service keeps the plan completion percentage consistent with its
// activities. Every activity write happens in a transaction which ends with
// recomputing the owning plan.
type Service struct {
	planRepository     planRepository
	activityRepository activityRepository
}

func NewService(planRepository planRepository, activityRepository activityRepository) *Service {
	return &Service{
		planRepository:     planRepository,
		activityRepository: activityRepository,
	}
}

// completionOf is the share of activities that reached the completed status.
// Partially done activities do not count until they are marked completed. A
// plan without activities sits at zero.
func completionOf(activities []models.ActionPlanActivity) int {
	if len(activities) == 0 {
		return 0
	}
	completed := len(utils.Filter(activities, func(a models.ActionPlanActivity) bool {
		return a.Status == models.ActivityStatusCompleted
	}))
	return completed * 100 / len(activities)
}

func (s *Service) recomputeCompletion(tx core.DB, tenantID, planID uuid.UUID) error {
	plan, err := s.planRepository.ReadByTenant(tenantID, planID)
	if err != nil {
		return err
	}

	activities, err := s.activityRepository.ListByPlan(tx, planID)
	if err != nil {
		return err
	}

	plan.CompletionPercent = completionOf(activities)
	return s.planRepository.Save(tx, &plan)
}

func (s *Service) CreateActivity(tenantID uuid.UUID, activity *models.ActionPlanActivity) error {
	return s.planRepository.Transaction(func(tx core.DB) error {
		if err := s.activityRepository.Create(tx, activity); err != nil {
			return err
		}
		return s.recomputeCompletion(tx, tenantID, activity.ActionPlanID)
	})
}

func (s *Service) UpdateActivity(tenantID uuid.UUID, activity *models.ActionPlanActivity) error {
	return s.planRepository.Transaction(func(tx core.DB) error {
		if err := s.activityRepository.Save(tx, activity); err != nil {
			return err
		}
		return s.recomputeCompletion(tx, tenantID, activity.ActionPlanID)
	})
}

func (s *Service) DeleteActivity(tenantID uuid.UUID, activity models.ActionPlanActivity) error {
	return s.planRepository.Transaction(func(tx core.DB) error {
		if err := s.activityRepository.DeleteByTenant(tx, tenantID, activity.ID); err != nil {
			return err
		}
		return s.recomputeCompletion(tx, tenantID, activity.ActionPlanID)
	})
}
