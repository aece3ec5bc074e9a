package actionplan

import (
	"testing"

	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionOf(t *testing.T) {
	t.Run("a plan without activities sits at zero", func(t *testing.T) {
		assert.Equal(t, 0, completionOf(nil))
	})

	t.Run("counts completed activities only", func(t *testing.T) {
		activities := []models.ActionPlanActivity{
			{Status: models.ActivityStatusCompleted, CompletionPercent: 100},
			{Status: models.ActivityStatusInProgress, CompletionPercent: 50},
			{Status: models.ActivityStatusPending},
		}
		assert.Equal(t, 33, completionOf(activities))
	})

	t.Run("partially done activities contribute nothing", func(t *testing.T) {
		activities := []models.ActionPlanActivity{
			{Status: models.ActivityStatusInProgress, CompletionPercent: 50},
			{Status: models.ActivityStatusInProgress, CompletionPercent: 50},
		}
		assert.Equal(t, 0, completionOf(activities))
	})

	t.Run("all activities completed reaches one hundred", func(t *testing.T) {
		activities := []models.ActionPlanActivity{
			{Status: models.ActivityStatusCompleted},
			{Status: models.ActivityStatusCompleted},
		}
		assert.Equal(t, 100, completionOf(activities))
	})
}

type planRepositoryStub struct {
	plan  models.ActionPlan
	saved *models.ActionPlan
}

func (s *planRepositoryStub) Transaction(fn func(tx core.DB) error) error {
	return fn(nil)
}

func (s *planRepositoryStub) ReadByTenant(tenantID, id uuid.UUID) (models.ActionPlan, error) {
	return s.plan, nil
}

func (s *planRepositoryStub) ReadWithActivities(tenantID, id uuid.UUID) (models.ActionPlan, error) {
	return s.plan, nil
}

func (s *planRepositoryStub) Save(tx core.DB, plan *models.ActionPlan) error {
	s.saved = plan
	return nil
}

type activityRepositoryStub struct {
	activities []models.ActionPlanActivity
}

func (s *activityRepositoryStub) Create(tx core.DB, activity *models.ActionPlanActivity) error {
	s.activities = append(s.activities, *activity)
	return nil
}

func (s *activityRepositoryStub) Save(tx core.DB, activity *models.ActionPlanActivity) error {
	return nil
}

func (s *activityRepositoryStub) ReadByTenant(tenantID, id uuid.UUID) (models.ActionPlanActivity, error) {
	return models.ActionPlanActivity{}, nil
}

func (s *activityRepositoryStub) DeleteByTenant(tx core.DB, tenantID, id uuid.UUID) error {
	for i, a := range s.activities {
		if a.ID == id {
			s.activities = append(s.activities[:i], s.activities[i+1:]...)
			break
		}
	}
	return nil
}

func (s *activityRepositoryStub) ListByPlan(tx core.DB, planID uuid.UUID) ([]models.ActionPlanActivity, error) {
	return s.activities, nil
}

func TestServiceRecomputesPlanCompletion(t *testing.T) {
	tenantID := uuid.New()
	planID := uuid.New()

	t.Run("creating an activity updates the owning plan", func(t *testing.T) {
		planRepository := &planRepositoryStub{
			plan: models.ActionPlan{TenantModel: models.TenantModel{Model: models.Model{ID: planID}, TenantID: tenantID}},
		}
		activityRepository := &activityRepositoryStub{
			activities: []models.ActionPlanActivity{{ActionPlanID: planID, Status: models.ActivityStatusInProgress, CompletionPercent: 40}},
		}
		service := NewService(planRepository, activityRepository)

		activity := models.ActionPlanActivity{ActionPlanID: planID, Status: models.ActivityStatusCompleted, CompletionPercent: 100}
		err := service.CreateActivity(tenantID, &activity)

		require.NoError(t, err)
		require.NotNil(t, planRepository.saved)
		assert.Equal(t, 50, planRepository.saved.CompletionPercent)
	})

	t.Run("deleting the last activity drops the plan back to zero", func(t *testing.T) {
		activityID := uuid.New()
		planRepository := &planRepositoryStub{
			plan: models.ActionPlan{TenantModel: models.TenantModel{Model: models.Model{ID: planID}, TenantID: tenantID}, CompletionPercent: 100},
		}
		activityRepository := &activityRepositoryStub{
			activities: []models.ActionPlanActivity{{
				TenantModel:       models.TenantModel{Model: models.Model{ID: activityID}, TenantID: tenantID},
				ActionPlanID:      planID,
				Status:            models.ActivityStatusCompleted,
				CompletionPercent: 100,
			}},
		}
		service := NewService(planRepository, activityRepository)

		err := service.DeleteActivity(tenantID, activityRepository.activities[0])

		require.NoError(t, err)
		require.NotNil(t, planRepository.saved)
		assert.Equal(t, 0, planRepository.saved.CompletionPercent)
	})
}
