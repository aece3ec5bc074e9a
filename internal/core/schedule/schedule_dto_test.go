package schedule

import (
	"testing"

	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestActivityCreateDefaults(t *testing.T) {
	tenantID := uuid.New()
	initiativeID := uuid.New()

	t.Run("new activities start pending", func(t *testing.T) {
		activity := activityCreateRequest{Title: "map data flows"}.toModel(tenantID, initiativeID)

		assert.Equal(t, models.ActivityStatusPending, activity.Status)
		assert.Equal(t, tenantID, activity.TenantID)
		assert.Equal(t, initiativeID, activity.InitiativeID)
	})

	t.Run("completed on create forces full completion", func(t *testing.T) {
		activity := activityCreateRequest{
			Title:             "publish privacy notice",
			Status:            "completed",
			CompletionPercent: 40,
		}.toModel(tenantID, initiativeID)

		assert.Equal(t, 100, activity.CompletionPercent)
	})

	t.Run("out of range percentages are clamped", func(t *testing.T) {
		activity := activityCreateRequest{Title: "x", CompletionPercent: 180}.toModel(tenantID, initiativeID)
		assert.Equal(t, 100, activity.CompletionPercent)
	})
}

func TestActivityPatch(t *testing.T) {
	t.Run("marking completed forces the percent to one hundred", func(t *testing.T) {
		completed := "completed"
		activity := models.ScheduleActivity{Status: models.ActivityStatusInProgress, CompletionPercent: 60}

		updated := activityPatchRequest{Status: &completed}.applyToModel(&activity)

		assert.True(t, updated)
		assert.Equal(t, 100, activity.CompletionPercent)
	})

	t.Run("an empty patch reports no change", func(t *testing.T) {
		activity := models.ScheduleActivity{Status: models.ActivityStatusPending}
		assert.False(t, activityPatchRequest{}.applyToModel(&activity))
	})
}
