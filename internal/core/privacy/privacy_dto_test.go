package privacy

import (
	"testing"
	"time"

	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsentPatchStampsRevocation(t *testing.T) {
	revoked := "revoked"

	t.Run("revoking stamps the timestamp exactly once", func(t *testing.T) {
		consent := models.Consent{Status: models.ConsentStatusGranted}

		updated := consentPatchRequest{Status: &revoked}.ApplyToModel(&consent)

		assert.True(t, updated)
		require.NotNil(t, consent.RevokedAt)

		first := *consent.RevokedAt
		consentPatchRequest{Status: &revoked}.ApplyToModel(&consent)
		assert.Equal(t, first, *consent.RevokedAt)
	})

	t.Run("a patch without fields changes nothing", func(t *testing.T) {
		consent := models.Consent{Status: models.ConsentStatusGranted}
		assert.False(t, consentPatchRequest{}.ApplyToModel(&consent))
		assert.Nil(t, consent.RevokedAt)
	})
}

func TestDSRDefaults(t *testing.T) {
	tenantID := uuid.New()

	t.Run("new requests start in received with the legal deadline", func(t *testing.T) {
		request := dsrCreateRequest{
			RequesterEmail: "titular@example.com",
			RequestType:    "access",
		}.ToModel(tenantID)

		assert.Equal(t, models.DSRStatusReceived, request.Status)
		expected := time.Now().AddDate(0, 0, dsrResponseDays)
		assert.WithinDuration(t, expected, request.DueDate, time.Minute)
	})

	t.Run("an explicit due date wins over the default", func(t *testing.T) {
		dueDate := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
		request := dsrCreateRequest{
			RequesterEmail: "titular@example.com",
			RequestType:    "deletion",
			DueDate:        &dueDate,
		}.ToModel(tenantID)

		assert.Equal(t, dueDate, request.DueDate)
	})

	t.Run("completing stamps the completion time", func(t *testing.T) {
		completed := "completed"
		request := models.DataSubjectRequest{Status: models.DSRStatusInProgress}

		dsrPatchRequest{Status: &completed}.ApplyToModel(&request)

		assert.Equal(t, models.DSRStatusCompleted, request.Status)
		assert.NotNil(t, request.CompletedAt)
	})
}

func TestPrivacyIncidentPatchStampsContainment(t *testing.T) {
	contained := "contained"
	incident := models.PrivacyIncident{Status: models.PrivacyIncidentStatusOpen}

	privacyIncidentPatchRequest{Status: &contained}.ApplyToModel(&incident)

	assert.Equal(t, models.PrivacyIncidentStatusContained, incident.Status)
	require.NotNil(t, incident.ContainedAt)

	first := *incident.ContainedAt
	privacyIncidentPatchRequest{Status: &contained}.ApplyToModel(&incident)
	assert.Equal(t, first, *incident.ContainedAt)
}
