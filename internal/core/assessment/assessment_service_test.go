package assessment

import (
	"testing"

	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaturityLevel(t *testing.T) {
	cases := []struct {
		score    float64
		expected string
	}{
		{0, "not_rated"},
		{1, "initial"},
		{1.4, "initial"},
		{1.5, "managed"},
		{2.5, "defined"},
		{3.5, "quantified"},
		{4.5, "optimized"},
		{5, "optimized"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, maturityLevel(tc.score), "score %v", tc.score)
	}
}

type questionCounterStub struct{ total int64 }

func (s questionCounterStub) CountForFramework(tenantID uuid.UUID, framework string) (int64, error) {
	return s.total, nil
}

type responseReaderStub struct{ responses []models.AssessmentResponse }

func (s responseReaderStub) ListByAssessment(assessmentID uuid.UUID) ([]models.AssessmentResponse, error) {
	return s.responses, nil
}

type scaleAveragerStub struct{ average float64 }

func (s scaleAveragerStub) AverageScaleAnswer(assessmentID uuid.UUID) (float64, error) {
	return s.average, nil
}

func TestProgressOf(t *testing.T) {
	assessment := models.Assessment{
		TenantModel: models.TenantModel{Model: models.Model{ID: uuid.New()}, TenantID: uuid.New()},
		Framework:   "lgpd",
	}

	t.Run("computes percent and maturity from the responses", func(t *testing.T) {
		service := NewService(
			questionCounterStub{total: 4},
			responseReaderStub{responses: make([]models.AssessmentResponse, 2)},
			scaleAveragerStub{average: 3.2},
		)

		progress, err := service.ProgressOf(assessment)

		require.NoError(t, err)
		assert.Equal(t, int64(4), progress.TotalQuestions)
		assert.Equal(t, int64(2), progress.Answered)
		assert.Equal(t, 50, progress.Percent)
		assert.Equal(t, 3.2, progress.MaturityScore)
		assert.Equal(t, "defined", progress.MaturityLevel)
	})

	t.Run("a framework without questions never divides by zero", func(t *testing.T) {
		service := NewService(questionCounterStub{}, responseReaderStub{}, scaleAveragerStub{})

		progress, err := service.ProgressOf(assessment)

		require.NoError(t, err)
		assert.Equal(t, 0, progress.Percent)
		assert.Equal(t, "not_rated", progress.MaturityLevel)
	})

	t.Run("percent is capped even with stale responses", func(t *testing.T) {
		service := NewService(
			questionCounterStub{total: 2},
			responseReaderStub{responses: make([]models.AssessmentResponse, 5)},
			scaleAveragerStub{average: 5},
		)

		progress, err := service.ProgressOf(assessment)

		require.NoError(t, err)
		assert.Equal(t, 100, progress.Percent)
	})
}
