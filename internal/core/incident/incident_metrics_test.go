package incident

import (
	"strings"
	"testing"

	"github.com/conformo/conformo/internal/database/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statsRepositoryStub struct {
	total      int64
	open       int64
	critical   int64
	byStatus   map[string]int64
	bySeverity map[string]int64
	byType     map[string]int64
}

func (s statsRepositoryStub) Total(model repositories.Tabler, tenantID uuid.UUID) (int64, error) {
	return s.total, nil
}

func (s statsRepositoryStub) CountWhere(model repositories.Tabler, tenantID uuid.UUID, query string, args ...any) (int64, error) {
	if strings.HasPrefix(query, "status") {
		return s.open, nil
	}
	return s.critical, nil
}

func (s statsRepositoryStub) CountByStatus(model repositories.Tabler, tenantID uuid.UUID) (map[string]int64, error) {
	return s.byStatus, nil
}

func (s statsRepositoryStub) CountBySeverity(model repositories.Tabler, tenantID uuid.UUID) (map[string]int64, error) {
	return s.bySeverity, nil
}

func (s statsRepositoryStub) CountByColumn(model repositories.Tabler, tenantID uuid.UUID, column string) (map[string]int64, error) {
	return s.byType, nil
}

func TestMetricsServiceCollect(t *testing.T) {
	service := NewMetricsService(statsRepositoryStub{
		total:      3,
		open:       2,
		critical:   1,
		byStatus:   map[string]int64{"investigating": 2, "resolved": 1},
		bySeverity: map[string]int64{"critical": 1, "medium": 2},
		byType:     map[string]int64{"phishing": 2, "malware": 1},
	})

	metrics, err := service.Collect(uuid.New())

	require.NoError(t, err)
	assert.Equal(t, int64(3), metrics.Total)
	assert.Equal(t, int64(2), metrics.Open)
	assert.Equal(t, int64(1), metrics.Critical)
	assert.Equal(t, int64(2), metrics.ByStatus["investigating"])
	assert.Equal(t, int64(1), metrics.BySeverity["critical"])
	assert.Equal(t, int64(2), metrics.ByType["phishing"])
}
