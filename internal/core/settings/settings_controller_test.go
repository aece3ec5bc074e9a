package settings

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/database/repositories"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type settingsRepositoryStub struct {
	record    models.SecuritySettings
	readErr   error
	updateErr error
	created   bool
}

func (s *settingsRepositoryStub) Read(tenantID uuid.UUID) (models.SecuritySettings, error) {
	if s.readErr != nil {
		return models.SecuritySettings{}, s.readErr
	}
	return s.record, nil
}

func (s *settingsRepositoryStub) Create(record *models.SecuritySettings) error {
	s.created = true
	s.record = *record
	return nil
}

func (s *settingsRepositoryStub) UpdateVersioned(record *models.SecuritySettings, expectedVersion int) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	record.Version = expectedVersion + 1
	s.record = *record
	return nil
}

func settingsContext(t *testing.T, method, body string) (core.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	ctx := echo.New().NewContext(req, rec)
	core.SetTenant(ctx, models.Tenant{Model: models.Model{ID: uuid.New()}})
	return ctx, rec
}

func TestSettingsRead(t *testing.T) {
	t.Run("first access creates the initial version", func(t *testing.T) {
		repository := &settingsRepositoryStub{readErr: gorm.ErrRecordNotFound}
		ctl := NewHTTPController(repository)

		ctx, rec := settingsContext(t, http.MethodGet, "")
		require.NoError(t, ctl.Read(ctx))

		assert.True(t, repository.created)
		assert.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), `"version":1`)
	})
}

func TestSettingsUpdate(t *testing.T) {
	t.Run("a stale version is a conflict", func(t *testing.T) {
		repository := &settingsRepositoryStub{
			record:    models.SecuritySettings{TenantID: uuid.New(), Version: 3},
			updateErr: repositories.ErrStaleSettings,
		}
		ctl := NewHTTPController(repository)

		ctx, _ := settingsContext(t, http.MethodPut, `{"expectedVersion":2,"config":{}}`)
		err := ctl.Update(ctx)

		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 409, httpErr.Code)
	})

	t.Run("a matching version goes through", func(t *testing.T) {
		repository := &settingsRepositoryStub{
			record: models.SecuritySettings{TenantID: uuid.New(), Version: 2},
		}
		ctl := NewHTTPController(repository)

		ctx, rec := settingsContext(t, http.MethodPut, `{"expectedVersion":2,"config":{"sessionPolicy":{"requireMfa":true}}}`)
		require.NoError(t, ctl.Update(ctx))

		assert.Equal(t, 200, rec.Code)
		assert.Equal(t, 3, repository.record.Version)
	})

	t.Run("the expected version is required", func(t *testing.T) {
		ctl := NewHTTPController(&settingsRepositoryStub{})

		ctx, _ := settingsContext(t, http.MethodPut, `{"config":{}}`)
		err := ctl.Update(ctx)

		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})
}
