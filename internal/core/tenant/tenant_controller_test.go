package tenant

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/conformo/conformo/internal/accesscontrol"
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/testutils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tenantRepositoryStub struct {
	tenants map[uuid.UUID]models.Tenant
	created *models.Tenant
}

func newTenantRepositoryStub() *tenantRepositoryStub {
	return &tenantRepositoryStub{tenants: map[uuid.UUID]models.Tenant{}}
}

func (s *tenantRepositoryStub) Create(tx core.DB, t *models.Tenant) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	s.tenants[t.ID] = *t
	s.created = t
	return nil
}

func (s *tenantRepositoryStub) Save(tx core.DB, t *models.Tenant) error {
	s.tenants[t.ID] = *t
	return nil
}

func (s *tenantRepositoryStub) Delete(tx core.DB, id uuid.UUID) error {
	delete(s.tenants, id)
	return nil
}

func (s *tenantRepositoryStub) Read(id uuid.UUID) (models.Tenant, error) {
	t, ok := s.tenants[id]
	if !ok {
		return models.Tenant{}, echo.ErrNotFound
	}
	return t, nil
}

func (s *tenantRepositoryStub) ReadBySlug(slug string) (models.Tenant, error) {
	for _, t := range s.tenants {
		if t.Slug == slug {
			return t, nil
		}
	}
	return models.Tenant{}, echo.ErrNotFound
}

func (s *tenantRepositoryStub) List(ids []uuid.UUID) ([]models.Tenant, error) {
	out := []models.Tenant{}
	for _, id := range ids {
		if t, ok := s.tenants[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

type profileRepositoryStub struct{}

func (profileRepositoryStub) ListByIDs(tenantID uuid.UUID, ids []uuid.UUID) ([]models.Profile, error) {
	return nil, nil
}

type sessionStub struct{ userID string }

func (s sessionStub) GetUserID() string   { return s.userID }
func (s sessionStub) GetScopes() []string { return []string{"manage"} }

func tenantContext(t *testing.T, body, userID string) (core.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	ctx := echo.New().NewContext(req, rec)
	core.SetSession(ctx, sessionStub{userID: userID})
	return ctx, rec
}

func TestTenantCreate(t *testing.T) {
	t.Run("requires a name", func(t *testing.T) {
		ctl := NewHTTPController(newTenantRepositoryStub(), profileRepositoryStub{}, testutils.NewRBACProviderMock())

		ctx, _ := tenantContext(t, `{"description":"no name"}`, uuid.NewString())
		err := ctl.Create(ctx)

		require.Error(t, err)
		httpErr, isHTTP := err.(*echo.HTTPError)
		require.True(t, isHTTP)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("bootstraps the creator as owner", func(t *testing.T) {
		repository := newTenantRepositoryStub()
		rbacProvider := testutils.NewRBACProviderMock()
		ctl := NewHTTPController(repository, profileRepositoryStub{}, rbacProvider)

		userID := uuid.NewString()
		ctx, rec := tenantContext(t, `{"name":"Acme Ltda","contactEmail":"dpo@acme.example"}`, userID)
		require.NoError(t, ctl.Create(ctx))

		assert.Equal(t, 200, rec.Code)
		require.NotNil(t, repository.created)
		assert.Equal(t, "acme-ltda", repository.created.Slug)

		rbac := rbacProvider.GetDomainRBAC(repository.created.ID.String())
		assert.Contains(t, rbac.GetAllRoles(userID), accesscontrol.RoleOwner)
	})

	t.Run("rejects an invalid contact email", func(t *testing.T) {
		ctl := NewHTTPController(newTenantRepositoryStub(), profileRepositoryStub{}, testutils.NewRBACProviderMock())

		ctx, _ := tenantContext(t, `{"name":"Acme","contactEmail":"nope"}`, uuid.NewString())
		assert.Error(t, ctl.Create(ctx))
	})
}

func TestBootstrapRBAC(t *testing.T) {
	rbac := testutils.NewRBACMock()
	ownerID := uuid.NewString()

	require.NoError(t, BootstrapRBAC(rbac, ownerID))

	t.Run("the owner inherits admin and member", func(t *testing.T) {
		roles := rbac.GetAllRoles(ownerID)
		assert.Contains(t, roles, accesscontrol.RoleOwner)
		assert.Contains(t, roles, accesscontrol.RoleAdmin)
		assert.Contains(t, roles, accesscontrol.RoleMember)
	})

	t.Run("only the owner may delete the tenant", func(t *testing.T) {
		allowed, err := rbac.IsAllowed(ownerID, accesscontrol.ObjectTenant, accesscontrol.ActionDelete)
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("an owner may write every module", func(t *testing.T) {
		allowed, err := rbac.IsAllowed(ownerID, accesscontrol.ObjectPrivacy, accesscontrol.ActionCreate)
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("a plain member only reads", func(t *testing.T) {
		memberID := uuid.NewString()
		require.NoError(t, rbac.GrantRole(memberID, accesscontrol.RoleMember))

		canRead, err := rbac.IsAllowed(memberID, accesscontrol.ObjectIncident, accesscontrol.ActionRead)
		require.NoError(t, err)
		assert.True(t, canRead)

		canDelete, err := rbac.IsAllowed(memberID, accesscontrol.ObjectIncident, accesscontrol.ActionDelete)
		require.NoError(t, err)
		assert.False(t, canDelete)
	})
}
