package pat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patRepositoryStub struct {
	pats map[uuid.UUID]models.PAT
}

func newPatRepositoryStub() *patRepositoryStub {
	return &patRepositoryStub{pats: map[uuid.UUID]models.PAT{}}
}

func (s *patRepositoryStub) Create(tx core.DB, p *models.PAT) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.pats[p.ID] = *p
	return nil
}

func (s *patRepositoryStub) Read(id uuid.UUID) (models.PAT, error) {
	p, ok := s.pats[id]
	if !ok {
		return models.PAT{}, echo.ErrNotFound
	}
	return p, nil
}

func (s *patRepositoryStub) Delete(tx core.DB, id uuid.UUID) error {
	delete(s.pats, id)
	return nil
}

func (s *patRepositoryStub) ListByUserID(userID uuid.UUID) ([]models.PAT, error) {
	var out []models.PAT
	for _, p := range s.pats {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

type sessionStub struct{ userID string }

func (s sessionStub) GetUserID() string   { return s.userID }
func (s sessionStub) GetScopes() []string { return []string{"manage"} }

func patContext(t *testing.T, method, body, userID string) (core.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	ctx := echo.New().NewContext(req, rec)
	core.SetSession(ctx, sessionStub{userID: userID})
	return ctx, rec
}

func TestPATCreate(t *testing.T) {
	userID := uuid.New()

	t.Run("returns the plaintext token exactly once, stores only the hash", func(t *testing.T) {
		repository := newPatRepositoryStub()
		ctl := NewHTTPController(repository)

		ctx, rec := patContext(t, http.MethodPost, `{"description":"ci","scopes":["manage"]}`, userID.String())
		require.NoError(t, ctl.Create(ctx))

		var response map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		token, _ := response["token"].(string)
		require.Len(t, token, 64)

		require.Len(t, repository.pats, 1)
		for _, stored := range repository.pats {
			assert.NotEqual(t, token, stored.Token)
			assert.Equal(t, stored.HashToken(token), stored.Token)
		}
	})

	t.Run("rejects unknown scopes", func(t *testing.T) {
		ctl := NewHTTPController(newPatRepositoryStub())

		ctx, _ := patContext(t, http.MethodPost, `{"description":"ci","scopes":["root"]}`, userID.String())
		err := ctl.Create(ctx)

		require.Error(t, err)
		httpErr, isHTTP := err.(*echo.HTTPError)
		require.True(t, isHTTP)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("requires a description", func(t *testing.T) {
		ctl := NewHTTPController(newPatRepositoryStub())

		ctx, _ := patContext(t, http.MethodPost, `{"scopes":["manage"]}`, userID.String())
		assert.Error(t, ctl.Create(ctx))
	})
}

func TestPATDelete(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	repository := newPatRepositoryStub()
	pat, _ := models.NewPAT(owner, "ci", []string{"manage"})
	require.NoError(t, repository.Create(nil, &pat))

	t.Run("only the owner may revoke a token", func(t *testing.T) {
		ctx, _ := patContext(t, http.MethodDelete, "", stranger.String())
		ctx.SetParamNames("tokenID")
		ctx.SetParamValues(pat.ID.String())

		err := NewHTTPController(repository).Delete(ctx)

		require.Error(t, err)
		httpErr, isHTTP := err.(*echo.HTTPError)
		require.True(t, isHTTP)
		assert.Equal(t, 403, httpErr.Code)
	})

	t.Run("the owner revokes it", func(t *testing.T) {
		ctx, rec := patContext(t, http.MethodDelete, "", owner.String())
		ctx.SetParamNames("tokenID")
		ctx.SetParamValues(pat.ID.String())

		require.NoError(t, NewHTTPController(repository).Delete(ctx))
		assert.Equal(t, 200, rec.Code)
		assert.Empty(t, repository.pats)
	})
}
