package core

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionStub struct {
	userID string
	scopes []string
}

func (s sessionStub) GetUserID() string   { return s.userID }
func (s sessionStub) GetScopes() []string { return s.scopes }

func middlewareContext(t *testing.T, session AuthSession) Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := echo.New().NewContext(req, httptest.NewRecorder())
	SetSession(ctx, session)
	return ctx
}

func TestNeededScope(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(200) }

	t.Run("passes when the token carries all scopes", func(t *testing.T) {
		ctx := middlewareContext(t, sessionStub{userID: "u", scopes: []string{"manage", "reports"}})
		err := NeededScope([]string{"manage"})(ok)(ctx)
		assert.NoError(t, err)
	})

	t.Run("rejects a token missing one of the scopes", func(t *testing.T) {
		ctx := middlewareContext(t, sessionStub{userID: "u", scopes: []string{"reports"}})

		err := NeededScope([]string{"manage"})(ok)(ctx)

		require.Error(t, err)
		httpErr, isHTTP := err.(*echo.HTTPError)
		require.True(t, isHTTP)
		assert.Equal(t, 403, httpErr.Code)
	})
}

func TestLoggedInMiddleware(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(200) }

	t.Run("blocks the empty session", func(t *testing.T) {
		ctx := middlewareContext(t, sessionStub{})

		err := LoggedInMiddleware()(ok)(ctx)

		require.Error(t, err)
		httpErr, isHTTP := err.(*echo.HTTPError)
		require.True(t, isHTTP)
		assert.Equal(t, 401, httpErr.Code)
	})

	t.Run("lets authenticated users through", func(t *testing.T) {
		ctx := middlewareContext(t, sessionStub{userID: "u"})
		assert.NoError(t, LoggedInMiddleware()(ok)(ctx))
	})
}
