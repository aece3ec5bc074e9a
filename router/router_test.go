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

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/conformo/conformo/internal/core"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionStub struct {
	scopes []string
}

func (s sessionStub) GetUserID() string   { return "user" }
func (s sessionStub) GetScopes() []string { return s.scopes }

func scopedContext(t *testing.T, method string, scopes []string) echo.Context {
	t.Helper()

	req := httptest.NewRequest(method, "/", nil)
	ctx := echo.New().NewContext(req, httptest.NewRecorder())
	core.SetSession(ctx, sessionStub{scopes: scopes})
	return ctx
}

func TestScopeByMethod(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(200) }
	handler := scopeByMethod()(ok)

	t.Run("reports scope may read", func(t *testing.T) {
		err := handler(scopedContext(t, http.MethodGet, []string{"reports"}))
		assert.NoError(t, err)
	})

	t.Run("reports scope may not write", func(t *testing.T) {
		err := handler(scopedContext(t, http.MethodPost, []string{"reports"}))

		require.Error(t, err)
		httpErr, isHTTP := err.(*echo.HTTPError)
		require.True(t, isHTTP)
		assert.Equal(t, 403, httpErr.Code)
	})

	t.Run("manage scope may do both", func(t *testing.T) {
		assert.NoError(t, handler(scopedContext(t, http.MethodGet, []string{"manage"})))
		assert.NoError(t, handler(scopedContext(t, http.MethodDelete, []string{"manage"})))
	})

	t.Run("no recognized scope reads nothing", func(t *testing.T) {
		err := handler(scopedContext(t, http.MethodGet, nil))

		require.Error(t, err)
		httpErr, isHTTP := err.(*echo.HTTPError)
		require.True(t, isHTTP)
		assert.Equal(t, 403, httpErr.Code)
	})
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health/", nil), rec)

	require.NoError(t, health(ctx))
	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
