package core

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func queryContext(t *testing.T, target string) Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetPageInfo(t *testing.T) {
	t.Run("defaults to page one with ten rows", func(t *testing.T) {
		pageInfo := GetPageInfo(queryContext(t, "/"))
		assert.Equal(t, PageInfo{Page: 1, PageSize: 10}, pageInfo)
	})

	t.Run("reads page and pageSize from the query", func(t *testing.T) {
		pageInfo := GetPageInfo(queryContext(t, "/?page=3&pageSize=25"))
		assert.Equal(t, PageInfo{Page: 3, PageSize: 25}, pageInfo)
	})

	t.Run("caps the page size at one hundred", func(t *testing.T) {
		pageInfo := GetPageInfo(queryContext(t, "/?pageSize=5000"))
		assert.Equal(t, 100, pageInfo.PageSize)
	})

	t.Run("garbage falls back to the defaults", func(t *testing.T) {
		pageInfo := GetPageInfo(queryContext(t, "/?page=-2&pageSize=abc"))
		assert.Equal(t, PageInfo{Page: 1, PageSize: 10}, pageInfo)
	})
}

func TestFilterQuery(t *testing.T) {
	t.Run("parses bracketed filter params", func(t *testing.T) {
		filters := GetFilterQuery(queryContext(t, "/?filterQuery[severity][is]=critical"))

		assert.Len(t, filters, 1)
		assert.Equal(t, `"severity" = ?`, filters[0].SQL())
		assert.Equal(t, "critical", filters[0].Value())
	})

	t.Run("like wraps the value in wildcards", func(t *testing.T) {
		f := FilterQuery{field: "title", value: "phishing", operator: "like"}
		assert.Equal(t, `"title" LIKE ?`, f.SQL())
		assert.Equal(t, "%phishing%", f.Value())
	})

	t.Run("unknown operators degrade to equality", func(t *testing.T) {
		f := FilterQuery{field: "status", value: "open", operator: "whatever"}
		assert.Equal(t, `"status" = ?`, f.SQL())
	})

	t.Run("suspicious field names panic instead of reaching the database", func(t *testing.T) {
		f := FilterQuery{field: "status; DROP TABLE tenants", value: "x", operator: "is"}
		assert.Panics(t, func() { f.SQL() })
	})
}

func TestGetUUIDParam(t *testing.T) {
	t.Run("rejects garbage identifiers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := echo.New().NewContext(req, httptest.NewRecorder())
		ctx.SetParamNames("vendorID")
		ctx.SetParamValues("not-a-uuid")

		_, err := GetUUIDParam(ctx, "vendorID")
		assert.Error(t, err)
	})

	t.Run("parses valid identifiers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := echo.New().NewContext(req, httptest.NewRecorder())
		ctx.SetParamNames("vendorID")
		ctx.SetParamValues("8a8e1a66-60b3-4a0f-9420-4e4a4a6c8f5b")

		id, err := GetUUIDParam(ctx, "vendorID")
		assert.NoError(t, err)
		assert.Equal(t, "8a8e1a66-60b3-4a0f-9420-4e4a4a6c8f5b", id.String())
	})
}
