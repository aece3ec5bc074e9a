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
package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/conformo/conformo/internal/accesscontrol"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/utils"
	"github.com/google/uuid"
)

type AuthSession interface {
	GetUserID() string
	GetScopes() []string
}

func GetTenant(ctx Context) models.Tenant {
	return ctx.Get("tenant").(models.Tenant)
}

func SetTenant(ctx Context, tenant models.Tenant) {
	ctx.Set("tenant", tenant)
}

func HasTenant(ctx Context) bool {
	_, ok := ctx.Get("tenant").(models.Tenant)
	return ok
}

func GetRBAC(ctx Context) accesscontrol.AccessControl {
	return ctx.Get("rbac").(accesscontrol.AccessControl)
}

func SetRBAC(ctx Context, rbac accesscontrol.AccessControl) {
	ctx.Set("rbac", rbac)
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		fallback := ctx.Get(param)
		if fallback == nil {
			return ""
		}
		return fallback.(string)
	}
	return v
}

func GetTenantSlug(ctx Context) (string, error) {
	tenantSlug := GetParam(ctx, "tenant")
	if tenantSlug == "" {
		return "", fmt.Errorf("could not get tenant slug")
	}
	return SanitizeParam(tenantSlug), nil
}

// GetUUIDParam parses a uuid route parameter like ":planID" or ":assetID".
func GetUUIDParam(ctx Context, param string) (uuid.UUID, error) {
	raw := GetParam(ctx, param)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("could not get %s", param)
	}
	id, err := uuid.Parse(SanitizeParam(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", param, err)
	}
	return id, nil
}

type PageInfo struct {
	PageSize int `json:"pageSize"`
	Page     int `json:"page"`
}

func (p PageInfo) ApplyOnDB(db DB) DB {
	return db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func (p Paged[T]) Map(f func(T) any) Paged[any] {
	data := make([]any, len(p.Data))
	for i, d := range p.Data {
		data[i] = f(d)
	}
	return Paged[any]{
		PageInfo: p.PageInfo,
		Total:    p.Total,
		Data:     data,
	}
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

func GetPageInfo(ctx Context) PageInfo {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))
	switch {
	case pageSize > 100:
		pageSize = 100
	case pageSize <= 0:
		pageSize = 10
	}

	return PageInfo{
		Page:     page,
		PageSize: pageSize,
	}
}

type FilterQuery struct {
	field    string
	value    string
	operator string
}

func GetFilterQuery(ctx Context) []FilterQuery {
	// get all query params, which start with filterQuery
	query := ctx.QueryParams()
	filterQuerys := []FilterQuery{}
	for key := range query {
		if !strings.HasPrefix(key, "filterQuery") {
			continue
		}

		value := query.Get(key)
		// the key looks like this: filterQuery[severity][is]=critical
		key = strings.TrimPrefix(key, "filterQuery")

		parts := strings.Split(key, "[")
		if len(parts) < 3 {
			continue
		}

		field := strings.TrimSuffix(parts[1], "]")
		operator := strings.TrimSuffix(parts[2], "]")

		filterQuerys = append(filterQuerys, FilterQuery{
			field:    field,
			value:    value,
			operator: operator,
		})
	}

	return filterQuerys
}

type SortQuery struct {
	Field    string
	Operator string // asc or desc
}

func GetSortQuery(ctx Context) []SortQuery {
	query := ctx.QueryParams()
	sortQuerys := []SortQuery{}
	for key := range query {
		if !strings.HasPrefix(key, "sort") {
			continue
		}

		operator := query.Get(key)
		// the key looks like this: sort[severity]=desc
		key = strings.TrimPrefix(key, "sort")

		parts := strings.Split(key, "[")
		if len(parts) < 2 {
			continue
		}
		field := strings.TrimSuffix(parts[1], "]")

		if operator != "asc" && operator != "desc" {
			continue
		}

		sortQuerys = append(sortQuerys, SortQuery{
			Field:    field,
			Operator: operator,
		})
	}

	return sortQuerys
}

func quoteFields(field string) string {
	split := strings.Split(field, ".")
	quotedSplits := utils.Map(
		split,
		func(s string) string {
			return fmt.Sprintf(`"%s"`, s)
		},
	)

	return strings.Join(quotedSplits, ".")
}

// Regular expression to validate field names
var validFieldNameRegex = regexp.MustCompile("^[a-zA-Z0-9_.]+$")

func sanitizeField(field string) string {
	if !validFieldNameRegex.MatchString(field) {
		panic("invalid field name - to risky, might be sql injection")
	}

	return quoteFields(field)
}

func (f FilterQuery) SQL() string {
	field := sanitizeField(f.field)

	switch f.operator {
	case "is":
		return field + " = ?"
	case "is not":
		return field + " != ?"
	case "is greater than":
		return field + " > ?"
	case "is less than":
		return field + " < ?"
	case "is after":
		return field + " > ?"
	case "is before":
		return field + " < ?"
	case "like":
		return field + " LIKE ?"
	default:
		// default do an equals
		return field + " = ?"
	}
}

func (f FilterQuery) Value() any {
	switch f.operator {
	case "like":
		return "%" + f.value + "%"
	default:
		return f.value
	}
}

func (s SortQuery) SQL() string {
	field := sanitizeField(s.Field)
	if s.Operator == "desc" {
		return field + " DESC"
	}
	return field + " ASC"
}
