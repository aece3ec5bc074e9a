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

package repositories

import (
	"strings"

	"github.com/conformo/conformo/internal/core"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantScopedRepository wraps the generic repository for models carrying a
// tenant_id column. Every read goes through the tenant filter, so a handler
// can never leak rows across tenants by forgetting a where clause.
type TenantScopedRepository[T Tabler] struct {
	*GormRepository[uuid.UUID, T]
	db *gorm.DB
	// orderBy is the fixed default ordering of the collection
	orderBy string
	// searchFields are the text columns the free-text search matches against
	searchFields []string
}

func NewTenantScopedRepository[T Tabler](db *gorm.DB, orderBy string, searchFields ...string) *TenantScopedRepository[T] {
	return &TenantScopedRepository[T]{
		GormRepository: newGormRepository[uuid.UUID, T](db),
		db:             db,
		orderBy:        orderBy,
		searchFields:   searchFields,
	}
}

func (g *TenantScopedRepository[T]) AllByTenant(tenantID uuid.UUID) ([]T, error) {
	var ts []T
	err := g.db.Where("tenant_id = ?", tenantID).Order(g.orderBy).Find(&ts).Error
	return ts, err
}

// ReadByTenant fetches a single row and verifies it belongs to the tenant.
func (g *TenantScopedRepository[T]) ReadByTenant(tenantID, id uuid.UUID) (T, error) {
	var t T
	err := g.db.Where("tenant_id = ?", tenantID).First(&t, "id = ?", id).Error
	return t, err
}

func (g *TenantScopedRepository[T]) DeleteByTenant(tx *gorm.DB, tenantID, id uuid.UUID) error {
	var t T
	return g.GetDB(tx).Where("tenant_id = ?", tenantID).Delete(&t, "id = ?", id).Error
}

func (g *TenantScopedRepository[T]) CountByTenant(tenantID uuid.UUID, query string, args ...any) (int64, error) {
	var t T
	var count int64
	q := g.db.Model(&t).Where("tenant_id = ?", tenantID)
	if query != "" {
		q = q.Where(query, args...)
	}
	err := q.Count(&count).Error
	return count, err
}

// ListPaged implements the tenant scoped list-and-filter contract: fixed
// ordering, free-text search over the declared columns and the generic
// filterQuery/sort query parameters.
func (g *TenantScopedRepository[T]) ListPaged(tenantID uuid.UUID, pageInfo core.PageInfo, search string, filter []core.FilterQuery, sort []core.SortQuery) (core.Paged[T], error) {
	var t T
	q := g.db.Model(&t).Where("tenant_id = ?", tenantID)

	if search != "" && len(g.searchFields) > 0 {
		conds := make([]string, len(g.searchFields))
		args := make([]any, len(g.searchFields))
		for i, field := range g.searchFields {
			conds[i] = field + " ILIKE ?"
			args[i] = "%" + search + "%"
		}
		q = q.Where(strings.Join(conds, " OR "), args...)
	}

	for _, f := range filter {
		q = q.Where(f.SQL(), f.Value())
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return core.Paged[T]{}, err
	}

	if len(sort) > 0 {
		for _, s := range sort {
			q = q.Order(s.SQL())
		}
	} else {
		q = q.Order(g.orderBy)
	}

	var ts []T
	err := pageInfo.ApplyOnDB(q).Find(&ts).Error
	if err != nil {
		return core.Paged[T]{}, err
	}

	return core.NewPaged(pageInfo, count, ts), nil
}
