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

// Package crud carries the controller shared by all plain tenant scoped
// collections. A collection gets list with paging, search and filtering,
// read, create, patch and delete for the price of two dto types.
package crud

import (
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/database"
	"github.com/conformo/conformo/internal/database/repositories"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CreateDTO builds a fresh model scoped to the tenant.
type CreateDTO[T any] interface {
	ToModel(tenantID uuid.UUID) T
}

// PatchDTO applies a partial update and reports whether anything changed.
type PatchDTO[T any] interface {
	ApplyToModel(*T) bool
}

type repository[T repositories.Tabler] interface {
	Create(tx core.DB, t *T) error
	Save(tx core.DB, t *T) error
	ReadByTenant(tenantID, id uuid.UUID) (T, error)
	DeleteByTenant(tx core.DB, tenantID, id uuid.UUID) error
	ListPaged(tenantID uuid.UUID, pageInfo core.PageInfo, search string, filter []core.FilterQuery, sort []core.SortQuery) (core.Paged[T], error)
}

type Controller[T repositories.Tabler, C CreateDTO[T], P PatchDTO[T]] struct {
	repository repository[T]
	idParam    string
	// afterChange runs inside the request after a successful write. Used for
	// derived values like completion percentages.
	afterChange func(c core.Context, model *T) error
}

func NewController[T repositories.Tabler, C CreateDTO[T], P PatchDTO[T]](repo repository[T], idParam string) *Controller[T, C, P] {
	return &Controller[T, C, P]{
		repository: repo,
		idParam:    idParam,
	}
}

func (ctl *Controller[T, C, P]) WithAfterChange(hook func(c core.Context, model *T) error) *Controller[T, C, P] {
	ctl.afterChange = hook
	return ctl
}

func (ctl *Controller[T, C, P]) List(c core.Context) error {
	tenant := core.GetTenant(c)

	paged, err := ctl.repository.ListPaged(
		tenant.GetID(),
		core.GetPageInfo(c),
		c.QueryParam("search"),
		core.GetFilterQuery(c),
		core.GetSortQuery(c),
	)
	if err != nil {
		return echo.NewHTTPError(500, "could not list").WithInternal(err)
	}

	return c.JSON(200, paged)
}

func (ctl *Controller[T, C, P]) Read(c core.Context) error {
	id, err := core.GetUUIDParam(c, ctl.idParam)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)
	model, err := ctl.repository.ReadByTenant(tenant.GetID(), id)
	if err != nil {
		return echo.NewHTTPError(404, "not found").WithInternal(err)
	}

	return c.JSON(200, model)
}

func (ctl *Controller[T, C, P]) Create(c core.Context) error {
	var req C
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)
	model := req.ToModel(tenant.GetID())

	if err := ctl.repository.Create(nil, &model); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "already exists").WithInternal(err)
		}
		if database.IsForeignKeyError(err) {
			return echo.NewHTTPError(400, "referenced resource does not exist").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create").WithInternal(err)
	}

	if ctl.afterChange != nil {
		if err := ctl.afterChange(c, &model); err != nil {
			return echo.NewHTTPError(500, "could not apply side effects").WithInternal(err)
		}
	}

	return c.JSON(201, model)
}

func (ctl *Controller[T, C, P]) Patch(c core.Context) error {
	id, err := core.GetUUIDParam(c, ctl.idParam)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	var req P
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)
	model, err := ctl.repository.ReadByTenant(tenant.GetID(), id)
	if err != nil {
		return echo.NewHTTPError(404, "not found").WithInternal(err)
	}

	if !req.ApplyToModel(&model) {
		return c.JSON(200, model)
	}

	if err := ctl.repository.Save(nil, &model); err != nil {
		if database.IsForeignKeyError(err) {
			return echo.NewHTTPError(400, "referenced resource does not exist").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not update").WithInternal(err)
	}

	if ctl.afterChange != nil {
		if err := ctl.afterChange(c, &model); err != nil {
			return echo.NewHTTPError(500, "could not apply side effects").WithInternal(err)
		}
	}

	return c.JSON(200, model)
}

func (ctl *Controller[T, C, P]) Delete(c core.Context) error {
	id, err := core.GetUUIDParam(c, ctl.idParam)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	tenant := core.GetTenant(c)
	if err := ctl.repository.DeleteByTenant(nil, tenant.GetID(), id); err != nil {
		return echo.NewHTTPError(500, "could not delete").WithInternal(err)
	}

	if ctl.afterChange != nil {
		var zero T
		if err := ctl.afterChange(c, &zero); err != nil {
			return echo.NewHTTPError(500, "could not apply side effects").WithInternal(err)
		}
	}

	return c.NoContent(200)
}
