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

package pat

import (
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type repository interface {
	Create(tx core.DB, p *models.PAT) error
	Read(id uuid.UUID) (models.PAT, error)
	Delete(tx core.DB, id uuid.UUID) error
	ListByUserID(userID uuid.UUID) ([]models.PAT, error)
}

type HTTPController struct {
	patRepository repository
}

func NewHTTPController(repository repository) *HTTPController {
	return &HTTPController{
		patRepository: repository,
	}
}

func (p *HTTPController) Create(c core.Context) error {
	userID, err := uuid.Parse(core.GetSession(c).GetUserID())
	if err != nil {
		return echo.NewHTTPError(401, "could not get session").WithInternal(err)
	}

	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	pat, token := req.toModel(userID)

	if err := p.patRepository.Create(nil, &pat); err != nil {
		return echo.NewHTTPError(500, "could not create token").WithInternal(err)
	}

	return c.JSON(200, map[string]any{
		"id":          pat.ID.String(),
		"createdAt":   pat.CreatedAt,
		"description": pat.Description,
		"scopes":      pat.ScopeList(),
		// the only time the plaintext token leaves the service
		"token": token,
	})
}

func (p *HTTPController) List(c core.Context) error {
	userID, err := uuid.Parse(core.GetSession(c).GetUserID())
	if err != nil {
		return echo.NewHTTPError(401, "could not get session").WithInternal(err)
	}

	pats, err := p.patRepository.ListByUserID(userID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list tokens").WithInternal(err)
	}

	return c.JSON(200, pats)
}

func (p *HTTPController) Delete(c core.Context) error {
	tokenID, err := core.GetUUIDParam(c, "tokenID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	pat, err := p.patRepository.Read(tokenID)
	if err != nil {
		return echo.NewHTTPError(404, "token not found").WithInternal(err)
	}

	// only the owner may revoke a token
	if pat.UserID.String() != core.GetSession(c).GetUserID() {
		return echo.NewHTTPError(403, "not allowed to delete this token")
	}

	if err := p.patRepository.Delete(nil, tokenID); err != nil {
		return echo.NewHTTPError(500, "could not delete token").WithInternal(err)
	}

	return c.NoContent(200)
}
