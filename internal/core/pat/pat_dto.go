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
	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
)

type createRequest struct {
	Description string   `json:"description" validate:"required"`
	Scopes      []string `json:"scopes" validate:"required,min=1,dive,oneof=manage reports"`
}

func (c createRequest) toModel(userID uuid.UUID) (models.PAT, string) {
	return models.NewPAT(userID, c.Description, c.Scopes)
}
