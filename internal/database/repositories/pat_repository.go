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
	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PATRepository struct {
	*GormRepository[uuid.UUID, models.PAT]
	db *gorm.DB
}

func NewPATRepository(db *gorm.DB) *PATRepository {
	return &PATRepository{
		GormRepository: newGormRepository[uuid.UUID, models.PAT](db),
		db:             db,
	}
}

func (g *PATRepository) ReadByToken(token string) (models.PAT, error) {
	var t models.PAT
	// make sure to hash the token before querying
	err := g.db.First(&t, "token = ?", t.HashToken(token)).Error
	return t, err
}

func (g *PATRepository) ListByUserID(userID uuid.UUID) ([]models.PAT, error) {
	var pats []models.PAT
	err := g.db.Where("user_id = ?", userID).Find(&pats).Error
	return pats, err
}
