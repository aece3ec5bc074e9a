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
	"errors"

	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrStaleSettings is returned when a writer lost the optimistic concurrency
// race on the versioned settings record.
var ErrStaleSettings = errors.New("settings were modified concurrently")

type SecuritySettingsRepository struct {
	db *gorm.DB
}

func NewSecuritySettingsRepository(db *gorm.DB) *SecuritySettingsRepository {
	return &SecuritySettingsRepository{db: db}
}

func (g *SecuritySettingsRepository) Read(tenantID uuid.UUID) (models.SecuritySettings, error) {
	var s models.SecuritySettings
	err := g.db.First(&s, "tenant_id = ?", tenantID).Error
	return s, err
}

func (g *SecuritySettingsRepository) Create(s *models.SecuritySettings) error {
	return g.db.Create(s).Error
}

// UpdateVersioned bumps the version together with the config. The update only
// applies when the caller read the version it claims to replace.
func (g *SecuritySettingsRepository) UpdateVersioned(s *models.SecuritySettings, expectedVersion int) error {
	res := g.db.Model(&models.SecuritySettings{}).
		Where("tenant_id = ? AND version = ?", s.TenantID, expectedVersion).
		Updates(map[string]any{
			"config":  s.Config,
			"version": expectedVersion + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleSettings
	}
	s.Version = expectedVersion + 1
	return nil
}
