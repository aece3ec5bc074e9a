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

package cmdb

import (
	"github.com/conformo/conformo/internal/database/models"
	"github.com/google/uuid"
)

type createRequest struct {
	Name               string `json:"name" validate:"required"`
	AssetType          string `json:"assetType" validate:"omitempty,oneof=server workstation network_device mobile_device"`
	Status             string `json:"status" validate:"omitempty,oneof=active inactive maintenance decommissioned"`
	IPAddress          string `json:"ipAddress" validate:"omitempty,ip"`
	OperatingSystem    string `json:"operatingSystem"`
	OwningTeam         string `json:"owningTeam"`
	VulnerabilityCount int    `json:"vulnerabilityCount" validate:"gte=0"`
	InternetFacing     bool   `json:"internetFacing"`
}

func (r createRequest) ToModel(tenantID uuid.UUID) models.CMDBAsset {
	assetType := models.CMDBAssetType(r.AssetType)
	if assetType == "" {
		assetType = models.CMDBAssetTypeServer
	}
	status := models.CMDBAssetStatus(r.Status)
	if status == "" {
		status = models.CMDBAssetStatusActive
	}
	return models.CMDBAsset{
		TenantModel:        models.TenantModel{TenantID: tenantID},
		Name:               r.Name,
		AssetType:          assetType,
		Status:             status,
		IPAddress:          r.IPAddress,
		OperatingSystem:    r.OperatingSystem,
		OwningTeam:         r.OwningTeam,
		VulnerabilityCount: r.VulnerabilityCount,
		InternetFacing:     r.InternetFacing,
	}
}

type patchRequest struct {
	Name               *string `json:"name"`
	AssetType          *string `json:"assetType" validate:"omitempty,oneof=server workstation network_device mobile_device"`
	Status             *string `json:"status" validate:"omitempty,oneof=active inactive maintenance decommissioned"`
	IPAddress          *string `json:"ipAddress" validate:"omitempty,ip"`
	OperatingSystem    *string `json:"operatingSystem"`
	OwningTeam         *string `json:"owningTeam"`
	VulnerabilityCount *int    `json:"vulnerabilityCount" validate:"omitempty,gte=0"`
	InternetFacing     *bool   `json:"internetFacing"`
}

func (r patchRequest) ApplyToModel(m *models.CMDBAsset) bool {
	updated := false
	if r.Name != nil {
		updated = true
		m.Name = *r.Name
	}
	if r.AssetType != nil {
		updated = true
		m.AssetType = models.CMDBAssetType(*r.AssetType)
	}
	if r.Status != nil {
		updated = true
		m.Status = models.CMDBAssetStatus(*r.Status)
	}
	if r.IPAddress != nil {
		updated = true
		m.IPAddress = *r.IPAddress
	}
	if r.OperatingSystem != nil {
		updated = true
		m.OperatingSystem = *r.OperatingSystem
	}
	if r.OwningTeam != nil {
		updated = true
		m.OwningTeam = *r.OwningTeam
	}
	if r.VulnerabilityCount != nil {
		updated = true
		m.VulnerabilityCount = *r.VulnerabilityCount
	}
	if r.InternetFacing != nil {
		updated = true
		m.InternetFacing = *r.InternetFacing
	}
	return updated
}

// assetDTO decorates the stored asset with its derived risk level.
type assetDTO struct {
	models.CMDBAsset
	RiskLevel models.Severity `json:"riskLevel"`
}

func toDTO(asset models.CMDBAsset) assetDTO {
	return assetDTO{CMDBAsset: asset, RiskLevel: asset.RiskLevel()}
}
