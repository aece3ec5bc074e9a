package models

type CMDBAssetType string

const (
	CMDBAssetTypeServer        CMDBAssetType = "server"
	CMDBAssetTypeWorkstation   CMDBAssetType = "workstation"
	CMDBAssetTypeNetworkDevice CMDBAssetType = "network_device"
	CMDBAssetTypeMobileDevice  CMDBAssetType = "mobile_device"
)

type CMDBAssetStatus string

const (
	CMDBAssetStatusActive         CMDBAssetStatus = "active"
	CMDBAssetStatusInactive       CMDBAssetStatus = "inactive"
	CMDBAssetStatusMaintenance    CMDBAssetStatus = "maintenance"
	CMDBAssetStatusDecommissioned CMDBAssetStatus = "decommissioned"
)

type CMDBAsset struct {
	TenantModel
	Name               string          `json:"name" gorm:"type:text;not null"`
	AssetType          CMDBAssetType   `json:"assetType" gorm:"type:text;default:'server'"`
	Status             CMDBAssetStatus `json:"status" gorm:"type:text;default:'active'"`
	IPAddress          string          `json:"ipAddress" gorm:"type:text"`
	OperatingSystem    string          `json:"operatingSystem" gorm:"type:text"`
	OwningTeam         string          `json:"owningTeam" gorm:"type:text"`
	VulnerabilityCount int             `json:"vulnerabilityCount"`
	InternetFacing     bool            `json:"internetFacing"`
}

func (m CMDBAsset) TableName() string {
	return "cmdb_assets"
}

// RiskLevel derives the asset risk from its open vulnerability count and
// exposure. Internet facing assets are bumped one level.
func (m CMDBAsset) RiskLevel() Severity {
	var level Severity
	switch {
	case m.VulnerabilityCount == 0:
		level = SeverityLow
	case m.VulnerabilityCount <= 5:
		level = SeverityMedium
	case m.VulnerabilityCount <= 20:
		level = SeverityHigh
	default:
		level = SeverityCritical
	}

	if !m.InternetFacing {
		return level
	}

	switch level {
	case SeverityLow:
		return SeverityMedium
	case SeverityMedium:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}
