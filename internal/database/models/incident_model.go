package models

import (
	"time"

	"gorm.io/datatypes"
)

type IncidentType string

const (
	IncidentTypeMalware      IncidentType = "malware"
	IncidentTypePhishing     IncidentType = "phishing"
	IncidentTypeDataBreach   IncidentType = "data_breach"
	IncidentTypeUnauthorized IncidentType = "unauthorized_access"
	IncidentTypeDenial       IncidentType = "denial_of_service"
	IncidentTypeOther        IncidentType = "other"
)

type IncidentStatus string

const (
	IncidentStatusOpen          IncidentStatus = "open"
	IncidentStatusInvestigating IncidentStatus = "investigating"
	IncidentStatusContained     IncidentStatus = "contained"
	IncidentStatusResolved      IncidentStatus = "resolved"
	IncidentStatusClosed        IncidentStatus = "closed"
)

type SecurityIncident struct {
	TenantModel
	Title           string         `json:"title" gorm:"type:text;not null"`
	IncidentType    IncidentType   `json:"incidentType" gorm:"type:text;default:'other'"`
	Severity        Severity       `json:"severity" gorm:"type:text;default:'low'"`
	Status          IncidentStatus `json:"status" gorm:"type:text;default:'open'"`
	AffectedSystems datatypes.JSON `json:"affectedSystems" gorm:"type:jsonb;default:'[]'"`
	DetectedAt      *time.Time     `json:"detectedAt"`
	ResolvedAt      *time.Time     `json:"resolvedAt"`
	ReportedBy      string         `json:"reportedBy" gorm:"type:text"`
	AssignedTo      string         `json:"assignedTo" gorm:"type:text"`
}

func (m SecurityIncident) TableName() string {
	return "security_incidents"
}
