package models

import "time"

type ComplianceStatus string

const (
	ComplianceStatusCompliant          ComplianceStatus = "compliant"
	ComplianceStatusNonCompliant       ComplianceStatus = "non_compliant"
	ComplianceStatusPartiallyCompliant ComplianceStatus = "partially_compliant"
	ComplianceStatusNotAssessed        ComplianceStatus = "not_assessed"
)

type ComplianceRecord struct {
	TenantModel
	Framework          string           `json:"framework" gorm:"type:text;not null"`
	ControlID          string           `json:"controlId" gorm:"type:text;not null"`
	Description        string           `json:"description" gorm:"type:text"`
	Status             ComplianceStatus `json:"status" gorm:"type:text;default:'not_assessed'"`
	EvidenceURL        string           `json:"evidenceUrl" gorm:"type:text"`
	LastAssessmentDate *time.Time       `json:"lastAssessmentDate" gorm:"type:date"`
	NextAssessmentDate *time.Time       `json:"nextAssessmentDate" gorm:"type:date"`
	Responsible        string           `json:"responsible" gorm:"type:text"`
}

func (m ComplianceRecord) TableName() string {
	return "compliance_records"
}
