package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditType string

const (
	AuditTypeInternal   AuditType = "internal"
	AuditTypeExternal   AuditType = "external"
	AuditTypeRegulatory AuditType = "regulatory"
	AuditTypeSupplier   AuditType = "supplier"
)

type AuditStatus string

const (
	AuditStatusPlanned    AuditStatus = "planned"
	AuditStatusInProgress AuditStatus = "in_progress"
	AuditStatusCompleted  AuditStatus = "completed"
	AuditStatusCancelled  AuditStatus = "cancelled"
)

type AuditReport struct {
	TenantModel
	Title           string      `json:"title" gorm:"type:text;not null"`
	AuditType       AuditType   `json:"auditType" gorm:"type:text;default:'internal'"`
	Status          AuditStatus `json:"status" gorm:"type:text;default:'planned'"`
	Scope           string      `json:"scope" gorm:"type:text"`
	Findings        string      `json:"findings" gorm:"type:text"`
	Recommendations string      `json:"recommendations" gorm:"type:text"`
	StartDate       *time.Time  `json:"startDate" gorm:"type:date"`
	EndDate         *time.Time  `json:"endDate" gorm:"type:date"`
}

func (m AuditReport) TableName() string {
	return "audit_reports"
}

// WorkingPaperTemplate is a reusable checklist audit teams instantiate working
// papers from.
type WorkingPaperTemplate struct {
	TenantModel
	Name        string         `json:"name" gorm:"type:text;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Checklist   datatypes.JSON `json:"checklist" gorm:"type:jsonb;default:'[]'"`
}

func (m WorkingPaperTemplate) TableName() string {
	return "templates_papeis_trabalho"
}

type WorkingPaperStatus string

const (
	WorkingPaperStatusDraft    WorkingPaperStatus = "draft"
	WorkingPaperStatusInReview WorkingPaperStatus = "in_review"
	WorkingPaperStatusApproved WorkingPaperStatus = "approved"
)

type WorkingPaper struct {
	TenantModel
	AuditReportID uuid.UUID          `json:"auditReportId" gorm:"type:uuid;not null;index"`
	TemplateID    *uuid.UUID         `json:"templateId" gorm:"type:uuid"`
	Title         string             `json:"title" gorm:"type:text;not null"`
	Status        WorkingPaperStatus `json:"status" gorm:"type:text;default:'draft'"`
	Content       datatypes.JSON     `json:"content" gorm:"type:jsonb;default:'{}'"`
	Reviewer      string             `json:"reviewer" gorm:"type:text"`
}

func (m WorkingPaper) TableName() string {
	return "papeis_trabalho"
}
