package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type LegalBasisStatus string

const (
	LegalBasisStatusActive      LegalBasisStatus = "active"
	LegalBasisStatusUnderReview LegalBasisStatus = "under_review"
	LegalBasisStatusRetired     LegalBasisStatus = "retired"
)

type LegalBasis struct {
	TenantModel
	Name        string           `json:"name" gorm:"type:text;not null"`
	LegalGround string           `json:"legalGround" gorm:"type:text;not null"`
	Description string           `json:"description" gorm:"type:text"`
	Status      LegalBasisStatus `json:"status" gorm:"type:text;default:'active'"`
	ReviewDate  *time.Time       `json:"reviewDate" gorm:"type:date"`
}

func (m LegalBasis) TableName() string {
	return "legal_bases"
}

type DataSensitivity string

const (
	DataSensitivityPublic       DataSensitivity = "public"
	DataSensitivityInternal     DataSensitivity = "internal"
	DataSensitivityConfidential DataSensitivity = "confidential"
	DataSensitivitySensitive    DataSensitivity = "sensitive"
)

type DataInventoryItem struct {
	TenantModel
	SystemName      string          `json:"systemName" gorm:"type:text;not null"`
	DataCategory    string          `json:"dataCategory" gorm:"type:text;not null"`
	Sensitivity     DataSensitivity `json:"sensitivity" gorm:"type:text;default:'internal'"`
	DataOrigin      string          `json:"dataOrigin" gorm:"type:text"`
	RetentionPeriod string          `json:"retentionPeriod" gorm:"type:text"`
	Responsible     string          `json:"responsible" gorm:"type:text"`
}

func (m DataInventoryItem) TableName() string {
	return "data_inventory"
}

type ConsentStatus string

const (
	ConsentStatusGranted ConsentStatus = "granted"
	ConsentStatusRevoked ConsentStatus = "revoked"
	ConsentStatusExpired ConsentStatus = "expired"
)

type Consent struct {
	TenantModel
	LegalBasisID *uuid.UUID    `json:"legalBasisId" gorm:"type:uuid"`
	SubjectEmail string        `json:"subjectEmail" gorm:"type:text;not null"`
	Purpose      string        `json:"purpose" gorm:"type:text;not null"`
	Status       ConsentStatus `json:"status" gorm:"type:text;default:'granted'"`
	GrantedAt    *time.Time    `json:"grantedAt"`
	RevokedAt    *time.Time    `json:"revokedAt"`
}

func (m Consent) TableName() string {
	return "consents"
}

type DSRType string

const (
	DSRTypeAccess        DSRType = "access"
	DSRTypeRectification DSRType = "rectification"
	DSRTypeDeletion      DSRType = "deletion"
	DSRTypePortability   DSRType = "portability"
	DSRTypeObjection     DSRType = "objection"
)

type DSRStatus string

const (
	DSRStatusReceived   DSRStatus = "received"
	DSRStatusInProgress DSRStatus = "in_progress"
	DSRStatusCompleted  DSRStatus = "completed"
	DSRStatusRejected   DSRStatus = "rejected"
)

type DataSubjectRequest struct {
	TenantModel
	RequesterEmail string     `json:"requesterEmail" gorm:"type:text;not null"`
	RequestType    DSRType    `json:"requestType" gorm:"type:text;not null"`
	Status         DSRStatus  `json:"status" gorm:"type:text;default:'received'"`
	Description    string     `json:"description" gorm:"type:text"`
	DueDate        time.Time  `json:"dueDate" gorm:"type:date;not null"`
	CompletedAt    *time.Time `json:"completedAt"`
}

func (m DataSubjectRequest) TableName() string {
	return "data_subject_requests"
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type PrivacyIncidentStatus string

const (
	PrivacyIncidentStatusOpen          PrivacyIncidentStatus = "open"
	PrivacyIncidentStatusInvestigating PrivacyIncidentStatus = "investigating"
	PrivacyIncidentStatusContained     PrivacyIncidentStatus = "contained"
	PrivacyIncidentStatusClosed        PrivacyIncidentStatus = "closed"
)

type PrivacyIncident struct {
	TenantModel
	Title             string                `json:"title" gorm:"type:text;not null"`
	Description       string                `json:"description" gorm:"type:text"`
	Severity          Severity              `json:"severity" gorm:"type:text;default:'low'"`
	Status            PrivacyIncidentStatus `json:"status" gorm:"type:text;default:'open'"`
	OccurredAt        *time.Time            `json:"occurredAt"`
	ContainedAt       *time.Time            `json:"containedAt"`
	DPONotified       bool                  `json:"dpoNotified"`
	AuthorityNotified bool                  `json:"authorityNotified"`
}

func (m PrivacyIncident) TableName() string {
	return "privacy_incidents"
}

type ProcessingActivity struct {
	TenantModel
	LegalBasisID          *uuid.UUID     `json:"legalBasisId" gorm:"type:uuid"`
	Name                  string         `json:"name" gorm:"type:text;not null"`
	Purpose               string         `json:"purpose" gorm:"type:text"`
	DataCategories        datatypes.JSON `json:"dataCategories" gorm:"type:jsonb;default:'[]'"`
	InternationalTransfer bool           `json:"internationalTransfer"`
	RetentionPeriod       string         `json:"retentionPeriod" gorm:"type:text"`
}

func (m ProcessingActivity) TableName() string {
	return "processing_activities"
}
