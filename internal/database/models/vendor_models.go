package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RiskTier string

const (
	RiskTierLow      RiskTier = "low"
	RiskTierMedium   RiskTier = "medium"
	RiskTierHigh     RiskTier = "high"
	RiskTierCritical RiskTier = "critical"
)

type Vendor struct {
	TenantModel
	Name         string   `json:"name" gorm:"type:text;not null"`
	Category     string   `json:"category" gorm:"type:text"`
	RiskTier     RiskTier `json:"riskTier" gorm:"type:text;default:'low'"`
	ContactEmail string   `json:"contactEmail" gorm:"type:text"`
	Status       string   `json:"status" gorm:"type:text;default:'active'"`
}

func (m Vendor) TableName() string {
	return "vendors"
}

type CommunicationType string

const (
	CommunicationTypeEmail   CommunicationType = "email"
	CommunicationTypeMeeting CommunicationType = "meeting"
	CommunicationTypeLetter  CommunicationType = "letter"
	CommunicationTypePortal  CommunicationType = "portal"
)

type CommunicationPriority string

const (
	CommunicationPriorityLow    CommunicationPriority = "low"
	CommunicationPriorityNormal CommunicationPriority = "normal"
	CommunicationPriorityHigh   CommunicationPriority = "high"
	CommunicationPriorityUrgent CommunicationPriority = "urgent"
)

type CommunicationStatus string

const (
	CommunicationStatusDraft    CommunicationStatus = "draft"
	CommunicationStatusSent     CommunicationStatus = "sent"
	CommunicationStatusAnswered CommunicationStatus = "answered"
	CommunicationStatusClosed   CommunicationStatus = "closed"
)

// RecipientKind tags whether a recipient belongs to the tenant or the vendor
// side of the conversation.
type RecipientKind string

const (
	RecipientKindInternal RecipientKind = "internal"
	RecipientKindVendor   RecipientKind = "vendor"
)

type CommunicationRecipient struct {
	Email string        `json:"email"`
	Kind  RecipientKind `json:"kind"`
}

type VendorCommunication struct {
	TenantModel
	VendorID          uuid.UUID             `json:"vendorId" gorm:"type:uuid;not null;index"`
	Subject           string                `json:"subject" gorm:"type:text;not null"`
	Message           string                `json:"message" gorm:"type:text"`
	CommunicationType CommunicationType     `json:"communicationType" gorm:"type:text;default:'email'"`
	Priority          CommunicationPriority `json:"priority" gorm:"type:text;default:'normal'"`
	Status            CommunicationStatus   `json:"status" gorm:"type:text;default:'draft'"`
	SentAt            *time.Time            `json:"sentAt"`
	Recipients        datatypes.JSON        `json:"recipients" gorm:"type:jsonb;default:'[]'"`
}

func (m VendorCommunication) TableName() string {
	return "vendor_communications"
}

type RiskActionType string

const (
	RiskActionTypePreventive   RiskActionType = "preventive"
	RiskActionTypeDetective    RiskActionType = "detective"
	RiskActionTypeCorrective   RiskActionType = "corrective"
	RiskActionTypeCompensating RiskActionType = "compensating"
)

type Effectiveness string

const (
	EffectivenessNotRated Effectiveness = "not_rated"
	EffectivenessLow      Effectiveness = "low"
	EffectivenessModerate Effectiveness = "moderate"
	EffectivenessHigh     Effectiveness = "high"
	EffectivenessVeryHigh Effectiveness = "very_high"
)

type VendorRiskAction struct {
	TenantModel
	VendorID        uuid.UUID      `json:"vendorId" gorm:"type:uuid;not null;index"`
	Title           string         `json:"title" gorm:"type:text;not null"`
	ActionType      RiskActionType `json:"actionType" gorm:"type:text;default:'preventive'"`
	Effectiveness   Effectiveness  `json:"effectiveness" gorm:"type:text;default:'not_rated'"`
	ProgressPercent int            `json:"progressPercent"`
	DueDate         *time.Time     `json:"dueDate" gorm:"type:date"`
	Responsible     string         `json:"responsible" gorm:"type:text"`
}

func (m VendorRiskAction) TableName() string {
	return "vendor_risk_actions"
}
