package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AssessmentDomain struct {
	TenantModel
	Framework string `json:"framework" gorm:"type:text;not null"`
	Name      string `json:"name" gorm:"type:text;not null"`
	Weight    int    `json:"weight" gorm:"default:1"`
}

func (m AssessmentDomain) TableName() string {
	return "assessment_domains"
}

type AssessmentControl struct {
	TenantModel
	DomainID    uuid.UUID `json:"domainId" gorm:"type:uuid;not null"`
	Code        string    `json:"code" gorm:"type:text;not null"`
	Name        string    `json:"name" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text"`
}

func (m AssessmentControl) TableName() string {
	return "assessment_controls"
}

type AssessmentStatus string

const (
	AssessmentStatusDraft      AssessmentStatus = "draft"
	AssessmentStatusInProgress AssessmentStatus = "in_progress"
	AssessmentStatusCompleted  AssessmentStatus = "completed"
)

type Assessment struct {
	TenantModel
	Framework   string           `json:"framework" gorm:"type:text;not null"`
	Title       string           `json:"title" gorm:"type:text;not null"`
	Status      AssessmentStatus `json:"status" gorm:"type:text;default:'draft'"`
	StartedAt   *time.Time       `json:"startedAt"`
	CompletedAt *time.Time       `json:"completedAt"`
}

func (m Assessment) TableName() string {
	return "assessments"
}

// AnswerKind declares which answer shape a question accepts.
type AnswerKind string

const (
	AnswerKindScale          AnswerKind = "scale"
	AnswerKindBool           AnswerKind = "bool"
	AnswerKindMultipleChoice AnswerKind = "multiple_choice"
	AnswerKindText           AnswerKind = "text"
	AnswerKindNumeric        AnswerKind = "numeric"
	AnswerKindDate           AnswerKind = "date"
)

type AssessmentQuestion struct {
	TenantModel
	ControlID *uuid.UUID     `json:"controlId" gorm:"type:uuid"`
	Text      string         `json:"text" gorm:"type:text;not null"`
	Kind      AnswerKind     `json:"answerKind" gorm:"column:answer_kind;type:text;not null"`
	Options   datatypes.JSON `json:"options" gorm:"type:jsonb;default:'[]'"`
	Weight    int            `json:"weight" gorm:"default:1"`
}

func (m AssessmentQuestion) TableName() string {
	return "assessment_questions"
}

// AssessmentResponse stores one answer per (assessment, question) pair. The
// answer column holds the tagged union serialized by the assessment package.
type AssessmentResponse struct {
	TenantModel
	AssessmentID uuid.UUID      `json:"assessmentId" gorm:"type:uuid;not null;uniqueIndex:uq_assessment_responses"`
	QuestionID   uuid.UUID      `json:"questionId" gorm:"type:uuid;not null;uniqueIndex:uq_assessment_responses"`
	Answer       datatypes.JSON `json:"answer" gorm:"type:jsonb;not null"`
	AnsweredBy   string         `json:"answeredBy" gorm:"type:text"`
}

func (m AssessmentResponse) TableName() string {
	return "assessment_responses"
}
