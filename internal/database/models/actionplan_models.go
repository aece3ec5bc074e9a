package models

import (
	"time"

	"github.com/google/uuid"
)

type ActionPlanCategory struct {
	TenantModel
	Name        string `json:"name" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text"`
}

func (m ActionPlanCategory) TableName() string {
	return "action_plan_categories"
}

type ActionPlanStatus string

const (
	ActionPlanStatusOpen       ActionPlanStatus = "open"
	ActionPlanStatusInProgress ActionPlanStatus = "in_progress"
	ActionPlanStatusDone       ActionPlanStatus = "done"
	ActionPlanStatusCancelled  ActionPlanStatus = "cancelled"
)

type ActionPlan struct {
	TenantModel
	CategoryID        *uuid.UUID           `json:"categoryId" gorm:"type:uuid"`
	Title             string               `json:"title" gorm:"type:text;not null"`
	Description       string               `json:"description" gorm:"type:text"`
	Status            ActionPlanStatus     `json:"status" gorm:"type:text;default:'open'"`
	GutGravity        int                  `json:"gutGravity" gorm:"default:1"`
	GutUrgency        int                  `json:"gutUrgency" gorm:"default:1"`
	GutTendency       int                  `json:"gutTendency" gorm:"default:1"`
	BudgetPlanned     float64              `json:"budgetPlanned"`
	BudgetRealized    float64              `json:"budgetRealized"`
	CompletionPercent int                  `json:"completionPercent"`
	DueDate           *time.Time           `json:"dueDate" gorm:"type:date"`
	Activities        []ActionPlanActivity `json:"activities,omitempty" gorm:"foreignKey:ActionPlanID;constraint:OnDelete:CASCADE;"`
}

func (m ActionPlan) TableName() string {
	return "action_plans"
}

// GutScore is the Gravity x Urgency x Tendency priority heuristic (1-125).
func (m ActionPlan) GutScore() int {
	return m.GutGravity * m.GutUrgency * m.GutTendency
}

type ActivityStatus string

const (
	ActivityStatusPending    ActivityStatus = "pending"
	ActivityStatusInProgress ActivityStatus = "in_progress"
	ActivityStatusCompleted  ActivityStatus = "completed"
	ActivityStatusBlocked    ActivityStatus = "blocked"
)

type ActionPlanActivity struct {
	TenantModel
	ActionPlanID      uuid.UUID      `json:"actionPlanId" gorm:"type:uuid;not null;index"`
	Title             string         `json:"title" gorm:"type:text;not null"`
	Responsible       string         `json:"responsible" gorm:"type:text"`
	Deadline          *time.Time     `json:"deadline" gorm:"type:date"`
	Status            ActivityStatus `json:"status" gorm:"type:text;default:'pending'"`
	CompletionPercent int            `json:"completionPercent"`
	CostEstimated     *float64       `json:"costEstimated"`
	CostActual        *float64       `json:"costActual"`
	HoursEstimated    *float64       `json:"hoursEstimated"`
	HoursActual       *float64       `json:"hoursActual"`
}

func (m ActionPlanActivity) TableName() string {
	return "action_plan_activities"
}
