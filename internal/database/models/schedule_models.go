package models

import (
	"time"

	"github.com/google/uuid"
)

type InitiativeStatus string

const (
	InitiativeStatusPlanned   InitiativeStatus = "planned"
	InitiativeStatusActive    InitiativeStatus = "active"
	InitiativeStatusOnHold    InitiativeStatus = "on_hold"
	InitiativeStatusConcluded InitiativeStatus = "concluded"
)

type StrategicInitiative struct {
	TenantModel
	Title       string           `json:"title" gorm:"type:text;not null"`
	Owner       string           `json:"owner" gorm:"type:text"`
	Status      InitiativeStatus `json:"status" gorm:"type:text;default:'planned'"`
	StartsOn    *time.Time       `json:"startsOn" gorm:"type:date"`
	EndsOn      *time.Time       `json:"endsOn" gorm:"type:date"`
	Description string           `json:"description" gorm:"type:text"`
}

func (m StrategicInitiative) TableName() string {
	return "iniciativas_estrategicas"
}

type ScheduleActivity struct {
	TenantModel
	InitiativeID      uuid.UUID      `json:"initiativeId" gorm:"type:uuid;not null;index"`
	Title             string         `json:"title" gorm:"type:text;not null"`
	PeriodStart       *time.Time     `json:"periodStart" gorm:"type:date"`
	PeriodEnd         *time.Time     `json:"periodEnd" gorm:"type:date"`
	Status            ActivityStatus `json:"status" gorm:"type:text;default:'pending'"`
	CompletionPercent int            `json:"completionPercent"`
}

func (m ScheduleActivity) TableName() string {
	return "cronograma_atividades"
}
