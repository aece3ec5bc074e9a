package models

import "github.com/google/uuid"

type Tenant struct {
	Model
	Name         string  `json:"name" gorm:"type:text;not null"`
	Slug         string  `json:"slug" gorm:"type:text;unique;not null;index"`
	Description  string  `json:"description" gorm:"type:text"`
	Industry     *string `json:"industry" gorm:"type:text"`
	Country      *string `json:"country" gorm:"type:text"`
	ContactEmail *string `json:"contactEmail" gorm:"type:text"`
}

func (m Tenant) TableName() string {
	return "tenants"
}

type Profile struct {
	Model
	TenantID     uuid.UUID `json:"tenantId" gorm:"type:uuid;not null;uniqueIndex:uq_profiles_tenant_email"`
	Email        string    `json:"email" gorm:"type:text;not null;uniqueIndex:uq_profiles_tenant_email"`
	FullName     string    `json:"fullName" gorm:"type:text;not null"`
	JobTitle     string    `json:"jobTitle" gorm:"type:text"`
	PasswordHash string    `json:"-" gorm:"type:text;not null"`
}

func (m Profile) TableName() string {
	return "profiles"
}
