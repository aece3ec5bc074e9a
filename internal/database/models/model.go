package models

import (
	"time"

	"github.com/google/uuid"
)

type Model struct {
	ID        uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m Model) GetID() uuid.UUID {
	return m.ID
}

// TenantModel is embedded by every row type that is partitioned by tenant.
type TenantModel struct {
	Model
	TenantID uuid.UUID `gorm:"type:uuid;not null;index" json:"tenantId"`
}

func (m TenantModel) GetTenantID() uuid.UUID {
	return m.TenantID
}
