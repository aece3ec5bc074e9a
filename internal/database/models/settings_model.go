package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SecuritySettings is a versioned configuration record, one per tenant. The
// version increments on every write and stale writers are rejected, so two
// admins cannot silently overwrite each other.
type SecuritySettings struct {
	TenantID  uuid.UUID      `json:"tenantId" gorm:"primarykey;type:uuid"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Version   int            `json:"version" gorm:"default:1"`
	Config    datatypes.JSON `json:"config" gorm:"type:jsonb;default:'{}'"`
}

func (m SecuritySettings) TableName() string {
	return "security_settings"
}
