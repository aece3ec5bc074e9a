package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StatSnapshot is a periodic capture of a tenant's dashboard counters, written
// by the statistics daemon and read for trend charts.
type StatSnapshot struct {
	ID         uuid.UUID      `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	CreatedAt  time.Time      `json:"createdAt"`
	TenantID   uuid.UUID      `json:"tenantId" gorm:"type:uuid;not null;index"`
	CapturedAt time.Time      `json:"capturedAt"`
	Stats      datatypes.JSON `json:"stats" gorm:"type:jsonb;default:'{}'"`
}

func (m StatSnapshot) TableName() string {
	return "stat_snapshots"
}
