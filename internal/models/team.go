package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team groups users inside a department. The table is provisioned for the
// team-management screens but has no API surface yet.
type Team struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Department  string    `gorm:"type:varchar(100)" json:"department"`
	Members     string    `gorm:"type:text;default:'[]'" json:"members"`
	CreatedBy   string    `gorm:"type:varchar(8)" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// ActivityLog records user actions. Provisioned, not yet written to.
type ActivityLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(8);index" json:"user_id"`
	Action    string    `gorm:"type:text" json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
