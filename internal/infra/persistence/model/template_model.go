package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskTemplateModel is the GORM-specific struct for the 'task_templates' table.
type TaskTemplateModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;not null"`
	ClaimID     *uuid.UUID `gorm:"type:uuid"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description *string    `gorm:"type:text"`
	TemplateURL *string    `gorm:"column:template_url;type:text"`
	Status      string     `gorm:"type:varchar(32);not null"`
	Priority    string     `gorm:"type:varchar(32);not null"`
	Lifecycle
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskTemplateModel) TableName() string {
	return "task_templates"
}
