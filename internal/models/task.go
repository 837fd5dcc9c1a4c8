package models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	BaseModel

	ProjectID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"project"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Status      string     `gorm:"not null;index" json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}
