package models

import "github.com/google/uuid"

// Project is owned by exactly one user. OwnerID never changes after creation;
// tasks reference the project through Task.ProjectID.
type Project struct {
	BaseModel

	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Status      string    `gorm:"not null" json:"status"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner"`
}
