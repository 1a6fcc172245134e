package entity

import (
	"time"

	"github.com/google/uuid"
)

// Like is a pure join between Photo and User. The composite primary key is
// the uniqueness backstop for concurrent like requests on the same pair.
type Like struct {
	PhotoID string    `json:"photo_id" gorm:"type:varchar(12);primaryKey"`
	UserID  uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`

	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}

func (Like) TableName() string {
	return "likes"
}
