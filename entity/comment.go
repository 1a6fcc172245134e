package entity

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PhotoID  string    `json:"photo_id" gorm:"type:varchar(12);not null;index"`
	AuthorID uuid.UUID `json:"author_id" gorm:"type:uuid;not null"`
	Content  string    `json:"content" gorm:"type:text;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}
