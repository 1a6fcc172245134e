package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Photo rows must only exist while the object named Filename exists in
// storage. The ingestion flow writes the blob first and compensates with a
// delete when the insert fails.
type Photo struct {
	ID       string    `json:"id" gorm:"type:varchar(12);primaryKey"`
	OwnerID  uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	Filename string    `json:"filename" gorm:"type:varchar(255);uniqueIndex;not null"`

	// Upload attributes captured at ingest time (size, content type).
	Attributes datatypes.JSON `json:"attributes,omitempty"`

	// Seq preserves insertion order for stable pagination when two photos
	// share the same created_at.
	Seq int64 `json:"-" gorm:"autoIncrement;uniqueIndex"`

	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Owner    *User     `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PhotoID;constraint:OnDelete:CASCADE"`
	Likes    []Like    `json:"likes,omitempty" gorm:"foreignKey:PhotoID;constraint:OnDelete:CASCADE"`
}
