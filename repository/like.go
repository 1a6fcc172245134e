package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-photo-service/entity"
	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Attach inserts the (photo, user) pair. A duplicate key from a racing
// request is not an error: the row the caller wanted already exists.
func (r *LikeRepository) Attach(ctx context.Context, photoID string, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).Create(&entity.Like{
		PhotoID: photoID,
		UserID:  userID,
	}).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// Detach removes the pair unconditionally. Deleting a row that does not
// exist is a no-op.
func (r *LikeRepository) Detach(ctx context.Context, photoID string, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entity.Like{}, "photo_id = ? AND user_id = ?", photoID, userID).Error
}
