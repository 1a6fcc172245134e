package repository

import (
	"context"
	"errors"

	"github.com/tnqbao/gau-photo-service/entity"
	"github.com/tnqbao/gau-photo-service/service"
	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// Create inserts the photo row inside its own transaction. The caller has
// already written the blob; a failure here triggers its compensating delete.
func (r *PhotoRepository) Create(ctx context.Context, photo *entity.Photo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(photo).Error
	})
}

func (r *PhotoRepository) FindByID(ctx context.Context, id string) (*entity.Photo, error) {
	var photo entity.Photo
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&photo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &photo, nil
}

// FindByIDWithRelations loads a photo together with its owner, comments
// (each with their author) and likes in one logical read.
func (r *PhotoRepository) FindByIDWithRelations(ctx context.Context, id string) (*entity.Photo, error) {
	var photo entity.Photo
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		Preload("Likes").
		Where("id = ?", id).
		First(&photo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &photo, nil
}

// List returns photos newest first. Ties on created_at keep insertion order
// via the seq column so page boundaries are stable between calls.
func (r *PhotoRepository) List(ctx context.Context, offset, limit int) ([]entity.Photo, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Photo{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var photos []entity.Photo
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Likes").
		Order("created_at DESC").
		Order("seq ASC").
		Offset(offset).
		Limit(limit).
		Find(&photos).Error
	if err != nil {
		return nil, 0, err
	}

	return photos, total, nil
}
