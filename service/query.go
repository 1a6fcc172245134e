package service

import (
	"context"
	"fmt"

	"github.com/tnqbao/gau-photo-service/entity"
)

const DefaultPerPage = 15

// PhotoPage is one page of the newest-first photo listing.
type PhotoPage struct {
	Photos   []entity.Photo
	Page     int
	PerPage  int
	Total    int64
	LastPage int
}

// PhotoQueryService is the read side: list projection, the full detail
// read joining owner, comments and likes, and download resolution.
type PhotoQueryService struct {
	photos  PhotoStore
	blobs   BlobStore
	perPage int
}

func NewPhotoQueryService(photos PhotoStore, blobs BlobStore, perPage int) *PhotoQueryService {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return &PhotoQueryService{
		photos:  photos,
		blobs:   blobs,
		perPage: perPage,
	}
}

func (s *PhotoQueryService) List(ctx context.Context, page int) (*PhotoPage, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * s.perPage
	photos, total, err := s.photos.List(ctx, offset, s.perPage)
	if err != nil {
		return nil, err
	}

	lastPage := int((total + int64(s.perPage) - 1) / int64(s.perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	return &PhotoPage{
		Photos:   photos,
		Page:     page,
		PerPage:  s.perPage,
		Total:    total,
		LastPage: lastPage,
	}, nil
}

// Get returns the photo with owner, comments (with authors) and likes, or
// ErrNotFound. An absent photo is an outcome, not an empty object.
func (s *PhotoQueryService) Get(ctx context.Context, id string) (*entity.Photo, error) {
	return s.photos.FindByIDWithRelations(ctx, id)
}

// Download resolves a photo for byte retrieval. The metadata row alone is
// not enough: a row whose blob has gone missing reads as ErrNotFound, never
// as a broken stream.
func (s *PhotoQueryService) Download(ctx context.Context, id string) (*entity.Photo, error) {
	photo, err := s.photos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.blobs.Exists(ctx, photo.Filename)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: blob %s missing", ErrNotFound, photo.Filename)
	}

	return photo, nil
}
