package service

import (
	"context"

	"github.com/google/uuid"
)

// LikeService applies idempotent attach/detach on the like association.
// The detach-then-attach pair normalizes any prior inconsistent state; the
// store's pair uniqueness is the backstop under concurrent calls, not a lock
// taken here.
type LikeService struct {
	photos PhotoStore
	likes  LikeStore
}

func NewLikeService(photos PhotoStore, likes LikeStore) *LikeService {
	return &LikeService{
		photos: photos,
		likes:  likes,
	}
}

// Like leaves exactly one row for the pair regardless of prior state.
// Returns the photo ID as acknowledgment.
func (s *LikeService) Like(ctx context.Context, photoID string, userID uuid.UUID) (string, error) {
	if _, err := s.photos.FindByID(ctx, photoID); err != nil {
		return "", err
	}

	if err := s.likes.Detach(ctx, photoID, userID); err != nil {
		return "", err
	}
	if err := s.likes.Attach(ctx, photoID, userID); err != nil {
		return "", err
	}

	return photoID, nil
}

// Unlike removes the pair. Removing a pair that never existed is success.
func (s *LikeService) Unlike(ctx context.Context, photoID string, userID uuid.UUID) (string, error) {
	if _, err := s.photos.FindByID(ctx, photoID); err != nil {
		return "", err
	}

	if err := s.likes.Detach(ctx, photoID, userID); err != nil {
		return "", err
	}

	return photoID, nil
}
