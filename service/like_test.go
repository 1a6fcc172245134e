package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-photo-service/entity"
)

func seedPhoto(t *testing.T, photos *fakePhotoStore, id string) {
	t.Helper()
	err := photos.Create(context.Background(), &entity.Photo{
		ID:       id,
		OwnerID:  uuid.New(),
		Filename: id + ".jpg",
	})
	if err != nil {
		t.Fatalf("seed photo: %v", err)
	}
}

func TestLikeTwiceLeavesOneRow(t *testing.T) {
	photos := newFakePhotoStore()
	likes := newFakeLikeStore()
	seedPhoto(t, photos, "abcDEF123456")
	svc := NewLikeService(photos, likes)

	user := uuid.New()
	for i := 0; i < 2; i++ {
		photoID, err := svc.Like(context.Background(), "abcDEF123456", user)
		if err != nil {
			t.Fatalf("Like #%d failed: %v", i+1, err)
		}
		if photoID != "abcDEF123456" {
			t.Errorf("ack = %q, want photo id", photoID)
		}
	}

	if n := likes.count("abcDEF123456", user); n != 1 {
		t.Errorf("rows = %d, want 1", n)
	}
}

func TestUnlikeWithoutLikeIsNoop(t *testing.T) {
	photos := newFakePhotoStore()
	likes := newFakeLikeStore()
	seedPhoto(t, photos, "abcDEF123456")
	svc := NewLikeService(photos, likes)

	user := uuid.New()
	photoID, err := svc.Unlike(context.Background(), "abcDEF123456", user)
	if err != nil {
		t.Fatalf("Unlike failed: %v", err)
	}
	if photoID != "abcDEF123456" {
		t.Errorf("ack = %q, want photo id", photoID)
	}
	if n := likes.count("abcDEF123456", user); n != 0 {
		t.Errorf("rows = %d, want 0", n)
	}
}

func TestUnlikeRemovesExistingRow(t *testing.T) {
	photos := newFakePhotoStore()
	likes := newFakeLikeStore()
	seedPhoto(t, photos, "abcDEF123456")
	svc := NewLikeService(photos, likes)

	user := uuid.New()
	if _, err := svc.Like(context.Background(), "abcDEF123456", user); err != nil {
		t.Fatalf("Like failed: %v", err)
	}
	if _, err := svc.Unlike(context.Background(), "abcDEF123456", user); err != nil {
		t.Fatalf("Unlike failed: %v", err)
	}
	if n := likes.count("abcDEF123456", user); n != 0 {
		t.Errorf("rows = %d, want 0", n)
	}
}

func TestLikeMissingPhotoReturnsNotFound(t *testing.T) {
	svc := NewLikeService(newFakePhotoStore(), newFakeLikeStore())

	if _, err := svc.Like(context.Background(), "missing-id", uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Like err = %v, want ErrNotFound", err)
	}
	if _, err := svc.Unlike(context.Background(), "missing-id", uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Unlike err = %v, want ErrNotFound", err)
	}
}

func TestConcurrentLikesLeaveOneRow(t *testing.T) {
	photos := newFakePhotoStore()
	likes := newFakeLikeStore()
	seedPhoto(t, photos, "abcDEF123456")
	svc := NewLikeService(photos, likes)

	user := uuid.New()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Like(context.Background(), "abcDEF123456", user); err != nil {
				t.Errorf("concurrent Like failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if n := likes.count("abcDEF123456", user); n != 1 {
		t.Errorf("rows = %d, want 1", n)
	}
}
