package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-photo-service/entity"
)

func seedPhotoAt(t *testing.T, photos *fakePhotoStore, id string, createdAt time.Time) {
	t.Helper()
	err := photos.Create(context.Background(), &entity.Photo{
		ID:        id,
		OwnerID:   uuid.New(),
		Filename:  id + ".jpg",
		CreatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("seed photo %s: %v", id, err)
	}
}

func TestListNewestFirstWithStableTies(t *testing.T) {
	photos := newFakePhotoStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seedPhotoAt(t, photos, "oldest000001", base)
	seedPhotoAt(t, photos, "tiedfirst001", base.Add(time.Hour))
	seedPhotoAt(t, photos, "tiedsecond02", base.Add(time.Hour))
	seedPhotoAt(t, photos, "newest000001", base.Add(2*time.Hour))

	svc := NewPhotoQueryService(photos, newFakeBlobStore(), 0)
	page, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"newest000001", "tiedfirst001", "tiedsecond02", "oldest000001"}
	if len(page.Photos) != len(want) {
		t.Fatalf("got %d photos, want %d", len(page.Photos), len(want))
	}
	for i, id := range want {
		if page.Photos[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, page.Photos[i].ID, id)
		}
	}
}

func TestListPagination(t *testing.T) {
	photos := newFakePhotoStore()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 20; i++ {
		seedPhotoAt(t, photos, newTestPhotoID(t, i), base.Add(time.Duration(i)*time.Minute))
	}

	svc := NewPhotoQueryService(photos, newFakeBlobStore(), DefaultPerPage)

	first, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List page 1 failed: %v", err)
	}
	if len(first.Photos) != DefaultPerPage {
		t.Errorf("page 1 size = %d, want %d", len(first.Photos), DefaultPerPage)
	}
	if first.Total != 20 || first.LastPage != 2 {
		t.Errorf("total = %d lastPage = %d, want 20 and 2", first.Total, first.LastPage)
	}

	second, err := svc.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("List page 2 failed: %v", err)
	}
	if len(second.Photos) != 5 {
		t.Errorf("page 2 size = %d, want 5", len(second.Photos))
	}

	// Page boundary: no photo appears on both pages.
	seen := map[string]bool{}
	for _, p := range first.Photos {
		seen[p.ID] = true
	}
	for _, p := range second.Photos {
		if seen[p.ID] {
			t.Errorf("photo %s appears on both pages", p.ID)
		}
	}
}

func TestListClampsPageBelowOne(t *testing.T) {
	photos := newFakePhotoStore()
	seedPhotoAt(t, photos, "only00000001", time.Now())

	svc := NewPhotoQueryService(photos, newFakeBlobStore(), DefaultPerPage)
	page, err := svc.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Page != 1 || len(page.Photos) != 1 {
		t.Errorf("page = %d size = %d, want 1 and 1", page.Page, len(page.Photos))
	}
}

func TestGetMissingPhotoReturnsNotFound(t *testing.T) {
	svc := NewPhotoQueryService(newFakePhotoStore(), newFakeBlobStore(), DefaultPerPage)

	if _, err := svc.Get(context.Background(), "missing-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDownloadResolvesExistingPhoto(t *testing.T) {
	blobs := newFakeBlobStore()
	photos := newFakePhotoStore()
	ingestor := NewPhotoIngestor(blobs, photos, nil, nopLogger{})

	photo, err := ingestor.Ingest(context.Background(), uuid.New(), fileReader([]byte("abc")), 3, "jpg", "image/jpeg")
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	svc := NewPhotoQueryService(photos, blobs, DefaultPerPage)
	resolved, err := svc.Download(context.Background(), photo.ID)
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if resolved.Filename != photo.Filename {
		t.Errorf("filename = %q, want %q", resolved.Filename, photo.Filename)
	}
}

func TestDownloadMissingBlobReturnsNotFound(t *testing.T) {
	blobs := newFakeBlobStore()
	photos := newFakePhotoStore()
	ingestor := NewPhotoIngestor(blobs, photos, nil, nopLogger{})

	photo, err := ingestor.Ingest(context.Background(), uuid.New(), fileReader([]byte("abc")), 3, "jpg", "image/jpeg")
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	// The metadata row survives but the blob disappears out of band.
	if err := blobs.Delete(context.Background(), photo.Filename); err != nil {
		t.Fatalf("delete blob: %v", err)
	}

	svc := NewPhotoQueryService(photos, blobs, DefaultPerPage)
	if _, err := svc.Download(context.Background(), photo.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDownloadMissingPhotoReturnsNotFound(t *testing.T) {
	svc := NewPhotoQueryService(newFakePhotoStore(), newFakeBlobStore(), DefaultPerPage)

	if _, err := svc.Download(context.Background(), "missing-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestIngestedPhotoListsFirst(t *testing.T) {
	blobs := newFakeBlobStore()
	photos := newFakePhotoStore()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	seedPhotoAt(t, photos, "existing0001", base)

	ingestor := NewPhotoIngestor(blobs, photos, nil, nopLogger{})
	photo, err := ingestor.Ingest(context.Background(), uuid.New(), fileReader([]byte("abc")), 3, "jpg", "image/jpeg")
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	// Simulate the store timestamp assigned at insert.
	photos.mu.Lock()
	photos.photos[photo.ID].CreatedAt = base.Add(time.Hour)
	photos.mu.Unlock()

	page, err := NewPhotoQueryService(photos, blobs, DefaultPerPage).List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Photos[0].ID != photo.ID {
		t.Errorf("newest photo %s not first in listing", photo.ID)
	}
}

// newTestPhotoID builds deterministic 12-char ids for pagination tests.
func newTestPhotoID(t *testing.T, i int) string {
	t.Helper()
	id := "photo0000000" + string(rune('a'+i%26))
	return id[len(id)-12:]
}
