package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
)

func TestIngestWritesBlobAndMetadata(t *testing.T) {
	blobs := newFakeBlobStore()
	photos := newFakePhotoStore()
	ingestor := NewPhotoIngestor(blobs, photos, nil, nopLogger{})

	owner := uuid.New()
	photo, err := ingestor.Ingest(context.Background(), owner, fileReader([]byte("abc")), 3, "jpg", "image/jpeg")
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	if matched := regexp.MustCompile(`^[A-Za-z0-9]{12}\.jpg$`).MatchString(photo.Filename); !matched {
		t.Errorf("unexpected filename %q", photo.Filename)
	}
	if photo.OwnerID != owner {
		t.Errorf("owner = %s, want %s", photo.OwnerID, owner)
	}

	if exists, _ := blobs.Exists(context.Background(), photo.Filename); !exists {
		t.Error("blob missing after successful ingest")
	}
	if _, err := photos.FindByID(context.Background(), photo.ID); err != nil {
		t.Errorf("metadata row missing after successful ingest: %v", err)
	}
}

func TestIngestNormalizesExtension(t *testing.T) {
	blobs := newFakeBlobStore()
	photos := newFakePhotoStore()
	ingestor := NewPhotoIngestor(blobs, photos, nil, nopLogger{})

	photo, err := ingestor.Ingest(context.Background(), uuid.New(), fileReader([]byte("x")), 1, ".PNG", "image/png")
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if got := photo.Filename[len(photo.Filename)-4:]; got != ".png" {
		t.Errorf("extension not normalized, filename %q", photo.Filename)
	}
}

func TestIngestMetadataFailureDeletesBlob(t *testing.T) {
	blobs := newFakeBlobStore()
	photos := newFakePhotoStore()
	photos.failCreate = true
	ingestor := NewPhotoIngestor(blobs, photos, nil, nopLogger{})

	_, err := ingestor.Ingest(context.Background(), uuid.New(), fileReader([]byte("abc")), 3, "jpg", "image/jpeg")
	if !errors.Is(err, ErrMetadataWrite) {
		t.Fatalf("err = %v, want ErrMetadataWrite", err)
	}

	blobs.mu.Lock()
	remaining := len(blobs.objects)
	blobs.mu.Unlock()
	if remaining != 0 {
		t.Errorf("blob not compensated, %d objects remain", remaining)
	}
	if len(photos.photos) != 0 {
		t.Errorf("unexpected photo rows: %d", len(photos.photos))
	}
}

func TestIngestBlobFailureSkipsMetadata(t *testing.T) {
	blobs := newFakeBlobStore()
	blobs.failPut = true
	photos := newFakePhotoStore()
	ingestor := NewPhotoIngestor(blobs, photos, nil, nopLogger{})

	_, err := ingestor.Ingest(context.Background(), uuid.New(), fileReader([]byte("abc")), 3, "jpg", "image/jpeg")
	if !errors.Is(err, ErrStorageWrite) {
		t.Fatalf("err = %v, want ErrStorageWrite", err)
	}
	if photos.creates != 0 {
		t.Errorf("metadata insert attempted after blob failure")
	}
}

func TestIngestCompensationFailureQueuesCleanup(t *testing.T) {
	blobs := newFakeBlobStore()
	blobs.failDelete = true
	photos := newFakePhotoStore()
	photos.failCreate = true
	cleanup := &fakeCleanupPublisher{}
	ingestor := NewPhotoIngestor(blobs, photos, cleanup, nopLogger{})

	_, err := ingestor.Ingest(context.Background(), uuid.New(), fileReader([]byte("abc")), 3, "jpg", "image/jpeg")

	// The original metadata error must still surface, not the cleanup one.
	if !errors.Is(err, ErrMetadataWrite) {
		t.Fatalf("err = %v, want ErrMetadataWrite", err)
	}
	if len(cleanup.published) != 1 {
		t.Fatalf("cleanup messages = %d, want 1", len(cleanup.published))
	}

	blobs.mu.Lock()
	_, orphaned := blobs.objects[cleanup.published[0]]
	blobs.mu.Unlock()
	if !orphaned {
		t.Error("queued cleanup filename does not match the orphaned blob")
	}
}

func TestIngestRejectsMissingExtension(t *testing.T) {
	ingestor := NewPhotoIngestor(newFakeBlobStore(), newFakePhotoStore(), nil, nopLogger{})

	_, err := ingestor.Ingest(context.Background(), uuid.New(), fileReader([]byte("abc")), 3, "", "image/jpeg")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}
