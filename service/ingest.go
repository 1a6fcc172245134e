package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-photo-service/entity"
	"github.com/tnqbao/gau-photo-service/utils"
	"gorm.io/datatypes"
)

// PhotoIngestor coordinates the two-store photo write: blob first, metadata
// second, compensating blob delete when the metadata insert fails. There is
// no cross-store transaction; the ordering is what keeps a metadata row from
// ever referencing a blob that was never written.
type PhotoIngestor struct {
	blobs   BlobStore
	photos  PhotoStore
	cleanup CleanupPublisher
	logger  Logger
}

func NewPhotoIngestor(blobs BlobStore, photos PhotoStore, cleanup CleanupPublisher, logger Logger) *PhotoIngestor {
	return &PhotoIngestor{
		blobs:   blobs,
		photos:  photos,
		cleanup: cleanup,
		logger:  logger,
	}
}

func (s *PhotoIngestor) Ingest(ctx context.Context, ownerID uuid.UUID, reader io.Reader, size int64, extension, contentType string) (*entity.Photo, error) {
	extension = strings.ToLower(strings.TrimPrefix(extension, "."))
	if extension == "" {
		return nil, fmt.Errorf("%w: missing file extension", ErrValidation)
	}
	if reader == nil {
		return nil, fmt.Errorf("%w: missing file content", ErrValidation)
	}

	id, err := utils.NewPhotoID()
	if err != nil {
		return nil, err
	}
	filename := id + "." + extension

	if err := s.blobs.PutPublic(ctx, filename, reader, size, contentType); err != nil {
		// Nothing to compensate: no metadata row exists yet.
		return nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	attrs, err := json.Marshal(map[string]interface{}{
		"size_bytes":   size,
		"content_type": contentType,
	})
	if err != nil {
		attrs = nil
	}

	photo := &entity.Photo{
		ID:         id,
		OwnerID:    ownerID,
		Filename:   filename,
		Attributes: datatypes.JSON(attrs),
	}

	if err := s.photos.Create(ctx, photo); err != nil {
		s.compensate(ctx, filename)
		return nil, fmt.Errorf("%w: %v", ErrMetadataWrite, err)
	}

	return photo, nil
}

// compensate removes the just-written blob after a metadata failure. Its own
// failure is logged and queued for out-of-process retry; it never masks the
// metadata error the caller is about to receive.
func (s *PhotoIngestor) compensate(ctx context.Context, filename string) {
	s.logger.WarningWithContextf(ctx, "[Ingest] Removing blob %s after metadata failure", filename)

	delErr := s.blobs.Delete(ctx, filename)
	if delErr == nil {
		return
	}

	s.logger.ErrorWithContextf(ctx, fmt.Errorf("%w: %v", ErrCompensation, delErr),
		"[Ingest] Blob %s may be orphaned", filename)

	if s.cleanup == nil {
		return
	}
	if pubErr := s.cleanup.PublishBlobCleanup(ctx, filename, "ingest compensation failed"); pubErr != nil {
		s.logger.ErrorWithContextf(ctx, pubErr, "[Ingest] Failed to enqueue cleanup for %s", filename)
	}
}
