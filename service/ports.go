package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-photo-service/entity"
)

// BlobStore is the durable object storage behind photo bytes.
type BlobStore interface {
	Exists(ctx context.Context, name string) (bool, error)
	PutPublic(ctx context.Context, name string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, name string) error
}

// PhotoStore is the relational side of the photo record.
type PhotoStore interface {
	Create(ctx context.Context, photo *entity.Photo) error
	FindByID(ctx context.Context, id string) (*entity.Photo, error)
	FindByIDWithRelations(ctx context.Context, id string) (*entity.Photo, error)
	List(ctx context.Context, offset, limit int) ([]entity.Photo, int64, error)
}

// LikeStore manages the (photo, user) association. Attach must tolerate an
// already-present pair; Detach must tolerate an absent one.
type LikeStore interface {
	Attach(ctx context.Context, photoID string, userID uuid.UUID) error
	Detach(ctx context.Context, photoID string, userID uuid.UUID) error
}

// CleanupPublisher hands orphaned blob names to out-of-process retry when
// the in-line compensating delete fails.
type CleanupPublisher interface {
	PublishBlobCleanup(ctx context.Context, filename, reason string) error
}

type Logger interface {
	InfoWithContextf(ctx context.Context, format string, args ...interface{})
	WarningWithContextf(ctx context.Context, format string, args ...interface{})
	ErrorWithContextf(ctx context.Context, err error, format string, args ...interface{})
}
