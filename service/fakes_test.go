package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-photo-service/entity"
)

type fakeBlobStore struct {
	mu         sync.Mutex
	objects    map[string][]byte
	failPut    bool
	failDelete bool
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: map[string][]byte{}}
}

func (f *fakeBlobStore) Exists(_ context.Context, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[name]
	return ok, nil
}

func (f *fakeBlobStore) PutPublic(_ context.Context, name string, reader io.Reader, _ int64, _ string) error {
	if f.failPut {
		return errors.New("storage unavailable")
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[name] = data
	return nil
}

func (f *fakeBlobStore) Delete(_ context.Context, name string) error {
	if f.failDelete {
		return errors.New("delete refused")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, name)
	return nil
}

type fakePhotoStore struct {
	mu         sync.Mutex
	photos     map[string]*entity.Photo
	seq        int64
	failCreate bool
	creates    int
}

func newFakePhotoStore() *fakePhotoStore {
	return &fakePhotoStore{photos: map[string]*entity.Photo{}}
}

func (f *fakePhotoStore) Create(_ context.Context, photo *entity.Photo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.failCreate {
		return errors.New("connection reset during commit")
	}
	if _, ok := f.photos[photo.ID]; ok {
		return errors.New("duplicate key value violates unique constraint")
	}
	f.seq++
	photo.Seq = f.seq
	cp := *photo
	f.photos[photo.ID] = &cp
	return nil
}

func (f *fakePhotoStore) FindByID(_ context.Context, id string) (*entity.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	photo, ok := f.photos[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *photo
	return &cp, nil
}

func (f *fakePhotoStore) FindByIDWithRelations(ctx context.Context, id string) (*entity.Photo, error) {
	return f.FindByID(ctx, id)
}

func (f *fakePhotoStore) List(_ context.Context, offset, limit int) ([]entity.Photo, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all := make([]entity.Photo, 0, len(f.photos))
	for _, photo := range f.photos {
		all = append(all, *photo)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].Seq < all[j].Seq
	})

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

type likePair struct {
	photoID string
	userID  uuid.UUID
}

type fakeLikeStore struct {
	mu    sync.Mutex
	pairs map[likePair]struct{}
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{pairs: map[likePair]struct{}{}}
}

func (f *fakeLikeStore) Attach(_ context.Context, photoID string, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pairs[likePair{photoID, userID}] = struct{}{}
	return nil
}

func (f *fakeLikeStore) Detach(_ context.Context, photoID string, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.pairs, likePair{photoID, userID})
	return nil
}

func (f *fakeLikeStore) count(photoID string, userID uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.pairs[likePair{photoID, userID}]; ok {
		return 1
	}
	return 0
}

type fakeCleanupPublisher struct {
	mu        sync.Mutex
	published []string
	fail      bool
}

func (f *fakeCleanupPublisher) PublishBlobCleanup(_ context.Context, filename, _ string) error {
	if f.fail {
		return errors.New("broker unavailable")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, filename)
	return nil
}

type nopLogger struct{}

func (nopLogger) InfoWithContextf(context.Context, string, ...interface{})         {}
func (nopLogger) WarningWithContextf(context.Context, string, ...interface{})      {}
func (nopLogger) ErrorWithContextf(context.Context, error, string, ...interface{}) {}

func fileReader(content []byte) io.Reader {
	return bytes.NewReader(content)
}
