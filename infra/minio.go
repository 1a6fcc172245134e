package infra

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/madmin-go/v3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/tnqbao/gau-photo-service/config"
)

type MinioClient struct {
	Admin    *madmin.AdminClient
	Client   *minio.Client
	Endpoint string
	UseSSL   bool
	Bucket   string
}

func InitMinioClient(cfg *config.EnvConfig) *MinioClient {
	endpoint := cfg.Minio.Endpoint
	if endpoint == "" {
		panic("MinIO endpoint is not configured")
	}

	rootUser := cfg.Minio.RootUser
	if rootUser == "" {
		panic("MinIO root user is not configured")
	}

	rootPassword := cfg.Minio.RootPassword
	if rootPassword == "" {
		panic("MinIO root password is not configured")
	}

	madminClient, err := madmin.New(endpoint, rootUser, rootPassword, cfg.Minio.UseSSL)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO admin client: %v", err))
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(rootUser, rootPassword, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO client: %v", err))
	}

	client := &MinioClient{
		Admin:    madminClient,
		Client:   minioClient,
		Endpoint: endpoint,
		UseSSL:   cfg.Minio.UseSSL,
		Bucket:   cfg.Photo.Bucket,
	}

	if err := client.EnsurePublicBucket(context.Background()); err != nil {
		panic(fmt.Sprintf("Failed to prepare photo bucket: %v", err))
	}

	return client
}

// EnsurePublicBucket creates the photo bucket if missing and opens it for
// anonymous reads so stored photos are reachable by URL.
func (m *MinioClient) EnsurePublicBucket(ctx context.Context) error {
	exists, err := m.Client.BucketExists(ctx, m.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := m.Client.MakeBucket(ctx, m.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	policyJSON := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, m.Bucket)

	if err := m.Client.SetBucketPolicy(ctx, m.Bucket, policyJSON); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	return nil
}

// Exists reports whether the named object is present in the photo bucket.
func (m *MinioClient) Exists(ctx context.Context, name string) (bool, error) {
	_, err := m.Client.StatObject(ctx, m.Bucket, name, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object %s: %w", name, err)
	}
	return true, nil
}

// Get opens the named object for reading and returns its size.
func (m *MinioClient) Get(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	info, err := m.Client.StatObject(ctx, m.Bucket, name, minio.StatObjectOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to stat object %s: %w", name, err)
	}

	obj, err := m.Client.GetObject(ctx, m.Bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get object %s: %w", name, err)
	}

	return obj, info.Size, nil
}

// PutPublic stores the object under name. The bucket policy makes every
// object anonymously readable, matching the upload contract.
func (m *MinioClient) PutPublic(ctx context.Context, name string, reader io.Reader, size int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := m.Client.PutObject(ctx, m.Bucket, name, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", name, err)
	}

	return nil
}

func (m *MinioClient) Delete(ctx context.Context, name string) error {
	err := m.Client.RemoveObject(ctx, m.Bucket, name, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove object %s: %w", name, err)
	}
	return nil
}

// PublicURL returns the anonymous-read URL for a stored object.
func (m *MinioClient) PublicURL(name string) string {
	scheme := "http"
	if m.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.Endpoint, m.Bucket, name)
}

// ServerInfo probes the storage backend for the health endpoint.
func (m *MinioClient) ServerInfo(ctx context.Context) (madmin.InfoMessage, error) {
	info, err := m.Admin.ServerInfo(ctx)
	if err != nil {
		return madmin.InfoMessage{}, fmt.Errorf("failed to get MinIO server info: %w", err)
	}
	return info, nil
}
