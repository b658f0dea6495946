package utils

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ImageStore persists an uploaded image and returns its public URL.
type ImageStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type S3ImageStore struct {
	bucket   string
	uploader *manager.Uploader
}

func NewS3ImageStore(ctx context.Context, bucket string) (*S3ImageStore, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &S3ImageStore{bucket: bucket, uploader: manager.NewUploader(client)}, nil
}

func (s *S3ImageStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	result, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ACL:         "public-read",
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return result.Location, nil
}

func objectKey(prefix string, id uint, filename string) string {
	return fmt.Sprintf("%s/%d/%s-%s%s",
		prefix,
		id,
		time.Now().Format("20060102150405"),
		uuid.NewString(),
		path.Ext(filename),
	)
}

// ProductImageKey builds a collision-free object key for a product image.
func ProductImageKey(productID uint, filename string) string {
	return objectKey("products", productID, filename)
}

// ProfilePhotoKey builds a collision-free object key for a user's profile photo.
func ProfilePhotoKey(userID uint, filename string) string {
	return objectKey("profiles", userID, filename)
}

// MinIOImageStore writes to an S3-compatible MinIO server.
type MinIOImageStore struct {
	client   *minio.Client
	endpoint string
	bucket   string
	secure   bool
}

func NewMinIOImageStore(ctx context.Context, endpoint, accessKey, secretKey, bucket string, secure bool) (*MinIOImageStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("error checking bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("error creating bucket %s: %w", bucket, err)
		}
	}

	return &MinIOImageStore{client: client, endpoint: endpoint, bucket: bucket, secure: secure}, nil
}

func (s *MinIOImageStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if _, err := s.client.PutObject(ctx, s.bucket, key, body, -1,
		minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return "", err
	}

	scheme := "http"
	if s.secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, key), nil
}
