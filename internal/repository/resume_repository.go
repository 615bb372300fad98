package repository

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

// ResumeRepository stores resume documents in an object storage bucket that
// allows anonymous reads.
type ResumeRepository struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewResumeRepository(client *minio.Client, bucket, publicURL string) *ResumeRepository {
	if publicURL == "" {
		publicURL = client.EndpointURL().String()
	}
	return &ResumeRepository{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// PutObject uploads the object and returns its public URL.
func (r *ResumeRepository) PutObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if strings.Contains(objectName, "..") {
		return "", fmt.Errorf("invalid object name: %s", objectName)
	}

	_, err := r.client.PutObject(ctx, r.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", objectName, r.bucket, err)
	}
	return fmt.Sprintf("%s/%s/%s", r.publicURL, r.bucket, objectName), nil
}
