package minio

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/nasarali03/Portfolio/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const publicReadPolicy = `{
  "Version": "2012-10-17",
  "Statement": [{
    "Effect": "Allow",
    "Principal": {"AWS": ["*"]},
    "Action": ["s3:GetObject"],
    "Resource": ["arn:aws:s3:::%s/*"]
  }]
}`

// NewClient creates the MinIO client and makes sure the resume bucket exists
// and is publicly readable.
func NewClient(cfg *config.MinIOConfig) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.ResumeBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.ResumeBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.ResumeBucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.ResumeBucket, err)
		}
		log.Printf("Created bucket: %s", cfg.ResumeBucket)
	}

	if err := client.SetBucketPolicy(ctx, cfg.ResumeBucket, fmt.Sprintf(publicReadPolicy, cfg.ResumeBucket)); err != nil {
		log.Printf("Warning: Failed to set public policy on bucket %s: %v", cfg.ResumeBucket, err)
	}

	log.Println("Successfully initialized MinIO client")
	return client, nil
}
