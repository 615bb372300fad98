package firestore

import (
	"context"
	"fmt"
	"log"

	"github.com/nasarali03/Portfolio/internal/config"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

func NewClient(ctx context.Context, cfg *config.FirestoreConfig) (*firestore.Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("FIRESTORE_PROJECT_ID is required for the firestore store driver")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	log.Printf("Successfully connected to Firestore project: %s", cfg.ProjectID)
	return client, nil
}
