package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/nasarali03/Portfolio/internal/config"
	"github.com/nasarali03/Portfolio/internal/database/firestore"
	"github.com/nasarali03/Portfolio/internal/database/mongo"
	"github.com/nasarali03/Portfolio/internal/repository"
)

// OpenStore builds the document store selected by STORE_DRIVER. The returned
// func releases the underlying client.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, func(), error) {
	switch cfg.Store.Driver {
	case "mongo", "mongodb", "":
		client, db, err := mongo.Connect(&cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		store := repository.NewMongoStore(client, db)

		indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := store.CreateIndexes(indexCtx); err != nil {
			log.Printf("Warning: Failed to create order indexes: %v", err)
		}
		return store, func() { mongo.Disconnect(client) }, nil

	case "firestore":
		client, err := firestore.NewClient(ctx, &cfg.Firestore)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewFirestoreStore(client), func() {
			if err := client.Close(); err != nil {
				log.Printf("Error closing Firestore client: %v", err)
			}
		}, nil

	case "memory":
		log.Println("Warning: Using in-memory store, content is lost on restart")
		return repository.NewMemoryStore(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
}
