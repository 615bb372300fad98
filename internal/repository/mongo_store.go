package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nasarali03/Portfolio/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// OrderedCollections lists every collection read with GetOrderedCollection.
var OrderedCollections = []string{
	models.CollectionProjects,
	models.CollectionExperience,
	models.CollectionEducation,
	models.CollectionCertifications,
	models.CollectionMessages,
}

type MongoStore struct {
	client   *mongo.Client
	database *mongo.Database
}

func NewMongoStore(client *mongo.Client, database *mongo.Database) *MongoStore {
	return &MongoStore{
		client:   client,
		database: database,
	}
}

func (s *MongoStore) Name() string {
	return "mongo"
}

func (s *MongoStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", classifyMongoError(err))
	}
	return nil
}

// CreateIndexes builds the sort index of every ordered collection.
func (s *MongoStore) CreateIndexes(ctx context.Context) error {
	for _, name := range OrderedCollections {
		_, err := s.database.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "order", Value: 1}, {Key: seqField, Value: 1}},
		})
		if err != nil {
			return fmt.Errorf("failed to create order index on %s: %w", name, classifyMongoError(err))
		}
	}
	return nil
}

func (s *MongoStore) GetOrderedCollection(ctx context.Context, collection string, out any) error {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: seqField, Value: 1}})

	cursor, err := s.database.Collection(collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", collection, classifyMongoError(err))
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return fmt.Errorf("failed to decode %s: %w", collection, classifyMongoError(err))
	}
	return decodeDocuments(docs, out)
}

func (s *MongoStore) GetSingleton(ctx context.Context, collection, id string, out any) error {
	err := s.database.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("%s/%s: %w", collection, id, models.ErrNotFound)
		}
		return fmt.Errorf("failed to fetch %s/%s: %w", collection, id, classifyMongoError(err))
	}
	return nil
}

func (s *MongoStore) Upsert(ctx context.Context, collection, id string, data any) (string, error) {
	fields, err := toDocument(data)
	if err != nil {
		return "", err
	}
	if id == "" {
		id = bson.NewObjectID().Hex()
	}

	update := bson.M{
		"$setOnInsert": bson.M{seqField: time.Now().UnixNano()},
	}
	if len(fields) > 0 {
		update["$set"] = fields
	}

	opts := options.UpdateOne().SetUpsert(true)
	if _, err := s.database.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, update, opts); err != nil {
		return "", fmt.Errorf("failed to upsert %s/%s: %w", collection, id, classifyMongoError(err))
	}
	return id, nil
}

func (s *MongoStore) DeleteByID(ctx context.Context, collection, id string) error {
	result, err := s.database.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, id, classifyMongoError(err))
	}
	if result.DeletedCount == 0 {
		log.Printf("Delete of %s/%s matched no document", collection, id)
	}
	return nil
}

// classifyMongoError tags connection level failures with ErrStoreUnavailable.
func classifyMongoError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.Is(err, context.DeadlineExceeded) ||
		strings.Contains(err.Error(), "server selection") {
		return fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
	}
	return err
}
