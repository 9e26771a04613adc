// Package dbmongo holds the document collections: questions and the
// notification feed.
package dbmongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"msgboard/internal/config"
)

const (
	QuestionsCollection     = "questions"
	NotificationsCollection = "messages"
)

type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoConnection(c *config.Config) (*MongoClient, error) {
	uri := c.GetMongoURI()
	clientOptions := options.Client().ApplyURI(uri)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	mc := &MongoClient{
		Client:   client,
		Database: client.Database(c.MongoDB.Database),
	}
	if err := mc.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	return mc, nil
}

// EnsureIndexes creates the lookup indexes the stores query by.
func (mc *MongoClient) EnsureIndexes(ctx context.Context) error {
	_, err := mc.Database.Collection(NotificationsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "to_user", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to index %s: %w", NotificationsCollection, err)
	}

	_, err = mc.Database.Collection(QuestionsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to index %s: %w", QuestionsCollection, err)
	}
	return nil
}

func (mc *MongoClient) Ping(ctx context.Context) error {
	return mc.Client.Ping(ctx, readpref.Primary())
}

func (mc *MongoClient) Close(ctx context.Context) error {
	return mc.Client.Disconnect(ctx)
}
