package dbmongo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msgboard/internal/common"
	"msgboard/internal/config"
)

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Runs against the docker-compose MongoDB when MONGO_INTEGRATION=1.
func integrationClient(t *testing.T) *MongoClient {
	if os.Getenv("MONGO_INTEGRATION") != "1" {
		t.Skip("set MONGO_INTEGRATION=1 to run against a live MongoDB")
	}
	cfg := &config.Config{
		MongoDB: config.MongoDBConfig{
			Host:     getEnvOrDefault("MONGO_HOST", "localhost"),
			Port:     getEnvOrDefault("MONGO_PORT", "27017"),
			Username: getEnvOrDefault("MONGO_USERNAME", ""),
			Password: getEnvOrDefault("MONGO_PASSWORD", ""),
			Database: getEnvOrDefault("MONGO_DATABASE", "msgboard_test"),
		},
	}
	client, err := NewMongoConnection(cfg)
	require.NoError(t, err, "Failed to connect to MongoDB - ensure docker-compose is running")
	t.Cleanup(func() {
		ctx := context.Background()
		_ = client.Database.Drop(ctx)
		_ = client.Close(ctx)
	})
	return client
}

func TestQuestionLifecycle_Integration(t *testing.T) {
	client := integrationClient(t)
	ctx := context.Background()
	store := NewQuestionStore(client)

	id, err := store.Insert(ctx, &QuestionDocument{Title: "T", User: "alice", CreatedAt: time.Now()})
	require.NoError(t, err)
	require.NoError(t, store.SetURL(ctx, id, "/question/"+id))

	for i := 0; i < 3; i++ {
		_, found, err := store.PushAnswer(ctx, id, AnswerDocument{Content: "A", FromUser: "bob", CreatedAt: time.Now()})
		require.NoError(t, err)
		require.True(t, found)
	}

	q, found, err := store.ByID(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "/question/"+id, q.URL)
	assert.Equal(t, 3, q.AnswersCount)
	assert.Len(t, q.Answers, 3)
}

func TestNotificationLifecycle_Integration(t *testing.T) {
	client := integrationClient(t)
	ctx := context.Background()
	store := NewNotificationStore(client)

	id, err := store.Insert(ctx, FromNotification(&common.Notification{
		ToUser: "bob", FromUser: "alice", CreatedAt: time.Now(), Event: common.FriendApplied{},
	}))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		matched, err := store.MarkProcessed(ctx, id)
		require.NoError(t, err)
		assert.True(t, matched)
	}

	docs, err := store.ByRecipient(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, common.StatusProcessed, docs[0].Status)
}
