package dbmongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"msgboard/internal/common"
)

// NotificationDocument is the stored form of a common.Notification. Only one
// of QuestionID and Content is set, depending on Type.
type NotificationDocument struct {
	ID         primitive.ObjectID        `bson:"_id,omitempty"`
	ToUser     string                    `bson:"to_user"`
	FromUser   string                    `bson:"from_user"`
	Type       common.NotificationType   `bson:"type"`
	Status     common.NotificationStatus `bson:"status"`
	QuestionID string                    `bson:"question_id,omitempty"`
	Content    string                    `bson:"content,omitempty"`
	CreatedAt  time.Time                 `bson:"created_at"`
}

func FromNotification(n *common.Notification) *NotificationDocument {
	doc := &NotificationDocument{
		ToUser:    n.ToUser,
		FromUser:  n.FromUser,
		Type:      n.Event.Type(),
		Status:    n.Status,
		CreatedAt: n.CreatedAt,
	}
	switch ev := n.Event.(type) {
	case common.QuestionAnswered:
		doc.QuestionID = ev.QuestionID
	case common.SystemNotice:
		doc.Content = ev.Content
	}
	return doc
}

func (d *NotificationDocument) ToNotification() (*common.Notification, error) {
	n := &common.Notification{
		ID:        d.ID.Hex(),
		ToUser:    d.ToUser,
		FromUser:  d.FromUser,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
	switch d.Type {
	case common.ApplyFriendType:
		n.Event = common.FriendApplied{}
	case common.AnswerQuestionType:
		n.Event = common.QuestionAnswered{QuestionID: d.QuestionID}
	case common.SystemMessageType:
		n.Event = common.SystemNotice{Content: d.Content}
	default:
		return nil, fmt.Errorf("%w: notification %s has unknown type %d", common.ErrFeedCorrupt, n.ID, d.Type)
	}
	return n, nil
}

type NotificationStore struct {
	coll *mongo.Collection
}

func NewNotificationStore(mc *MongoClient) *NotificationStore {
	return &NotificationStore{coll: mc.Database.Collection(NotificationsCollection)}
}

func (s *NotificationStore) Insert(ctx context.Context, doc *NotificationDocument) (string, error) {
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert notification: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert notification: unexpected id type %T", res.InsertedID)
	}
	doc.ID = oid
	return oid.Hex(), nil
}

// ByRecipient returns the feed of toUser in insertion order.
func (s *NotificationStore) ByRecipient(ctx context.Context, toUser string) ([]*NotificationDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{"to_user": toUser}, opts)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer cursor.Close(ctx)

	docs := []*NotificationDocument{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}
	return docs, nil
}

// MarkProcessed reports whether a notification with id exists. Marking an
// already processed notification matches and succeeds.
func (s *NotificationStore) MarkProcessed(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("%w: invalid notification id %q", common.ErrValidation, id)
	}
	res, err := s.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"status": common.StatusProcessed}})
	if err != nil {
		return false, fmt.Errorf("mark notification %s: %w", id, err)
	}
	return res.MatchedCount > 0, nil
}
