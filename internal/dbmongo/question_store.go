package dbmongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AnswerDocument struct {
	Content   string    `bson:"content" json:"content"`
	FromUser  string    `bson:"from_user" json:"from_user"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type QuestionDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	URL          string             `bson:"url" json:"url"`
	User         string             `bson:"user" json:"user"`
	Answers      []AnswerDocument   `bson:"answers" json:"answers"`
	AnswersCount int                `bson:"answers_count" json:"answers_count"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

type QuestionStore struct {
	coll *mongo.Collection
}

func NewQuestionStore(mc *MongoClient) *QuestionStore {
	return &QuestionStore{coll: mc.Database.Collection(QuestionsCollection)}
}

// Insert stores q and sets q.ID to the generated id.
func (s *QuestionStore) Insert(ctx context.Context, q *QuestionDocument) (string, error) {
	if q.Answers == nil {
		q.Answers = []AnswerDocument{}
	}
	res, err := s.coll.InsertOne(ctx, q)
	if err != nil {
		return "", fmt.Errorf("insert question: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert question: unexpected id type %T", res.InsertedID)
	}
	q.ID = oid
	return oid.Hex(), nil
}

func (s *QuestionStore) SetURL(ctx context.Context, id, url string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("set question url: %w", err)
	}
	_, err = s.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"url": url}})
	if err != nil {
		return fmt.Errorf("set question url: %w", err)
	}
	return nil
}

// ByID reports found=false for malformed ids as well as unknown ones.
func (s *QuestionStore) ByID(ctx context.Context, id string) (*QuestionDocument, bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false, nil
	}

	var q QuestionDocument
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("find question %s: %w", id, err)
	}
	return &q, true, nil
}

// ByUsers lists the questions asked by any of users, newest first.
func (s *QuestionStore) ByUsers(ctx context.Context, users []string) ([]*QuestionDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"user": bson.M{"$in": users}}, opts)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer cursor.Close(ctx)

	questions := []*QuestionDocument{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return questions, nil
}

// PushAnswer appends a and bumps answers_count in a single update and returns
// the updated question.
func (s *QuestionStore) PushAnswer(ctx context.Context, id string, a AnswerDocument) (*QuestionDocument, bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false, nil
	}

	update := bson.M{
		"$push": bson.M{"answers": a},
		"$inc":  bson.M{"answers_count": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var q QuestionDocument
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("answer question %s: %w", id, err)
	}
	return &q, true, nil
}
