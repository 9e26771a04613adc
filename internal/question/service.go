// Package question stores questions and their answers and notifies askers
// when someone answers.
package question

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"msgboard/internal/common"
	"msgboard/internal/dbmongo"
)

type QuestionStore interface {
	Insert(ctx context.Context, q *dbmongo.QuestionDocument) (string, error)
	SetURL(ctx context.Context, id, url string) error
	ByID(ctx context.Context, id string) (*dbmongo.QuestionDocument, bool, error)
	ByUsers(ctx context.Context, users []string) ([]*dbmongo.QuestionDocument, error)
	PushAnswer(ctx context.Context, id string, a dbmongo.AnswerDocument) (*dbmongo.QuestionDocument, bool, error)
}

type FriendLister interface {
	FriendsOf(ctx context.Context, login string) ([]string, error)
}

type Notifier interface {
	Append(ctx context.Context, toUser, fromUser string, event common.NotificationEvent) (string, error)
}

// Summary is a question as shown in a listing.
type Summary struct {
	User          string    `json:"user"`
	QuestionID    string    `json:"question_id"`
	QuestionTitle string    `json:"question_title"`
	QuestionURL   string    `json:"question_url"`
	AnswersCount  int       `json:"answers_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type QuestionService interface {
	Ask(ctx context.Context, asker, title, description string) (*dbmongo.QuestionDocument, error)
	Get(ctx context.Context, id string) (*dbmongo.QuestionDocument, error)
	ListVisible(ctx context.Context, user string) ([]Summary, error)
	Answer(ctx context.Context, questionID, fromUser, content string) (*dbmongo.AnswerDocument, error)
}

type questionService struct {
	store    QuestionStore
	friends  FriendLister
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
}

func NewQuestionService(store QuestionStore, friends FriendLister, notifier Notifier, logger *slog.Logger) QuestionService {
	return &questionService{
		store:    store,
		friends:  friends,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

func URLFor(id string) string {
	return "/question/" + id
}

// Ask stores the question and then backfills its url from the generated id.
// The two writes are not atomic: a crash in between leaves a question with
// an empty url.
func (s *questionService) Ask(ctx context.Context, asker, title, description string) (*dbmongo.QuestionDocument, error) {
	if err := common.RequireText("question_title", title); err != nil {
		return nil, err
	}

	q := &dbmongo.QuestionDocument{
		Title:        title,
		Description:  description,
		User:         asker,
		Answers:      []dbmongo.AnswerDocument{},
		AnswersCount: 0,
		CreatedAt:    s.now(),
	}
	id, err := s.store.Insert(ctx, q)
	if err != nil {
		return nil, err
	}

	url := URLFor(id)
	if err := s.store.SetURL(ctx, id, url); err != nil {
		return nil, err
	}
	q.URL = url

	s.logger.InfoContext(ctx, "question asked", "question_id", id, "user", asker)
	return q, nil
}

func (s *questionService) Get(ctx context.Context, id string) (*dbmongo.QuestionDocument, error) {
	q, found, err := s.store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("question %s: %w", id, common.ErrNotFound)
	}
	return q, nil
}

// ListVisible lists questions asked by user or by any of user's friends.
func (s *questionService) ListVisible(ctx context.Context, user string) ([]Summary, error) {
	friends, err := s.friends.FriendsOf(ctx, user)
	if err != nil {
		return nil, err
	}

	docs, err := s.store.ByUsers(ctx, append([]string{user}, friends...))
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Summary{
			User:          doc.User,
			QuestionID:    doc.ID.Hex(),
			QuestionTitle: doc.Title,
			QuestionURL:   doc.URL,
			AnswersCount:  doc.AnswersCount,
			CreatedAt:     doc.CreatedAt,
		})
	}
	return out, nil
}

// Answer appends the answer and notifies whoever asked the question. The
// recipient always comes from the stored question.
func (s *questionService) Answer(ctx context.Context, questionID, fromUser, content string) (*dbmongo.AnswerDocument, error) {
	if err := common.RequireText("answer", content); err != nil {
		return nil, err
	}
	if strings.TrimSpace(questionID) == "" {
		return nil, fmt.Errorf("%w: question_id is required", common.ErrValidation)
	}

	answer := dbmongo.AnswerDocument{
		Content:   content,
		FromUser:  fromUser,
		CreatedAt: s.now(),
	}
	q, found, err := s.store.PushAnswer(ctx, questionID, answer)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("question %s: %w", questionID, common.ErrNotFound)
	}

	if _, err := s.notifier.Append(ctx, q.User, fromUser, common.QuestionAnswered{QuestionID: questionID}); err != nil {
		return nil, err
	}
	return &answer, nil
}
