// Package notif is the per-recipient notification feed. Events are appended
// unprocessed and only ever move to processed.
package notif

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"msgboard/internal/common"
	"msgboard/internal/dbmongo"
)

type NotificationStore interface {
	Insert(ctx context.Context, doc *dbmongo.NotificationDocument) (string, error)
	ByRecipient(ctx context.Context, toUser string) ([]*dbmongo.NotificationDocument, error)
	MarkProcessed(ctx context.Context, id string) (bool, error)
}

type QuestionReader interface {
	ByID(ctx context.Context, id string) (*dbmongo.QuestionDocument, bool, error)
}

type NotificationService interface {
	Append(ctx context.Context, toUser, fromUser string, event common.NotificationEvent) (string, error)
	ListFor(ctx context.Context, user string) ([]common.FeedEntry, error)
	MarkProcessed(ctx context.Context, id string) error
	Subscribe(observer Observer)
}

type notificationService struct {
	store     NotificationStore
	questions QuestionReader
	logger    *slog.Logger
	now       func() time.Time

	mu        sync.RWMutex
	observers map[string]Observer
}

func NewNotificationService(store NotificationStore, questions QuestionReader, logger *slog.Logger) NotificationService {
	return &notificationService{
		store:     store,
		questions: questions,
		logger:    logger,
		now:       time.Now,
		observers: make(map[string]Observer),
	}
}

func (s *notificationService) Subscribe(observer Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers[observer.Name()] = observer
}

func (s *notificationService) Append(ctx context.Context, toUser, fromUser string, event common.NotificationEvent) (string, error) {
	if event == nil {
		return "", fmt.Errorf("%w: notification event is required", common.ErrValidation)
	}

	n := &common.Notification{
		ToUser:    toUser,
		FromUser:  fromUser,
		Status:    common.StatusUnprocessed,
		CreatedAt: s.now(),
		Event:     event,
	}
	id, err := s.store.Insert(ctx, dbmongo.FromNotification(n))
	if err != nil {
		return "", err
	}
	n.ID = id

	s.notify(ctx, n)
	return id, nil
}

// notify runs observers inline. Their failures are logged and never undo
// the append.
func (s *notificationService) notify(ctx context.Context, n *common.Notification) {
	s.mu.RLock()
	observers := make([]Observer, 0, len(s.observers))
	for _, obs := range s.observers {
		observers = append(observers, obs)
	}
	s.mu.RUnlock()

	for _, observer := range observers {
		if err := observer.Update(ctx, n); err != nil {
			s.logger.WarnContext(ctx, "observer update failed", "observer", observer.Name(), "error", err)
		}
	}
}

// ListFor returns user's feed in insertion order. Answer events carry the
// title and url of their question; a dangling question id fails the whole
// listing with ErrFeedCorrupt.
func (s *notificationService) ListFor(ctx context.Context, user string) ([]common.FeedEntry, error) {
	docs, err := s.store.ByRecipient(ctx, user)
	if err != nil {
		return nil, err
	}

	entries := make([]common.FeedEntry, 0, len(docs))
	for _, doc := range docs {
		n, err := doc.ToNotification()
		if err != nil {
			return nil, err
		}

		entry := common.FeedEntry{
			ID:        n.ID,
			FromUser:  n.FromUser,
			Type:      n.Event.Type().String(),
			Status:    n.Status.String(),
			CreatedAt: n.CreatedAt,
		}
		switch ev := n.Event.(type) {
		case common.QuestionAnswered:
			q, found, err := s.questions.ByID(ctx, ev.QuestionID)
			if err != nil {
				return nil, err
			}
			if !found {
				return nil, fmt.Errorf("%w: notification %s references question %s", common.ErrFeedCorrupt, n.ID, ev.QuestionID)
			}
			entry.QuestionID = ev.QuestionID
			entry.QuestionTitle = q.Title
			entry.QuestionURL = q.URL
		case common.SystemNotice:
			entry.Content = ev.Content
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *notificationService) MarkProcessed(ctx context.Context, id string) error {
	matched, err := s.store.MarkProcessed(ctx, id)
	if err != nil {
		return err
	}
	if !matched {
		return fmt.Errorf("notification %s: %w", id, common.ErrNotFound)
	}
	return nil
}
