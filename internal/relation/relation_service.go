// Package relation implements the friendship state machine between two
// logins: NOT_ADDED to APPLYING, then ADDED or REJECTED.
package relation

import (
	"context"
	"fmt"
	"log/slog"

	"msgboard/internal/common"
	"msgboard/internal/dbmysql"
)

//go:generate mockgen -source=relation_service.go -destination=mock_relation_service.go -package=relation

// Notifier is the part of the notification feed the state machine writes to.
type Notifier interface {
	Append(ctx context.Context, toUser, fromUser string, event common.NotificationEvent) (string, error)
	MarkProcessed(ctx context.Context, id string) error
}

type UserLookup interface {
	GetByLogin(ctx context.Context, login string) (*dbmysql.User, error)
}

type SearchResult struct {
	ID             uint64                `json:"id"`
	Login          string                `json:"login"`
	RelationStatus common.RelationStatus `json:"relation_status"`
	Relation       string                `json:"relation"`
}

type RelationService interface {
	Apply(ctx context.Context, fromUser, toUser string) (string, error)
	Resolve(ctx context.Context, fromUser, toUser string, accept bool, notificationID string) (bool, error)
	RelationStatus(ctx context.Context, a, b string) (common.RelationStatus, error)
	FriendsOf(ctx context.Context, login string) ([]string, error)
	Search(ctx context.Context, viewer, target string) (*SearchResult, error)
}

type relationService struct {
	repo     RelationRepository
	users    UserLookup
	notifier Notifier
	logger   *slog.Logger
}

func NewRelationService(repo RelationRepository, users UserLookup, notifier Notifier, logger *slog.Logger) RelationService {
	return &relationService{repo: repo, users: users, notifier: notifier, logger: logger}
}

// Apply opens a friend application and notifies toUser. It returns the id
// of the notification, which the recipient later hands back to Resolve.
//
// The existence check and the insert are separate statements, so two
// concurrent applications for the same pair can both succeed.
func (s *relationService) Apply(ctx context.Context, fromUser, toUser string) (string, error) {
	if fromUser == toUser {
		return "", fmt.Errorf("%w: cannot befriend yourself", common.ErrValidation)
	}
	if _, err := s.users.GetByLogin(ctx, toUser); err != nil {
		return "", err
	}

	exists, err := s.repo.ExistsBetween(ctx, fromUser, toUser)
	if err != nil {
		return "", fmt.Errorf("check relation %s/%s: %w", fromUser, toUser, err)
	}
	if exists {
		return "", common.ErrAlreadyRelated
	}

	rel := &dbmysql.UserRelation{
		User:   fromUser,
		Friend: toUser,
		Status: common.RelationApplying,
	}
	if err := s.repo.Create(ctx, rel); err != nil {
		return "", fmt.Errorf("create relation %s/%s: %w", fromUser, toUser, err)
	}

	id, err := s.notifier.Append(ctx, toUser, fromUser, common.FriendApplied{})
	if err != nil {
		return "", err
	}

	s.logger.InfoContext(ctx, "friend application sent", "from_user", fromUser, "to_user", toUser, "message_id", id)
	return id, nil
}

// Resolve answers the pending application fromUser sent to toUser. Without
// such an application it does nothing and reports false. Only acceptance
// marks the notification processed; a rejected application's notification
// stays unprocessed.
func (s *relationService) Resolve(ctx context.Context, fromUser, toUser string, accept bool, notificationID string) (bool, error) {
	rel, found, err := s.repo.FindApplying(ctx, fromUser, toUser)
	if err != nil {
		return false, fmt.Errorf("find application %s/%s: %w", fromUser, toUser, err)
	}
	if !found {
		return false, nil
	}

	if !accept {
		if err := s.repo.UpdateStatus(ctx, rel.ID, common.RelationRejected); err != nil {
			return false, fmt.Errorf("reject %s/%s: %w", fromUser, toUser, err)
		}
		s.logger.InfoContext(ctx, "friend application rejected", "from_user", fromUser, "to_user", toUser)
		return true, nil
	}

	if err := s.repo.UpdateStatus(ctx, rel.ID, common.RelationAdded); err != nil {
		return false, fmt.Errorf("accept %s/%s: %w", fromUser, toUser, err)
	}
	if err := s.notifier.MarkProcessed(ctx, notificationID); err != nil {
		return true, err
	}

	s.logger.InfoContext(ctx, "friend application accepted", "from_user", fromUser, "to_user", toUser)
	return true, nil
}

func (s *relationService) RelationStatus(ctx context.Context, a, b string) (common.RelationStatus, error) {
	rels, err := s.repo.FindBetween(ctx, a, b)
	if err != nil {
		return 0, fmt.Errorf("find relation %s/%s: %w", a, b, err)
	}
	switch len(rels) {
	case 0:
		return common.RelationNotAdded, nil
	case 1:
		return rels[0].Status, nil
	}
	return 0, fmt.Errorf("%w: %s/%s has %d rows", common.ErrDuplicateRelation, a, b, len(rels))
}

func (s *relationService) FriendsOf(ctx context.Context, login string) ([]string, error) {
	rels, err := s.repo.ListAdded(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("list friends of %s: %w", login, err)
	}

	friends := make([]string, 0, len(rels))
	seen := make(map[string]bool, len(rels))
	for i := range rels {
		other := rels[i].Other(login)
		if other == login || seen[other] {
			continue
		}
		seen[other] = true
		friends = append(friends, other)
	}
	return friends, nil
}

func (s *relationService) Search(ctx context.Context, viewer, target string) (*SearchResult, error) {
	user, err := s.users.GetByLogin(ctx, target)
	if err != nil {
		return nil, err
	}
	if viewer == target {
		return nil, fmt.Errorf("%w: cannot befriend yourself", common.ErrValidation)
	}

	status, err := s.RelationStatus(ctx, viewer, target)
	if err != nil {
		return nil, err
	}
	return &SearchResult{
		ID:             user.ID,
		Login:          user.Login,
		RelationStatus: status,
		Relation:       status.String(),
	}, nil
}
