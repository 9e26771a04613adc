// Package board is the public message board shown on the home page.
package board

import (
	"context"
	"fmt"
	"log/slog"

	"msgboard/internal/common"
	"msgboard/internal/dbmysql"
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=board

type BoardService interface {
	Post(ctx context.Context, author, content string, status common.MessageStatus) (*dbmysql.Message, error)
	ListVisible(ctx context.Context) ([]dbmysql.Message, error)
}

type boardService struct {
	repo   MessageRepository
	logger *slog.Logger
}

func NewBoardService(repo MessageRepository, logger *slog.Logger) BoardService {
	return &boardService{repo: repo, logger: logger}
}

func (s *boardService) Post(ctx context.Context, author, content string, status common.MessageStatus) (*dbmysql.Message, error) {
	if err := common.RequireText("content", content); err != nil {
		return nil, err
	}
	if status != common.MessagePublic && status != common.MessagePrivate {
		return nil, fmt.Errorf("%w: status must be public or private", common.ErrValidation)
	}

	msg := &dbmysql.Message{
		Author:  author,
		Content: content,
		Status:  status,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create board message: %w", err)
	}

	s.logger.DebugContext(ctx, "board message posted", "author", author, "status", status.String())
	return msg, nil
}

// ListVisible returns every post that is not deleted, private ones included,
// newest first.
func (s *boardService) ListVisible(ctx context.Context) ([]dbmysql.Message, error) {
	msgs, err := s.repo.ListNotDeleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("list board messages: %w", err)
	}
	return msgs, nil
}
