package board

import (
	"context"

	"gorm.io/gorm"

	"msgboard/internal/common"
	"msgboard/internal/dbmysql"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=board

type MessageRepository interface {
	Create(ctx context.Context, msg *dbmysql.Message) error
	ListNotDeleted(ctx context.Context) ([]dbmysql.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *dbmysql.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepository) ListNotDeleted(ctx context.Context) ([]dbmysql.Message, error) {
	var msgs []dbmysql.Message
	err := r.db.WithContext(ctx).
		Where("`status` <> ?", common.MessageDeleted).
		Order("`created_at` DESC, `id` DESC").
		Find(&msgs).Error
	return msgs, err
}
