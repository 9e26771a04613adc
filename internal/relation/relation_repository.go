package relation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"msgboard/internal/common"
	"msgboard/internal/dbmysql"
)

//go:generate mockgen -source=relation_repository.go -destination=mock_relation_repository.go -package=relation

type RelationRepository interface {
	Create(ctx context.Context, rel *dbmysql.UserRelation) error
	// ExistsBetween matches the pair in either direction and any status.
	ExistsBetween(ctx context.Context, a, b string) (bool, error)
	FindApplying(ctx context.Context, fromUser, toUser string) (*dbmysql.UserRelation, bool, error)
	FindBetween(ctx context.Context, a, b string) ([]dbmysql.UserRelation, error)
	ListAdded(ctx context.Context, login string) ([]dbmysql.UserRelation, error)
	UpdateStatus(ctx context.Context, id uint64, status common.RelationStatus) error
}

type relationRepository struct {
	db *gorm.DB
}

func NewRelationRepository(db *gorm.DB) RelationRepository {
	return &relationRepository{db: db}
}

func (r *relationRepository) Create(ctx context.Context, rel *dbmysql.UserRelation) error {
	return r.db.WithContext(ctx).Create(rel).Error
}

func (r *relationRepository) ExistsBetween(ctx context.Context, a, b string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.UserRelation{}).
		Where("(`user` = ? AND `friend` = ?) OR (`user` = ? AND `friend` = ?)", a, b, b, a).
		Count(&count).Error
	return count > 0, err
}

func (r *relationRepository) FindApplying(ctx context.Context, fromUser, toUser string) (*dbmysql.UserRelation, bool, error) {
	var rel dbmysql.UserRelation
	err := r.db.WithContext(ctx).
		Where("`user` = ? AND `friend` = ? AND `status` = ?", fromUser, toUser, common.RelationApplying).
		First(&rel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &rel, true, nil
}

func (r *relationRepository) FindBetween(ctx context.Context, a, b string) ([]dbmysql.UserRelation, error) {
	var rels []dbmysql.UserRelation
	err := r.db.WithContext(ctx).
		Where("(`user` = ? AND `friend` = ?) OR (`user` = ? AND `friend` = ?)", a, b, b, a).
		Find(&rels).Error
	return rels, err
}

func (r *relationRepository) ListAdded(ctx context.Context, login string) ([]dbmysql.UserRelation, error) {
	var rels []dbmysql.UserRelation
	err := r.db.WithContext(ctx).
		Where("`status` = ? AND (`user` = ? OR `friend` = ?)", common.RelationAdded, login, login).
		Order("`updated_at` DESC").
		Find(&rels).Error
	return rels, err
}

func (r *relationRepository) UpdateStatus(ctx context.Context, id uint64, status common.RelationStatus) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.UserRelation{}).
		Where("`id` = ?", id).
		Update("status", status).Error
}
