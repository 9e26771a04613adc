package user

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"msgboard/internal/common"
	"msgboard/internal/dbmysql"
)

//go:generate mockgen -source=user_repository.go -destination=mock_user_repository.go -package=user

type UserRepository interface {
	CreateUser(ctx context.Context, user *dbmysql.User) error
	GetUserByLogin(ctx context.Context, login string) (*dbmysql.User, bool, error)
	CheckUserExists(ctx context.Context, login string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser maps a unique-index violation on login to ErrAlreadyExists.
func (r *userRepository) CreateUser(ctx context.Context, user *dbmysql.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", common.ErrAlreadyExists, user.Login)
	}
	return err
}

func (r *userRepository) GetUserByLogin(ctx context.Context, login string) (*dbmysql.User, bool, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("login = ?", login).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func (r *userRepository) CheckUserExists(ctx context.Context, login string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.User{}).Where("login = ?", login).Count(&count).Error
	return count > 0, err
}
