package user

import (
	"context"
	"fmt"
	"log/slog"

	"msgboard/internal/common"
	"msgboard/internal/dbmysql"
)

//go:generate mockgen -source=user_service.go -destination=mock_user_service.go -package=user

type UserService interface {
	Register(ctx context.Context, login, pwd, pwdConfirm string) (*dbmysql.User, error)
	Login(ctx context.Context, login, pwd string) (*dbmysql.User, string, error)
	GetByLogin(ctx context.Context, login string) (*dbmysql.User, error)
}

type userService struct {
	userRepo UserRepository
	tokens   *common.TokenManager
	logger   *slog.Logger
}

func NewUserService(userRepo UserRepository, tokens *common.TokenManager, logger *slog.Logger) UserService {
	return &userService{userRepo: userRepo, tokens: tokens, logger: logger}
}

func (s *userService) Register(ctx context.Context, login, pwd, pwdConfirm string) (*dbmysql.User, error) {
	if err := common.ValidateLogin(login); err != nil {
		return nil, err
	}
	if err := common.ValidatePassword(pwd); err != nil {
		return nil, err
	}
	if pwd != pwdConfirm {
		return nil, fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}

	exists, err := s.userRepo.CheckUserExists(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("check login %s: %w", login, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", common.ErrAlreadyExists, login)
	}

	hashed, err := common.HashPassword(pwd)
	if err != nil {
		return nil, err
	}

	user := &dbmysql.User{
		Login:        login,
		PasswordHash: hashed,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user registered", "login", login)
	return user, nil
}

// Login never says which of login or password was wrong.
func (s *userService) Login(ctx context.Context, login, pwd string) (*dbmysql.User, string, error) {
	if login == "" || pwd == "" {
		return nil, "", common.ErrInvalidCredentials
	}

	user, found, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		return nil, "", err
	}
	if !found {
		return nil, "", common.ErrInvalidCredentials
	}

	if err := common.CheckPassword(pwd, user.PasswordHash); err != nil {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.Login)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) GetByLogin(ctx context.Context, login string) (*dbmysql.User, error) {
	user, found, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("user %s: %w", login, common.ErrNotFound)
	}
	return user, nil
}
