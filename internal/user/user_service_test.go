package user

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msgboard/internal/common"
	"msgboard/internal/config"
	"msgboard/internal/dbmysql"
	"msgboard/internal/logging"
)

func newTestTokens() *common.TokenManager {
	return common.NewTokenManager(&config.Config{Server: config.ServerConfig{CookieSecret: "test", SessionTTL: 1}})
}

func TestUserService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := NewMockUserRepository(ctrl)
	svc := NewUserService(mockUserRepo, newTestTokens(), logging.Discard())
	ctx := context.Background()

	tests := []struct {
		name    string
		login   string
		pwd     string
		confirm string
		setup   func()
		wantErr error
	}{
		{
			name:    "success",
			login:   "alice",
			pwd:     "secret",
			confirm: "secret",
			setup: func() {
				mockUserRepo.EXPECT().CheckUserExists(ctx, "alice").Return(false, nil)
				mockUserRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, u *dbmysql.User) error {
						u.ID = 1
						return nil
					})
			},
		},
		{
			name:    "duplicate login",
			login:   "bob",
			pwd:     "secret",
			confirm: "secret",
			setup: func() {
				mockUserRepo.EXPECT().CheckUserExists(ctx, "bob").Return(true, nil)
			},
			wantErr: common.ErrAlreadyExists,
		},
		{
			name:    "confirmation mismatch",
			login:   "carol",
			pwd:     "secret",
			confirm: "secrex",
			setup:   func() {},
			wantErr: common.ErrValidation,
		},
		{
			name:    "invalid login",
			login:   "Carol!",
			pwd:     "secret",
			confirm: "secret",
			setup:   func() {},
			wantErr: common.ErrValidation,
		},
		{
			name:    "empty password",
			login:   "dave",
			setup:   func() {},
			wantErr: common.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			user, err := svc.Register(ctx, tt.login, tt.pwd, tt.confirm)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.login, user.Login)
			assert.NotEqual(t, tt.pwd, user.PasswordHash)
			assert.NoError(t, common.CheckPassword(tt.pwd, user.PasswordHash))
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := NewMockUserRepository(ctrl)
	tokens := newTestTokens()
	svc := NewUserService(mockUserRepo, tokens, logging.Discard())
	ctx := context.Background()

	hash, err := common.HashPassword("secret")
	require.NoError(t, err)
	stored := &dbmysql.User{ID: 1, Login: "alice", PasswordHash: hash}

	t.Run("success", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByLogin(ctx, "alice").Return(stored, true, nil)

		user, token, err := svc.Login(ctx, "alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Login)

		claims, err := tokens.ValidToken(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Login)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByLogin(ctx, "alice").Return(stored, true, nil)

		_, _, err := svc.Login(ctx, "alice", "nope")
		assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	})

	t.Run("unknown login", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByLogin(ctx, "ghost").Return(nil, false, nil)

		_, _, err := svc.Login(ctx, "ghost", "secret")
		assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "", "")
		assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	})
}

func TestUserService_GetByLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := NewMockUserRepository(ctrl)
	svc := NewUserService(mockUserRepo, newTestTokens(), logging.Discard())
	ctx := context.Background()

	mockUserRepo.EXPECT().GetUserByLogin(ctx, "alice").Return(&dbmysql.User{ID: 1, Login: "alice"}, true, nil)
	user, err := svc.GetByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), user.ID)

	mockUserRepo.EXPECT().GetUserByLogin(ctx, "ghost").Return(nil, false, nil)
	_, err = svc.GetByLogin(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)

	mockUserRepo.EXPECT().GetUserByLogin(ctx, "boom").Return(nil, false, assert.AnError)
	_, err = svc.GetByLogin(ctx, "boom")
	assert.ErrorIs(t, err, assert.AnError)
}
