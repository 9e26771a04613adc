package board

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"msgboard/internal/common"
	"msgboard/internal/dbmysql"
	"msgboard/internal/logging"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock, func() { db.Close() }
}

func TestMessageRepository_Create(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `messages`")).
		WithArgs("alice", "hello", common.MessagePrivate, sqlmock.AnyArg(), nil).
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectCommit()

	msg := &dbmysql.Message{Author: "alice", Content: "hello", Status: common.MessagePrivate}
	require.NoError(t, NewMessageRepository(db).Create(context.Background(), msg))
	assert.Equal(t, uint64(4), msg.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository_ListNotDeleted(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `messages` WHERE `status` <> ? ORDER BY `created_at` DESC, `id` DESC")).
		WithArgs(common.MessageDeleted).
		WillReturnRows(sqlmock.NewRows([]string{"id", "author", "content", "status", "created_at", "updated_at"}).
			AddRow(2, "bob", "secret", 2, time.Now(), nil).
			AddRow(1, "alice", "hi", 1, time.Now(), nil))

	msgs, err := NewMessageRepository(db).ListNotDeleted(context.Background())
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, common.MessagePrivate, msgs[0].Status)
	assert.Nil(t, msgs[0].UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardService_Post(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
		status  common.MessageStatus
		setup   func(repo *MockMessageRepository)
		wantErr error
	}{
		{
			name:    "public",
			content: "hello",
			status:  common.MessagePublic,
			setup: func(repo *MockMessageRepository) {
				repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name:    "private",
			content: "psst",
			status:  common.MessagePrivate,
			setup: func(repo *MockMessageRepository) {
				repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name:    "deleted is not postable",
			content: "x",
			status:  common.MessageDeleted,
			setup:   func(repo *MockMessageRepository) {},
			wantErr: common.ErrValidation,
		},
		{
			name:    "empty content",
			status:  common.MessagePublic,
			setup:   func(repo *MockMessageRepository) {},
			wantErr: common.ErrValidation,
		},
		{
			name:    "store failure",
			content: "hello",
			status:  common.MessagePublic,
			setup: func(repo *MockMessageRepository) {
				repo.EXPECT().Create(ctx, gomock.Any()).Return(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockMessageRepository(ctrl)
			tt.setup(repo)

			msg, err := NewBoardService(repo, logging.Discard()).Post(ctx, "alice", tt.content, tt.status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice", msg.Author)
			assert.Equal(t, tt.status, msg.Status)
		})
	}
}

func TestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockMessageRepository(ctrl)
	router := mux.NewRouter()
	NewHandler(NewBoardService(repo, logging.Discard())).RegisterRoutes(router)
	ctx := common.WithLogin(context.Background(), "alice")

	t.Run("list", func(t *testing.T) {
		repo.EXPECT().ListNotDeleted(gomock.Any()).Return([]dbmysql.Message{{ID: 1, Author: "bob", Content: "hi", Status: common.MessagePublic}}, nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))
		require.Equal(t, http.StatusOK, rr.Code)

		var body homeResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "alice", body.User)
		require.Len(t, body.Messages, 1)
		assert.Equal(t, "hi", body.Messages[0].Content)
	})

	t.Run("post", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		form := url.Values{"content": {"hello"}, "status": {"1"}}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode())).WithContext(ctx)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"author":"alice"`)
	})

	t.Run("bad status", func(t *testing.T) {
		form := url.Values{"content": {"hello"}, "status": {"public"}}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode())).WithContext(ctx)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
