package common

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationStatus_String(t *testing.T) {
	assert.Equal(t, "NOT_ADDED", RelationNotAdded.String())
	assert.Equal(t, "APPLYING", RelationApplying.String())
	assert.Equal(t, "ADDED", RelationAdded.String())
	assert.Equal(t, "REJECTED", RelationRejected.String())
	assert.Equal(t, "DELETED", RelationDeleted.String())
	assert.Equal(t, "UNKNOWN", RelationStatus(42).String())
}

func TestRelationStatus_PersistedCodes(t *testing.T) {
	// stored values must never shift
	assert.Equal(t, 1, int(RelationNotAdded))
	assert.Equal(t, 2, int(RelationApplying))
	assert.Equal(t, 3, int(RelationApplied))
	assert.Equal(t, 4, int(RelationAdded))
	assert.Equal(t, 5, int(RelationRejecting))
	assert.Equal(t, 6, int(RelationRejected))
	assert.Equal(t, 7, int(RelationDeleted))
}

func TestNotificationEvent_Types(t *testing.T) {
	assert.Equal(t, ApplyFriendType, FriendApplied{}.Type())
	assert.Equal(t, AnswerQuestionType, QuestionAnswered{QuestionID: "q"}.Type())
	assert.Equal(t, SystemMessageType, SystemNotice{Content: "hi"}.Type())

	assert.Equal(t, "APPLY_FRIEND", ApplyFriendType.String())
	assert.Equal(t, "ANSWER_QUESTION", AnswerQuestionType.String())
	assert.Equal(t, "PROCESSED", StatusProcessed.String())
	assert.Equal(t, "UNPROCESSED", StatusUnprocessed.String())
	assert.Equal(t, "PRIVATE", MessagePrivate.String())
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{fmt.Errorf("user bob: %w", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: bad", ErrValidation), http.StatusBadRequest},
		{ErrAlreadyRelated, http.StatusConflict},
		{ErrAlreadyExists, http.StatusConflict},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{errors.New("db is down"), http.StatusInternalServerError},
		{ErrFeedCorrupt, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, StatusFor(tc.err), "error: %v", tc.err)
	}
}

func TestValidateLogin(t *testing.T) {
	valid := []string{"alice", "bob", "a", "user123", "123456789012345"}
	for _, login := range valid {
		assert.NoError(t, ValidateLogin(login), login)
	}

	invalid := []string{"", "Alice", "bob smith", "a_b", "1234567890123456", "ünï"}
	for _, login := range invalid {
		err := ValidateLogin(login)
		require.Error(t, err, login)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("pw"))
	assert.ErrorIs(t, ValidatePassword(""), ErrValidation)
	assert.ErrorIs(t, ValidatePassword(strings.Repeat("x", 73)), ErrValidation)
}

func TestRequireText(t *testing.T) {
	assert.NoError(t, RequireText("title", "T"))
	err := RequireText("title", "   ")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "title")
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", hash)

	assert.NoError(t, CheckPassword("pw", hash))
	assert.Error(t, CheckPassword("wrong", hash))
}
