package question

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"msgboard/internal/common"
	"msgboard/internal/dbmongo"
)

func newTestRouter(svc QuestionService) *mux.Router {
	router := mux.NewRouter()
	NewHandler(svc).RegisterRoutes(router)
	return router
}

func asUser(req *http.Request, login string) *http.Request {
	return req.WithContext(common.WithLogin(context.Background(), login))
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandler_AskAndGet(t *testing.T) {
	store := newMemQuestions()
	svc := newTestService(nil, new(MockFriendLister), new(MockNotifier)).(*questionService)
	svc.store = store
	router := newTestRouter(svc)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, asUser(postForm("/ask_question", url.Values{
		"question_title":       {"T"},
		"question_description": {"D"},
	}), "alice"))
	require.Equal(t, http.StatusOK, rr.Code)

	var asked Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &asked))
	assert.Equal(t, "alice", asked.User)
	assert.Equal(t, "/question/"+asked.QuestionID, asked.QuestionURL)
	assert.Equal(t, 0, asked.AnswersCount)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, asUser(httptest.NewRequest(http.MethodGet, asked.QuestionURL, nil), "bob"))
	require.Equal(t, http.StatusOK, rr.Code)
	var got dbmongo.QuestionDocument
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "D", got.Description)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, asUser(httptest.NewRequest(http.MethodGet, "/question/"+primitive.NewObjectID().Hex(), nil), "bob"))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, asUser(postForm("/ask_question", url.Values{"question_title": {""}}), "alice"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_AnswerIgnoresQuestionFrom(t *testing.T) {
	store := newMemQuestions()
	notifier := new(MockNotifier)
	svc := newTestService(nil, new(MockFriendLister), notifier).(*questionService)
	svc.store = store
	router := newTestRouter(svc)

	q, err := svc.Ask(context.Background(), "alice", "T", "")
	require.NoError(t, err)
	id := q.ID.Hex()

	notifier.On("Append", mock.Anything, "alice", "bob", common.QuestionAnswered{QuestionID: id}).Return("n1", nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, asUser(postForm("/answer_question", url.Values{
		"question_id":   {id},
		"answer":        {"A"},
		"question_from": {"mallory"},
	}), "bob"))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"from_user":"bob"`)
	notifier.AssertExpectations(t)
}

func TestHandler_List(t *testing.T) {
	store := newMemQuestions()
	friends := new(MockFriendLister)
	svc := newTestService(nil, friends, new(MockNotifier)).(*questionService)
	svc.store = store
	router := newTestRouter(svc)

	ctx := context.Background()
	_, err := svc.Ask(ctx, "bob", "from a friend", "")
	require.NoError(t, err)
	_, err = svc.Ask(ctx, "carol", "from a stranger", "")
	require.NoError(t, err)
	friends.On("FriendsOf", mock.Anything, "alice").Return([]string{"bob"}, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, asUser(httptest.NewRequest(http.MethodGet, "/questions", nil), "alice"))
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Questions []Summary `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Questions, 1)
	assert.Equal(t, "from a friend", body.Questions[0].QuestionTitle)
}
