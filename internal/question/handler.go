package question

import (
	"net/http"

	"github.com/gorilla/mux"

	"msgboard/internal/common"
)

type Handler struct {
	service QuestionService
}

func NewHandler(service QuestionService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(private *mux.Router) {
	private.HandleFunc("/questions", h.List).Methods(http.MethodGet)
	private.HandleFunc("/ask_question", h.Ask).Methods(http.MethodPost)
	private.HandleFunc("/question/{id:[0-9a-z]+}", h.Get).Methods(http.MethodGet)
	private.HandleFunc("/answer_question", h.Answer).Methods(http.MethodPost)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	login, _ := common.CurrentUser(r.Context())
	questions, err := h.service.ListVisible(r.Context(), login)
	if err != nil {
		common.WriteServiceError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user":      login,
		"questions": questions,
	})
}

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	login, _ := common.CurrentUser(r.Context())
	q, err := h.service.Ask(r.Context(), login,
		r.PostFormValue("question_title"),
		r.PostFormValue("question_description"))
	if err != nil {
		common.WriteServiceError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, Summary{
		User:          q.User,
		QuestionID:    q.ID.Hex(),
		QuestionTitle: q.Title,
		QuestionURL:   q.URL,
		AnswersCount:  q.AnswersCount,
		CreatedAt:     q.CreatedAt,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		common.WriteServiceError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, q)
}

// Answer ignores the client's question_from; the asker is read from the
// stored question.
func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	login, _ := common.CurrentUser(r.Context())
	answer, err := h.service.Answer(r.Context(),
		r.PostFormValue("question_id"),
		login,
		r.PostFormValue("answer"))
	if err != nil {
		common.WriteServiceError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, answer)
}
