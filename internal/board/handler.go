package board

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"msgboard/internal/common"
	"msgboard/internal/dbmysql"
)

type Handler struct {
	service BoardService
}

func NewHandler(service BoardService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(private *mux.Router) {
	private.HandleFunc("/", h.Home).Methods(http.MethodGet)
	private.HandleFunc("/", h.Post).Methods(http.MethodPost)
}

type homeResponse struct {
	User     string            `json:"user"`
	Messages []dbmysql.Message `json:"messages"`
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	login, _ := common.CurrentUser(r.Context())
	msgs, err := h.service.ListVisible(r.Context())
	if err != nil {
		common.WriteServiceError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, homeResponse{User: login, Messages: msgs})
}

func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	login, _ := common.CurrentUser(r.Context())

	status, err := parseStatus(r.PostFormValue("status"))
	if err != nil {
		common.WriteServiceError(w, err)
		return
	}

	msg, err := h.service.Post(r.Context(), login, r.PostFormValue("content"), status)
	if err != nil {
		common.WriteServiceError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, msg)
}

func parseStatus(raw string) (common.MessageStatus, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: status %q is not a number", common.ErrValidation, raw)
	}
	return common.MessageStatus(n), nil
}
