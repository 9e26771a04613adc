package relation

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"msgboard/internal/common"
)

type Handler struct {
	relationService RelationService
}

func NewHandler(relationService RelationService) *Handler {
	return &Handler{relationService: relationService}
}

// RegisterRoutes expects a router that already requires a login.
func (h *Handler) RegisterRoutes(private *mux.Router) {
	private.HandleFunc("/friends", h.Friends).Methods(http.MethodGet)
	private.HandleFunc("/search_user/{login:[0-9a-z]+}", h.SearchUser).Methods(http.MethodGet)
	private.HandleFunc("/apply_friend", h.ApplyFriend).Methods(http.MethodPost)
	private.HandleFunc("/deal_friend", h.DealFriend).Methods(http.MethodPost)
}

type friendsResponse struct {
	User    string   `json:"user"`
	Friends []string `json:"friends"`
}

func (h *Handler) Friends(w http.ResponseWriter, r *http.Request) {
	login, _ := common.CurrentUser(r.Context())
	friends, err := h.relationService.FriendsOf(r.Context(), login)
	if err != nil {
		common.WriteServiceError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, friendsResponse{User: login, Friends: friends})
}

func (h *Handler) SearchUser(w http.ResponseWriter, r *http.Request) {
	login, _ := common.CurrentUser(r.Context())
	result, err := h.relationService.Search(r.Context(), login, mux.Vars(r)["login"])
	if err != nil {
		common.WriteServiceError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) ApplyFriend(w http.ResponseWriter, r *http.Request) {
	login, _ := common.CurrentUser(r.Context())
	toUser := strings.TrimSpace(r.PostFormValue("to_user"))
	if toUser == "" {
		common.WriteError(w, http.StatusBadRequest, "to_user is required")
		return
	}

	messageID, err := h.relationService.Apply(r.Context(), login, toUser)
	if err != nil {
		common.WriteServiceError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{
		"to_user":    toUser,
		"status":     common.RelationApplying.String(),
		"message_id": messageID,
	})
}

// DealFriend answers an application sent to the current user. flag "1"
// accepts, "0" rejects, anything else is ignored.
func (h *Handler) DealFriend(w http.ResponseWriter, r *http.Request) {
	login, _ := common.CurrentUser(r.Context())
	fromUser := r.PostFormValue("from_user")
	messageID := r.PostFormValue("message_id")

	var accept bool
	switch r.PostFormValue("flag") {
	case "1":
		accept = true
	case "0":
		accept = false
	default:
		common.WriteJSON(w, http.StatusOK, map[string]bool{"resolved": false})
		return
	}

	resolved, err := h.relationService.Resolve(r.Context(), fromUser, login, accept, messageID)
	if err != nil {
		common.WriteServiceError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]bool{"resolved": resolved})
}
