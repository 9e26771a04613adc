package notif

import (
	"net/http"

	"github.com/gorilla/mux"

	"msgboard/internal/common"
)

type Handler struct {
	service NotificationService
}

func NewHandler(service NotificationService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(private *mux.Router) {
	private.HandleFunc("/messages", h.Messages).Methods(http.MethodGet)
}

type messagesResponse struct {
	User     string             `json:"user"`
	Messages []common.FeedEntry `json:"messages"`
}

func (h *Handler) Messages(w http.ResponseWriter, r *http.Request) {
	login, _ := common.CurrentUser(r.Context())
	entries, err := h.service.ListFor(r.Context(), login)
	if err != nil {
		common.WriteServiceError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, messagesResponse{User: login, Messages: entries})
}
