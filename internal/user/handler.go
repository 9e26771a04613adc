package user

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"msgboard/internal/common"
)

// Handler serves the account routes. Register, login and logout answer with
// redirects, everything else with JSON.
type Handler struct {
	userService UserService
	sessionTTL  time.Duration
}

func NewHandler(userService UserService, tokens *common.TokenManager) *Handler {
	return &Handler{userService: userService, sessionTTL: tokens.TTL()}
}

func (h *Handler) RegisterRoutes(public *mux.Router) {
	public.HandleFunc("/register", h.RegisterForm).Methods(http.MethodGet)
	public.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	public.HandleFunc("/login", h.LoginForm).Methods(http.MethodGet)
	public.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	public.HandleFunc("/logout", h.Logout).Methods(http.MethodGet)
	public.HandleFunc("/user/{login:[0-9a-z]+}", h.Profile).Methods(http.MethodGet)
}

func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"form":   "register",
		"fields": []string{"login", "pwd", "pwd-confirm"},
		"error":  r.URL.Query().Get("error"),
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	login := r.PostFormValue("login")
	pwd := r.PostFormValue("pwd")
	confirm := r.PostFormValue("pwd-confirm")

	if _, err := h.userService.Register(r.Context(), login, pwd, confirm); err != nil {
		if common.StatusFor(err) == http.StatusInternalServerError {
			common.WriteServiceError(w, err)
			return
		}
		http.Redirect(w, r, "/register?error="+url.QueryEscape(err.Error()), http.StatusFound)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"form":   "login",
		"fields": []string{"login", "pwd"},
		"next":   r.URL.Query().Get("next"),
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	login := r.PostFormValue("login")
	pwd := r.PostFormValue("pwd")

	_, token, err := h.userService.Login(r.Context(), login, pwd)
	if errors.Is(err, common.ErrInvalidCredentials) {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err != nil {
		common.WriteServiceError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, safeNext(r.URL.Query().Get("next")), http.StatusFound)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/login", http.StatusFound)
}

type profileResponse struct {
	ID        uint64    `json:"id"`
	Login     string    `json:"login"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetByLogin(r.Context(), mux.Vars(r)["login"])
	if err != nil {
		common.WriteServiceError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, profileResponse{ID: user.ID, Login: user.Login, CreatedAt: user.CreatedAt})
}

// safeNext only follows local paths.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
