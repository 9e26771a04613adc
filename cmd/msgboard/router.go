package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"msgboard/internal/common"
	"msgboard/internal/wire"
)

// newRouter mounts the public pages first so the login guard only wraps the
// routes that need a session.
func newRouter(app *wire.Application) *mux.Router {
	router := mux.NewRouter()
	router.Use(common.LoggingMiddleware(app.Logger))

	router.Handle("/health", app.Health).Methods(http.MethodGet)
	app.Users.RegisterRoutes(router)

	private := router.NewRoute().Subrouter()
	private.Use(common.RequireLogin(app.Tokens))
	app.Board.RegisterRoutes(private)
	app.Relations.RegisterRoutes(private)
	app.Notifications.RegisterRoutes(private)
	app.Questions.RegisterRoutes(private)

	return router
}
