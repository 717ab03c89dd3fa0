package http

import (
	"discography/internal"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/twitsprout/tools"
)

type Handler struct {
	AppName    string
	Version    string
	router     *mux.Router
	handler    http.Handler
	Logger     tools.Logger
	Stats      tools.StatsClient
	AlbumStore internal.AlbumStore
}
