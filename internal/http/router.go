package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	httputils "github.com/twitsprout/tools/http"
)

// RequestDurationMetric is the histogram recorded for every routed request
// when a StatsClient is configured.
const RequestDurationMetric = "http_request_duration_seconds"

// Handler mounts all the handlers at the appropriate routes and adds any required middleware.
func (h *Handler) Handler() http.Handler {
	r := mux.NewRouter()

	r.Use(httputils.TimeoutMiddleware(1 * time.Minute))
	r.Use(httputils.RequestIDMiddleware)
	r.Use(httputils.RealIPMiddleware)
	r.Use(httputils.LimitReaderMiddleware(1 << 20))
	r.Use(httputils.LoggingMiddleware(h.Logger))
	if h.Stats != nil {
		r.Use(httputils.StatsRouteMiddleware(h.Stats, RequestDurationMetric, routeName))
	}
	r.Use(httputils.RecoverMiddleware(h.Logger, httputils.InternalServerErrorHandler(h.Logger)))
	r.Use(httputils.MaxConnectionsMiddleware(5000, httputils.ServiceUnavailableHandler(h.Logger)))
	r.Use(httputils.ConcurrentLimitMiddleware(250, httputils.ServiceUnavailableHandler(h.Logger)))

	r.MethodNotAllowedHandler = httputils.MethodNotAllowedHandler(h.Logger)
	r.NotFoundHandler = httputils.NotFoundHandler(h.Logger)

	versionHandler := httputils.VersionHandler(h.AppName, h.Version, h.Logger)
	r.Methods("GET").Path("/").Name("root").Handler(versionHandler)
	r.Methods("GET").Path("/version").Name("version").Handler(versionHandler)
	if h.Stats != nil {
		r.Methods("GET").Path("/metrics").Name("metrics").Handler(h.Stats.Handler())
	}

	r.Methods("GET").Path("/albums").Name("list_albums").HandlerFunc(h.ListAlbums)
	r.Methods("POST").Path("/albums").Name("create_album").HandlerFunc(h.CreateAlbum)
	r.Methods("DELETE").Path("/albums").Name("delete_album").HandlerFunc(h.DeleteAlbum)
	r.Methods("OPTIONS").Path("/albums").Name("preflight_albums").HandlerFunc(Preflight)
	h.router = r

	// Wrapping the router, rather than r.Use, also covers 404 and 405 responses.
	h.handler = CORSMiddleware(r)
	return h.handler
}

func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		return route.GetName()
	}
	return ""
}
