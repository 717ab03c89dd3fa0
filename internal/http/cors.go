package http

import "net/http"

// CORSMiddleware is an HTTP middleware function that allows cross-origin
// access from any origin. The headers are set before the next handler runs so
// they are part of every response, failures included.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}

// Preflight answers CORS preflight requests; the headers themselves come from
// CORSMiddleware.
func Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
