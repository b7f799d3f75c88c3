package app

import (
	"net/http"

	"github.com/gorilla/mux"
	handlers "microblogLite/internal/handler"
	"microblogLite/internal/middleware"
)

// NewRouter registers the routes; every /posts route and /auth/me pass through the guard first.
// Routes stay on the root router: a mux subrouter turns a method mismatch into 404.
func NewRouter(h *handlers.Handlers, guard middleware.Authenticator) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handlers.NotFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowedHandler)

	requireAuth := middleware.AuthMiddleware(guard)
	guarded := func(fn http.HandlerFunc) http.Handler {
		return requireAuth(fn)
	}

	r.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)

	r.HandleFunc("/auth/signup", h.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	r.Handle("/auth/me", guarded(h.Me)).Methods(http.MethodGet)

	r.Handle("/posts/addpost", guarded(h.AddPost)).Methods(http.MethodPost)
	r.Handle("/posts/getposts", guarded(h.GetPosts)).Methods(http.MethodGet)
	r.Handle("/posts/deletepost", guarded(h.DeletePost)).Methods(http.MethodDelete)
	r.Handle("/posts/export", guarded(h.ExportPosts)).Methods(http.MethodPost)

	return middleware.Chain(
		r,
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)
}
