package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"microblogLite/internal/auth"
	handlers "microblogLite/internal/handler"
	"microblogLite/internal/models"
)

type Middleware func(http.Handler) http.Handler

type Authenticator interface {
	Authenticate(ctx context.Context, rawHeader string) (*models.User, error)
}

// AuthMiddleware runs the guard before next and puts the resolved user in the context.
// On rejection next is never called.
func AuthMiddleware(guard Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := guard.Authenticate(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				stage := "unknown"
				var rejected *auth.RejectedError
				if errors.As(err, &rejected) {
					stage = rejected.Stage.String()
				}
				log.Printf("Запрос %s %s отклонен на этапе %s: %v", r.Method, r.URL.Path, stage, err)

				switch {
				case errors.Is(err, auth.ErrMalformedHeader):
					handlers.WriteError(w, auth.ErrMalformedHeader.Error(), http.StatusBadRequest)
				case errors.Is(err, auth.ErrInvalidSignature):
					handlers.WriteError(w, auth.ErrInvalidSignature.Error(), http.StatusUnauthorized)
				case errors.Is(err, auth.ErrExpired):
					handlers.WriteError(w, auth.ErrExpired.Error(), http.StatusUnauthorized)
				case errors.Is(err, auth.ErrUserNotFound):
					handlers.WriteError(w, auth.ErrUserNotFound.Error(), http.StatusUnauthorized)
				default:
					handlers.WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
				}
				return
			}

			log.Printf("Запрос %s %s: этап %s, пользователь %d", r.Method, r.URL.Path, auth.StageAuthorized, user.ID)
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), user)))
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type responseRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &responseRecorder{ResponseWriter: w}

		next.ServeHTTP(recorder, r)

		status := recorder.status
		if status == 0 {
			status = http.StatusOK
		}
		log.Printf("%s %s %d %dB %s", r.Method, r.URL.Path, status, recorder.size, time.Since(start))
	})
}

// Chain wraps h so that the first middleware is the innermost.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
