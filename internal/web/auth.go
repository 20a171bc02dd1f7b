package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/microblog/internal/db"
	"github.com/sidereusnuntius/microblog/internal/service"
)

const SessionKey = "user"

type Session struct {
	UserID   string
	Username string
}

type key struct{}

func GetSession(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(key{}).(Session)
	return s, ok
}

func AuthenticatedMiddleware(h *Handler) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetSession(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}
			// Bad or absent credentials clear the session cookie entirely.
			_ = h.SessionManager.Load(r).Destroy(w)
			http.Error(w, "Forbidden", http.StatusForbidden)
		}
	}
}

func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			zero := Session{}
			session := handler.SessionManager.Load(r)
			var s Session
			err := session.GetObject(SessionKey, &s)
			if s != zero && err == nil {
				ctx := context.WithValue(r.Context(), key{}, s)
				r = r.WithContext(ctx)
			}

			h.ServeHTTP(w, r)
		})
	}
}

func Login(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := h.SessionManager.Load(r)
		if err := r.ParseForm(); err != nil {
			http.Error(w, "failed to parse form body", http.StatusBadRequest)
			return
		}

		username := r.Form.Get("username")
		password := r.Form.Get("password")
		a, authenticated, err := h.service.AuthenticateUser(ctx, username, password)
		if err != nil {
			renderLogin(w, GetCode(err), err)
			return
		}

		if !authenticated {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Login Failed; Incorrect username or password"))
			return
		}

		err = session.PutObject(w, SessionKey, Session{
			UserID:   a.UserID,
			Username: a.Username,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to create and load session")
			http.Error(w, "failed to create session", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func GetLogin(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderLogin(w, http.StatusOK, nil)
	}
}

func Logout(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := h.SessionManager.Load(r)
		if err := s.Destroy(w); err != nil {
			log.Error().Err(err).Msg("failed to destroy session")
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func GetCode(err error) int {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrConflict):
		// The setup guard surfaces as an internal error with a plain text reason.
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
