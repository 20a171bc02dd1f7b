package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Actor serves a local user: the Person document for federated clients, the HTML
// profile for everyone else.
func Actor(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		if !wantsActivityJSON(r) {
			serveProfile(h, w, r, name, "")
			return
		}

		doc, err := h.service.GetActorDocument(r.Context(), name)
		if err != nil {
			http.Error(w, "Not Found", GetCode(err))
			return
		}
		writeActivityJSON(w, doc)
	}
}

func Profile(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveProfile(h, w, r, chi.URLParam(r, "name"), chi.URLParam(r, "host"))
	}
}

func serveProfile(h *Handler, w http.ResponseWriter, r *http.Request, name, host string) {
	p, err := h.service.GetProfile(r.Context(), name, host)
	if err != nil {
		http.Error(w, "Not Found", GetCode(err))
		return
	}
	renderProfile(w, p)
}

func Follow(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())
		if err := r.ParseForm(); err != nil {
			http.Error(w, "failed to parse form body", http.StatusBadRequest)
			return
		}

		err := h.service.Follow(r.Context(), s.UserID, r.Form.Get("username"), r.Form.Get("host"))
		if err != nil {
			http.Error(w, err.Error(), GetCode(err))
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
