package web

import (
	"encoding/json"
	"net/http"

	"code.superseriousbusiness.org/activity/streams"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/microblog/internal/conversions"
)

func Index(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := GetSession(r.Context())
		if !ok {
			// A fresh instance has nobody to log in yet; point at setup instead.
			if required, err := h.service.SetupRequired(r.Context()); err == nil && required {
				http.Redirect(w, r, SetupRoute, http.StatusSeeOther)
				return
			}
			http.Redirect(w, r, LoginRoute, http.StatusSeeOther)
			return
		}

		posts, err := h.service.GetFeed(r.Context())
		if err != nil {
			http.Error(w, "", GetCode(err))
			return
		}

		renderHome(w, s.Username, posts)
	}
}

func CreatePost(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())
		if err := r.ParseForm(); err != nil {
			http.Error(w, "failed to parse form body", http.StatusBadRequest)
			return
		}

		_, err := h.service.CreatePost(r.Context(), s.Username, r.Form.Get("content"))
		if err != nil {
			http.Error(w, err.Error(), GetCode(err))
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func GetPost(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := h.service.GetPost(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Not Found", GetCode(err))
			return
		}

		if wantsActivityJSON(r) {
			note := conversions.PostToNote(post)
			doc, err := streams.Serialize(note)
			if err != nil {
				log.Error().Err(err).Str("post", post.ID).Msg("note serialization failed")
				http.Error(w, "", http.StatusInternalServerError)
				return
			}
			writeActivityJSON(w, doc)
			return
		}

		renderPost(w, post)
	}
}

// PostActivity serves the Create activity wrapping the post's Note. The activity id
// is the post url with an /activity suffix, matching what was delivered to inboxes.
func PostActivity(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := h.service.GetPost(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Not Found", GetCode(err))
			return
		}

		note := conversions.PostToNote(post)
		create := conversions.NewCreate(post.ApID.JoinPath("activity"), post.Author.URL, note)
		doc, err := streams.Serialize(create)
		if err != nil {
			log.Error().Err(err).Str("post", post.ID).Msg("activity serialization failed")
			http.Error(w, "", http.StatusInternalServerError)
			return
		}
		writeActivityJSON(w, doc)
	}
}

func writeActivityJSON(w http.ResponseWriter, doc map[string]any) {
	w.Header().Set("Content-Type", "application/activity+json")
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		log.Error().Err(err).Msg("unable to write activity document")
	}
}
