package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/microblog/internal/domain"
)

//go:embed templates/*.html
var templateFiles embed.FS

var pages = template.Must(template.ParseFS(templateFiles, "templates/*.html"))

type postView struct {
	Username string
	Host     string
	// Content was escaped when the post was created; rendering it as template.HTML
	// keeps the escape-once contract.
	Content template.HTML
	URL     string
}

func toViews(posts []domain.PostFed) []postView {
	views := make([]postView, len(posts))
	for i, p := range posts {
		views[i] = postView{
			Username: p.Author.Username,
			Host:     p.Author.Host,
			Content:  template.HTML(p.Content),
			URL:      p.Url.String(),
		}
	}
	return views
}

func render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("render failed")
	}
}

func renderLogin(w http.ResponseWriter, status int, err error) {
	var msg string
	if err != nil {
		msg = err.Error()
	}
	render(w, status, "login.html", map[string]any{"Error": msg})
}

func renderSetup(w http.ResponseWriter, status int, err error) {
	var msg string
	if err != nil {
		msg = err.Error()
	}
	render(w, status, "setup.html", map[string]any{"Error": msg})
}

func renderHome(w http.ResponseWriter, username string, posts []domain.PostFed) {
	render(w, http.StatusOK, "home.html", map[string]any{
		"Username": username,
		"Posts":    toViews(posts),
	})
}

func renderPost(w http.ResponseWriter, post domain.PostFed) {
	render(w, http.StatusOK, "post.html", toViews([]domain.PostFed{post})[0])
}

func renderProfile(w http.ResponseWriter, p domain.Profile) {
	render(w, http.StatusOK, "profile.html", map[string]any{
		"Username": p.Username,
		"Name":     p.Name,
		"Host":     p.Host,
		"Posts":    toViews(p.Posts),
	})
}
