package web

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Mount(r chi.Router) {
	authenticated := AuthenticatedMiddleware(h)
	r.Use(SessionMiddleware(h))

	r.Route("/", func(r chi.Router) {
		r.Get("/", Index(h))

		r.Get(LoginRoute, GetLogin(h))
		r.Post(LoginRoute, Login(h))
		r.Get("/logout", Logout(h))

		r.Get(SetupRoute, GetSetup(h))
		r.Post(SetupRoute+"/complete", SetupComplete(h))
	})

	r.Get("/@{name}", Actor(h))
	r.Get("/@{name}@{host}", Profile(h))

	r.Post("/post/create", authenticated(CreatePost(h)))
	r.Post("/follow", authenticated(Follow(h)))

	r.Route("/posts/{id}", func(r chi.Router) {
		r.Get("/", GetPost(h))
		r.Get("/activity", PostActivity(h))
	})
}
