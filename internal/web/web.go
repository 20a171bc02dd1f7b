package web

import (
	"net/http"
	"strings"

	"github.com/alexedwards/scs"
	"github.com/sidereusnuntius/microblog/internal/config"
	"github.com/sidereusnuntius/microblog/internal/service"
)

const (
	LoginRoute = "/login"
	SetupRoute = "/setup"
)

type Handler struct {
	Config         *config.Configuration
	service        service.Service
	SessionManager *scs.Manager
}

func New(config *config.Configuration, service service.Service, manager *scs.Manager) Handler {
	return Handler{
		Config:         config,
		service:        service,
		SessionManager: manager,
	}
}

// wantsActivityJSON reports whether the client asked for the ActivityPub
// representation of a resource rather than the HTML page.
func wantsActivityJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/activity+json") ||
		strings.Contains(accept, "application/ld+json")
}
