package impl

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/microblog/internal/db"
	"github.com/sidereusnuntius/microblog/internal/domain"
)

func (s *AppService) Follow(ctx context.Context, followerId, username, host string) error {
	username = strings.TrimSpace(username)
	host = strings.TrimSpace(host)

	scope := domain.Local()
	if host != "" && host != s.Config.Host {
		scope = domain.Remote(host)
	}

	followed, err := s.DB.GetUser(ctx, username, scope)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) && !scope.IsLocal() {
			// TODO: resolve the actor id through WebFinger instead of assuming the
			// /@username layout.
			iri := s.Config.Url.Scheme + "://" + host + "/@" + username
			if u, parseErr := url.Parse(iri); parseErr == nil {
				if fetchErr := s.Queue.Fetch(u); fetchErr != nil {
					log.Error().Err(fetchErr).Str("iri", iri).Msg("failed to enqueue actor fetch")
				}
			}
		}
		return err
	}

	return s.DB.InsertFollower(ctx, followerId, followed.ID)
}
