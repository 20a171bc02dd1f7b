package impl

import (
	"context"
	"strings"

	"code.superseriousbusiness.org/activity/streams"
	"github.com/sidereusnuntius/microblog/internal/conversions"
	"github.com/sidereusnuntius/microblog/internal/domain"
)

func (s *AppService) GetProfile(ctx context.Context, username, host string) (p domain.Profile, err error) {
	username = strings.TrimSpace(username)
	host = strings.TrimSpace(host)

	scope := domain.Local()
	if host != "" && host != s.Config.Host {
		scope = domain.Remote(host)
	}

	u, err := s.DB.GetUser(ctx, username, scope)
	if err != nil {
		return
	}

	posts, err := s.DB.GetPostsByUser(ctx, u.ID)
	if err != nil {
		return
	}

	p = domain.Profile{
		UserCore: u.UserCore,
		Posts:    posts,
	}
	return
}

// GetActorDocument returns the serialized Person document for a local user. Its id
// matches the profile url byte for byte, since remote servers dereference it.
func (s *AppService) GetActorDocument(ctx context.Context, username string) (map[string]any, error) {
	u, err := s.DB.GetUser(ctx, username, domain.Local())
	if err != nil {
		return nil, err
	}

	return streams.Serialize(conversions.UserToActor(u))
}
