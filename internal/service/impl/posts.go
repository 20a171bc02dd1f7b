package impl

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/microblog/internal/domain"
	"github.com/sidereusnuntius/microblog/internal/service"
	"github.com/sidereusnuntius/microblog/internal/validate"
)

const FeedLimit = 10

func (s *AppService) CreatePost(ctx context.Context, username, content string) (domain.PostFed, error) {
	if err := validate.PostContent(content); err != nil {
		return domain.PostFed{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	author, err := s.DB.GetUser(ctx, username, domain.Local())
	if err != nil {
		return domain.PostFed{}, err
	}

	id := uuid.NewString()
	post := domain.PostFed{
		PostCore: domain.PostCore{
			ID: id,
			// Escaped exactly once, here. The stored content is what every
			// consumer, HTML or federated, receives.
			Content: html.EscapeString(content),
			Created: time.Now().UTC().Truncate(time.Second),
		},
		Url:    s.Config.Url.JoinPath("posts", id),
		Author: author.UserCore,
	}
	post.ApID = post.Url

	if err = s.DB.InsertPost(ctx, post); err != nil {
		return domain.PostFed{}, err
	}

	// The post is durable at this point; delivery failures past here are invisible
	// to the author and only surface in the logs.
	if err := s.Queue.CreateLocalPost(ctx, post); err != nil {
		log.Error().Err(err).Str("post", id).Msg("failed to enqueue federation delivery")
	}

	return post, nil
}

func (s *AppService) GetPost(ctx context.Context, id string) (domain.PostFed, error) {
	return s.DB.GetPost(ctx, id)
}

func (s *AppService) GetFeed(ctx context.Context) ([]domain.PostFed, error) {
	return s.DB.GetFeed(ctx, FeedLimit)
}
