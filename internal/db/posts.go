package db

import (
	"context"

	"github.com/sidereusnuntius/microblog/internal/domain"
)

type Posts interface {
	// InsertPost persists an immutable post. The caller generates the id and url.
	InsertPost(ctx context.Context, post domain.PostFed) error
	// GetPost returns the post joined with its author.
	GetPost(ctx context.Context, id string) (domain.PostFed, error)
	// GetFeed returns the newest posts across all users, creation time descending.
	GetFeed(ctx context.Context, limit int64) ([]domain.PostFed, error)
	GetPostsByUser(ctx context.Context, userId string) ([]domain.PostFed, error)
}
