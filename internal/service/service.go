package service

import (
	"context"
	"errors"

	"github.com/sidereusnuntius/microblog/internal/domain"
)

var (
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid")
)

type Service interface {
	// Setup creates the instance's one local user together with their key pair.
	// It fails with ErrConflict once a local user exists; nothing about the first
	// user is altered by later attempts.
	Setup(ctx context.Context, username, password string) error
	// SetupRequired reports whether Setup has never succeeded, so surfaces can
	// steer a fresh instance towards it.
	SetupRequired(ctx context.Context) (bool, error)
	// AuthenticateUser verifies the credentials of a local user. If authentication
	// fails, authenticated is false and err is nil; a non nil error indicates an
	// internal, unexpected error.
	AuthenticateUser(ctx context.Context, username, password string) (a domain.Account, authenticated bool, err error)
	// CreatePost escapes the content, persists the post and enqueues delivery of
	// its Create activity to the author's followers. The post is durable before
	// any delivery job exists.
	CreatePost(ctx context.Context, username, content string) (domain.PostFed, error)
	GetPost(ctx context.Context, id string) (domain.PostFed, error)
	GetFeed(ctx context.Context) ([]domain.PostFed, error)
	GetProfile(ctx context.Context, username, host string) (domain.Profile, error)
	GetActorDocument(ctx context.Context, username string) (map[string]any, error)
	// Follow records that the local user follows the given account. Unknown remote
	// actors are resolved through the fetch queue first.
	Follow(ctx context.Context, followerId, username, host string) error
}
