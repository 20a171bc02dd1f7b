package db

import (
	"context"
	"net/url"
)

type Fed interface {
	// GetActorInbox resolves the inbox to deliver to for the given actor IRI,
	// preferring the shared inbox when the actor advertises one.
	GetActorInbox(ctx context.Context, actor *url.URL) (*url.URL, error)
	// GetFollowers returns the actor IRIs of everyone following the given actor.
	GetFollowers(ctx context.Context, followed *url.URL) ([]*url.URL, error)
	InsertFollower(ctx context.Context, followerId, followedId string) error
}
