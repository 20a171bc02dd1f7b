package db

import (
	"context"
	"crypto"
	"net/url"

	"github.com/sidereusnuntius/microblog/internal/domain"
)

type Users interface {
	// GetUser returns the user together with their key pair. The private key half is
	// only populated for local lookups; remote users never have one stored.
	GetUser(ctx context.Context, username string, scope domain.Scope) (domain.UserFed, error)
	// LocalUserExists reports whether the one-time setup has already been run. This
	// instance is single tenant, so the check gates setup, not username uniqueness.
	LocalUserExists(ctx context.Context) (bool, error)
	// InsertLocalUser persists the user and their key pair in a single transaction.
	// It fails with ErrConflict once a local user exists, however many callers race
	// for the spot, or when the username collides with an existing local row.
	InsertLocalUser(ctx context.Context, user domain.UserInternal) error
	// GetAuthData returns the credentials of a local user. Unknown usernames map to
	// ErrNotFound so authentication fails closed.
	GetAuthData(ctx context.Context, username string) (domain.Account, error)
	// InsertRemoteUser records a user discovered on another instance. It is
	// idempotent: if the (username, host) pair already exists the stored id is
	// returned and nothing is written.
	InsertRemoteUser(ctx context.Context, user domain.UserFed) (id string, err error)
	GetUserApId(ctx context.Context, username string) (*url.URL, error)
	GetUserPrivateKeyByURI(ctx context.Context, actor *url.URL) (crypto.PrivateKey, error)
}
