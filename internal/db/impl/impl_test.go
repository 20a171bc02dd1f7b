package impl

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sidereusnuntius/microblog/internal/config"
	"github.com/sidereusnuntius/microblog/internal/db"
	"github.com/sidereusnuntius/microblog/internal/domain"
	"github.com/sidereusnuntius/microblog/internal/initialization"
	"github.com/sidereusnuntius/microblog/internal/utils"
)

var DB db.DB
var cfg config.Configuration
var ctx = context.Background()

func TestMain(m *testing.M) {
	hostname, _ := url.Parse("https://test.blog")
	cfg = config.Configuration{
		Host: "test.blog",
		Url:  hostname,
	}

	d, err := initialization.OpenDB("file:temp?mode=memory&cache=shared")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open connection: %s", err)
		return
	}

	err = initialization.SetupDB(d, "../../../migrations", "temp")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %s", err)
		return
	}
	DB = New(cfg, d)
	m.Run()
}

func newLocalUser(t *testing.T, username string) domain.UserInternal {
	t.Helper()
	apId := cfg.Url.JoinPath("@" + username)
	keyId, pub, priv, err := utils.GenerateKeyPair(apId, 1024)
	if err != nil {
		t.Fatal(err)
	}

	id := uuid.NewString()
	return domain.UserInternal{
		UserFed: domain.UserFed{
			UserCore: domain.UserCore{
				ID:       id,
				Username: username,
				URL:      apId,
			},
			ApId:  apId,
			Inbox: apId.JoinPath("inbox"),
			Key: domain.KeyPair{
				ID:            keyId,
				Owner:         id,
				PublicKeyPem:  pub,
				PrivateKeyPem: priv,
				KeyType:       utils.KeyTypeRsa,
			},
		},
		Password: "$2a$12$notarealhashbutlongenough1234567890abcdefgh",
	}
}

func newRemoteUser(username, host string) domain.UserFed {
	apId, _ := url.Parse(fmt.Sprintf("https://%s/users/%s", host, username))
	return domain.UserFed{
		UserCore: domain.UserCore{
			Username: username,
			Host:     host,
			URL:      apId,
		},
		ApId:  apId,
		Inbox: apId.JoinPath("inbox"),
	}
}

func TestLocalUserLifecycle(t *testing.T) {
	exists, err := DB.LocalUserExists(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("no local user was inserted yet")
	}

	user := newLocalUser(t, "alice")
	if err = DB.InsertLocalUser(ctx, user); err != nil {
		t.Fatal(err)
	}

	exists, err = DB.LocalUserExists(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("expected the setup gate to close after the insert")
	}

	got, err := DB.GetUser(ctx, "alice", domain.Local())
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != user.ID || got.Username != "alice" || got.Host != "" {
		t.Errorf("unexpected user: %+v", got)
	}
	if got.ApId.String() != user.ApId.String() {
		t.Errorf("expected actor id %s, got %s", user.ApId, got.ApId)
	}
	if got.Key.PrivateKeyPem == "" {
		t.Error("local lookups must include the private key half")
	}

	auth, err := DB.GetAuthData(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if auth.UserID != user.ID || auth.Password != user.Password {
		t.Errorf("unexpected auth data: %+v", auth)
	}
}

// The store itself enforces the one-local-user rule, so callers racing past the
// service-level check still cannot create a second account.
func TestInsertLocalUserSingleUse(t *testing.T) {
	err := DB.InsertLocalUser(ctx, newLocalUser(t, "mallory"))
	if err != db.ErrConflict {
		t.Errorf("expected ErrConflict, got %v", err)
	}

	if _, err = DB.GetUser(ctx, "mallory", domain.Local()); err != db.ErrNotFound {
		t.Error("the rejected insert must not leave a user behind")
	}
}

func TestGetUserNotFound(t *testing.T) {
	_, err := DB.GetUser(ctx, "nobody", domain.Local())
	if err != db.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// alice is local, so a remote-scoped lookup must miss.
	_, err = DB.GetUser(ctx, "alice", domain.Remote("elsewhere.example"))
	if err != db.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetAuthDataIgnoresRemoteUsers(t *testing.T) {
	if _, err := DB.InsertRemoteUser(ctx, newRemoteUser("carol", "remote.example")); err != nil {
		t.Fatal(err)
	}

	_, err := DB.GetAuthData(ctx, "carol")
	if err != db.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestInsertRemoteUserIdempotent(t *testing.T) {
	user := newRemoteUser("bob", "remote.example")
	id1, err := DB.InsertRemoteUser(ctx, user)
	if err != nil {
		t.Fatal(err)
	}

	id2, err := DB.InsertRemoteUser(ctx, user)
	if err != nil {
		t.Fatal(err)
	}
	if id1 != id2 {
		t.Errorf("expected second insert to return id %s, but it returned %s", id1, id2)
	}

	got, err := DB.GetUser(ctx, "bob", domain.Remote("remote.example"))
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != id1 || got.Host != "remote.example" {
		t.Errorf("unexpected user: %+v", got)
	}
	if got.Key.PrivateKeyPem != "" {
		t.Error("remote lookups must never expose a private key")
	}
}

func TestInsertRemoteUserWithoutHost(t *testing.T) {
	user := newRemoteUser("dave", "remote.example")
	user.Host = ""
	if _, err := DB.InsertRemoteUser(ctx, user); err == nil {
		t.Error("expected an error for a remote user without a host")
	}
}

func TestPosts(t *testing.T) {
	author, err := DB.GetUser(ctx, "alice", domain.Local())
	if err != nil {
		t.Fatal(err)
	}

	var ids []string
	for i := range 3 {
		id := uuid.NewString()
		ids = append(ids, id)
		post := domain.PostFed{
			PostCore: domain.PostCore{
				ID:      id,
				Content: fmt.Sprintf("post number %d", i),
				Created: time.Unix(int64(1000+i), 0).UTC(),
			},
			Url:    cfg.Url.JoinPath("posts", id),
			Author: author.UserCore,
		}
		post.ApID = post.Url
		if err = DB.InsertPost(ctx, post); err != nil {
			t.Fatal(err)
		}
	}

	got, err := DB.GetPost(ctx, ids[0])
	if err != nil {
		t.Fatal(err)
	}
	if got.Content != "post number 0" || got.Author.ID != author.ID {
		t.Errorf("unexpected post: %+v", got)
	}
	if got.Created != time.Unix(1000, 0).UTC() {
		t.Errorf("unexpected creation time: %s", got.Created)
	}
	if got.ApID.String() != cfg.Url.JoinPath("posts", ids[0]).String() {
		t.Errorf("unexpected post id: %s", got.ApID)
	}

	feed, err := DB.GetFeed(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(feed))
	}
	if feed[0].ID != ids[2] || feed[1].ID != ids[1] {
		t.Error("expected the feed to be ordered newest first")
	}

	byUser, err := DB.GetPostsByUser(ctx, author.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(byUser) != 3 {
		t.Errorf("expected 3 posts, got %d", len(byUser))
	}
}

// Constraint violations come back as ErrConflict rather than a raw sqlite error.
func TestInsertPostDuplicateId(t *testing.T) {
	author, err := DB.GetUser(ctx, "alice", domain.Local())
	if err != nil {
		t.Fatal(err)
	}

	id := uuid.NewString()
	post := domain.PostFed{
		PostCore: domain.PostCore{ID: id, Content: "once", Created: time.Unix(2000, 0).UTC()},
		Url:      cfg.Url.JoinPath("posts", id),
		Author:   author.UserCore,
	}
	post.ApID = post.Url

	if err = DB.InsertPost(ctx, post); err != nil {
		t.Fatal(err)
	}
	if err = DB.InsertPost(ctx, post); err != db.ErrConflict {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestGetPostNotFound(t *testing.T) {
	_, err := DB.GetPost(ctx, uuid.NewString())
	if err != db.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetActorInbox(t *testing.T) {
	user := newRemoteUser("erin", "shared.example")
	shared, _ := url.Parse("https://shared.example/inbox")
	user.SharedInbox = shared
	if _, err := DB.InsertRemoteUser(ctx, user); err != nil {
		t.Fatal(err)
	}

	inbox, err := DB.GetActorInbox(ctx, user.ApId)
	if err != nil {
		t.Fatal(err)
	}
	if inbox.String() != shared.String() {
		t.Errorf("expected the shared inbox, got %s", inbox)
	}

	// bob has no shared inbox, so his own must be used.
	bob := newRemoteUser("bob", "remote.example")
	inbox, err = DB.GetActorInbox(ctx, bob.ApId)
	if err != nil {
		t.Fatal(err)
	}
	if inbox.String() != bob.Inbox.String() {
		t.Errorf("expected %s, got %s", bob.Inbox, inbox)
	}

	unknown, _ := url.Parse("https://nowhere.example/users/ghost")
	if _, err = DB.GetActorInbox(ctx, unknown); err != db.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFollowers(t *testing.T) {
	alice, err := DB.GetUser(ctx, "alice", domain.Local())
	if err != nil {
		t.Fatal(err)
	}
	bob, err := DB.GetUser(ctx, "bob", domain.Remote("remote.example"))
	if err != nil {
		t.Fatal(err)
	}

	if err = DB.InsertFollower(ctx, bob.ID, alice.ID); err != nil {
		t.Fatal(err)
	}
	// Repeating a follow must not fail.
	if err = DB.InsertFollower(ctx, bob.ID, alice.ID); err != nil {
		t.Fatal(err)
	}

	followers, err := DB.GetFollowers(ctx, alice.ApId)
	if err != nil {
		t.Fatal(err)
	}
	if len(followers) != 1 {
		t.Fatalf("expected 1 follower, got %d", len(followers))
	}
	if followers[0].String() != bob.ApId.String() {
		t.Errorf("expected %s, got %s", bob.ApId, followers[0])
	}
}

func TestGetUserPrivateKeyByURI(t *testing.T) {
	alice, err := DB.GetUser(ctx, "alice", domain.Local())
	if err != nil {
		t.Fatal(err)
	}

	key, err := DB.GetUserPrivateKeyByURI(ctx, alice.ApId)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := key.(*rsa.PrivateKey); !ok {
		t.Errorf("expected an RSA private key, got %T", key)
	}

	// bob is remote; only his public key is stored.
	bob, _ := url.Parse("https://remote.example/users/bob")
	if _, err = DB.GetUserPrivateKeyByURI(ctx, bob); err != db.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
