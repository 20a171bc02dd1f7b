package client

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"code.superseriousbusiness.org/httpsig"
	"github.com/rs/zerolog/log"
	mock_db "github.com/sidereusnuntius/microblog/internal/mocks"
	"go.uber.org/mock/gomock"
)

var key *rsa.PrivateKey
var algo = httpsig.RSA_SHA256
var ctx = context.Background()

func TestMain(m *testing.M) {
	var err error
	key, err = rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		log.Fatal().Err(err).Msg("tests setup failure")
		return
	}

	m.Run()
}

func verify(t *testing.T, path string, pub *rsa.PublicKey) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		verifier, err := httpsig.NewVerifier(r)
		if err != nil {
			t.Error(err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if path != r.URL.Path {
			t.Errorf("expected path %s, got %s", path, r.URL.Path)
		}

		err = verifier.Verify(pub, algo)
		if err != nil {
			t.Error("signature validation error:", err)
			return
		}
		w.Write([]byte("hello!"))
	})
}

func TestDereference(t *testing.T) {
	ctrl := gomock.NewController(t)
	DB := mock_db.NewMockDB(ctrl)

	kId, _ := url.Parse("http://localhost:8080")
	client, err := New(DB, &http.Client{}, key, prefs, kId)
	if err != nil {
		t.Fatal(err)
	}

	path := "/someguy"
	server := httptest.NewServer(verify(t, path, &key.PublicKey))
	defer server.Close()
	u, err := url.Parse(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	url := u.JoinPath(path)
	res, err := client.Dereference(ctx, url)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	if b := string(body); b != "hello!" {
		t.Errorf("unexpected response: \"%s\"", b)
	}
}

func TestDeliver(t *testing.T) {
	ctrl := gomock.NewController(t)
	DB := mock_db.NewMockDB(ctrl)

	kId, _ := url.Parse("http://localhost:8080")
	client, err := New(DB, &http.Client{}, key, prefs, kId)
	if err != nil {
		t.Fatal(err)
	}

	path := "/inbox"
	server := httptest.NewServer(verify(t, path, &key.PublicKey))
	defer server.Close()
	u, err := url.Parse(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	activity := map[string]any{
		"type": "Create",
		"id":   "http://localhost:8080/posts/1/activity",
	}
	err = client.Deliver(ctx, activity, u.JoinPath(path))
	if err != nil {
		t.Error(err)
	}
}

func TestDeliverRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	DB := mock_db.NewMockDB(ctrl)

	kId, _ := url.Parse("http://localhost:8080")
	client, err := New(DB, &http.Client{}, key, prefs, kId)
	if err != nil {
		t.Fatal(err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no thanks", http.StatusForbidden)
	}))
	defer server.Close()
	u, _ := url.Parse(server.URL)

	err = client.Deliver(ctx, map[string]any{"type": "Create"}, u.JoinPath("/inbox"))
	if err == nil {
		t.Error("expected an error for a rejected delivery")
	}
}

func TestDeliverAs(t *testing.T) {
	ctrl := gomock.NewController(t)
	DB := mock_db.NewMockDB(ctrl)

	userKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}

	from, _ := url.Parse("http://localhost:8080/@alice")
	DB.EXPECT().
		GetUserPrivateKeyByURI(gomock.Any(), from).
		Return(userKey, nil)

	kId, _ := url.Parse("http://localhost:8080")
	client, err := New(DB, &http.Client{}, key, prefs, kId)
	if err != nil {
		t.Fatal(err)
	}

	path := "/users/bob/inbox"
	server := httptest.NewServer(verify(t, path, &userKey.PublicKey))
	defer server.Close()
	u, _ := url.Parse(server.URL)

	activity := map[string]any{
		"type": "Create",
		"id":   "http://localhost:8080/posts/1/activity",
	}
	err = client.DeliverAs(ctx, activity, u.JoinPath(path), from)
	if err != nil {
		t.Error(err)
	}
}

// An instance-level sender must fall back to the instance key instead of hitting
// the database.
func TestDeliverAsInstance(t *testing.T) {
	ctrl := gomock.NewController(t)
	DB := mock_db.NewMockDB(ctrl)

	kId, _ := url.Parse("http://localhost:8080")
	client, err := New(DB, &http.Client{}, key, prefs, kId)
	if err != nil {
		t.Fatal(err)
	}

	path := "/inbox"
	server := httptest.NewServer(verify(t, path, &key.PublicKey))
	defer server.Close()
	u, _ := url.Parse(server.URL)

	from, _ := url.Parse("http://localhost:8080/")
	err = client.DeliverAs(ctx, map[string]any{"type": "Create"}, u.JoinPath(path), from)
	if err != nil {
		t.Error(err)
	}
}
