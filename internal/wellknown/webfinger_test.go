package wellknown

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sidereusnuntius/microblog/internal/config"
	"github.com/sidereusnuntius/microblog/internal/db"
	mock_db "github.com/sidereusnuntius/microblog/internal/mocks"
	"github.com/sidereusnuntius/microblog/internal/state"
	"go.uber.org/mock/gomock"
)

func newState(t *testing.T) (*state.State, *mock_db.MockDB) {
	t.Helper()
	ctrl := gomock.NewController(t)
	DB := mock_db.NewMockDB(ctrl)

	u, _ := url.Parse("https://test.blog")
	return &state.State{
		DB:     DB,
		Config: config.Configuration{Host: "test.blog", Url: u},
	}, DB
}

func request(st *state.State, resource string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	Mount(st, r)

	req := httptest.NewRequest(http.MethodGet, "/.well-known/webfinger?resource="+url.QueryEscape(resource), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebfinger(t *testing.T) {
	st, DB := newState(t)

	apId, _ := url.Parse("https://test.blog/@alice")
	DB.EXPECT().GetUserApId(gomock.Any(), "alice").Return(apId, nil)

	w := request(st, "acct:alice@test.blog")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/jrd+json" {
		t.Errorf("unexpected content type: %s", ct)
	}

	var res WebfingerResponse
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Subject != "acct:alice@test.blog" {
		t.Errorf("unexpected subject: %s", res.Subject)
	}
	if len(res.Links) != 1 || res.Links[0].Href != apId.String() {
		t.Errorf("unexpected links: %+v", res.Links)
	}
	if res.Links[0].Rel != "self" || res.Links[0].Type != "application/activity+json" {
		t.Errorf("unexpected link metadata: %+v", res.Links[0])
	}
}

// The instance only answers for accounts on its own host; anything else is not
// found, even if the username matches the local user.
func TestWebfingerWrongHost(t *testing.T) {
	st, _ := newState(t)

	w := request(st, "acct:alice@elsewhere.example")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestWebfingerUnknownUser(t *testing.T) {
	st, DB := newState(t)

	DB.EXPECT().GetUserApId(gomock.Any(), "ghost").Return(nil, db.ErrNotFound)

	w := request(st, "acct:ghost@test.blog")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
