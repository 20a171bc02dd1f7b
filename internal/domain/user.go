package domain

import (
	"net/url"
	"time"
)

type UserCore struct {
	ID       string
	Username string
	Name     string
	Host     string
	URL      *url.URL
}

// KeyPair is the key material attached to an actor. Local users always carry both
// halves; for remote users PrivateKeyPem is empty.
type KeyPair struct {
	// ID is the key's identifier URI, e.g. https://example.org/@alice#main-key.
	ID string
	// Owner is the id of the owning user.
	Owner         string
	PublicKeyPem  string
	PrivateKeyPem string
	KeyType       string
}

type UserFed struct {
	UserCore
	ApId        *url.URL
	Inbox       *url.URL
	SharedInbox *url.URL
	Key         KeyPair
	Created     time.Time
}

// UserInternal carries the fields that must never leave the store boundary except
// for authentication and signing.
type UserInternal struct {
	UserFed
	// Password is the bcrypt hash; empty for remote users.
	Password string
}

// Account holds the data needed to authenticate a local user and populate their
// login session.
type Account struct {
	UserID   string
	Username string
	Password string
}

type Profile struct {
	UserCore
	Posts []PostFed
}
